package calculator

import (
	"errors"
	"strconv"
)

// ErrorKind classifies the ways an expression can fail to evaluate.
type ErrorKind int8

const (
	KindNone ErrorKind = iota
	// InvalidCharacter is a rune outside the expression alphabet.
	InvalidCharacter
	// MalformedNumber is a number with more than one decimal point or one
	// that otherwise does not parse as a float.
	MalformedNumber
	// MalformedExpression is an operator without two operands or an
	// expression that does not reduce to exactly one value.
	MalformedExpression
	// NonFiniteResult is an infinite or NaN result, e.g. from division by
	// zero.
	NonFiniteResult
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case InvalidCharacter:
		return "InvalidCharacter"
	case MalformedNumber:
		return "MalformedNumber"
	case MalformedExpression:
		return "MalformedExpression"
	case NonFiniteResult:
		return "NonFiniteResult"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// KindOf returns the kind of the first error in err's chain which has one, or
// KindNone if there is none.
func KindOf(err error) ErrorKind {
	var k interface{ Kind() ErrorKind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindNone
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Malformed is the error kind, either InvalidCharacter or
	// MalformedNumber.
	Malformed ErrorKind
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	if err.Malformed == MalformedNumber {
		return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Kind() ErrorKind {
	return err.Malformed
}

// NumberError is a number token that does not parse as a float. It implements
// InputError.
type NumberError struct {
	// Col is the position of the number.
	Col int
	// Text is the number token.
	Text string
	// Err is the error from strconv.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "cannot parse number "+strconv.Quote(err.Text))
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Kind() ErrorKind {
	return MalformedNumber
}

// ExpressionError indicates an expression which does not reduce to a single
// value. It implements InputError.
type ExpressionError struct {
	// Col is the position of the operator lacking operands, or 0 if the
	// error was detected at the end of the expression.
	Col int
	// Operator is the operator lacking operands, or empty if the expression
	// ended with the wrong number of values.
	Operator string
	// Values is the number of values available at the time of the error.
	Values int
}

func (err *ExpressionError) Error() string {
	if err.Operator != "" {
		return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" has "+strconv.Itoa(err.Values)+" operands")
	}
	if err.Values == 0 {
		return "no expression"
	}
	return "expression leaves " + strconv.Itoa(err.Values) + " values"
}

// Pos returns the column of the operator lacking operands, or 0 if the
// expression ended with the wrong number of values.
func (err *ExpressionError) Pos() int {
	return err.Col
}

func (err *ExpressionError) Kind() ErrorKind {
	return MalformedExpression
}

// NonFiniteError is the error for an expression that evaluates to an infinity
// or NaN.
type NonFiniteError struct {
	// Value is the result of the expression.
	Value float64
}

func (err *NonFiniteError) Error() string {
	return "result is not finite: " + strconv.FormatFloat(err.Value, 'g', -1, 64)
}

func (err *NonFiniteError) Kind() ErrorKind {
	return NonFiniteResult
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// an invalid token implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error. It is 0 if no
	// single token caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*ExpressionError)(nil)
)
