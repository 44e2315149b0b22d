package calculator

import (
	"errors"
	"math"
	"strconv"
)

// stack is the value stack for evaluating postfix expressions.
type stack []float64

func (s *stack) push(x float64) {
	*s = append(*s, x)
}

// pop removes the top from the stack and returns it. The stack must not be
// empty.
func (s *stack) pop() float64 {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

// Eval evaluates the expression and returns its result. Arithmetic follows
// IEEE-754, so division by zero gives an infinity or NaN rather than an error;
// the package-level Eval reports those as errors. An operator without two
// operands, or an expression which does not reduce to exactly one value, gives
// an *ExpressionError. A number which fails to parse gives a *NumberError.
func (e *Expr) Eval() (float64, error) {
	s := make(stack, 0, len(e.rpn)/2+1)
	for _, tok := range e.rpn {
		switch tok.Kind {
		case TokenNum:
			x, err := num(tok)
			if err != nil {
				return 0, err
			}
			s.push(x)
		case TokenOp:
			if len(s) < 2 {
				return 0, &ExpressionError{Col: tok.Pos, Operator: tok.Text, Values: len(s)}
			}
			b := s.pop()
			a := s.pop()
			switch tok.Text {
			case "+":
				s.push(a + b)
			case "-":
				s.push(a - b)
			case "*":
				s.push(a * b)
			case "/":
				s.push(a / b)
			default:
				panic("calculator: invalid operator " + strconv.Quote(tok.Text))
			}
		default:
			panic("calculator: invalid token " + tok.String())
		}
	}
	if len(s) != 1 {
		return 0, &ExpressionError{Values: len(s)}
	}
	return s[0], nil
}

// num parses a number token.
func num(tok Token) (float64, error) {
	x, err := strconv.ParseFloat(tok.Text, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// x is already ±Inf. Overflow is just another non-finite result.
	default:
		return 0, &NumberError{Col: tok.Pos, Text: tok.Text, Err: err}
	}
	return x, nil
}

// Eval is a shortcut to parse and evaluate an expression. If the result is
// infinite or NaN, it is returned along with a *NonFiniteError.
func Eval(src string) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	r, err := a.Eval()
	if err != nil {
		return 0, err
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return r, &NonFiniteError{Value: r}
	}
	return r, nil
}
