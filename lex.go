package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical token of a normalized expression.
type Token struct {
	// Text is the token's source text. Numbers may carry a leading minus
	// sign.
	Text string
	// Kind is the kind of token.
	Kind TokenKind
	// Pos is the rune column at which the token starts, counting from 1.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the kind of a Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenEOF indicates the end of the input.
	TokenEOF
	// TokenNum is a decimal number, possibly signed.
	TokenNum
	// TokenOp is a binary operator.
	TokenOp
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenEOF:
		return "EOF"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are operators in normalized
// expressions.
const Operators = "+-*/"

// Times and Divide are the display forms of * and /.
const (
	Times  = '×'
	Divide = '÷'
)

// Normalize rewrites display operators to their ASCII forms and removes
// whitespace.
func Normalize(src string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == Times:
			return '*'
		case r == Divide:
			return '/'
		case unicode.IsSpace(r):
			return -1
		}
		return r
	}, src)
}

// Tokenize splits a normalized expression into tokens. A minus at the start
// of the expression or following an operator is folded into the number after
// it, so "3*-2" is 3, *, and -2. The error, if any, is a *LexError.
func Tokenize(src string) ([]Token, error) {
	scan := lex(strings.NewReader(src))
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// last is the kind of the last token scanned.
	last TokenKind
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is an EOF token.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	tok := Token{Pos: l.rune + 1}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			tok.Kind = TokenEOF
			return tok, nil
		}
		return tok, err
	}
	switch {
	case isDigit(r), r == '.':
		l.unreadRune()
		if err := l.scanNum(); err != nil {
			return tok, err
		}
		tok.Text = l.buf.String()
		tok.Kind = TokenNum
	case r == '-' && l.last != TokenNum:
		// Nothing to subtract from, so this is the sign of the next number if
		// there is one.
		signed, err := l.peekNum()
		if err != nil {
			return tok, err
		}
		if !signed {
			tok.Text = "-"
			tok.Kind = TokenOp
			break
		}
		l.buf.WriteRune('-')
		if err := l.scanNum(); err != nil {
			return tok, err
		}
		tok.Text = l.buf.String()
		tok.Kind = TokenNum
	case strings.ContainsRune(Operators, r):
		tok.Text = string(r)
		tok.Kind = TokenOp
	default:
		// Write the rune so that it shows up in the error message.
		l.buf.WriteRune(r)
		return tok, l.error(InvalidCharacter)
	}
	l.last = tok.Kind
	return tok, nil
}

// peekNum reports whether the next rune starts a number without consuming it.
func (l *lexer) peekNum() (bool, error) {
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	l.unreadRune()
	return isDigit(r) || r == '.', nil
}

// scanNum scans a maximal run of digits and decimal points into the buffer.
// A second decimal point in the run is an error.
func (l *lexer) scanNum() error {
	var dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case isDigit(r):
			l.buf.WriteRune(r)
		case r == '.':
			l.buf.WriteRune(r)
			if dot {
				return l.error(MalformedNumber)
			}
			dot = true
		default:
			l.unreadRune()
			return nil
		}
	}
}

func (l *lexer) error(kind ErrorKind) error {
	return &LexError{
		Text:      l.buf.String(),
		Malformed: kind,
		Col:       l.rune,
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
