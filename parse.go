package calculator

import (
	"strings"
)

// Expr = Num { Op Num }
// Num = ['-'] digits ['.' digits] | ['-'] '.' digits | ['-'] digits '.'
// Op = '+' | '-' | '*' | '/' | '×' | '÷'

// Expr is a parsed expression, held in postfix order.
type Expr struct {
	// rpn is the expression's tokens in postfix order.
	rpn []Token
}

// Parse parses an expression so that it can be evaluated. The source may use
// × and ÷ and contain whitespace. Parse only reports lexical errors; an
// expression with missing operands, including the empty expression, parses
// successfully and fails to evaluate.
func Parse(src string) (*Expr, error) {
	toks, err := Tokenize(Normalize(src))
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: toRPN(toks)}, nil
}

// Tokens returns a copy of the expression's tokens in postfix order.
func (e *Expr) Tokens() []Token {
	return append([]Token(nil), e.rpn...)
}

// String formats the expression in postfix notation with spaces between
// tokens.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// toRPN reorders infix tokens into postfix order using the shunting-yard
// algorithm. All operators are left-associative, so an incoming operator
// first pops every held operator that binds at least as tightly.
func toRPN(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	var held []Token
	for _, tok := range toks {
		if tok.Kind != TokenOp {
			out = append(out, tok)
			continue
		}
		p := prec(tok.Text)
		for len(held) > 0 && prec(held[len(held)-1].Text) >= p {
			out = append(out, held[len(held)-1])
			held = held[:len(held)-1]
		}
		held = append(held, tok)
	}
	for i := len(held) - 1; i >= 0; i-- {
		out = append(out, held[i])
	}
	return out
}

// prec returns the binding power of an operator.
func prec(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		return 0
	}
}
