// Package calculator implements the engine behind a pocket calculator.
//
// There are two halves. Eval and Parse handle complete expressions over the
// four operators + - × ÷ (or * /) with decimal numbers and unary minus, e.g.
// "2+3×-4". Multiplication and division bind tighter than addition and
// subtraction, and everything is left-associative. There are no parentheses,
// variables, or functions; arithmetic is plain float64.
//
// State is the other half: the expression a user is typing one key at a
// time. Each key press is a pure transition from one State to the next, and
// the transitions refuse or repair keys that would make the expression
// unparseable, like a second decimal point in a number or two binary
// operators in a row. Pressing = evaluates the expression, replaces it with
// the result, and records both in a short history.
package calculator
