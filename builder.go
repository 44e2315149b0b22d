package calculator

import (
	"strconv"
	"strings"
)

// ErrorDisplay is the display after an expression fails to evaluate.
const ErrorDisplay = "Error"

// State is the state of a calculator: the expression being typed, what the
// display shows, and the history of evaluations. Transitions are methods with
// value receivers which return the next state; a State is never modified in
// place, and states never share history storage with each other.
type State struct {
	// Expr is the expression typed so far.
	Expr string `json:"expression"`
	// Display is Expr, "0" if Expr is empty, or ErrorDisplay.
	Display string `json:"display"`
	// History is the list of evaluations, newest first.
	History History `json:"history"`
	// Err is the reason the display shows ErrorDisplay, if it does.
	Err error `json:"-"`
}

// NewState returns an empty calculator.
func NewState() State {
	return State{Display: "0"}
}

// IsError reports whether the display shows ErrorDisplay.
func (s State) IsError() bool {
	return s.Display == ErrorDisplay
}

// Apply returns the state after pressing k. Keys which are not on the
// calculator do nothing.
func (s State) Apply(k Key) State {
	switch k {
	case KeyClear:
		return s.Clear()
	case KeyBackspace:
		return s.Backspace()
	case KeySign:
		return s.ToggleSign()
	case KeyPercent:
		return s.Percent()
	case KeyEquals:
		return s.Evaluate()
	}
	return s.Push(k)
}

// ApplyAll applies keys in order.
func (s State) ApplyAll(keys ...Key) State {
	for _, k := range keys {
		s = s.Apply(k)
	}
	return s
}

// Push appends a digit, decimal point, or operator to the expression. Keys
// that would make the expression invalid are dropped or repaired:
//
//   - + × ÷ cannot start an expression;
//   - . starts a new number as "0.", and a second . in a number is dropped;
//   - - after + × ÷ is a sign, so "5×-" is allowed;
//   - any other operator replaces the operator or . before it, and a
//     sign before it as well, so "5+-" then × is "5×".
func (s State) Push(k Key) State {
	if !k.IsDigit() && !k.IsOperator() && k != KeyDot {
		return s
	}
	s = s.clearError()
	e := []rune(s.Expr)
	if len(e) == 0 && k.IsOperator() && k != KeySub {
		return s
	}
	if k == KeyDot {
		if len(e) == 0 || isOp(e[len(e)-1]) {
			return s.set(s.Expr + "0.")
		}
		start, _ := trailingNumber(e)
		if strings.ContainsRune(string(e[start:]), '.') {
			return s
		}
		return s.set(s.Expr + ".")
	}
	if len(e) > 0 && k.IsOperator() {
		last := e[len(e)-1]
		if last == '.' || isOp(last) {
			if last == '.' && k == KeySub {
				return s
			}
			if k == KeySub && isBinaryOp(last) {
				return s.set(s.Expr + "-")
			}
			if k != KeySub && isSign(e, len(e)-1) {
				e = e[:len(e)-1]
				if len(e) == 0 {
					return s.set("")
				}
			}
			e = e[:len(e)-1]
			if len(e) == 0 && k != KeySub {
				return s.set("")
			}
			return s.set(string(e) + k.String())
		}
	}
	return s.set(s.Expr + k.String())
}

// ToggleSign negates the last number in the expression, or starts a negative
// number if the expression is empty or ends in + × ÷. Only one level of sign
// is tracked: toggling a negative number removes its minus.
func (s State) ToggleSign() State {
	s = s.clearError()
	e := []rune(s.Expr)
	if len(e) == 0 {
		return s.set("-")
	}
	last := e[len(e)-1]
	if isOp(last) || last == '.' {
		if isBinaryOp(last) {
			return s.set(s.Expr + "-")
		}
		return s
	}
	start, signed := trailingNumber(e)
	if signed {
		return s.set(string(e[:start-1]) + string(e[start:]))
	}
	return s.set(string(e[:start]) + "-" + string(e[start:]))
}

// Percent divides the last number in the expression by 100. It does nothing
// if the display shows an error or the expression doesn't end in a number.
func (s State) Percent() State {
	if s.IsError() || strings.TrimSpace(s.Expr) == "" {
		return s
	}
	e := []rune(s.Expr)
	last := e[len(e)-1]
	if isOp(last) || last == '.' {
		return s
	}
	start, signed := trailingNumber(e)
	if signed {
		start--
	}
	x, err := strconv.ParseFloat(string(e[start:]), 64)
	if err != nil {
		return s
	}
	return s.set(string(e[:start]) + Format(x/100))
}

// Clear empties the expression and display. History is kept.
func (s State) Clear() State {
	return State{Display: "0", History: s.History}
}

// Backspace removes the last rune of the expression. With an empty
// expression, it does nothing, even if the display shows an error.
func (s State) Backspace() State {
	e := []rune(s.Expr)
	if len(e) == 0 {
		return s
	}
	return s.set(string(e[:len(e)-1]))
}

// Evaluate evaluates the expression, ignoring any trailing operators or
// decimal point. On success, the result replaces the expression and is added
// to the history. On failure, including infinite and NaN results, the
// display shows ErrorDisplay, Err holds the reason, and the expression is
// kept.
func (s State) Evaluate() State {
	raw := strings.TrimRightFunc(s.Expr, func(r rune) bool {
		return isOp(r) || r == '.'
	})
	if strings.TrimSpace(raw) == "" {
		return s
	}
	r, err := Eval(raw)
	if err != nil {
		s.Display = ErrorDisplay
		s.Err = err
		return s
	}
	res := Format(r)
	s = s.set(res)
	s.History = s.History.Push(Entry{Expr: raw, Result: res})
	return s
}

// set replaces the expression and shows it.
func (s State) set(expr string) State {
	s.Expr = expr
	s.Display = expr
	if expr == "" {
		s.Display = "0"
	}
	s.Err = nil
	return s
}

// clearError resets the expression if the display shows an error.
func (s State) clearError() State {
	if s.IsError() {
		return s.set("")
	}
	return s
}

// trailingNumber scans backward over the digits and decimal points at the end
// of e. start is the index of the first of them, or len(e) if there are none.
// signed reports whether e[start-1] is a sign rather than a subtraction.
func trailingNumber(e []rune) (start int, signed bool) {
	i := len(e) - 1
	for i >= 0 && (isDigit(e[i]) || e[i] == '.') {
		i--
	}
	return i + 1, i >= 0 && isSign(e, i)
}

// isSign reports whether e[i] is a minus which begins a number, i.e. it is at
// the start or follows another operator.
func isSign(e []rune, i int) bool {
	return e[i] == '-' && (i == 0 || isOp(e[i-1]))
}

// isOp reports whether r is an operator in either display or ASCII form.
func isOp(r rune) bool {
	return r == '-' || isBinaryOp(r)
}

// isBinaryOp reports whether r is an operator which cannot be a sign.
func isBinaryOp(r rune) bool {
	switch r {
	case '+', '*', '/', Times, Divide:
		return true
	}
	return false
}
