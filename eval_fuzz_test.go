package calculator_test

import (
	"testing"

	"github.com/zephyrtronium/calculator"
)

func FuzzEval(f *testing.F) {
	f.Add("1")
	f.Add("2+3×4")
	f.Add("3*-2")
	f.Add("1÷0")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := calculator.Eval(s)
		if err != nil {
			if calculator.KindOf(err) == calculator.KindNone {
				t.Errorf("evaluating %q: error %v has no kind", s, err)
			}
			return
		}
		q, err := calculator.Eval(calculator.Format(r))
		if err != nil || q != r {
			t.Errorf("evaluating %q: %g formats as %q which evaluates to %g, %v", s, r, calculator.Format(r), q, err)
		}
	})
}
