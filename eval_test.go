package calculator_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/zephyrtronium/calculator"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"neg", "-1", -1},
		{"decimal", "1.5+.25", 1.75},
		{"trailing-dot", "5.*2", 10},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "8/4/2", 1},
		{"quarter", "1/4", 0.25},
		{"prec", "2+3*4", 14},
		{"prec-alt", "2+3×4", 14},
		{"prec-mixed", "10-4/2*3", 4},
		{"desc", "2*3+4", 10},
		{"unary-mul", "3*-2", -6},
		{"unary-sub", "5--3", 8},
		{"unary-both", "-2×-3", 6},
		{"spaces", " 1 + 2 ", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calculator.Eval(c.src)
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("wrong result for %q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	big := "1" + strings.Repeat("0", 300)
	cases := []struct {
		name string
		src  string
		kind calculator.ErrorKind
	}{
		{"empty", "", calculator.MalformedExpression},
		{"op", "-", calculator.MalformedExpression},
		{"trailing", "1+", calculator.MalformedExpression},
		{"leading", "+1", calculator.MalformedExpression},
		{"dots", "1.2.3", calculator.MalformedNumber},
		{"dot", ".", calculator.MalformedNumber},
		{"neg-dot", "-.", calculator.MalformedNumber},
		{"dot-add", ".+1", calculator.MalformedNumber},
		{"pow", "2^3", calculator.InvalidCharacter},
		{"letters", "abc", calculator.InvalidCharacter},
		{"div0", "10÷0", calculator.NonFiniteResult},
		{"neg-div0", "-1/0", calculator.NonFiniteResult},
		{"zero-zero", "0/0", calculator.NonFiniteResult},
		{"overflow-literal", big + big, calculator.NonFiniteResult},
		{"overflow-mul", big + "*" + big, calculator.NonFiniteResult},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calculator.Eval(c.src)
			if err == nil {
				t.Fatalf("evaluating %q gave no error and result %g", c.src, r)
			}
			if k := calculator.KindOf(err); k != c.kind {
				t.Errorf("evaluating %q: want %v, got %v (%v)", c.src, c.kind, k, err)
			}
		})
	}
}

func TestEvalNonFinite(t *testing.T) {
	r, err := calculator.Eval("1÷0")
	var nf *calculator.NonFiniteError
	if !errors.As(err, &nf) {
		t.Fatalf("want *NonFiniteError, got %v", err)
	}
	if !math.IsInf(r, 1) || !math.IsInf(nf.Value, 1) {
		t.Errorf("want +Inf, got %g and %g", r, nf.Value)
	}
	// The parsed expression itself follows IEEE-754 without complaint.
	a, err := calculator.Parse("0÷0")
	if err != nil {
		t.Fatal(err)
	}
	r, err = a.Eval()
	if err != nil {
		t.Errorf("Expr.Eval gave error %v", err)
	}
	if !math.IsNaN(r) {
		t.Errorf("want NaN, got %g", r)
	}
}

func TestEvalErrorPos(t *testing.T) {
	cases := []struct {
		src string
		pos int
	}{
		{"1+2+", 4},
		{"12$", 3},
		{"1+2.3.4", 6},
		{"1+.", 3},
	}
	for _, c := range cases {
		_, err := calculator.Eval(c.src)
		var ierr calculator.InputError
		if !errors.As(err, &ierr) {
			t.Errorf("evaluating %q: %#v is not an InputError", c.src, err)
			continue
		}
		if ierr.Pos() != c.pos {
			t.Errorf("evaluating %q: want error at %d, got %d (%v)", c.src, c.pos, ierr.Pos(), ierr)
		}
	}
}

func TestFormatReevaluates(t *testing.T) {
	ops := []string{"+", "-", "×", "÷"}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		var b strings.Builder
		n := rng.Intn(5) + 1
		for j := 0; j < n; j++ {
			if j > 0 {
				b.WriteString(ops[rng.Intn(len(ops))])
			}
			if rng.Intn(4) == 0 {
				b.WriteByte('-')
			}
			b.WriteString(strconv.FormatFloat(rng.Float64()*1000, 'f', rng.Intn(4), 64))
		}
		src := b.String()
		r, err := calculator.Eval(src)
		if err != nil {
			if calculator.KindOf(err) == calculator.NonFiniteResult {
				continue
			}
			t.Fatalf("evaluating %q: %v", src, err)
		}
		s := calculator.Format(r)
		q, err := calculator.Eval(s)
		if err != nil {
			t.Fatalf("evaluating formatted %q from %q: %v", s, src, err)
		}
		if q != r {
			t.Errorf("%q = %g formats as %q which evaluates to %g", src, r, s, q)
		}
	}
}

func BenchmarkEval(b *testing.B) {
	b.Run("parse", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			calculator.Eval("1.5+2×3-4÷-5")
		}
	})
	b.Run("parsed", func(b *testing.B) {
		b.ReportAllocs()
		a, err := calculator.Parse("1.5+2×3-4÷-5")
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < b.N; i++ {
			a.Eval()
		}
	})
}

func ExampleEval() {
	r, err := calculator.Eval("2+3×4")
	fmt.Println(r, err)
	r, err = calculator.Eval("10÷0")
	fmt.Println(r, err)

	// Output:
	// 14 <nil>
	// +Inf result is not finite: +Inf
}

func ExampleParse() {
	a, _ := calculator.Parse("1 + 2×3 - 4÷-2")
	fmt.Println(a)
	r, _ := a.Eval()
	fmt.Println(r)

	// Output:
	// 1 2 3 * + 4 -2 / -
	// 9
}
