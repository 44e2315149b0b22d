package calculator_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/calculator"
)

func TestFormat(t *testing.T) {
	// Use variables so that the compiler doesn't fold constants exactly.
	a, b := 0.1, 0.2
	cases := []struct {
		name string
		x    float64
		want string
	}{
		{"integral", 2.0, "2"},
		{"trailing-zero", 2.50, "2.5"},
		{"hundred", 100, "100"},
		{"zero", 0, "0"},
		{"neg-zero", math.Copysign(0, -1), "0"},
		{"negative", -0.5, "-0.5"},
		{"fp-error", a + b, "0.30000000000000004"},
		{"large", 1e21, "1000000000000000000000"},
		{"small", 1e-7, "0.0000001"},
		{"percent", 50.0 / 100, "0.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := calculator.Format(c.x); got != c.want {
				t.Errorf("Format(%g): want %q, got %q", c.x, c.want, got)
			}
		})
	}
}
