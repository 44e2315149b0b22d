package calculator

import (
	"strconv"
	"strings"
)

// Format renders x as a minimal decimal string: the shortest representation
// that parses back to x, without an exponent, without trailing zeros after
// the decimal point, and without a trailing decimal point. Negative zero is
// "0". The result is always a valid number for Eval when x is finite.
//
// Format doesn't hide binary floating-point error, so 0.1+0.2 formats as
// 0.30000000000000004.
func Format(x float64) string {
	if x == 0 {
		return "0"
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
