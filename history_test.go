package calculator_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calculator"
)

func TestHistoryPush(t *testing.T) {
	var h calculator.History
	for i := 1; i <= 8; i++ {
		prev := h
		h = h.Push(calculator.Entry{Expr: strconv.Itoa(i), Result: strconv.Itoa(i)})
		require.LessOrEqual(t, len(h), calculator.HistorySize)
		assert.Equal(t, strconv.Itoa(i), h[0].Expr, "newest entry must be first")
		if len(prev) > 0 {
			// The previous history is untouched.
			assert.Equal(t, strconv.Itoa(i-1), prev[0].Expr)
		}
	}
	require.Len(t, h, calculator.HistorySize)
	assert.Equal(t, "8 = 8", h[0].String())
	assert.Equal(t, "4 = 4", h[4].String())
}
