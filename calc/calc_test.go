package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parboiled "github.com/satabin/parboiled2"
)

func TestEval(t *testing.T) {
	tests := []struct {
		expr     string
		expected int64
	}{
		{"1", 1},
		{"42", 42},
		{"1+2", 3},
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"10-4-3", 3},
		{"100/5/2", 10},
		{"2*(3+4)", 14},
		{"((7))", 7},
		{"2*3+4", 10},
	}
	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			v, err := Eval(test.expr)
			require.NoError(t, err)
			assert.Equal(t, test.expected, v)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	t.Run("dangling operator", func(t *testing.T) {
		_, err := Eval("1+")

		var perr *parboiled.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 2, perr.Position.Offset)
		assert.Equal(t, 1, perr.Position.Line)
		assert.Equal(t, 3, perr.Position.Column)
		require.Len(t, perr.Stacks, 2)
		assert.Equal(t, "number", perr.Stacks[0][len(perr.Stacks[0])-1].Name)
		assert.Equal(t, "factor", perr.Stacks[1][len(perr.Stacks[1])-1].Name)
	})

	t.Run("operator instead of operand", func(t *testing.T) {
		_, err := Eval("1+*")

		var perr *parboiled.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 2, perr.Position.Offset)
		assert.NotEmpty(t, perr.Stacks)
	})

	t.Run("unbalanced parenthesis", func(t *testing.T) {
		_, err := Eval("(1+2")
		require.Error(t, err)
		var perr *parboiled.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 4, perr.Position.Offset)
	})

	t.Run("trailing garbage", func(t *testing.T) {
		_, err := Eval("1+2x")

		var perr *parboiled.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 3, perr.Position.Offset)
	})

	t.Run("division by zero fails the parse", func(t *testing.T) {
		_, err := Eval("10/0")
		assert.Error(t, err)
	})

	t.Run("number out of range fails the parse", func(t *testing.T) {
		_, err := Eval("99999999999999999999")
		assert.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Eval("")

		var perr *parboiled.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 1, perr.Position.Line)
		assert.Equal(t, 1, perr.Position.Column)
	})

	t.Run("formatted diagnostic points at the failure", func(t *testing.T) {
		input := parboiled.NewTextInput("1+*")
		_, err := Parse(input)

		var perr *parboiled.ParseError
		require.ErrorAs(t, err, &perr)
		out := parboiled.FormatError(perr, input)
		assert.Contains(t, out, "1+*\n  ^\n")
		assert.Contains(t, out, "expected one of:")
	})

	t.Run("same expression fails identically every time", func(t *testing.T) {
		_, err1 := Eval("2*(3+)")
		_, err2 := Eval("2*(3+)")
		require.Error(t, err1)
		assert.Equal(t, err1, err2)
	})
}

func TestErrorsDoNotPanic(t *testing.T) {
	// The abort signal used by the diagnostic passes must never
	// escape to the caller.
	exprs := []string{"", "+", "1+", "((", "1+2)", "abc", "1//2"}
	for _, expr := range exprs {
		_, err := Eval(expr)
		assert.Error(t, err, expr)
	}
	var fault *parboiled.ContractViolationError
	_, err := Eval(")")
	require.Error(t, err)
	assert.False(t, errors.As(err, &fault))
}
