package parboiled

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionAt(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		line   int
		column int
	}{
		{"start of input", "ab\ncd", 0, 1, 1},
		{"mid first line", "ab\ncd", 1, 1, 2},
		{"on the newline", "ab\ncd", 2, 1, 3},
		{"start of second line", "ab\ncd", 3, 2, 1},
		{"mid second line", "ab\ncd", 4, 2, 2},
		{"end of input", "ab\ncd", 5, 2, 3},
		{"empty input", "", 0, 1, 1},
		{"just past a trailing newline", "a\n", 2, 2, 1},
		{"single line end", "abc", 3, 1, 4},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pos := PositionAt(NewTextInput(test.input), test.offset)
			assert.Equal(t, test.line, pos.Line)
			assert.Equal(t, test.column, pos.Column)
			assert.Equal(t, test.offset, pos.Offset)
		})
	}

	t.Run("offset past the end is clamped", func(t *testing.T) {
		pos := PositionAt(NewTextInput("ab\ncd"), 99)
		assert.Equal(t, Position{Offset: 5, Line: 2, Column: 3}, pos)
	})
}

func TestTextInput(t *testing.T) {
	in := NewTextInput("ab\ncd")

	t.Run("length and characters", func(t *testing.T) {
		assert.Equal(t, 5, in.Len())
		assert.Equal(t, 'a', in.CharAt(0))
		assert.Equal(t, '\n', in.CharAt(2))
		assert.Equal(t, 'd', in.CharAt(4))
	})

	t.Run("slicing", func(t *testing.T) {
		assert.Equal(t, "ab", in.Slice(0, 2))
		assert.Equal(t, "cd", in.Slice(3, 5))
		assert.Equal(t, "", in.Slice(1, 1))
	})

	t.Run("line lookup", func(t *testing.T) {
		assert.Equal(t, "ab", in.Line(1))
		assert.Equal(t, "cd", in.Line(2))
		assert.Equal(t, "", in.Line(3))
	})

	t.Run("line lookup with trailing newline", func(t *testing.T) {
		in := NewTextInput("a\n")
		assert.Equal(t, "a", in.Line(1))
		assert.Equal(t, "", in.Line(2))
	})

	t.Run("multibyte text is addressed by rune", func(t *testing.T) {
		in := NewTextInput("héllo")
		assert.Equal(t, 5, in.Len())
		assert.Equal(t, 'é', in.CharAt(1))
		assert.Equal(t, "hé", in.Slice(0, 2))
	})
}
