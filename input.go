package parboiled

// Input is a fully materialized, random-access character source.  The
// engine never mutates it, so one Input may back any number of parsers.
// Offsets and lengths are in runes, not bytes.
type Input interface {
	// Len returns the number of characters in the input.
	Len() int

	// CharAt returns the character at offset.  Valid for
	// 0 <= offset < Len().
	CharAt(offset int) rune

	// Slice returns the text between start (inclusive) and end
	// (exclusive).
	Slice(start, end int) string

	// Line returns the text of the 1-based lineNumber, without the
	// trailing newline.  Returns "" for lines past the end of input.
	Line(lineNumber int) string
}

// TextInput holds an in-memory input decoded to runes up front, so
// CharAt is O(1) even for multi-byte text.
type TextInput struct {
	runes []rune
}

func NewTextInput(text string) *TextInput {
	return &TextInput{runes: []rune(text)}
}

func (in *TextInput) Len() int {
	return len(in.runes)
}

func (in *TextInput) CharAt(offset int) rune {
	return in.runes[offset]
}

func (in *TextInput) Slice(start, end int) string {
	return string(in.runes[start:end])
}

func (in *TextInput) Line(lineNumber int) string {
	line := 1
	start := 0
	for i, r := range in.runes {
		if r != '\n' {
			continue
		}
		if line == lineNumber {
			return string(in.runes[start:i])
		}
		line++
		start = i + 1
	}
	if line == lineNumber {
		return string(in.runes[start:])
	}
	return ""
}
