package parboiled

import "fmt"

// Position labels an input offset with 1-based line and column numbers.
// It is always derived from an offset, never stored on its own.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// PositionAt resolves offset into a Position by scanning backward and
// counting the newlines crossed.  The scan is linear in the offset,
// which is fine since it runs exactly once, on the failure path.
//
// An offset at or past the end of input is clamped to Len() and
// resolved like any mid-input offset, so the reported column lands one
// past the last character of the final line.
func PositionAt(in Input, offset int) Position {
	if offset > in.Len() {
		offset = in.Len()
	}
	if offset < 0 {
		offset = 0
	}
	line := 1
	lineStart := 0
	for i := offset - 1; i >= 0; i-- {
		if in.CharAt(i) != '\n' {
			continue
		}
		if line == 1 {
			lineStart = i + 1
		}
		line++
	}
	return Position{
		Offset: offset,
		Line:   line,
		Column: offset - lineStart + 1,
	}
}
