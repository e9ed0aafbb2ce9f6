package parboiled

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders a ParseError for humans: a headline with the
// failure position, the offending source line with a caret under the
// failing column, and one line per alternative rule stack.
type Formatter struct {
	// Color enables ANSI styling for terminal output.
	Color bool

	// Messages maps rule names to custom expectation messages,
	// overriding the innermost rule name when a stack is rendered.
	Messages map[string]string
}

// FormatError renders err with the default plain formatter.
func FormatError(err *ParseError, input Input) string {
	return (&Formatter{}).Format(err, input)
}

func (f *Formatter) Format(err *ParseError, input Input) string {
	paint := func(s string) string { return s }
	if f.Color {
		sprint := color.New(color.FgRed, color.Bold).SprintFunc()
		paint = func(s string) string { return sprint(s) }
	}

	pos := err.Position
	var b strings.Builder
	if pos.Offset >= input.Len() {
		fmt.Fprintf(&b, "%s at end of input (%s):\n", paint("parse error"), pos)
	} else {
		fmt.Fprintf(&b, "%s at %s:\n", paint("parse error"), pos)
	}

	line := input.Line(pos.Line)
	b.WriteString(line)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", pos.Column-1))
	b.WriteString(paint("^"))
	b.WriteByte('\n')

	if len(err.Stacks) == 0 {
		return b.String()
	}
	b.WriteString("expected one of:\n")
	for _, stack := range err.Stacks {
		fmt.Fprintf(&b, "  %s\n", f.describe(stack))
	}
	return b.String()
}

// describe renders one stack root to leaf, swapping in the custom
// message for the innermost rule when one is configured.
func (f *Formatter) describe(stack RuleStack) string {
	if len(stack) == 0 {
		return "(unnamed rule)"
	}
	names := make([]string, len(stack))
	for i, frame := range stack {
		names[i] = frame.Name
	}
	leaf := len(names) - 1
	if msg, ok := f.Messages[names[leaf]]; ok {
		names[leaf] = msg
	}
	return strings.Join(names, " / ")
}
