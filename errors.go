package parboiled

import (
	"fmt"
	"strings"
)

// RuleFrame identifies one grammar rule that was active at the moment a
// diagnostic pass aborted.
type RuleFrame struct {
	Name string
}

// RuleStack is a root-first chain of active rule frames: one
// self-consistent explanation for why matching stalled at an offset.
type RuleStack []RuleFrame

// String renders the chain root to leaf.
func (s RuleStack) String() string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return strings.Join(names, " / ")
}

// ParseError is the expected, recoverable outcome of malformed input.
// Every RuleStack refers to the same Position: the deepest offset the
// failing run reached.  Stacks appear in the order the grammar tried
// the alternatives.
type ParseError struct {
	Position Position
	Stacks   []RuleStack
}

func (e *ParseError) Error() string {
	exp := e.Expectations()
	if len(exp) == 0 {
		return fmt.Sprintf("parse error at %s", e.Position)
	}
	return fmt.Sprintf("parse error at %s: expected %s", e.Position, strings.Join(exp, " or "))
}

// Expectations returns the distinct innermost rule names across all
// stacks, insertion order preserved.
func (e *ParseError) Expectations() []string {
	var out []string
	seen := map[string]bool{}
	for _, stack := range e.Stacks {
		if len(stack) == 0 {
			continue
		}
		name := stack[len(stack)-1].Name
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// ContractViolationError marks a programming error in rule
// construction, like a final value stack of the wrong arity.  It is
// delivered by panic and must never be folded into a ParseError.
type ContractViolationError struct {
	Msg string
}

func (e *ContractViolationError) Error() string {
	return "parboiled: " + e.Msg
}

func violatef(format string, args ...any) {
	panic(&ContractViolationError{Msg: fmt.Sprintf(format, args...)})
}

// ruleAbort short-circuits a diagnostic pass once it has seen one
// mismatch beyond its budget.  It carries the frames pushed by rules
// unwinding above the abort point, innermost first, and is recovered
// exclusively inside the error-stack builder.  The owner field keeps an
// abort raised against one parser from being swallowed by another.
type ruleAbort struct {
	owner  *Parser
	frames []RuleFrame
}
