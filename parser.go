package parboiled

// EndOfInput is the sentinel Peek and Advance return once the cursor
// has consumed the whole input.
const EndOfInput rune = -1

// defaultMaxRuleStacks bounds how many diagnostic passes a failing run
// may spend collecting alternative rule stacks.
const defaultMaxRuleStacks = 24

// Parser drives repeated, cursor-based attempts to match an input
// against a rule.  It owns the cursor, the value stack and the
// mismatch bookkeeping used to rebuild a diagnostic after a failed
// match.
//
// A Parser is a single mutable unit of state with exactly one run in
// flight at a time; it is not safe for concurrent use.  Construction
// is cheap, so callers that parse in parallel create one Parser per
// goroutine.
type Parser struct {
	input Input
	stack *ValueStack

	cursor    int
	maxCursor int

	// Diagnostic pass state.  collectIndex is -1 outside the
	// error-stack builder; during pass k it holds k, and the pass
	// aborts on the first mismatch at errorOffset beyond the k
	// already-captured ones.
	collectIndex int
	errorOffset  int
	mismatches   int

	// predicates counts the nesting depth of And/Not lookaheads.
	// Mismatches inside a predicate are invisible to diagnostics.
	predicates int

	maxRuleStacks int
}

func NewParser(input Input) *Parser {
	return &Parser{
		input:         input,
		stack:         &ValueStack{},
		collectIndex:  -1,
		maxRuleStacks: defaultMaxRuleStacks,
	}
}

func NewParserString(text string) *Parser {
	return NewParser(NewTextInput(text))
}

// SetMaxRuleStacks caps the number of alternative rule stacks collected
// for a single ParseError.  The default of 24 keeps a pathological rule
// that keeps mismatching at one offset from re-parsing forever.
func (p *Parser) SetMaxRuleStacks(n int) {
	p.maxRuleStacks = n
}

func (p *Parser) Input() Input {
	return p.input
}

func (p *Parser) Stack() *ValueStack {
	return p.stack
}

// Cursor returns the current input offset.  Rules use it to slice
// already-consumed input.
func (p *Parser) Cursor() int {
	return p.cursor
}

// Mark is a snapshot of the cursor offset and the value-stack depth,
// captured and restored as one unit so a partially matched rule can
// roll back both without desynchronizing them.
type Mark struct {
	cursor int
	depth  int
}

func (p *Parser) Mark() Mark {
	return Mark{cursor: p.cursor, depth: p.stack.Size()}
}

// Reset restores the cursor and the value-stack depth captured in m,
// discarding any input consumed and values pushed since.  Restoring
// the same Mark again is a no-op.
func (p *Parser) Reset(m Mark) {
	p.cursor = m.cursor
	p.stack.Truncate(m.depth)
}

// Peek returns the character under the cursor without consuming it, or
// EndOfInput when the input is exhausted.
func (p *Parser) Peek() rune {
	if p.cursor >= p.input.Len() {
		return EndOfInput
	}
	return p.input.CharAt(p.cursor)
}

// Advance consumes and returns the character under the cursor, or
// returns EndOfInput without moving.  Outside diagnostic passes it
// keeps the high-water mark in step with the cursor; during a pass the
// failure offset is already frozen.
func (p *Parser) Advance() rune {
	c := p.Peek()
	if c == EndOfInput {
		return EndOfInput
	}
	p.cursor++
	if p.collectIndex < 0 && p.cursor > p.maxCursor {
		p.maxCursor = p.cursor
	}
	return c
}

// RegisterMismatch records a failed character comparison at the cursor.
// It always returns false so a matcher can register and fail in a
// single return.
//
// Outside diagnostic passes it only bumps the high-water mark.  During
// pass k, mismatches at the frozen error offset are counted: the first
// k belong to stacks captured by earlier passes and flow through
// untouched, and the k+1st aborts the pass, carrying out the rule
// frames pushed while the abort unwinds.
func (p *Parser) RegisterMismatch() bool {
	if p.predicates > 0 {
		return false
	}
	if p.collectIndex < 0 {
		if p.cursor > p.maxCursor {
			p.maxCursor = p.cursor
		}
		return false
	}
	if p.cursor != p.errorOffset {
		return false
	}
	p.mismatches++
	if p.mismatches > p.collectIndex {
		panic(&ruleAbort{owner: p})
	}
	return false
}

// MatchChar consumes r or registers a mismatch.
func (p *Parser) MatchChar(r rune) bool {
	if p.Peek() == r {
		p.Advance()
		return true
	}
	return p.RegisterMismatch()
}

// MatchRange consumes the next character if it falls within [lo, hi].
func (p *Parser) MatchRange(lo, hi rune) bool {
	if c := p.Peek(); c != EndOfInput && c >= lo && c <= hi {
		p.Advance()
		return true
	}
	return p.RegisterMismatch()
}

// MatchAny consumes any character, failing only at end of input.
func (p *Parser) MatchAny() bool {
	if p.Peek() == EndOfInput {
		return p.RegisterMismatch()
	}
	p.Advance()
	return true
}

// MatchString consumes s character by character.  On a mismatch the
// cursor rolls back to where the literal started; the mismatch itself
// is registered at the exact character that failed.
func (p *Parser) MatchString(s string) bool {
	m := p.Mark()
	for _, r := range s {
		if !p.MatchChar(r) {
			p.Reset(m)
			return false
		}
	}
	return true
}

// MatchEOI succeeds only when the whole input has been consumed.
func (p *Parser) MatchEOI() bool {
	if p.cursor == p.input.Len() {
		return true
	}
	return p.RegisterMismatch()
}

// Run resets the parser and matches rule once.  On success it returns
// the value stack contents, bottom first, and no diagnostic work is
// ever performed.  On failure it re-parses the same input to rebuild
// the alternative rule stacks active at the deepest offset reached and
// returns a *ParseError.
func (p *Parser) Run(rule Rule) ([]any, error) {
	p.resetRun(-1)
	if rule(p) {
		return p.stack.Values(), nil
	}
	return nil, p.buildParseError(rule)
}

// RunValue runs rule and requires the final stack to hold exactly one
// value.  Any other arity is a rule construction bug and panics with
// *ContractViolationError.
func (p *Parser) RunValue(rule Rule) (any, error) {
	values, err := p.Run(rule)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		violatef("expected exactly one result value, the stack holds %d", len(values))
	}
	return values[0], nil
}

// resetRun puts the parser into a clean state for one full pass over
// the input.  The high-water mark survives into diagnostic passes,
// where it is the frozen failure offset.
func (p *Parser) resetRun(collectIndex int) {
	p.cursor = 0
	p.stack.Clear()
	p.mismatches = 0
	p.predicates = 0
	p.collectIndex = collectIndex
	if collectIndex < 0 {
		p.maxCursor = 0
	}
}

// buildParseError is the cold path, entered only after the plain run
// failed.  Pass k re-parses the input and aborts at the k+1st mismatch
// at the frozen failure offset, yielding one new alternative rule
// stack per pass in the same left-to-right order the grammar tried its
// alternatives.  A pass that finishes without aborting means every
// alternative at that offset has been captured.
func (p *Parser) buildParseError(rule Rule) *ParseError {
	p.errorOffset = p.maxCursor
	var stacks []RuleStack
	for k := 0; k < p.maxRuleStacks; k++ {
		frames, aborted := p.collectRuleStack(rule, k)
		if !aborted {
			break
		}
		// Frames accumulate innermost first while the abort
		// unwinds; the reported order is root first.
		for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
			frames[i], frames[j] = frames[j], frames[i]
		}
		// Two alternatives can fail through the same chain of
		// named rules; the error keeps the distinct explanations
		// only, insertion order preserved.
		stack := RuleStack(frames)
		duplicate := false
		for _, seen := range stacks {
			if sameStack(seen, stack) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			stacks = append(stacks, stack)
		}
	}
	p.collectIndex = -1
	return &ParseError{
		Position: PositionAt(p.input, p.errorOffset),
		Stacks:   stacks,
	}
}

func sameStack(a, b RuleStack) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// collectRuleStack runs one diagnostic pass.  The abort signal is
// recovered here and nowhere else; anything else that panics keeps
// propagating.
func (p *Parser) collectRuleStack(rule Rule, k int) (frames []RuleFrame, aborted bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		abort, ok := r.(*ruleAbort)
		if !ok || abort.owner != p {
			panic(r)
		}
		frames, aborted = abort.frames, true
	}()
	p.resetRun(k)
	rule(p)
	return nil, false
}
