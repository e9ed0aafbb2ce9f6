package parboiled

// Rule is the opaque matcher the engine drives.  A rule reports whether
// it matched; its only side effects go through the Parser it receives:
// advancing the cursor, editing the value stack and registering
// mismatches.  Grammars are built by composing rules as ordinary
// values.
type Rule func(p *Parser) bool

// Named labels rule with a frame that identifies it in diagnostics.
// While an abort signal unwinds during a diagnostic pass, every Named
// rule on the call stack contributes its frame; outside of that the
// wrapper costs one deferred call.
func Named(name string, rule Rule) Rule {
	frame := RuleFrame{Name: name}
	return func(p *Parser) bool {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if abort, ok := r.(*ruleAbort); ok && abort.owner == p {
				abort.frames = append(abort.frames, frame)
			}
			panic(r)
		}()
		return rule(p)
	}
}

// Ch matches the single character r.
func Ch(r rune) Rule {
	return func(p *Parser) bool { return p.MatchChar(r) }
}

// ChRange matches one character within [lo, hi].
func ChRange(lo, hi rune) Rule {
	return func(p *Parser) bool { return p.MatchRange(lo, hi) }
}

// Str matches the literal s.
func Str(s string) Rule {
	return func(p *Parser) bool { return p.MatchString(s) }
}

// AnyChar matches any single character.
func AnyChar() Rule {
	return func(p *Parser) bool { return p.MatchAny() }
}

// EOI matches only at the end of the input.
func EOI() Rule {
	return func(p *Parser) bool { return p.MatchEOI() }
}

// Sequence matches every rule in order.  It does not restore state on
// failure; the enclosing choice or repetition owns the backtracking.
func Sequence(rules ...Rule) Rule {
	return func(p *Parser) bool {
		for _, rule := range rules {
			if !rule(p) {
				return false
			}
		}
		return true
	}
}

// FirstOf is the PEG ordered choice: alternatives are tried left to
// right and the first match wins.  The parser state rolls back before
// each attempt.
func FirstOf(rules ...Rule) Rule {
	return func(p *Parser) bool {
		m := p.Mark()
		for _, rule := range rules {
			if rule(p) {
				return true
			}
			p.Reset(m)
		}
		return false
	}
}

// Optional matches rule if it can and succeeds either way.
func Optional(rule Rule) Rule {
	return func(p *Parser) bool {
		m := p.Mark()
		if !rule(p) {
			p.Reset(m)
		}
		return true
	}
}

// ZeroOrMore matches rule until it fails, backtracking the last failed
// attempt.  An iteration that matches without consuming input or
// pushing values stops the loop, otherwise it would never terminate.
func ZeroOrMore(rule Rule) Rule {
	return func(p *Parser) bool {
		for {
			m := p.Mark()
			if !rule(p) {
				p.Reset(m)
				return true
			}
			if p.Mark() == m {
				return true
			}
		}
	}
}

// OneOrMore matches rule once, then as many more times as it can.
func OneOrMore(rule Rule) Rule {
	return Sequence(rule, ZeroOrMore(rule))
}

// And is the positive lookahead: it succeeds when rule matches but
// never consumes input.  Mismatches inside the lookahead stay out of
// the diagnostic bookkeeping.
func And(rule Rule) Rule {
	return func(p *Parser) bool {
		m := p.Mark()
		p.predicates++
		ok := rule(p)
		p.predicates--
		p.Reset(m)
		return ok
	}
}

// Not is the negative lookahead: it succeeds when rule does not match,
// consuming nothing.
func Not(rule Rule) Rule {
	return func(p *Parser) bool {
		m := p.Mark()
		p.predicates++
		ok := rule(p)
		p.predicates--
		p.Reset(m)
		return !ok
	}
}

// Capture matches rule and pushes the exact text it consumed.
func Capture(rule Rule) Rule {
	return func(p *Parser) bool {
		start := p.Cursor()
		if !rule(p) {
			return false
		}
		p.Stack().Push(p.Input().Slice(start, p.Cursor()))
		return true
	}
}

// Push pushes a fixed value without consuming input.
func Push(v any) Rule {
	return func(p *Parser) bool {
		p.Stack().Push(v)
		return true
	}
}

// Action runs fn against the value stack.  Returning false fails the
// rule like any other mismatch-free failure, so the enclosing choice
// backtracks over it.
func Action(fn func(s *ValueStack) bool) Rule {
	return func(p *Parser) bool {
		return fn(p.Stack())
	}
}
