package parboiled

// ValueStack holds the semantic values produced while a rule matches.
// Rules push and pop freely; the engine checkpoints the stack by depth
// through Mark/Reset, so a backtracked alternative leaves no values
// behind.
//
// Underflow and out-of-range truncation are rule construction bugs and
// panic with *ContractViolationError, they are never reported as parse
// errors.
type ValueStack struct {
	values []any
}

// Clear resets the stack to empty.  Called by the engine at the start
// of every run.
func (s *ValueStack) Clear() {
	s.values = s.values[:0]
}

// Size returns the number of values currently held.
func (s *ValueStack) Size() int {
	return len(s.values)
}

func (s *ValueStack) IsEmpty() bool {
	return len(s.values) == 0
}

// Push places v on top of the stack.
func (s *ValueStack) Push(v any) {
	s.values = append(s.values, v)
}

// Pop removes and returns the top value.
func (s *ValueStack) Pop() any {
	idx := len(s.values) - 1
	if idx < 0 {
		violatef("pop from an empty value stack")
	}
	v := s.values[idx]
	s.values[idx] = nil
	s.values = s.values[:idx]
	return v
}

// Peek returns the top value without removing it.
func (s *ValueStack) Peek() any {
	idx := len(s.values) - 1
	if idx < 0 {
		violatef("peek into an empty value stack")
	}
	return s.values[idx]
}

// Dup pushes a second reference to the top value.
func (s *ValueStack) Dup() {
	s.Push(s.Peek())
}

// Swap exchanges the two topmost values.
func (s *ValueStack) Swap() {
	idx := len(s.values) - 1
	if idx < 1 {
		violatef("swap on a value stack holding %d values", len(s.values))
	}
	s.values[idx], s.values[idx-1] = s.values[idx-1], s.values[idx]
}

// Truncate discards every value above depth.  Restoring a Mark funnels
// through here.
func (s *ValueStack) Truncate(depth int) {
	if depth < 0 || depth > len(s.values) {
		violatef("truncate value stack of %d values to depth %d", len(s.values), depth)
	}
	for i := depth; i < len(s.values); i++ {
		s.values[i] = nil
	}
	s.values = s.values[:depth]
}

// Values returns a copy of the stack contents, bottom first.
func (s *ValueStack) Values() []any {
	out := make([]any, len(s.values))
	copy(out, s.values)
	return out
}
