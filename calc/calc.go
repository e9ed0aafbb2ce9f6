// Package calc implements an integer arithmetic expression grammar on
// top of the parboiled engine.  Precedence falls out of the rule
// nesting and evaluation happens on the value stack as the match
// proceeds, so a successful parse leaves exactly one int64 behind.
package calc

import (
	"strconv"

	parboiled "github.com/satabin/parboiled2"
)

// Grammar returns the start rule of the calculator:
//
//	Input      <- Expression EndOfInput
//	Expression <- Term (('+' / '-') Term)*
//	Term       <- Factor (('*' / '/') Factor)*
//	Factor     <- Number / '(' Expression ')'
//	Number     <- [0-9]+
//
// The grammar does not skip whitespace; callers feed it compact
// expressions like "2*(3+4)".
func Grammar() parboiled.Rule {
	var expression parboiled.Rule
	expressionRef := func(p *parboiled.Parser) bool { return expression(p) }

	number := parboiled.Named("number", parboiled.Sequence(
		parboiled.Capture(parboiled.OneOrMore(parboiled.ChRange('0', '9'))),
		parboiled.Action(pushNumber),
	))

	factor := parboiled.Named("factor", parboiled.FirstOf(
		number,
		parboiled.Sequence(parboiled.Ch('('), expressionRef, parboiled.Ch(')')),
	))

	term := parboiled.Named("term", binary(factor, '*', '/'))
	expression = parboiled.Named("expression", binary(term, '+', '-'))

	return parboiled.Sequence(
		expression,
		parboiled.Named("end of input", parboiled.EOI()),
	)
}

// binary matches operand (op operand)* and folds each pair into the
// left operand as soon as it matches, giving left associativity.
func binary(operand parboiled.Rule, ops ...rune) parboiled.Rule {
	alternatives := make([]parboiled.Rule, len(ops))
	for i, op := range ops {
		alternatives[i] = parboiled.Ch(op)
	}
	return parboiled.Sequence(
		operand,
		parboiled.ZeroOrMore(parboiled.Sequence(
			parboiled.Capture(parboiled.FirstOf(alternatives...)),
			operand,
			parboiled.Action(applyOp),
		)),
	)
}

func pushNumber(s *parboiled.ValueStack) bool {
	n, err := strconv.ParseInt(s.Pop().(string), 10, 64)
	if err != nil {
		// OneOrMore digits past int64 range
		return false
	}
	s.Push(n)
	return true
}

func applyOp(s *parboiled.ValueStack) bool {
	right := s.Pop().(int64)
	op := s.Pop().(string)
	if op == "/" && right == 0 {
		// Put the operands back so the enclosing repetition can
		// backtrack over an intact stack.
		s.Push(op)
		s.Push(right)
		return false
	}
	left := s.Pop().(int64)
	switch op {
	case "+":
		s.Push(left + right)
	case "-":
		s.Push(left - right)
	case "*":
		s.Push(left * right)
	case "/":
		s.Push(left / right)
	}
	return true
}

// Parse evaluates the expression held by input.
func Parse(input parboiled.Input) (int64, error) {
	p := parboiled.NewParser(input)
	v, err := p.RunValue(Grammar())
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

// Eval evaluates the expression in text.
func Eval(text string) (int64, error) {
	return Parse(parboiled.NewTextInput(text))
}
