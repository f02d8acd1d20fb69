// Package parsedriver executes an SLR(1) parsing table built by
// internal/parsergen against a token stream, producing a generic parse
// tree. The stack-of-state-indices driver loop is grounded on the
// teacher's tooling/ll1/parser.go Parser.Parse, adapted from an LL(1)
// expansion-and-match stack machine to an SLR(1) shift/reduce engine.
package parsedriver

import (
	"github.com/plaaxer/lexparsegen/internal/grammar"
	"github.com/plaaxer/lexparsegen/internal/parsergen"
)

// Token is one input symbol to the driver: a token class (matched
// against terminals in the grammar), its lexeme, and its source
// position for error reporting.
type Token struct {
	Symbol grammar.Symbol
	Lexeme string
	Line   int
	Column int
}

// Parse drives tables over tokens, shifting and reducing until it either
// accepts (returning the root of the parse tree) or hits a cell the
// ACTION table has no entry for (returning a *SyntaxError). tracer may be
// nil to skip step tracing.
func Parse(tables *parsergen.Tables, tokens []Token, tracer *Tracer) (ParseTree, error) {
	stateStack := []int{tables.StartState}
	var nodeStack []ParseTree
	pos := 0

	current := func() Token {
		if pos < len(tokens) {
			return tokens[pos]
		}
		return Token{Symbol: grammar.EndOfInput}
	}

	for {
		state := stateStack[len(stateStack)-1]
		tok := current()

		action, ok := tables.Action[state][tok.Symbol]
		if !ok {
			expected := make([]grammar.Symbol, 0, len(tables.Action[state]))
			for s := range tables.Action[state] {
				expected = append(expected, s)
			}
			if tracer != nil {
				tracer.Step(stateStack, string(tok.Symbol), "error")
			}
			return nil, &SyntaxError{
				State:    state,
				Got:      tok.Symbol,
				Lexeme:   tok.Lexeme,
				Line:     tok.Line,
				Column:   tok.Column,
				Expected: expected,
			}
		}

		switch action.Kind {
		case parsergen.Shift:
			if tracer != nil {
				tracer.Step(stateStack, string(tok.Symbol), "shift "+string(tok.Symbol))
			}
			stateStack = append(stateStack, action.Target)
			nodeStack = append(nodeStack, &TerminalNode{Token: tok})
			pos++

		case parsergen.Reduce:
			prod := tables.Productions[action.Target]
			n := 0
			if !prod.IsEpsilon() {
				n = len(prod.Body)
			}
			if tracer != nil {
				tracer.Step(stateStack, string(tok.Symbol), "reduce "+string(prod.Head))
			}

			children := make([]ParseTree, n)
			copy(children, nodeStack[len(nodeStack)-n:])
			nodeStack = nodeStack[:len(nodeStack)-n]
			stateStack = stateStack[:len(stateStack)-n]

			top := stateStack[len(stateStack)-1]
			goTo, ok := tables.Goto[top][prod.Head]
			if !ok {
				return nil, &SyntaxError{State: top, Got: prod.Head, Line: tok.Line, Column: tok.Column}
			}
			stateStack = append(stateStack, goTo)
			nodeStack = append(nodeStack, &NonTerminalNode{Head: prod.Head, Children: children})

		case parsergen.Accept:
			if tracer != nil {
				tracer.Step(stateStack, string(tok.Symbol), "accept")
			}
			return nodeStack[len(nodeStack)-1], nil
		}
	}
}
