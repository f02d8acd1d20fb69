package parsergen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plaaxer/lexparsegen/internal/grammar"
)

func mustLoad(t *testing.T, src string, reserved []string) *grammar.Grammar {
	t.Helper()
	g, err := grammar.Load(src, reserved)
	require.NoError(t, err)
	return g
}

func TestGenerate_ExpressionGrammarHasNoConflicts(t *testing.T) {
	g := mustLoad(t, `
E ::= E + T
E ::= T
T ::= T * F
T ::= F
F ::= ( E )
F ::= id
`, nil)

	tables, err := Generate(g)
	require.NoError(t, err)
	assert.Greater(t, tables.NumStates, 0)

	// Every state must have at least one action or goto, i.e. none of the
	// states the BFS discovers are dead.
	for s := 0; s < tables.NumStates; s++ {
		_, hasAction := tables.Action[s]
		_, hasGoto := tables.Goto[s]
		assert.True(t, hasAction || hasGoto, "state %d has no actions and no gotos", s)
	}
}

func TestGenerate_AcceptActionIsOnEndOfInput(t *testing.T) {
	g := mustLoad(t, "S ::= a S b\nS ::=\n", nil)
	tables, err := Generate(g)
	require.NoError(t, err)

	found := false
	for _, actions := range tables.Action {
		for sym, act := range actions {
			if act.Kind == Accept {
				assert.Equal(t, grammar.EndOfInput, sym)
				found = true
			}
		}
	}
	assert.True(t, found, "expected an accept action somewhere in the table")
}

func TestGenerate_ReduceActionsReferenceOriginalProductions(t *testing.T) {
	g := mustLoad(t, "S ::= a\n", nil)
	tables, err := Generate(g)
	require.NoError(t, err)

	require.Len(t, tables.Productions, 2) // augmented S' -> S, plus S -> a
	assert.Equal(t, g.Start, tables.Productions[1].Head)

	sawReduce := false
	for _, actions := range tables.Action {
		for _, act := range actions {
			if act.Kind == Reduce {
				sawReduce = true
				assert.Equal(t, 1, act.Target)
			}
		}
	}
	assert.True(t, sawReduce)
}

// Classic dangling-else style grammar: S -> iEtS | iEtSeS | a, E -> b.
// Not SLR(1): on seeing "e" after reducing iEtS, the parser cannot decide
// whether to shift the "e" (extending to iEtSeS) or reduce S -> iEtS,
// because FOLLOW(S) includes "e".
func TestGenerate_DanglingElseIsNotSLR1(t *testing.T) {
	g := mustLoad(t, `
S ::= i E t S
S ::= i E t S e S
S ::= a
E ::= b
`, nil)

	_, err := Generate(g)
	require.Error(t, err)

	var srErr *ShiftReduceConflictError
	assert.ErrorAs(t, err, &srErr)
}

func TestGenerate_DeterministicAcrossRuns(t *testing.T) {
	g := mustLoad(t, `
E ::= E + T
E ::= T
T ::= T * F
T ::= F
F ::= ( E )
F ::= id
`, nil)

	a, err := Generate(g)
	require.NoError(t, err)
	b, err := Generate(g)
	require.NoError(t, err)

	assert.Equal(t, a.NumStates, b.NumStates)
	assert.Equal(t, a.Action, b.Action)
	assert.Equal(t, a.Goto, b.Goto)
}

func TestGenerate_EpsilonGrammarGoto(t *testing.T) {
	g := mustLoad(t, `
L ::= ( Items )
L ::=
Items ::= id
Items ::= Items , id
`, nil)

	tables, err := Generate(g)
	require.NoError(t, err)
	assert.Greater(t, tables.NumStates, 1)
}
