package regexcompiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plaaxer/lexparsegen/internal/automaton"
)

// accepts runs s through d from the start state and reports whether the
// whole string lands on an accepting state.
func accepts(d *automaton.DFA, s string) bool {
	state := d.Start
	for _, r := range s {
		next, ok := d.Step(state, r)
		if !ok {
			return false
		}
		state = next
	}
	return d.IsAccepting(state)
}

func TestCompile_ConcatUnionStar(t *testing.T) {
	d, err := CompilePattern("a(b|c)*")
	require.NoError(t, err)

	assert.True(t, accepts(d, "a"))
	assert.True(t, accepts(d, "abcbb"))
	assert.True(t, accepts(d, "ab"))
	assert.False(t, accepts(d, "b"))
	assert.False(t, accepts(d, "abcd"))
}

func TestCompile_Plus(t *testing.T) {
	d, err := CompilePattern("[0-9]+")
	require.NoError(t, err)

	assert.True(t, accepts(d, "7"))
	assert.True(t, accepts(d, "1234"))
	assert.False(t, accepts(d, ""))
	assert.False(t, accepts(d, "12a"))
}

func TestCompile_Option(t *testing.T) {
	d, err := CompilePattern("ab?c")
	require.NoError(t, err)

	assert.True(t, accepts(d, "ac"))
	assert.True(t, accepts(d, "abc"))
	assert.False(t, accepts(d, "abbc"))
}

func TestCompile_CharacterClassWithRangeAndLiteral(t *testing.T) {
	d, err := CompilePattern("[a-cX]")
	require.NoError(t, err)

	for _, s := range []string{"a", "b", "c", "X"} {
		assert.True(t, accepts(d, s), "expected %q to be accepted", s)
	}
	assert.False(t, accepts(d, "d"))
}

func TestCompile_Escape(t *testing.T) {
	d, err := CompilePattern(`a\*b`)
	require.NoError(t, err)

	assert.True(t, accepts(d, "a*b"))
	assert.False(t, accepts(d, "ab"))
}

func TestCompile_EmptyPattern(t *testing.T) {
	d, err := CompilePattern("")
	require.NoError(t, err)

	assert.Empty(t, d.Alphabet())
	assert.True(t, d.IsAccepting(d.Start))
	assert.False(t, accepts(d, "x"))
}

func TestCompile_IdentifierLikePattern(t *testing.T) {
	d, err := CompilePattern("[a-zA-Z_][a-zA-Z0-9_]*")
	require.NoError(t, err)

	assert.True(t, accepts(d, "x1"))
	assert.True(t, accepts(d, "_foo9"))
	assert.False(t, accepts(d, "1x"))
}

func TestCompile_SyntaxErrors(t *testing.T) {
	cases := map[string]string{
		"unclosed class":        "[abc",
		"unclosed group":        "(ab",
		"mismatched close paren": "ab)",
		"empty class":           "[]",
		"escape at eof":         `a\`,
		"dangling star":         "*",
	}

	for name, pattern := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := CompilePattern(pattern)
			require.Error(t, err)
			var synErr *SyntaxError
			assert.ErrorAs(t, err, &synErr)
		})
	}
}

func TestCompile_DeterministicAcrossRuns(t *testing.T) {
	d1, err := CompilePattern("(a|b)*abb")
	require.NoError(t, err)
	d2, err := CompilePattern("(a|b)*abb")
	require.NoError(t, err)

	assert.Equal(t, d1.NumStates, d2.NumStates)
	assert.Equal(t, len(d1.Accept), len(d2.Accept))
}
