package automaton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDFAStep(t *testing.T) {
	d := NewDFA()
	one := d.AddState()
	two := d.AddState()
	d.AddTransition(d.Start, '1', one)
	d.AddTransition(d.Start, 'a', two)
	d.SetAccept(two, true)

	cases := []struct {
		input    rune
		expected StateID
		ok       bool
	}{
		{'1', one, true},
		{'a', two, true},
		{'z', 0, false},
	}

	for _, tc := range cases {
		next, ok := d.Step(d.Start, tc.input)
		assert.Equal(t, tc.ok, ok, "transition existence for %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.expected, next)
		}
	}

	assert.True(t, d.IsAccepting(two))
	assert.False(t, d.IsAccepting(one))
}

func TestNFAEpsilonClosure(t *testing.T) {
	n := NewNFA()
	a := n.AddState()
	b := n.AddState()
	c := n.AddState()
	n.AddEpsilon(n.Start, a)
	n.AddEpsilon(a, b)
	n.AddTransition(b, 'x', c)

	closure := n.EpsilonClosure(map[StateID]bool{n.Start: true})

	require.Len(t, closure, 3)
	assert.True(t, closure[n.Start])
	assert.True(t, closure[a])
	assert.True(t, closure[b])
	assert.False(t, closure[c])
}

func TestNFAMergeKeepsStatesDisjoint(t *testing.T) {
	left := NewNFA()
	leftAccept := left.AddState()
	left.AddTransition(left.Start, 'a', leftAccept)

	right := NewNFA()
	rightAccept := right.AddState()
	right.AddTransition(right.Start, 'b', rightAccept)

	combined := NewNFA()
	offset := StateID(combined.NumStates)
	leftStart := combined.Merge(left, offset)
	offset = StateID(combined.NumStates)
	rightStart := combined.Merge(right, offset)

	combined.AddEpsilon(combined.Start, leftStart)
	combined.AddEpsilon(combined.Start, rightStart)

	assert.NotEqual(t, leftStart, rightStart)

	closure := combined.EpsilonClosure(map[StateID]bool{combined.Start: true})
	assert.True(t, closure[leftStart])
	assert.True(t, closure[rightStart])
}

func TestDFADumpFormat(t *testing.T) {
	d := NewDFA()
	one := d.AddState()
	d.AddTransition(d.Start, 'a', one)
	d.SetAccept(one, true)

	var buf strings.Builder
	d.Dump(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "2", lines[0])
	assert.Equal(t, "0", lines[1])
	assert.Equal(t, "1", lines[2])
	assert.Equal(t, "a", lines[3])
	assert.Equal(t, "0,a,1", lines[4])
}
