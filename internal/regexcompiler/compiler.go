// Package regexcompiler turns the regex surface syntax described in the
// module's specification into a DFA, using the followpos (Aho/Sethi/Ullman)
// construction over an augmented syntax tree: tokenize -> expand character
// classes -> insert explicit concatenation -> shunting-yard to postfix ->
// augment with an end marker -> build and annotate a syntax tree -> compute
// followpos -> subset-construct a DFA directly over sets of tree positions
// (never materializing an intermediate NFA, the way the textbook
// construction this is grounded on avoids it too).
package regexcompiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/plaaxer/lexparsegen/internal/automaton"
)

// Compiler holds the per-compilation counters the followpos construction
// needs. A fresh Compiler must be used for every call to Compile so that
// position ids and DFA state ids restart at a known value — these are
// instance fields, never package-level globals, per the module's design
// notes.
type Compiler struct {
	nextPos    int
	symbolsMap map[int]rune
	followpos  map[int]map[int]bool
}

// NewCompiler returns a Compiler ready to compile a single pattern.
func NewCompiler() *Compiler {
	return &Compiler{
		symbolsMap: make(map[int]rune),
		followpos:  make(map[int]map[int]bool),
	}
}

// Compile compiles one regex pattern into a DFA. Compile is not safe to call
// twice on the same Compiler; use CompilePattern (a package-level helper) or
// a fresh Compiler per pattern.
func (c *Compiler) Compile(pattern string) (*automaton.DFA, error) {
	tokens, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return c.emptyPatternDFA(), nil
	}

	withConcat := insertConcatenation(tokens)
	postfix, err := toPostfix(withConcat)
	if err != nil {
		return nil, attachPattern(err, pattern)
	}

	augmented := append(postfix, token{kind: tokLiteral, ch: endMarkerRune}, token{kind: tokConcat})

	root, err := c.buildTree(augmented)
	if err != nil {
		return nil, attachPattern(err, pattern)
	}

	c.computeFollowpos(root)

	return c.subsetConstruct(root), nil
}

// CompilePattern is a convenience wrapper equivalent to
// NewCompiler().Compile(pattern), so callers need not create a fresh
// Compiler per pattern themselves.
func CompilePattern(pattern string) (*automaton.DFA, error) {
	return NewCompiler().Compile(pattern)
}

func attachPattern(err error, pattern string) error {
	if se, ok := err.(*SyntaxError); ok && se.Pattern == "" {
		se.Pattern = pattern
	}
	return err
}

// emptyPatternDFA implements edge case §4.1.10: a pattern that tokenizes to
// nothing compiles to a single accepting state with an empty alphabet,
// matching only the empty string.
func (c *Compiler) emptyPatternDFA() *automaton.DFA {
	d := automaton.NewDFA()
	d.SetAccept(d.Start, true)
	return d
}

// subsetConstruct runs the followpos subset construction: DFA states are
// sets of syntax-tree positions, discovered breadth-first from root.firstpos
// and named in discovery order.
func (c *Compiler) subsetConstruct(root *node) *automaton.DFA {
	d := automaton.NewDFA()

	if len(root.firstpos) == 0 {
		d.SetAccept(d.Start, root.nullable)
		return d
	}

	alphabet := c.alphabet()

	type stateEntry struct {
		id  automaton.StateID
		set map[int]bool
	}

	key := func(set map[int]bool) string {
		ids := make([]int, 0, len(set))
		for p := range set {
			ids = append(ids, p)
		}
		sort.Ints(ids)
		parts := make([]string, len(ids))
		for i, p := range ids {
			parts[i] = fmt.Sprintf("%d", p)
		}
		return strings.Join(parts, ",")
	}

	discovered := make(map[string]stateEntry)
	startKey := key(root.firstpos)
	discovered[startKey] = stateEntry{id: d.Start, set: root.firstpos}
	d.SetAccept(d.Start, c.containsEndMarker(root.firstpos))

	queue := []stateEntry{discovered[startKey]}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, sym := range alphabet {
			var next map[int]bool
			for p := range cur.set {
				if c.symbolsMap[p] == sym {
					if next == nil {
						next = make(map[int]bool)
					}
					for q := range c.followpos[p] {
						next[q] = true
					}
				}
			}
			if len(next) == 0 {
				continue
			}

			nk := key(next)
			entry, seen := discovered[nk]
			if !seen {
				entry = stateEntry{id: d.AddState(), set: next}
				discovered[nk] = entry
				d.SetAccept(entry.id, c.containsEndMarker(next))
				queue = append(queue, entry)
			}

			d.AddTransition(cur.id, sym, entry.id)
		}
	}

	return d
}

func (c *Compiler) containsEndMarker(set map[int]bool) bool {
	for p := range set {
		if c.symbolsMap[p] == endMarkerRune {
			return true
		}
	}
	return false
}

// alphabet returns every non-end-marker character that labels a leaf
// position, sorted for deterministic iteration (discovery order for
// transitions out of any one state follows this fixed order, though the
// states themselves are still discovered breadth-first).
func (c *Compiler) alphabet() []rune {
	seen := make(map[rune]bool)
	for _, ch := range c.symbolsMap {
		if ch != endMarkerRune {
			seen[ch] = true
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
