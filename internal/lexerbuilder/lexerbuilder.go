// Package lexerbuilder combines the per-class DFAs produced by
// regexcompiler into one multi-pattern lexer DFA: an epsilon-joined union
// NFA, subset-constructed into a DFA whose accepting states remember which
// token class won (by declaration priority), generalizing the teacher's
// CompileLexicalGrammar / NFAToDFAWithTokens pipeline in
// lang/automata/compiler.go and lang/automata/nfa_to_dfa.go from a fixed
// pattern-literal grammar to arbitrary compiled regex DFAs.
package lexerbuilder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/plaaxer/lexparsegen/internal/automaton"
)

// ClassDFA pairs a token class name with its compiled pattern. Declaration
// order (the order of the slice passed to BuildLexer) defines lexer
// priority: earlier classes win ties on equal-length matches.
type ClassDFA struct {
	Name string
	DFA  *automaton.DFA
}

// Lexer is a combined multi-pattern automaton: a DFA plus a record of which
// token class each accepting state belongs to.
type Lexer struct {
	DFA         *automaton.DFA
	AcceptClass map[automaton.StateID]string
}

// acceptInfo is attached to NFA states copied in from an accepting state of
// a per-class DFA; it carries the class name and priority the way the
// teacher's AcceptInfo/AcceptingState types do, rather than recovering the
// class from a "classname::state" prefix string.
type acceptInfo struct {
	class    string
	priority int // lower is higher priority (earlier declaration wins)
}

// BuildLexer unions the given classes into a single NFA via an
// epsilon-joined fresh start state, then subset-constructs the combined DFA.
func BuildLexer(entries []ClassDFA) (*Lexer, error) {
	if len(entries) == 0 {
		return nil, &EmptyLexerError{}
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Name] {
			return nil, &DuplicateClassError{ClassName: e.Name}
		}
		seen[e.Name] = true
	}

	combined := automaton.NewNFA()
	nfaAccept := make(map[automaton.StateID]acceptInfo)

	for priority, entry := range entries {
		frag := dfaToNFA(entry.DFA)
		offset := automaton.StateID(combined.NumStates)
		start := combined.Merge(frag, offset)
		combined.AddEpsilon(combined.Start, start)

		for s := range frag.Accept {
			nfaAccept[s+offset] = acceptInfo{class: entry.Name, priority: priority}
		}
	}

	return subsetConstruct(combined, nfaAccept), nil
}

// dfaToNFA lifts a deterministic automaton into the NFA representation so it
// can be merged into the combined union NFA; every DFA transition becomes a
// singleton-target NFA transition and no epsilon edges are introduced.
func dfaToNFA(d *automaton.DFA) *automaton.NFA {
	n := &automaton.NFA{
		Start:       d.Start,
		NumStates:   d.NumStates,
		Accept:      make(map[automaton.StateID]bool, len(d.Accept)),
		Transitions: make(map[automaton.StateID]map[rune]map[automaton.StateID]bool, d.NumStates),
		Epsilon:     make(map[automaton.StateID]map[automaton.StateID]bool, d.NumStates),
	}
	for s := range d.Accept {
		n.Accept[s] = true
	}
	for id := 0; id < d.NumStates; id++ {
		s := automaton.StateID(id)
		n.Transitions[s] = make(map[rune]map[automaton.StateID]bool)
		n.Epsilon[s] = make(map[automaton.StateID]bool)
		for sym, to := range d.Transitions[s] {
			n.Transitions[s][sym] = map[automaton.StateID]bool{to: true}
		}
	}
	return n
}

func stateSetKey(set map[automaton.StateID]bool) string {
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, int(s))
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}

// subsetConstruct determinizes the combined NFA, resolving each accepting
// DFA state's winning class by scanning its member NFA states for the
// smallest declaration priority present.
func subsetConstruct(nfa *automaton.NFA, nfaAccept map[automaton.StateID]acceptInfo) *Lexer {
	d := automaton.NewDFA()
	acceptClass := make(map[automaton.StateID]string)

	type entry struct {
		id  automaton.StateID
		set map[automaton.StateID]bool
	}

	startClosure := nfa.EpsilonClosure(map[automaton.StateID]bool{nfa.Start: true})
	discovered := map[string]entry{stateSetKey(startClosure): {id: d.Start, set: startClosure}}
	queue := []entry{discovered[stateSetKey(startClosure)]}

	resolve := func(set map[automaton.StateID]bool) (string, bool) {
		best := -1
		bestClass := ""
		found := false
		for s := range set {
			if info, ok := nfaAccept[s]; ok {
				if !found || info.priority < best {
					best = info.priority
					bestClass = info.class
					found = true
				}
			}
		}
		return bestClass, found
	}

	if cls, ok := resolve(startClosure); ok {
		d.SetAccept(d.Start, true)
		acceptClass[d.Start] = cls
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		bySymbol := make(map[rune]map[automaton.StateID]bool)
		for s := range cur.set {
			for sym, targets := range nfa.Transitions[s] {
				if bySymbol[sym] == nil {
					bySymbol[sym] = make(map[automaton.StateID]bool)
				}
				for t := range targets {
					bySymbol[sym][t] = true
				}
			}
		}

		symbols := make([]rune, 0, len(bySymbol))
		for sym := range bySymbol {
			symbols = append(symbols, sym)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

		for _, sym := range symbols {
			targets := bySymbol[sym]
			closure := nfa.EpsilonClosure(targets)
			key := stateSetKey(closure)
			next, seen := discovered[key]
			if !seen {
				next = entry{id: d.AddState(), set: closure}
				discovered[key] = next
				if cls, ok := resolve(closure); ok {
					d.SetAccept(next.id, true)
					acceptClass[next.id] = cls
				}
				queue = append(queue, next)
			}
			d.AddTransition(cur.id, sym, next.id)
		}
	}

	return &Lexer{DFA: d, AcceptClass: acceptClass}
}
