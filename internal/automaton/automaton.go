// Package automaton defines the finite-automaton data structures shared by
// the regex compiler, the lexer builder, and the scanner: a deterministic
// automaton (DFA) with a total-to-partial transition function, and a
// non-deterministic automaton (NFA) with epsilon transitions used as an
// intermediate representation during union/subset construction.
package automaton

// StateID identifies a state within a single automaton. IDs are assigned in
// discovery order by whichever builder creates the automaton; that order is
// part of the observable contract (see the module's design notes on
// determinism), so callers must never reassign or sort states by anything
// other than ID.
type StateID int

// DFA is a deterministic finite automaton over single-character symbols.
// Transitions is partial: the absence of an entry for (state, symbol) means
// there is no move, not a move to a dead state.
type DFA struct {
	Start       StateID
	NumStates   int
	Accept      map[StateID]bool
	Transitions map[StateID]map[rune]StateID
}

// NewDFA returns an empty DFA with a single start state.
func NewDFA() *DFA {
	d := &DFA{
		Accept:      make(map[StateID]bool),
		Transitions: make(map[StateID]map[rune]StateID),
	}
	d.Start = d.AddState()
	return d
}

// AddState allocates a fresh state and returns its ID.
func (d *DFA) AddState() StateID {
	id := StateID(d.NumStates)
	d.NumStates++
	d.Transitions[id] = make(map[rune]StateID)
	return id
}

// AddTransition records a move from one state to another on a symbol.
func (d *DFA) AddTransition(from StateID, sym rune, to StateID) {
	d.Transitions[from][sym] = to
}

// SetAccept marks or unmarks a state as accepting.
func (d *DFA) SetAccept(s StateID, accept bool) {
	if accept {
		d.Accept[s] = true
	} else {
		delete(d.Accept, s)
	}
}

// IsAccepting reports whether a state is in the accepting set.
func (d *DFA) IsAccepting(s StateID) bool {
	return d.Accept[s]
}

// Step returns the next state for (from, sym), or ok=false if no transition
// exists.
func (d *DFA) Step(from StateID, sym rune) (StateID, bool) {
	next, ok := d.Transitions[from][sym]
	return next, ok
}

// Alphabet returns the set of symbols that appear on any transition, in no
// particular order.
func (d *DFA) Alphabet() []rune {
	seen := make(map[rune]bool)
	for _, edges := range d.Transitions {
		for sym := range edges {
			seen[sym] = true
		}
	}
	out := make([]rune, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	return out
}

// NFA is a non-deterministic finite automaton with a distinguished epsilon
// relation kept separate from the symbol-labeled transitions (mirroring the
// teacher's NFAState.Epsilon / Transitions split), rather than encoding
// epsilon as a reserved symbol value sharing the same map.
type NFA struct {
	Start       StateID
	NumStates   int
	Accept      map[StateID]bool
	Transitions map[StateID]map[rune]map[StateID]bool
	Epsilon     map[StateID]map[StateID]bool
}

// NewNFA returns an empty NFA with a single start state.
func NewNFA() *NFA {
	n := &NFA{
		Accept:      make(map[StateID]bool),
		Transitions: make(map[StateID]map[rune]map[StateID]bool),
		Epsilon:     make(map[StateID]map[StateID]bool),
	}
	n.Start = n.AddState()
	return n
}

// AddState allocates a fresh state and returns its ID.
func (n *NFA) AddState() StateID {
	id := StateID(n.NumStates)
	n.NumStates++
	n.Transitions[id] = make(map[rune]map[StateID]bool)
	n.Epsilon[id] = make(map[StateID]bool)
	return id
}

// AddTransition adds a (possibly additional) move from one state to another
// on a symbol.
func (n *NFA) AddTransition(from StateID, sym rune, to StateID) {
	if n.Transitions[from][sym] == nil {
		n.Transitions[from][sym] = make(map[StateID]bool)
	}
	n.Transitions[from][sym][to] = true
}

// AddEpsilon adds an epsilon move from one state to another.
func (n *NFA) AddEpsilon(from, to StateID) {
	n.Epsilon[from][to] = true
}

// EpsilonClosure returns every state reachable from the given set by zero or
// more epsilon transitions, including the set itself.
func (n *NFA) EpsilonClosure(states map[StateID]bool) map[StateID]bool {
	closure := make(map[StateID]bool, len(states))
	stack := make([]StateID, 0, len(states))
	for s := range states {
		closure[s] = true
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range n.Epsilon[cur] {
			if !closure[next] {
				closure[next] = true
				stack = append(stack, next)
			}
		}
	}
	return closure
}

// Merge copies every state and transition of other into n, renumbering
// other's states by the given offset so the two state spaces stay disjoint.
// It returns the renumbered start state of other. Accept-state membership is
// NOT copied by Merge; callers that need it (lexerbuilder's per-class union)
// copy Accept explicitly so they can attach extra bookkeeping alongside it.
func (n *NFA) Merge(other *NFA, offset StateID) (newStart StateID) {
	remap := func(id StateID) StateID { return id + offset }

	for id := 0; id < other.NumStates; id++ {
		old := StateID(id)
		newID := remap(old)
		for n.NumStates <= int(newID) {
			n.AddState()
		}
		for sym, targets := range other.Transitions[old] {
			for t := range targets {
				n.AddTransition(newID, sym, remap(t))
			}
		}
		for t := range other.Epsilon[old] {
			n.AddEpsilon(newID, remap(t))
		}
	}
	return remap(other.Start)
}
