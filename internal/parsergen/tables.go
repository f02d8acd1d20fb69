package parsergen

import "github.com/plaaxer/lexparsegen/internal/grammar"

// ActionKind distinguishes the three SLR(1) action table entries.
type ActionKind int

const (
	// Shift pushes a state after consuming a terminal.
	Shift ActionKind = iota
	// Reduce pops |body| states and replaces the top with a GOTO on the
	// production's head.
	Reduce
	// Accept ends a successful parse.
	Accept
)

// Action is one ACTION table cell. For Shift, Target is the destination
// state. For Reduce, Target is an index into Tables.Productions. Accept
// ignores Target.
type Action struct {
	Kind   ActionKind
	Target int
}

// Tables is the synthesized SLR(1) parsing table: per-state ACTION
// entries keyed by terminal, per-state GOTO entries keyed by
// non-terminal, and the production list reduce actions index into
// (the augmented start production occupies index 0 and is never the
// target of a Reduce action — its completion always yields Accept).
type Tables struct {
	Action      map[int]map[grammar.Symbol]Action
	Goto        map[int]map[grammar.Symbol]int
	Productions []grammar.Production
	NumStates   int
	StartState  int
}

func (t *Tables) setAction(state int, sym grammar.Symbol, action Action) error {
	if t.Action[state] == nil {
		t.Action[state] = make(map[grammar.Symbol]Action)
	}
	existing, ok := t.Action[state][sym]
	if !ok {
		t.Action[state][sym] = action
		return nil
	}
	if existing == action {
		return nil
	}
	switch {
	case existing.Kind == Reduce && action.Kind == Reduce:
		return &ReduceReduceConflictError{State: state, Terminal: sym, FirstProduction: existing.Target, SecondProduction: action.Target}
	default:
		return &ShiftReduceConflictError{State: state, Terminal: sym}
	}
}

// synthesize walks every state's items and fills in ACTION (shift on
// terminals, reduce on FOLLOW(head) for complete items, accept on the
// augmented item) and GOTO (on non-terminals), per the classical SLR(1)
// construction.
func synthesize(states []lr0State, gotoMap map[int]map[grammar.Symbol]int, prods []grammar.Production, g *grammar.Grammar, follow map[grammar.Symbol]map[grammar.Symbol]bool, startPrime grammar.Symbol) (*Tables, error) {
	t := &Tables{
		Action:      make(map[int]map[grammar.Symbol]Action),
		Goto:        make(map[int]map[grammar.Symbol]int),
		Productions: prods,
		NumStates:   len(states),
		StartState:  0,
	}

	for _, st := range states {
		for sym, target := range gotoMap[st.id] {
			if g.NonTerminals[sym] {
				if t.Goto[st.id] == nil {
					t.Goto[st.id] = make(map[grammar.Symbol]int)
				}
				t.Goto[st.id][sym] = target
			}
		}

		for _, it := range st.items {
			p := prods[it.prod]
			body := effectiveBody(p)

			if it.dot < len(body) {
				sym := body[it.dot]
				if g.Terminals[sym] {
					target := gotoMap[st.id][sym]
					if err := t.setAction(st.id, sym, Action{Kind: Shift, Target: target}); err != nil {
						return nil, err
					}
				}
				continue
			}

			if it.prod == 0 && p.Head == startPrime {
				if err := t.setAction(st.id, grammar.EndOfInput, Action{Kind: Accept}); err != nil {
					return nil, err
				}
				continue
			}

			for t2 := range follow[p.Head] {
				if err := t.setAction(st.id, t2, Action{Kind: Reduce, Target: it.prod}); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}
