package parsergen

import "github.com/plaaxer/lexparsegen/internal/grammar"

// computeFirst maps every terminal and non-terminal to its FIRST set, and
// nullable records which non-terminals can derive the empty string.
// Grounded on the teacher's tooling/ll1/first.go: a simple fixed-point
// iteration over the production list until nothing changes.
func computeFirst(g *grammar.Grammar) (first map[grammar.Symbol]map[grammar.Symbol]bool, nullable map[grammar.Symbol]bool) {
	first = make(map[grammar.Symbol]map[grammar.Symbol]bool)
	nullable = make(map[grammar.Symbol]bool)

	for t := range g.Terminals {
		first[t] = map[grammar.Symbol]bool{t: true}
	}
	first[grammar.EndOfInput] = map[grammar.Symbol]bool{grammar.EndOfInput: true}
	for nt := range g.NonTerminals {
		first[nt] = make(map[grammar.Symbol]bool)
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			if p.IsEpsilon() {
				if !nullable[p.Head] {
					nullable[p.Head] = true
					changed = true
				}
				continue
			}
			seqFirst, seqNullable := firstOfSequence(p.Body, g, first, nullable)
			for t := range seqFirst {
				if !first[p.Head][t] {
					first[p.Head][t] = true
					changed = true
				}
			}
			if seqNullable && !nullable[p.Head] {
				nullable[p.Head] = true
				changed = true
			}
		}
	}
	return first, nullable
}

// firstOfSequence computes FIRST(X1 X2 ... Xn) and whether the whole
// sequence is nullable, using whatever partial FIRST/nullable information
// has been computed so far.
func firstOfSequence(seq []grammar.Symbol, g *grammar.Grammar, first map[grammar.Symbol]map[grammar.Symbol]bool, nullable map[grammar.Symbol]bool) (map[grammar.Symbol]bool, bool) {
	result := make(map[grammar.Symbol]bool)
	for _, sym := range seq {
		for t := range first[sym] {
			result[t] = true
		}
		if !isNullable(sym, g, nullable) {
			return result, false
		}
	}
	return result, true
}

func isNullable(sym grammar.Symbol, g *grammar.Grammar, nullable map[grammar.Symbol]bool) bool {
	if g.NonTerminals[sym] {
		return nullable[sym]
	}
	return false
}

// computeFollow runs the standard fixed-point FOLLOW computation over the
// grammar's own (non-augmented) productions, seeding FOLLOW(realStart) with
// EndOfInput directly in place of an S' -> S production.
func computeFollow(g *grammar.Grammar, realStart grammar.Symbol, first map[grammar.Symbol]map[grammar.Symbol]bool, nullable map[grammar.Symbol]bool) map[grammar.Symbol]map[grammar.Symbol]bool {
	follow := make(map[grammar.Symbol]map[grammar.Symbol]bool)
	for nt := range g.NonTerminals {
		follow[nt] = make(map[grammar.Symbol]bool)
	}
	follow[realStart][grammar.EndOfInput] = true

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			if p.IsEpsilon() {
				continue
			}
			for i, sym := range p.Body {
				if !g.NonTerminals[sym] {
					continue
				}
				rest := p.Body[i+1:]
				restFirst, restNullable := firstOfSequence(rest, g, first, nullable)
				for t := range restFirst {
					if !follow[sym][t] {
						follow[sym][t] = true
						changed = true
					}
				}
				if restNullable {
					for t := range follow[p.Head] {
						if !follow[sym][t] {
							follow[sym][t] = true
							changed = true
						}
					}
				}
			}
		}
	}
	return follow
}
