// Package parsergen builds an SLR(1) parsing table from a context-free
// grammar: augmentation with a fresh start production, FIRST/FOLLOW
// fixed-point computation, canonical LR(0) item-set construction via
// CLOSURE/GOTO, and ACTION/GOTO table synthesis with shift/reduce and
// reduce/reduce conflict detection.
//
// The fixed-point iteration shape for FIRST/FOLLOW and the
// conflict-as-error-value pattern for table synthesis are grounded on the
// teacher's tooling/ll1/first.go, follow.go and table.go, generalized from
// an LL(1) predictive table to an LR(0)-item-based SLR(1) one.
package parsergen

import (
	"sort"

	"github.com/plaaxer/lexparsegen/internal/grammar"
)

// Generate builds the SLR(1) ACTION/GOTO tables for g. It returns a
// *ShiftReduceConflictError or *ReduceReduceConflictError the moment
// synthesis finds a grammar that is not SLR(1).
func Generate(g *grammar.Grammar) (*Tables, error) {
	startPrime := freshSymbol(g.Start, g.NonTerminals)

	prods := make([]grammar.Production, 0, len(g.Productions)+1)
	prods = append(prods, grammar.Production{Head: startPrime, Body: []grammar.Symbol{g.Start}})
	prods = append(prods, g.Productions...)

	first, nullable := computeFirst(g)
	follow := computeFollow(g, g.Start, first, nullable)

	symbols := make([]grammar.Symbol, 0, len(g.Terminals)+len(g.NonTerminals))
	for t := range g.Terminals {
		symbols = append(symbols, t)
	}
	for nt := range g.NonTerminals {
		symbols = append(symbols, nt)
	}
	// buildStates walks symbols in order to assign sequential state IDs by
	// discovery; a map-range order is randomized per call, so this must be
	// sorted for Generate to be reproducible across calls on the same
	// grammar, the same way regexcompiler.alphabet() sorts its runes.
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	nonTerminalsWithPrime := make(map[grammar.Symbol]bool, len(g.NonTerminals)+1)
	for nt := range g.NonTerminals {
		nonTerminalsWithPrime[nt] = true
	}
	nonTerminalsWithPrime[startPrime] = true

	b := newBuilder(prods, nonTerminalsWithPrime)
	states, gotoMap := b.buildStates(symbols)

	return synthesize(states, gotoMap, prods, g, follow, startPrime)
}

// FirstFollow exposes the FIRST and FOLLOW sets used during table
// synthesis, for callers that want to display them (the table CLI
// subcommand) without re-deriving them from Tables.
func FirstFollow(g *grammar.Grammar) (first, follow map[grammar.Symbol]map[grammar.Symbol]bool) {
	first, nullable := computeFirst(g)
	follow = computeFollow(g, g.Start, first, nullable)
	return first, follow
}

// freshSymbol appends primes to base until it names something that isn't
// already a non-terminal, guaranteeing the augmented start symbol can't
// collide with one the grammar already declares.
func freshSymbol(base grammar.Symbol, nonTerminals map[grammar.Symbol]bool) grammar.Symbol {
	candidate := base + "'"
	for nonTerminals[candidate] {
		candidate += "'"
	}
	return candidate
}
