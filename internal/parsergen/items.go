package parsergen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/plaaxer/lexparsegen/internal/grammar"
)

// item is a dotted production: the dot sits before body[dot]. prod indexes
// into the generator's combined production list, augmented production
// first. A production whose body is the epsilon marker is treated as
// having an empty effective body, so its only item is always complete.
type item struct {
	prod int
	dot  int
}

func effectiveBody(p grammar.Production) []grammar.Symbol {
	if p.IsEpsilon() {
		return nil
	}
	return p.Body
}

func isComplete(p grammar.Production, it item) bool {
	return it.dot >= len(effectiveBody(p))
}

// lr0State is one canonical LR(0) item set, numbered in BFS discovery
// order. Discovery order drives the assigned state IDs, matching the
// generator's deterministic-output contract.
type lr0State struct {
	id    int
	items []item
}

// itemSetKey canonicalizes a set of items into a sorted, comma-joined
// string so that two item sets built from different discovery paths
// compare equal as map keys, the same technique used by
// regexcompiler.subsetConstruct and lexerbuilder.subsetConstruct for their
// own position/state sets.
func itemSetKey(items map[item]bool) string {
	keys := make([]string, 0, len(items))
	for it := range items {
		keys = append(keys, fmt.Sprintf("%d.%d", it.prod, it.dot))
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

// builder carries the combined production list (augmented start rule
// first) and memoized production-indices-by-head lookups needed by
// CLOSURE.
type builder struct {
	prods      []grammar.Production
	byHead     map[grammar.Symbol][]int
	symbolOf   func(grammar.Symbol) bool // true if non-terminal
}

func newBuilder(prods []grammar.Production, nonTerminals map[grammar.Symbol]bool) *builder {
	b := &builder{
		prods:  prods,
		byHead: make(map[grammar.Symbol][]int),
		symbolOf: func(s grammar.Symbol) bool {
			return nonTerminals[s]
		},
	}
	for i, p := range prods {
		b.byHead[p.Head] = append(b.byHead[p.Head], i)
	}
	return b
}

func (b *builder) closure(seed map[item]bool) map[item]bool {
	result := make(map[item]bool, len(seed))
	for it := range seed {
		result[it] = true
	}
	changed := true
	for changed {
		changed = false
		for it := range result {
			body := effectiveBody(b.prods[it.prod])
			if it.dot >= len(body) {
				continue
			}
			sym := body[it.dot]
			if !b.symbolOf(sym) {
				continue
			}
			for _, pi := range b.byHead[sym] {
				ni := item{prod: pi, dot: 0}
				if !result[ni] {
					result[ni] = true
					changed = true
				}
			}
		}
	}
	return result
}

func (b *builder) goTo(items map[item]bool, sym grammar.Symbol) map[item]bool {
	moved := make(map[item]bool)
	for it := range items {
		body := effectiveBody(b.prods[it.prod])
		if it.dot < len(body) && body[it.dot] == sym {
			moved[item{prod: it.prod, dot: it.dot + 1}] = true
		}
	}
	if len(moved) == 0 {
		return nil
	}
	return b.closure(moved)
}

// buildStates runs the canonical LR(0) collection, discovering states
// breadth-first from the closure of the augmented start item. It returns
// the ordered state list and the GOTO transition map keyed by (stateID,
// symbol).
func (b *builder) buildStates(symbols []grammar.Symbol) ([]lr0State, map[int]map[grammar.Symbol]int) {
	start := b.closure(map[item]bool{{prod: 0, dot: 0}: true})

	var states []lr0State
	seen := make(map[string]int)
	gotoMap := make(map[int]map[grammar.Symbol]int)

	addState := func(items map[item]bool) int {
		key := itemSetKey(items)
		if id, ok := seen[key]; ok {
			return id
		}
		id := len(states)
		seen[key] = id
		flat := make([]item, 0, len(items))
		for it := range items {
			flat = append(flat, it)
		}
		sort.Slice(flat, func(i, j int) bool {
			if flat[i].prod != flat[j].prod {
				return flat[i].prod < flat[j].prod
			}
			return flat[i].dot < flat[j].dot
		})
		states = append(states, lr0State{id: id, items: flat})
		return id
	}

	startID := addState(start)
	queue := []int{startID}
	itemsByID := map[int]map[item]bool{startID: start}

	for len(queue) > 0 {
		curID := queue[0]
		queue = queue[1:]
		cur := itemsByID[curID]

		for _, sym := range symbols {
			next := b.goTo(cur, sym)
			if next == nil {
				continue
			}
			key := itemSetKey(next)
			if _, ok := seen[key]; !ok {
				nid := addState(next)
				itemsByID[nid] = next
				queue = append(queue, nid)
			}
			nid := seen[key]
			if gotoMap[curID] == nil {
				gotoMap[curID] = make(map[grammar.Symbol]int)
			}
			gotoMap[curID][sym] = nid
		}
	}

	return states, gotoMap
}
