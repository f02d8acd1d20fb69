package automaton

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Dump writes d in the module's on-disk DFA format, one line per section:
// state count, start state, the accepting set, the alphabet, then one
// "from,sym,to" line per transition. Intended for debugging a single
// token class's compiled DFA (the dump-dfa CLI subcommand).
func (d *DFA) Dump(w io.Writer) {
	fmt.Fprintf(w, "%d\n", d.NumStates)
	fmt.Fprintf(w, "%d\n", d.Start)

	accept := make([]string, 0, len(d.Accept))
	for s := range d.Accept {
		accept = append(accept, fmt.Sprintf("%d", s))
	}
	sort.Strings(accept)
	fmt.Fprintln(w, strings.Join(accept, ","))

	alphabet := d.Alphabet()
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })
	symStrs := make([]string, len(alphabet))
	for i, r := range alphabet {
		symStrs[i] = string(r)
	}
	fmt.Fprintln(w, strings.Join(symStrs, ","))

	type edge struct {
		from StateID
		sym  rune
		to   StateID
	}
	var edges []edge
	for from := StateID(0); int(from) < d.NumStates; from++ {
		for sym, to := range d.Transitions[from] {
			edges = append(edges, edge{from, sym, to})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		return edges[i].sym < edges[j].sym
	})
	for _, e := range edges {
		fmt.Fprintf(w, "%d,%s,%d\n", e.from, string(e.sym), e.to)
	}
}
