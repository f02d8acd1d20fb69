package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plaaxer/lexparsegen/internal/grammar"
	"github.com/plaaxer/lexparsegen/internal/parsergen"
)

var tableCmd = &cobra.Command{
	Use:   "table <manifest>",
	Short: "Print FIRST/FOLLOW sets and the ACTION/GOTO tables for a manifest's grammar",
	Args:  cobra.ExactArgs(1),
	RunE:  runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	b, err := buildFromManifest(args[0])
	if err != nil {
		renderBuildError(cmd, err)
		return exitError(exitBuildError, err)
	}

	out := cmd.OutOrStdout()
	first, follow := parsergen.FirstFollow(b.Grammar)
	printFirstSets(out, first)
	printFollowSets(out, follow)
	printActionGoto(out, b.Tables)
	return nil
}

// printFirstSets mirrors the teacher's ll1/debug.go PrintFirstSets: sorted
// symbol names, one "FIRST(x) = {...}" line each.
func printFirstSets(out io.Writer, first map[grammar.Symbol]map[grammar.Symbol]bool) {
	fmt.Fprintln(out, "FIRST SETS:")
	fmt.Fprintln(out, "===========")
	for _, sym := range sortedSymbols(first) {
		fmt.Fprintf(out, "  FIRST(%s) = {%s}\n", sym, joinSymbols(first[sym]))
	}
	fmt.Fprintln(out)
}

func printFollowSets(out io.Writer, follow map[grammar.Symbol]map[grammar.Symbol]bool) {
	fmt.Fprintln(out, "FOLLOW SETS:")
	fmt.Fprintln(out, "============")
	for _, sym := range sortedSymbols(follow) {
		fmt.Fprintf(out, "  FOLLOW(%s) = {%s}\n", sym, joinSymbols(follow[sym]))
	}
	fmt.Fprintln(out)
}

// printActionGoto prints one row per state: its ACTION entries, then its
// GOTO entries, mirroring the teacher's PrintParseTable grid style
// adapted from an LL(1) nonterminal/terminal grid to a per-state
// SLR(1) listing.
func printActionGoto(out io.Writer, t *parsergen.Tables) {
	fmt.Fprintln(out, "ACTION/GOTO TABLE:")
	fmt.Fprintln(out, "==================")
	for s := 0; s < t.NumStates; s++ {
		fmt.Fprintf(out, "state %d:\n", s)
		for _, sym := range sortedActionSymbols(t.Action[s]) {
			fmt.Fprintf(out, "  on %-10s %s\n", sym, formatAction(t.Action[s][sym]))
		}
		for _, sym := range sortedGotoSymbols(t.Goto[s]) {
			fmt.Fprintf(out, "  goto %-8s -> %d\n", sym, t.Goto[s][sym])
		}
	}
}

func formatAction(a parsergen.Action) string {
	switch a.Kind {
	case parsergen.Shift:
		return fmt.Sprintf("shift %d", a.Target)
	case parsergen.Reduce:
		return fmt.Sprintf("reduce %d", a.Target)
	case parsergen.Accept:
		return "accept"
	default:
		return "?"
	}
}

func sortedSymbols(m map[grammar.Symbol]map[grammar.Symbol]bool) []grammar.Symbol {
	out := make([]grammar.Symbol, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedActionSymbols(m map[grammar.Symbol]parsergen.Action) []grammar.Symbol {
	out := make([]grammar.Symbol, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedGotoSymbols(m map[grammar.Symbol]int) []grammar.Symbol {
	out := make([]grammar.Symbol, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func joinSymbols(set map[grammar.Symbol]bool) string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, string(s))
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}
