package parsergen

import (
	"fmt"

	"github.com/plaaxer/lexparsegen/internal/diagnostics"
	"github.com/plaaxer/lexparsegen/internal/grammar"
)

// ShiftReduceConflictError reports that SLR(1) construction found both a
// shift and a reduce action for the same (state, terminal) cell.
type ShiftReduceConflictError struct {
	State    int
	Terminal grammar.Symbol
}

func (e *ShiftReduceConflictError) Error() string {
	return fmt.Sprintf("shift/reduce conflict in state %d on %q", e.State, e.Terminal)
}

// Report implements diagnostics.Reportable. Table conflicts are a grammar
// property, not a source position, so Pos is left zero.
func (e *ShiftReduceConflictError) Report() diagnostics.Report {
	return diagnostics.Report{Kind: diagnostics.KindError, Message: e.Error()}
}

// ReduceReduceConflictError reports that SLR(1) construction found two
// different reductions for the same (state, terminal) cell.
type ReduceReduceConflictError struct {
	State            int
	Terminal         grammar.Symbol
	FirstProduction  int
	SecondProduction int
}

func (e *ReduceReduceConflictError) Error() string {
	return fmt.Sprintf("reduce/reduce conflict in state %d on %q between productions %d and %d",
		e.State, e.Terminal, e.FirstProduction, e.SecondProduction)
}

// Report implements diagnostics.Reportable.
func (e *ReduceReduceConflictError) Report() diagnostics.Report {
	return diagnostics.Report{Kind: diagnostics.KindError, Message: e.Error()}
}
