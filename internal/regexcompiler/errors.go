package regexcompiler

import (
	"fmt"

	"github.com/plaaxer/lexparsegen/internal/diagnostics"
)

// SyntaxError reports a malformed regex. Offset is a best-effort rune index
// into the original pattern where the problem was detected.
type SyntaxError struct {
	Pattern string
	Offset  int
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex syntax error in %q at offset %d: %s", e.Pattern, e.Offset, e.Reason)
}

func newSyntaxError(pattern string, offset int, reason string) *SyntaxError {
	return &SyntaxError{Pattern: pattern, Offset: offset, Reason: reason}
}

// Report implements diagnostics.Reportable, treating the pattern string
// itself as a single-line source and the offset as a column.
func (e *SyntaxError) Report() diagnostics.Report {
	return diagnostics.Report{
		Kind:    diagnostics.KindError,
		Pos:     diagnostics.Pos{Line: 1, Column: e.Offset + 1},
		Message: e.Reason,
		Source:  e.Pattern,
	}
}
