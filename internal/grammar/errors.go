package grammar

import (
	"fmt"

	"github.com/plaaxer/lexparsegen/internal/diagnostics"
)

// SyntaxError reports a malformed grammar source file.
type SyntaxError struct {
	Line   int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("grammar syntax error at line %d: %s", e.Line, e.Reason)
}

// Report implements diagnostics.Reportable.
func (e *SyntaxError) Report() diagnostics.Report {
	return diagnostics.Report{
		Kind:    diagnostics.KindError,
		Pos:     diagnostics.Pos{Line: e.Line, Column: 1},
		Message: e.Reason,
	}
}
