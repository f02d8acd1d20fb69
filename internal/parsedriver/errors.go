package parsedriver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/plaaxer/lexparsegen/internal/diagnostics"
	"github.com/plaaxer/lexparsegen/internal/grammar"
)

// SyntaxError reports that the ACTION table has no entry for the current
// (state, lookahead) pair: the input does not belong to the language the
// grammar describes.
type SyntaxError struct {
	State    int
	Got      grammar.Symbol
	Lexeme   string
	Line     int
	Column   int
	Expected []grammar.Symbol
}

func (e *SyntaxError) Error() string {
	expected := make([]string, len(e.Expected))
	for i, s := range e.Expected {
		expected[i] = string(s)
	}
	sort.Strings(expected)
	return fmt.Sprintf("syntax error at line %d, column %d: unexpected %q (token %s); expected one of: %s",
		e.Line, e.Column, e.Lexeme, e.Got, strings.Join(expected, ", "))
}

// Report implements diagnostics.Reportable.
func (e *SyntaxError) Report() diagnostics.Report {
	return diagnostics.Report{
		Kind:    diagnostics.KindError,
		Pos:     diagnostics.Pos{Line: e.Line, Column: e.Column},
		Message: e.Error(),
	}
}
