package lexerbuilder

import (
	"fmt"

	"github.com/plaaxer/lexparsegen/internal/diagnostics"
)

// EmptyLexerError is returned when BuildLexer is called with no token
// classes.
type EmptyLexerError struct{}

func (e *EmptyLexerError) Error() string {
	return "cannot build a lexer from zero token classes"
}

// Report implements diagnostics.Reportable.
func (e *EmptyLexerError) Report() diagnostics.Report {
	return diagnostics.Report{Kind: diagnostics.KindError, Message: e.Error()}
}

// DuplicateClassError is returned when two entries declare the same class
// name.
type DuplicateClassError struct {
	ClassName string
}

func (e *DuplicateClassError) Error() string {
	return fmt.Sprintf("duplicate token class %q", e.ClassName)
}

// Report implements diagnostics.Reportable.
func (e *DuplicateClassError) Report() diagnostics.Report {
	return diagnostics.Report{Kind: diagnostics.KindError, Message: e.Error()}
}
