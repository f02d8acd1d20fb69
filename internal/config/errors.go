package config

import (
	"fmt"

	"github.com/plaaxer/lexparsegen/internal/diagnostics"
)

// Error wraps a failure to read or unmarshal a manifest with the path
// that caused it, so callers never see a bare yaml error with no file
// context.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Report implements diagnostics.Reportable.
func (e *Error) Report() diagnostics.Report {
	return diagnostics.Report{
		Kind:    diagnostics.KindError,
		File:    e.Path,
		Message: e.Err.Error(),
	}
}
