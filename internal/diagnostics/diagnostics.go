// Package diagnostics renders build-time errors as source snippets with a
// caret under the offending column, the way a compiler front end reports
// syntax errors to a terminal.
//
// Grounded on CWBudde-go-dws's errors package (a CompilerError type that
// renders a snippet-plus-caret) and on sunholo-data-ailang's use of
// github.com/fatih/color for severity coloring. The core packages
// (regexcompiler, lexerbuilder, grammar, parsergen, parsedriver) never
// import fatih/color or do I/O themselves — only the types in this
// package, the config loader and the CLI do; every core error type
// instead implements Reportable so the CLI can render any of them
// uniformly.
package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Kind is a diagnostic's severity.
type Kind int

const (
	KindError Kind = iota
	KindWarning
)

func (k Kind) String() string {
	switch k {
	case KindWarning:
		return "Warning"
	default:
		return "Error"
	}
}

// Pos is a 1-based line/column source position. A zero value means "no
// specific position" and Render skips the snippet/caret for it.
type Pos struct {
	Line   int
	Column int
}

// Report is one renderable diagnostic: what kind it is, where it
// happened, what went wrong, which file it came from, and (optionally)
// the source text it happened in, so Render can show the offending line.
type Report struct {
	Kind    Kind
	Pos     Pos
	Message string
	File    string
	Source  string
}

// Reportable is implemented by every build-time error type in the
// module, letting the CLI render any of them uniformly without a type
// switch per error kind.
type Reportable interface {
	error
	Report() Report
}

// Render writes the diagnostic in the module's canonical format:
//
//	Error in tokens.lex:3:9: unclosed character class
//	   3 | IDENT: [a-zA-Z_
//	               ^
//
// When color is true, the "Error"/"Warning" header is colorized (red for
// errors, yellow for warnings) via fatih/color. When r.Source is empty or
// r.Pos is the zero value, the snippet and caret lines are omitted.
func Render(w io.Writer, r Report, useColor bool) {
	header := r.Kind.String()
	if useColor {
		c := color.New(color.FgRed, color.Bold)
		if r.Kind == KindWarning {
			c = color.New(color.FgYellow, color.Bold)
		}
		header = c.Sprint(header)
	}

	if r.File != "" {
		fmt.Fprintf(w, "%s in %s:%d:%d: %s\n", header, r.File, r.Pos.Line, r.Pos.Column, r.Message)
	} else {
		fmt.Fprintf(w, "%s: %s\n", header, r.Message)
	}

	if r.Source == "" || r.Pos.Line <= 0 {
		return
	}

	lines := strings.Split(r.Source, "\n")
	if r.Pos.Line > len(lines) {
		return
	}
	line := lines[r.Pos.Line-1]

	lineNoStr := fmt.Sprintf("%d", r.Pos.Line)
	fmt.Fprintf(w, "   %s | %s\n", lineNoStr, line)

	col := r.Pos.Column
	if col < 1 {
		col = 1
	}
	padding := strings.Repeat(" ", len(lineNoStr)+3+3+(col-1))
	fmt.Fprintf(w, "%s^\n", padding)
}
