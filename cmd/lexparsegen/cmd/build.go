package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/plaaxer/lexparsegen/internal/automaton"
	"github.com/plaaxer/lexparsegen/internal/config"
	"github.com/plaaxer/lexparsegen/internal/grammar"
	"github.com/plaaxer/lexparsegen/internal/lexerbuilder"
	"github.com/plaaxer/lexparsegen/internal/parsergen"
	"github.com/plaaxer/lexparsegen/internal/regexcompiler"
)

// built bundles everything a manifest produces: the combined lexer, the
// per-class DFAs it was built from (kept around for dump-dfa), the parsed
// grammar, and the synthesized SLR(1) tables.
type built struct {
	Lexer      *lexerbuilder.Lexer
	ClassOrder []string
	ClassDFAs  map[string]*automaton.DFA
	Grammar    *grammar.Grammar
	Tables     *parsergen.Tables
}

// buildFromManifest reads the manifest at path and its two referenced
// source files (resolved relative to the manifest's directory), then
// drives the full compile_regex -> build_lexer -> grammar.Load ->
// parsergen.Generate pipeline. Every error this returns is a build error
// (exit code 1).
func buildFromManifest(path string) (*built, error) {
	m, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	base := filepath.Dir(path)

	regexData, err := os.ReadFile(filepath.Join(base, m.RegexEntries))
	if err != nil {
		return nil, &config.Error{Path: m.RegexEntries, Err: err}
	}
	entries, order, err := parseRegexEntries(string(regexData))
	if err != nil {
		return nil, err
	}

	classDFAs := make([]lexerbuilder.ClassDFA, 0, len(order))
	dfaByName := make(map[string]*automaton.DFA, len(order))
	for _, name := range order {
		d, err := regexcompiler.CompilePattern(entries[name])
		if err != nil {
			return nil, err
		}
		classDFAs = append(classDFAs, lexerbuilder.ClassDFA{Name: name, DFA: d})
		dfaByName[name] = d
	}

	lex, err := lexerbuilder.BuildLexer(classDFAs)
	if err != nil {
		return nil, err
	}

	grammarData, err := os.ReadFile(filepath.Join(base, m.Grammar))
	if err != nil {
		return nil, &config.Error{Path: m.Grammar, Err: err}
	}
	g, err := grammar.Load(string(grammarData), m.ReservedWords)
	if err != nil {
		return nil, err
	}

	tables, err := parsergen.Generate(g)
	if err != nil {
		return nil, err
	}

	return &built{
		Lexer:      lex,
		ClassOrder: order,
		ClassDFAs:  dfaByName,
		Grammar:    g,
		Tables:     tables,
	}, nil
}

// parseRegexEntries parses the "className: regex" text format, one entry
// per non-blank line, preserving declaration order (which is the
// priority order lexerbuilder.BuildLexer expects).
func parseRegexEntries(source string) (map[string]string, []string, error) {
	entries := make(map[string]string)
	var order []string

	for lineNo, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			return nil, nil, fmt.Errorf("regex entries: line %d: missing ':' separator", lineNo+1)
		}
		name := strings.TrimSpace(line[:idx])
		pattern := strings.TrimSpace(line[idx+1:])
		if name == "" {
			return nil, nil, fmt.Errorf("regex entries: line %d: empty class name", lineNo+1)
		}
		if _, exists := entries[name]; exists {
			return nil, nil, &lexerbuilder.DuplicateClassError{ClassName: name}
		}
		entries[name] = pattern
		order = append(order, name)
	}

	return entries, order, nil
}

func readInput(r io.Reader, inputPath string) (string, error) {
	if inputPath == "" {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
