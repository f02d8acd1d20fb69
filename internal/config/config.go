// Package config loads the manifest file that points the CLI at a
// regex-entries file, a grammar file, and a reserved-word list, so a
// lexer/parser pair can be assembled from one path instead of several
// flags. This package reads only the manifest itself; the CLI reads the
// regex-entries and grammar files the manifest names. regexcompiler,
// lexerbuilder, grammar, and parsergen all operate on already-read
// strings.
//
// Grounded on the teacher's lang/langdef package, which assembles a
// LexicalGrammar + SyntacticGrammar pair from one place, generalized from
// Go literal builders to a YAML document.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest names the three inputs a full build needs.
type Manifest struct {
	RegexEntries  string   `yaml:"regexEntries"`
	Grammar       string   `yaml:"grammar"`
	ReservedWords []string `yaml:"reservedWords"`
}

// Load reads and unmarshals the YAML manifest at path. A missing or
// malformed manifest is returned as a *Error wrapping the underlying
// error with path, never a panic.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return &m, nil
}
