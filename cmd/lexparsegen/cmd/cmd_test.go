package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture lays out a manifest plus the regex-entries and grammar
// files it names, returning the manifest path.
func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "tokens.lex"), []byte(
		"NUM: [0-9]+\nID: [a-z]+\nPLUS: \\+\nSTAR: \\*\nLPAREN: \\(\nRPAREN: \\)\n",
	), 0o644))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "expr.grm"), []byte(
		"E ::= E PLUS T\nE ::= T\nT ::= T STAR F\nT ::= F\nF ::= LPAREN E RPAREN\nF ::= ID\nF ::= NUM\n",
	), 0o644))

	manifestPath := filepath.Join(dir, "manifest.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(
		"regexEntries: tokens.lex\ngrammar: expr.grm\nreservedWords: []\n",
	), 0o644))

	return manifestPath
}

// runCLI executes rootCmd with args, resetting the flag-backed globals
// each test mutates so runs don't leak state into one another.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	lexInput, lexStrict = "", false
	parseInput, parseTrace = "", false
	dumpDFAClass = ""
	verbose, noColor = false, true

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestCLI_LexPrintsTokenStream(t *testing.T) {
	manifest := writeFixture(t)
	dir := filepath.Dir(manifest)
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("x1 + 2"), 0o644))

	stdout, _, err := runCLI(t, "lex", manifest, "--input", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ID")
	assert.Contains(t, stdout, "PLUS")
	assert.Contains(t, stdout, "NUM")
}

func TestCLI_ParseAcceptsValidExpression(t *testing.T) {
	manifest := writeFixture(t)
	dir := filepath.Dir(manifest)
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("( a + b ) * c"), 0o644))

	stdout, _, err := runCLI(t, "parse", manifest, "--input", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "accept")
}

func TestCLI_ParseRejectsMalformedExpression_ExitCode3(t *testing.T) {
	manifest := writeFixture(t)
	dir := filepath.Dir(manifest)
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("a + + b"), 0o644))

	_, _, err := runCLI(t, "parse", manifest, "--input", input)
	require.Error(t, err)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, exitParseRejected, exitErr.Code)
}

func TestCLI_BuildErrorOnMissingManifest_ExitCode1(t *testing.T) {
	_, _, err := runCLI(t, "lex", "/no/such/manifest.yaml")
	require.Error(t, err)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, exitBuildError, exitErr.Code)
}

func TestCLI_LexStrictModeExitsTwoOnErrorToken(t *testing.T) {
	manifest := writeFixture(t)
	dir := filepath.Dir(manifest)
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("x @ y"), 0o644))

	_, _, err := runCLI(t, "lex", manifest, "--input", input, "--strict")
	require.Error(t, err)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, exitStrictScan, exitErr.Code)
}

func TestCLI_TablePrintsFirstFollowAndActionGoto(t *testing.T) {
	manifest := writeFixture(t)
	stdout, _, err := runCLI(t, "table", manifest)
	require.NoError(t, err)
	assert.Contains(t, stdout, "FIRST SETS:")
	assert.Contains(t, stdout, "FOLLOW SETS:")
	assert.Contains(t, stdout, "ACTION/GOTO TABLE:")
}

func TestCLI_DumpDFARequiresClassFlag(t *testing.T) {
	manifest := writeFixture(t)
	_, _, err := runCLI(t, "dump-dfa", manifest)
	require.Error(t, err)
}

func TestCLI_DumpDFAPrintsOnDiskFormat(t *testing.T) {
	manifest := writeFixture(t)
	stdout, _, err := runCLI(t, "dump-dfa", manifest, "--class", "NUM")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
}
