package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plaaxer/lexparsegen/internal/diagnostics"
	"github.com/plaaxer/lexparsegen/internal/scanner"
)

var (
	lexInput  string
	lexStrict bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <manifest>",
	Short: "Build the lexer from a manifest and scan input, printing the token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVar(&lexInput, "input", "", "file to scan (default: stdin)")
	lexCmd.Flags().BoolVar(&lexStrict, "strict", false, "exit with code 2 if any error token is scanned")
}

func runLex(cmd *cobra.Command, args []string) error {
	b, err := buildFromManifest(args[0])
	if err != nil {
		renderBuildError(cmd, err)
		return exitError(exitBuildError, err)
	}

	input, err := readInput(cmd.InOrStdin(), lexInput)
	if err != nil {
		return exitError(exitBuildError, err)
	}

	tokens := scanner.Scan(b.Lexer, input)

	errorCount := 0
	for _, tok := range tokens {
		fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Class, tok.Lexeme)
		if tok.Class == scanner.ErrorClass {
			errorCount++
		}
	}

	if lexStrict && errorCount > 0 {
		err := fmt.Errorf("scan produced %d error token(s)", errorCount)
		return exitError(exitStrictScan, err)
	}
	return nil
}

func renderBuildError(cmd *cobra.Command, err error) {
	if reportable, ok := err.(diagnostics.Reportable); ok {
		diagnostics.Render(cmd.ErrOrStderr(), reportable.Report(), !noColor)
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), err)
}
