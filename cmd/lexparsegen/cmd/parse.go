package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plaaxer/lexparsegen/internal/diagnostics"
	"github.com/plaaxer/lexparsegen/internal/grammar"
	"github.com/plaaxer/lexparsegen/internal/parsedriver"
	"github.com/plaaxer/lexparsegen/internal/scanner"
)

var (
	parseInput string
	parseTrace bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <manifest>",
	Short: "Build the lexer and SLR(1) parser, then scan and parse input",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&parseInput, "input", "", "file to parse (default: stdin)")
	parseCmd.Flags().BoolVar(&parseTrace, "trace", false, "print the shift/reduce action trace")
}

func runParse(cmd *cobra.Command, args []string) error {
	b, err := buildFromManifest(args[0])
	if err != nil {
		renderBuildError(cmd, err)
		return exitError(exitBuildError, err)
	}

	input, err := readInput(cmd.InOrStdin(), parseInput)
	if err != nil {
		return exitError(exitBuildError, err)
	}

	scanned := scanner.Scan(b.Lexer, input)
	tokens := make([]parsedriver.Token, len(scanned))
	for i, tok := range scanned {
		tokens[i] = parsedriver.Token{
			Symbol: grammar.Symbol(tok.Class),
			Lexeme: tok.Lexeme,
			Line:   tok.Line,
			Column: tok.Column,
		}
	}

	var tracer *parsedriver.Tracer
	if parseTrace {
		tracer = parsedriver.NewTracer(cmd.OutOrStdout())
	}

	_, err = parsedriver.Parse(b.Tables, tokens, tracer)
	if err != nil {
		if reportable, ok := err.(diagnostics.Reportable); ok {
			diagnostics.Render(cmd.ErrOrStderr(), reportable.Report(), !noColor)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "reject")
		return exitError(exitParseRejected, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "accept")
	return nil
}
