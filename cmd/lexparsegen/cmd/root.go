// Package cmd implements the lexparsegen command-line front end: a cobra
// command tree mirroring CWBudde-go-dws's cmd/dwscript/cmd (a persistent
// --verbose flag, subcommands delegating to RunE) and sunholo-data-ailang's
// cmd/ailang (cobra root plus colorized diagnostics via fatih/color).
package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool
var noColor bool

var rootCmd = &cobra.Command{
	Use:   "lexparsegen",
	Short: "Compile regex/grammar manifests into lexers and SLR(1) parsers",
	Long: `lexparsegen builds a longest-match lexer and an SLR(1) parser from a
manifest that names a regex-entries file and a grammar file, then lets you
scan, parse, and inspect the generated tables from the command line.`,
}

// Execute runs the root command against os.Args.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "accepted by every subcommand; no subcommand changes its output for it")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized diagnostics output")
}
