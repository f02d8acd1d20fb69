package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dumpDFAClass string

var dumpDFACmd = &cobra.Command{
	Use:   "dump-dfa <manifest>",
	Short: "Emit the on-disk DFA format for one token class's compiled DFA",
	Args:  cobra.ExactArgs(1),
	RunE:  runDumpDFA,
}

func init() {
	rootCmd.AddCommand(dumpDFACmd)
	dumpDFACmd.Flags().StringVar(&dumpDFAClass, "class", "", "token class whose DFA to dump (required)")
}

func runDumpDFA(cmd *cobra.Command, args []string) error {
	if dumpDFAClass == "" {
		return exitError(exitBuildError, fmt.Errorf("dump-dfa: --class is required"))
	}

	b, err := buildFromManifest(args[0])
	if err != nil {
		renderBuildError(cmd, err)
		return exitError(exitBuildError, err)
	}

	d, ok := b.ClassDFAs[dumpDFAClass]
	if !ok {
		return exitError(exitBuildError, fmt.Errorf("dump-dfa: no token class %q in manifest", dumpDFAClass))
	}

	d.Dump(cmd.OutOrStdout())
	return nil
}
