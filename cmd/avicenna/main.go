// Command avicenna is a thin CLI over the four core operations: parse a bare
// formula, split a one-line sequent, parse a Lemmon-style proof, and analyse
// a proof's truth table and validity.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "avicenna",
		Short:         "Parse and analyse classical propositional logic",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newFormulaCmd())
	root.AddCommand(newSequentCmd())
	root.AddCommand(newLemmonCmd())
	root.AddCommand(newAnalyseCmd())
	return root
}
