package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/sequent"
)

func newSequentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sequent <text>",
		Short: "Split a one-line sequent into premises and conclusion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := sequent.Parse(args[0])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LINE\tTYPE\tFORMULA")
			for _, p := range result.Premises {
				fmt.Fprintf(w, "%d\tPremise\t%s\n", p.LineNumber, ast.Print(p.AST))
			}
			fmt.Fprintf(w, "%d\tConclusion\t%s\n", result.Conclusion.LineNumber, ast.Print(result.Conclusion.AST))
			return w.Flush()
		},
	}
}
