package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/parser"
)

func newFormulaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formula <text>",
		Short: "Parse a formula and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ast.Print(expr))
			return nil
		},
	}
}
