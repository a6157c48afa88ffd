package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/lemmon"
	"github.com/jafaripur/avicenna-logic-system/proof"
	"github.com/jafaripur/avicenna-logic-system/rules"
)

func newLemmonCmd() *cobra.Command {
	var jsonInput bool
	cmd := &cobra.Command{
		Use:   "lemmon <file>",
		Short: "Parse a Lemmon-style deduction and report the detected rule per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var lines []proof.Line
			if jsonInput {
				lines, err = lemmon.ParseJSON(content)
			} else {
				lines, err = lemmon.Parse(string(content))
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LINE\tFORMULA\tAUTO\tUSER RULE\tDETECTED\tOK")
			for _, l := range lines {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\n",
					l.LineNumber, ast.Print(l.AST), l.AutoType, l.UserRule, l.DetectedRule,
					rules.CheckUserRuleIsValid(l))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonInput, "json", false, "treat <file> as a JSON proof submission")
	return cmd
}
