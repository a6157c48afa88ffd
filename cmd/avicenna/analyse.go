package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/fingerprint"
	"github.com/jafaripur/avicenna-logic-system/lemmon"
	"github.com/jafaripur/avicenna-logic-system/truthtable"
)

func newAnalyseCmd() *cobra.Command {
	var parallel bool
	cmd := &cobra.Command{
		Use:   "analyse <file>",
		Short: "Run the truth-table analyser over a Lemmon proof file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			lines, err := lemmon.Parse(string(content))
			if err != nil {
				return err
			}

			result := truthtable.Analyse(lines, truthtable.Options{Parallel: parallel})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "variables: %s\n", strings.Join(result.Variables, ", "))
			fmt.Fprintf(out, "combinations: %d\n", len(result.Combinations))
			fmt.Fprintf(out, "valid: %t\n\n", result.Valid)

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LINE\tFORMULA\tCLASSIFICATION")
			for i, pl := range result.PerLine {
				fmt.Fprintf(w, "%d\t%s\t%s\n", lines[i].LineNumber, ast.Print(pl.Expression), pl.Classification)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if !result.Valid {
				fmt.Fprintln(out, "\ncounter-examples:")
				for _, ce := range result.CounterExamples {
					fmt.Fprintln(out, formatAssignment(result.Variables, ce))
				}
			}

			digest, err := fingerprint.Of(result)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nfingerprint: %s\n", digest)
			return nil
		},
	}
	cmd.Flags().BoolVar(&parallel, "parallel", false, "evaluate assignments concurrently")
	return cmd
}

func formatAssignment(variables []string, a ast.Assignment) string {
	parts := make([]string, len(variables))
	for i, v := range variables {
		parts[i] = fmt.Sprintf("%s=%t", v, a[v])
	}
	return "  " + strings.Join(parts, ", ")
}
