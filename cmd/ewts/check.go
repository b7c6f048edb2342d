package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [file...]",
		Short: "Check EWTS files for transliteration mistakes",
		Long:  `Check converts EWTS input and reports diagnostics only. It exits with status 1 if there are any`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := convertInputs(cmd.Context(), a.cfg, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			n := 0
			for i := range results {
				results[i].Text = ""
				n += len(results[i].Diagnostics)
			}
			if a.cfg.Format == "text" {
				newDiagPrinter(cmd.OutOrStdout(), a.cfg.Color).print(results)
			} else if err := writeResults(cmd.OutOrStdout(), a.cfg.Format, results); err != nil {
				return err
			}
			if n > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d diagnostic(s)\n", n)
				return errDiagnostics
			}
			return nil
		},
	}
	addConversionFlags(cmd)
	return cmd
}
