package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is the version of the ewts command. It may be overridden at build
// time via -ldflags.
var Version = "0.1.0"

const versionTagline = "Extended Wylie to Tibetan Unicode"

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version of ewts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			v := color.New(color.FgYellow, color.Bold)
			if useColor(out, a.cfg.Color) {
				v.EnableColor()
			} else {
				v.DisableColor()
			}
			_, err := fmt.Fprintf(out, "ewts %s: %s\n", v.Sprint(Version), versionTagline)
			return err
		},
	}
}
