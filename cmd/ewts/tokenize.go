package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ewts/tables"
	"github.com/npillmayer/ewts/tokenize"
	"github.com/npillmayer/ewts/wylie"
	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/spf13/cobra"
)

func newTokenizeCmd(a *app) *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "tokenize [flags] text...",
		Short: "Show the EWTS tokens of a text",
		Long:  `Tokenize splits EWTS text into tokens and prints them with their byte position and category`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			out := cmd.OutOrStdout()
			tz := tokenize.NewTokenizer(input)
			for {
				cat, tok, pos, _ := tz.NextToken(nil)
				if cat == scanner.EOF {
					break
				}
				fmt.Fprintf(out, "%4d  %-12s %q\n", pos, tokenize.Category(cat), tok)
			}
			if !explain {
				return nil
			}
			conv, err := wylie.New(a.cfg.Options())
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			for _, r := range conv.Convert(input, nil) {
				name, ok := tables.Name(r)
				if !ok {
					name = "?"
				}
				fmt.Fprintf(out, "%U  %c  %s\n", r, r, name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "convert and name every resulting code point")
	return cmd
}
