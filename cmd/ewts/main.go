/*
Command ewts converts EWTS (Extended Wylie) transliteration to Tibetan
Unicode.

	ewts convert [flags] [file...]
	ewts check [flags] [file...]
	ewts tokenize [--explain] text...
	ewts version

Without file arguments, convert and check read from standard input.
Settings are taken from an optional configuration file (--config, TOML or
YAML), EWTS_* environment variables and flags, in this order.
*/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/ewts/internal/config"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// errDiagnostics signals a successful run which found problems in the
// input. It is reported through the exit status only.
var errDiagnostics = errors.New("diagnostics found")

// app carries the configuration from the root command to sub-commands.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "ewts",
		Short:             "Convert EWTS (Extended Wylie) to Tibetan Unicode",
		Long:              `ewts converts Extended Wylie transliteration to Tibetan Unicode and checks Tibetan orthography`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "configuration file (.toml, .yaml, .yml)")
	pf.String("color", "auto", "colorize diagnostics (auto|on|off)")
	pf.String("trace", "error", "trace level (error|info|debug)")
	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newTokenizeCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

// setup loads the configuration and lets flags override it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	level := cfg.TraceLevel()
	if cfg.PrintWarnings && level == tracing.LevelError {
		level = tracing.LevelInfo // warnings are traced at level info
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	a.cfg = cfg
	return nil
}

// applyFlags copies every flag set on the command line into cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	for _, b := range []struct {
		name string
		dst  *bool
	}{
		{"check", &cfg.Check},
		{"strict", &cfg.Strict},
		{"fix-spacing", &cfg.FixSpacing},
		{"print-warnings", &cfg.PrintWarnings},
	} {
		if !flags.Changed(b.name) {
			continue
		}
		v, err := flags.GetBool(b.name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", b.name, err)
		}
		*b.dst = v
	}
	cfg.FollowCheck(flags.Changed("check"), flags.Changed("strict"))
	for _, s := range []struct {
		name string
		dst  *string
	}{
		{"normalize", &cfg.Normalize},
		{"format", &cfg.Format},
		{"color", &cfg.Color},
		{"trace", &cfg.Trace},
	} {
		if !flags.Changed(s.name) {
			continue
		}
		v, err := flags.GetString(s.name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", s.name, err)
		}
		*s.dst = v
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "ewts: %v\n", err)
		}
		os.Exit(1)
	}
}
