package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/npillmayer/ewts/internal/config"
	"github.com/npillmayer/ewts/normalize"
	"github.com/npillmayer/ewts/wylie"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// stdinName names standard input in results and diagnostics.
const stdinName = "-"

// fileResult is the conversion of one input.
type fileResult struct {
	Name        string             `json:"name" msgpack:"name"`
	Text        string             `json:"text,omitempty" msgpack:"text,omitempty"`
	Diagnostics []wylie.Diagnostic `json:"diagnostics" msgpack:"diagnostics"`
}

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags] [file...]",
		Short: "Convert EWTS files to Tibetan Unicode",
		Long:  `Convert reads EWTS from files or standard input and writes Tibetan Unicode to standard output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := convertInputs(cmd.Context(), a.cfg, args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if a.cfg.Format == "text" {
				newDiagPrinter(cmd.ErrOrStderr(), a.cfg.Color).print(results)
			}
			return writeResults(cmd.OutOrStdout(), a.cfg.Format, results)
		},
	}
	addConversionFlags(cmd)
	return cmd
}

func addConversionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool("check", true, "validate syllable orthography")
	f.Bool("strict", true, "strict validation, requires --check")
	f.Bool("fix-spacing", true, "strip leading spaces and collapse runs of spaces")
	f.Bool("print-warnings", false, "trace diagnostics as they are found")
	f.String("normalize", "none", "repair input before conversion (none|sloppy|lenient)")
	f.String("format", "text", "output format (text|json|msgpack)")
}

// convertInputs converts files concurrently, or standard input if there
// are no file names. Results are in the order of names.
func convertInputs(ctx context.Context, cfg *config.Config, names []string, stdin io.Reader) ([]fileResult, error) {
	conv, err := wylie.New(cfg.Options())
	if err != nil {
		return nil, err
	}
	mode := cfg.Mode()
	if len(names) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []fileResult{convertText(conv, mode, stdinName, string(data))}, nil
	}
	results := make([]fileResult, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.NumCPU(), len(names)))
	for i, name := range names {
		i, name := i, name // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(name)
			if err != nil {
				return err
			}
			results[i] = convertText(conv, mode, name, string(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func convertText(conv *wylie.Converter, mode normalize.Mode, name, text string) fileResult {
	r := fileResult{Name: name}
	r.Text = conv.Convert(normalize.Apply(mode, text), &r.Diagnostics)
	return r
}

func writeResults(w io.Writer, format string, results []fileResult) error {
	switch format {
	case "text":
		for _, r := range results {
			if _, err := io.WriteString(w, r.Text); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(results)
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(results)
	}
	return fmt.Errorf("unknown format: %s", format)
}

// diagPrinter writes diagnostics as "name:line: message".
type diagPrinter struct {
	w        io.Writer
	location *color.Color
	message  *color.Color
}

func newDiagPrinter(w io.Writer, colorMode string) *diagPrinter {
	p := &diagPrinter{
		w:        w,
		location: color.New(color.Bold),
		message:  color.New(color.FgYellow),
	}
	if useColor(w, colorMode) {
		p.location.EnableColor()
		p.message.EnableColor()
	} else {
		p.location.DisableColor()
		p.message.DisableColor()
	}
	return p
}

// print prints the diagnostics of all results and returns their number.
func (p *diagPrinter) print(results []fileResult) int {
	n := 0
	for _, r := range results {
		for _, d := range r.Diagnostics {
			fmt.Fprintf(p.w, "%s %s\n", p.location.Sprintf("%s:%d:", r.Name, d.Line), p.message.Sprint(d.Message))
			n++
		}
	}
	return n
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
