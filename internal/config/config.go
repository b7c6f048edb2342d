// Package config holds the configuration of the ewts command.
//
// Configuration is layered: defaults, an optional file (TOML or YAML),
// EWTS_* environment variables, and finally command-line flags, each
// overriding the previous layer.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/ewts/normalize"
	"github.com/npillmayer/ewts/wylie"
	"github.com/npillmayer/schuko/tracing"
)

// Config is the configuration of the ewts command.
type Config struct {
	Check         bool   `toml:"check" yaml:"check"`
	Strict        bool   `toml:"strict" yaml:"strict"`
	FixSpacing    bool   `toml:"fix_spacing" yaml:"fix_spacing"`
	PrintWarnings bool   `toml:"print_warnings" yaml:"print_warnings"`
	Normalize     string `toml:"normalize" yaml:"normalize"` // none, sloppy or lenient
	Format        string `toml:"format" yaml:"format"`       // text, json or msgpack
	Color         string `toml:"color" yaml:"color"`         // auto, on or off
	Trace         string `toml:"trace" yaml:"trace"`         // error, info or debug
}

// Defaults returns the configuration used when nothing else is configured.
// Conversion options match wylie.DefaultOptions.
func Defaults() *Config {
	opts := wylie.DefaultOptions
	return &Config{
		Check:         opts.Check,
		Strict:        opts.CheckStrict,
		FixSpacing:    opts.FixSpacing,
		PrintWarnings: opts.PrintWarnings,
		Normalize:     normalize.None.String(),
		Format:        "text",
		Color:         "auto",
		Trace:         "error",
	}
}

// Configuration errors.
var (
	ErrInvalidFormat = errors.New("invalid output format")
	ErrInvalidColor  = errors.New("invalid color mode")
	ErrInvalidTrace  = errors.New("invalid trace level")
)

// Formats lists the supported output formats.
var Formats = []string{"text", "json", "msgpack"}

var colorModes = []string{"auto", "on", "off"}

var traceLevels = map[string]tracing.TraceLevel{
	"error": tracing.LevelError,
	"info":  tracing.LevelInfo,
	"debug": tracing.LevelDebug,
}

func oneOf(s string, values []string) bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if _, err := wylie.New(c.Options()); err != nil {
		return err
	}
	if _, err := normalize.ParseMode(c.Normalize); err != nil {
		return err
	}
	if !oneOf(c.Format, Formats) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	if !oneOf(c.Color, colorModes) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.Color)
	}
	if _, ok := traceLevels[c.Trace]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTrace, c.Trace)
	}
	return nil
}

// Options returns the converter options.
func (c *Config) Options() wylie.Options {
	return wylie.Options{
		Check:         c.Check,
		CheckStrict:   c.Strict,
		FixSpacing:    c.FixSpacing,
		PrintWarnings: c.PrintWarnings,
	}
}

// Mode returns the normalization mode. Call Validate first, invalid names
// result in normalize.None.
func (c *Config) Mode() normalize.Mode {
	m, _ := normalize.ParseMode(c.Normalize)
	return m
}

// TraceLevel returns the trace level. Call Validate first, invalid names
// result in tracing.LevelError.
func (c *Config) TraceLevel() tracing.TraceLevel {
	if l, ok := traceLevels[c.Trace]; ok {
		return l
	}
	return tracing.LevelError
}

// FollowCheck is applied after each configuration layer (file, environment,
// command line). A layer which sets check to false without setting strict
// turns off strict checking as well.
func (c *Config) FollowCheck(checkSet, strictSet bool) {
	if checkSet && !c.Check && !strictSet {
		c.Strict = false
	}
}

// ApplyEnvOverrides overrides settings from EWTS_* environment variables.
// Boolean variables accept the values understood by strconv.ParseBool.
func (c *Config) ApplyEnvOverrides() error {
	flags := []struct {
		name string
		dst  *bool
	}{
		{"EWTS_CHECK", &c.Check},
		{"EWTS_STRICT", &c.Strict},
		{"EWTS_FIX_SPACING", &c.FixSpacing},
		{"EWTS_PRINT_WARNINGS", &c.PrintWarnings},
	}
	set := make(map[string]bool, len(flags))
	for _, f := range flags {
		v, ok := os.LookupEnv(f.name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = b
		set[f.name] = true
	}
	c.FollowCheck(set["EWTS_CHECK"], set["EWTS_STRICT"])
	if v := os.Getenv("EWTS_NORMALIZE"); v != "" {
		c.Normalize = strings.ToLower(v)
	}
	if v := os.Getenv("EWTS_FORMAT"); v != "" {
		c.Format = strings.ToLower(v)
	}
	if v := os.Getenv("EWTS_COLOR"); v != "" {
		c.Color = strings.ToLower(v)
	}
	if v := os.Getenv("EWTS_TRACE"); v != "" {
		c.Trace = strings.ToLower(v)
	}
	return nil
}
