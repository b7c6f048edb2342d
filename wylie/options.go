package wylie

import (
	"errors"

	"github.com/npillmayer/ewts/tables"
)

// Options control a Converter. They are fixed for the lifetime of the
// Converter.
type Options struct {
	Check         bool // validate syllable orthography
	CheckStrict   bool // finer grained validation, requires Check
	PrintWarnings bool // trace every diagnostic as it is produced
	FixSpacing    bool // strip leading spaces, collapse runs of spaces
}

// DefaultOptions turn on strict checking and spacing repair.
var DefaultOptions = Options{
	Check:       true,
	CheckStrict: true,
	FixSpacing:  true,
}

// ErrStrictRequiresCheck is returned for options with CheckStrict set but
// Check unset.
var ErrStrictRequiresCheck = errors.New("wylie: strict checking requires checking to be enabled")

// rules are the legality relations a converter validates against.
type rules struct {
	superscripts tables.Relation
	subscripts   tables.Relation
	prefixes     tables.Relation
	suffixes2    tables.Relation
}

var standardRules = &rules{
	superscripts: tables.Superscripts(),
	subscripts:   tables.Subscripts(),
	prefixes:     tables.Prefixes(),
	suffixes2:    tables.Suffixes2(),
}

// Converter converts EWTS to Tibetan Unicode.
type Converter struct {
	opts  Options
	rules *rules
}

// New creates a Converter. It fails with ErrStrictRequiresCheck for an
// invalid combination of options.
func New(opts Options) (*Converter, error) {
	if opts.CheckStrict && !opts.Check {
		return nil, ErrStrictRequiresCheck
	}
	return &Converter{opts: opts, rules: standardRules}, nil
}

// MustNew is like New, but panics for invalid options.
func MustNew(opts Options) *Converter {
	conv, err := New(opts)
	if err != nil {
		panic(err)
	}
	return conv
}

// Options returns the options the converter has been created with.
func (conv *Converter) Options() Options {
	return conv.opts
}
