package normalize

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Mode selects a set of repairs.
type Mode int

// Repair modes.
const (
	None Mode = iota
	Sloppy
	Lenient
)

const modename = "nonesloppylenient"

var modeindex = [...]uint8{0, 4, 10, 17}

func (m Mode) String() string {
	if m < None || m > Lenient {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modename[modeindex[m]:modeindex[m+1]]
}

// ErrUnknownMode is returned by ParseMode for an unknown mode name.
var ErrUnknownMode = errors.New("normalize: unknown mode")

// ParseMode returns the mode for a name as returned by Mode.String.
// The empty string is mode None.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return None, nil
	}
	for m := None; m <= Lenient; m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Replacements are EWTS text. Tibetan characters are therefore produced as
// EWTS escapes, which the converter decodes.
type replacement struct {
	from, to string
}

var apostrophes = []replacement{
	{"\u02bc", "'"},
	{"\u02b9", "'"},
	{"\u2018", "'"},
	{"\u2019", "'"},
	{"\u02be", "'"},
	{"x", `\u0fbe`},
	{"X", `\u0fbe`},
	{"...", `\u0f0b\u0f0b\u0f0b`},
}

var sloppy = append(append([]replacement{}, apostrophes...), []replacement{
	{" (", "_("},
	{") ", ")_"},
	{"/ ", "/_"},
	{" 0", "_0"},
	{" 1", "_1"},
	{" 2", "_2"},
	{" 3", "_3"},
	{" 4", "_4"},
	{" 5", "_5"},
	{" 6", "_6"},
	{" 7", "_7"},
	{" 8", "_8"},
	{" 9", "_9"},
	{"_ ", "__"},
	{"G", "g"},
	{"K", "k"},
	{"C", "c"},
	{"B", "b"},
	{" b ", " ba "},
	{"Ts", "ts"},
	{"Dz", "dz"},
	{"Ny", "ny"},
	{"Ng", "ng"},
	{" m ", " ma "},
	{" m'i ", " ma'i "},
	{" b'i ", " ba'i "},
	{"P", "p"},
	{"L", "l"},
	{"Z", "z"},
	{"J", "j"},
	{"\uff08", "("}, // full-width
	{"\uff09", ")"},
	{"\u0f3c", "("},
	{"\u0f3d", ")"},
	{"\uff1a", ":"},
	{"H ", "H"},
	{"adm", "ad+m"},
}...)

// After NFC, decomposed sequences only survive where no precomposed letter
// exists. They are kept in the list together with their precomposed form.
var lenient = append(append([]replacement{}, apostrophes...), []replacement{
	{"-i", "i"},
	{"-", " "},
	{"\uff1a", ":"},
	{"adm", "ad+m"},
	{"\u0304", ""}, // macron
	{"\u1e25", "'"},
	{"h\u0323", "'"},
	{"\u1e63", "sh"},
	{"m\u0323", "M"},
	{"\u1e43", "M"},
	{"s\u0323", "sh"},
	{"\u0323", ""}, // dot below
	{"\u0310", ""},
	{"\u015b", "sh"},
	{"\u017a", "zh"},
	{"\u0301", "h"}, // acute
	{"\u00f1", "ny"},
	{"n\u0303", "ny"},
	{"\u1e45", "ng"},
	{"n\u0307", "ng"},
	{"\u0101", "a"},
	{"\u012b", "i"},
	{"\u016b", "u"},
	{"\u1e41", "M"},
	{"\u1e6d", "t"},
	{"\u1e0d", "d"},
	{"\u1e47", "n"},
	{"q ", "H"},
	{"q", "H"},
	{"!", "M"},
}...)

// Apply repairs s according to mode. Replacements are applied one after
// the other, each one to the result of its predecessor. Mode None returns
// s unchanged.
func Apply(mode Mode, s string) string {
	var list []replacement
	switch mode {
	case Sloppy:
		list = sloppy
	case Lenient:
		list = lenient
	default:
		return s
	}
	s = norm.NFC.String(s)
	n := 0
	for _, r := range list {
		if strings.Contains(s, r.from) {
			s = strings.ReplaceAll(s, r.from, r.to)
			n++
		}
	}
	T().P("mode", mode).Debugf("applied %d replacement(s)", n)
	return s
}
