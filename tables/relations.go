package tables

import (
	"github.com/emirpasic/gods/sets/hashset"
)

func newSet(items ...string) *hashset.Set {
	set := hashset.New()
	for _, item := range items {
		set.Add(item)
	}
	return set
}

// Relation is a many-to-many legality relation between EWTS letters: it maps
// a letter to the set of letters or "+"-joined clusters it may combine with.
// What "combine" means depends on the relation, e.g. for superscripts it is
// the set of letters or stacks the superscript may sit above.
//
// Relations returned by this package are shared and must not be modified.
type Relation map[string]*hashset.Set

// Has is true if letter is a key of the relation, e.g. if letter is a
// superscript at all.
func (rel Relation) Has(letter string) bool {
	_, ok := rel[letter]
	return ok
}

// Allows is true if letter may combine with other.
func (rel Relation) Allows(letter, other string) bool {
	set, ok := rel[letter]
	if !ok {
		return false
	}
	return set.Contains(other)
}

// Without returns a copy of the relation where letter is still a key, but
// allows no combinations. Clients use this to test the effect of missing
// table entries; the receiver is left untouched.
func (rel Relation) Without(letter string) Relation {
	cp := make(Relation, len(rel))
	for k, v := range rel {
		cp[k] = v
	}
	cp[letter] = hashset.New()
	T().Debugf("relation copy with no combinations for %q", letter)
	return cp
}

// superscript => set of letters or stacks below
var superscripts = Relation{
	"r": newSet(
		"k", "g", "ng", "j", "ny", "t", "d", "n", "b", "m", "ts", "dz", "k+y",
		"g+y", "m+y", "b+w", "ts+w", "g+w",
	),
	"l": newSet(
		"k", "g", "ng", "c", "j", "t", "d", "p", "b", "h",
	),
	"s": newSet(
		"k", "g", "ng", "ny", "t", "d", "n", "p", "b", "m", "ts", "k+y", "g+y",
		"p+y", "b+y", "m+y", "k+r", "g+r", "p+r", "b+r", "m+r", "n+r",
	),
}

// subscript => set of letters or stacks above
var subscripts = Relation{
	"y": newSet(
		"k", "kh", "g", "p", "ph", "b", "m", "r+k", "r+g", "r+m", "s+k", "s+g",
		"s+p", "s+b", "s+m",
	),
	"r": newSet(
		"k", "kh", "g", "t", "th", "d", "n", "p", "ph", "b", "m", "sh", "s", "h",
		"dz", "s+k", "s+g", "s+p", "s+b", "s+m", "s+n",
	),
	"l": newSet(
		"k", "g", "b", "r", "s", "z",
	),
	"w": newSet(
		"k", "kh", "g", "c", "ny", "t", "d", "ts", "tsh", "zh", "z", "r", "l",
		"sh", "s", "h", "g+r", "d+r", "ph+y", "r+g", "r+ts",
	),
}

// prefix => set of consonants or stacks after
var prefixes = Relation{
	"g": newSet(
		"c", "ny", "t", "d", "n", "ts", "zh", "z", "y", "sh", "s",
	),
	"d": newSet(
		"k", "g", "ng", "p", "b", "m", "k+y", "g+y", "p+y", "b+y", "m+y", "k+r",
		"g+r", "p+r", "b+r",
	),
	"b": newSet(
		"k", "g", "c", "t", "d", "ts", "zh", "z", "sh", "s", "r", "l", "k+y",
		"g+y", "k+r", "g+r", "r+l", "s+l", "r+k", "r+g", "r+ng", "r+j", "r+ny",
		"r+t", "r+d", "r+n", "r+ts", "r+dz", "s+k", "s+g", "s+ng", "s+ny", "s+t",
		"s+d", "s+n", "s+ts", "r+k+y", "r+g+y", "s+k+y", "s+g+y", "s+k+r", "s+g+r",
		"l+d", "l+t", "k+l", "s+r", "z+l", "s+w",
	),
	"m": newSet(
		"kh", "g", "ng", "ch", "j", "ny", "th", "d", "n", "tsh", "dz", "kh+y",
		"g+y", "kh+r", "g+r",
	),
	"'": newSet(
		"kh", "g", "ch", "j", "th", "d", "ph", "b", "tsh", "dz", "kh+y", "g+y",
		"ph+y", "b+y", "kh+r", "g+r", "d+r", "ph+r", "b+r",
	),
}

// 2nd suffix => set of letters before
var suffixes2 = Relation{
	"s": newSet(
		"g", "ng", "b", "m",
	),
	"d": newSet(
		"n", "r", "l",
	),
}

// Suffix letters. Some Sanskrit letters are included because they often occur
// in suffix position in Sanskrit words.
var suffixes = newSet(
	"'", "g", "ng", "d", "n", "b", "m", "r", "l", "s", "N", "T", "-n", "-t",
)

// 2nd suffixes which may follow "'" as a 1st suffix, as in "pa'm", "pa'ng".
var affixedSuffixes2 = newSet("ng", "m")

// Superscripts returns the relation superscript => letters below.
func Superscripts() Relation { return superscripts }

// Subscripts returns the relation subscript => letters above.
func Subscripts() Relation { return subscripts }

// Prefixes returns the relation prefix => letters after.
func Prefixes() Relation { return prefixes }

// Suffixes2 returns the relation 2nd suffix => letters before.
func Suffixes2() Relation { return suffixes2 }

// IsSuffix is true if s may be used as a (1st) suffix.
func IsSuffix(s string) bool {
	return suffixes.Contains(s)
}

// IsAffixedSuffix2 is true if s may be used as a 2nd suffix after a "'".
func IsAffixedSuffix2(s string) bool {
	return affixedSuffixes2.Contains(s)
}

// --- Ambiguous syllables ---------------------------------------------------

// Ambiguity records the root letter of a three-letter syllable which could
// be parsed in more than one way.
type Ambiguity struct {
	Root  int    // index of the root letter
	Wylie string // canonical spelling
}

var ambiguous = map[string]Ambiguity{
	"dgs":  {1, "dgas"},
	"dms":  {1, "dmas"},
	"dngs": {0, "dangs"},
	"'gs":  {1, "'gas"},
	"'bs":  {1, "'bas"},
	"mngs": {0, "mangs"},
	"mgs":  {0, "mags"},
	"bgs":  {0, "bags"},
	"dbs":  {1, "dbas"},
}

// Ambiguous looks up a syllable, written as its bare consonants without
// vowels (e.g., "dgs"), in the table of ambiguous syllables.
func Ambiguous(consonants string) (Ambiguity, bool) {
	a, ok := ambiguous[consonants]
	return a, ok
}
