package tables

// Tables for the reverse direction, Tibetan Unicode => EWTS. They are not
// needed for converting EWTS to Unicode, but clients use them to name the
// characters produced by a conversion.

// top letters
var tibTop = map[rune]string{
	'\u0f40': "k",
	'\u0f41': "kh",
	'\u0f42': "g",
	'\u0f43': "g+h",
	'\u0f44': "ng",
	'\u0f45': "c",
	'\u0f46': "ch",
	'\u0f47': "j",
	'\u0f49': "ny",
	'\u0f4a': "T",
	'\u0f4b': "Th",
	'\u0f4c': "D",
	'\u0f4d': "D+h",
	'\u0f4e': "N",
	'\u0f4f': "t",
	'\u0f50': "th",
	'\u0f51': "d",
	'\u0f52': "d+h",
	'\u0f53': "n",
	'\u0f54': "p",
	'\u0f55': "ph",
	'\u0f56': "b",
	'\u0f57': "b+h",
	'\u0f58': "m",
	'\u0f59': "ts",
	'\u0f5a': "tsh",
	'\u0f5b': "dz",
	'\u0f5c': "dz+h",
	'\u0f5d': "w",
	'\u0f5e': "zh",
	'\u0f5f': "z",
	'\u0f60': "'",
	'\u0f61': "y",
	'\u0f62': "r",
	'\u0f63': "l",
	'\u0f64': "sh",
	'\u0f65': "Sh",
	'\u0f66': "s",
	'\u0f67': "h",
	'\u0f68': "a",
	'\u0f69': "k+Sh",
	'\u0f6a': "R",
}

// subjoined letters
var tibSubjoined = map[rune]string{
	'\u0f90': "k",
	'\u0f91': "kh",
	'\u0f92': "g",
	'\u0f93': "g+h",
	'\u0f94': "ng",
	'\u0f95': "c",
	'\u0f96': "ch",
	'\u0f97': "j",
	'\u0f99': "ny",
	'\u0f9a': "T",
	'\u0f9b': "Th",
	'\u0f9c': "D",
	'\u0f9d': "D+h",
	'\u0f9e': "N",
	'\u0f9f': "t",
	'\u0fa0': "th",
	'\u0fa1': "d",
	'\u0fa2': "d+h",
	'\u0fa3': "n",
	'\u0fa4': "p",
	'\u0fa5': "ph",
	'\u0fa6': "b",
	'\u0fa7': "b+h",
	'\u0fa8': "m",
	'\u0fa9': "ts",
	'\u0faa': "tsh",
	'\u0fab': "dz",
	'\u0fac': "dz+h",
	'\u0fad': "w",
	'\u0fae': "zh",
	'\u0faf': "z",
	'\u0fb0': "'",
	'\u0fb1': "y",
	'\u0fb2': "r",
	'\u0fb3': "l",
	'\u0fb4': "sh",
	'\u0fb5': "Sh",
	'\u0fb6': "s",
	'\u0fb7': "h",
	'\u0fb8': "a",
	'\u0fb9': "k+Sh",
	'\u0fba': "W",
	'\u0fbb': "Y",
	'\u0fbc': "R",
}

// Vowel signs. The a-chen is not included, as it is a top letter.
// Pre-composed "I" and "U" are included; other pre-composed Sanskrit vowels
// decompose into subjoined "r" and "l".
var tibVowel = map[rune]string{
	'\u0f71': "A",
	'\u0f72': "i",
	'\u0f73': "I",
	'\u0f74': "u",
	'\u0f75': "U",
	'\u0f7a': "e",
	'\u0f7b': "ai",
	'\u0f7c': "o",
	'\u0f7d': "au",
	'\u0f80': "-i",
}

// long (Sanskrit) vowels
var tibVowelLong = map[string]string{
	"i":  "I",
	"u":  "U",
	"-i": "-I",
	"e":  "E",
	"o":  "O",
}

// final symbols => EWTS and class
type mark struct {
	wylie string
	class string
}

var tibFinal = map[rune]mark{
	'\u0f7e': {"M", "M"},
	'\u0f82': {"~M`", "M"},
	'\u0f83': {"~M", "M"},
	'\u0f37': {"X", "X"},
	'\u0f35': {"~X", "X"},
	'\u0f39': {"^", "^"},
	'\u0f7f': {"H", "H"},
	'\u0f84': {"?", "?"},
	'\u0f85': {"&", "&"},
}

// special characters introduced by "^"
var tibCaret = map[string]string{
	"ph": "f",
	"b":  "v",
}

// other stand-alone characters
var tibOther = map[rune]string{
	' ':      "_",
	'\u0f04': "@",
	'\u0f05': "#",
	'\u0f06': "$",
	'\u0f07': "%",
	'\u0f08': "!",
	'\u0f0b': " ",
	'\u0f0c': "*",
	'\u0f0d': "/",
	'\u0f0e': "//",
	'\u0f0f': ";",
	'\u0f11': "|",
	'\u0f14': ":",
	'\u0f20': "0",
	'\u0f21': "1",
	'\u0f22': "2",
	'\u0f23': "3",
	'\u0f24': "4",
	'\u0f25': "5",
	'\u0f26': "6",
	'\u0f27': "7",
	'\u0f28': "8",
	'\u0f29': "9",
	'\u0f34': "=",
	'\u0f3a': "<",
	'\u0f3b': ">",
	'\u0f3c': "(",
	'\u0f3d': ")",
}

// Stacked consonant combinations which don't need "+" in EWTS.
var tibStacks = newSet(
	"b+l", "b+r", "b+y", "c+w", "d+r", "d+r+w", "d+w", "dz+r", "g+l", "g+r",
	"g+r+w", "g+w", "g+y", "h+r", "h+w", "k+l", "k+r", "k+w", "k+y", "kh+r",
	"kh+w", "kh+y", "l+b", "l+c", "l+d", "l+g", "l+h", "l+j", "l+k", "l+ng",
	"l+p", "l+t", "l+w", "m+r", "m+y", "n+r", "ny+w", "p+r", "p+y", "ph+r",
	"ph+y", "ph+y+w", "r+b", "r+d", "r+dz", "r+g", "r+g+w", "r+g+y", "r+j",
	"r+k", "r+k+y", "r+l", "r+m", "r+m+y", "r+n", "r+ng", "r+ny", "r+t", "r+ts",
	"r+ts+w", "r+w", "s+b", "s+b+r", "s+b+y", "s+d", "s+g", "s+g+r", "s+g+y",
	"s+k", "s+k+r", "s+k+y", "s+l", "s+m", "s+m+r", "s+m+y", "s+n", "s+n+r",
	"s+ng", "s+ny", "s+p", "s+p+r", "s+p+y", "s+r", "s+t", "s+ts", "s+w",
	"sh+r", "sh+w", "t+r", "t+w", "th+r", "ts+w", "tsh+w", "z+l", "z+w", "zh+w",
)

// TopLetter returns the EWTS for a Tibetan top letter.
func TopLetter(r rune) (string, bool) {
	s, ok := tibTop[r]
	return s, ok
}

// SubjoinedLetter returns the EWTS for a Tibetan subjoined letter.
func SubjoinedLetter(r rune) (string, bool) {
	s, ok := tibSubjoined[r]
	return s, ok
}

// VowelSign returns the EWTS for a Tibetan vowel sign.
func VowelSign(r rune) (string, bool) {
	s, ok := tibVowel[r]
	return s, ok
}

// LongVowel returns the long (Sanskrit) variant of an EWTS vowel, if any.
func LongVowel(v string) (string, bool) {
	s, ok := tibVowelLong[v]
	return s, ok
}

// FinalMark returns the EWTS and the class of a Tibetan final mark.
func FinalMark(r rune) (wylie string, class string, ok bool) {
	f, ok := tibFinal[r]
	return f.wylie, f.class, ok
}

// CaretLetter returns the letter that a base letter followed by "^" stands for,
// e.g. "ph^" for "f".
func CaretLetter(s string) (string, bool) {
	c, ok := tibCaret[s]
	return c, ok
}

// OtherSymbol returns the EWTS for a Tibetan stand-alone symbol.
func OtherSymbol(r rune) (string, bool) {
	s, ok := tibOther[r]
	return s, ok
}

// StackNeedsNoPlus is true for stacks (written with "+", e.g. "g+r") which are
// written without "+" in EWTS.
func StackNeedsNoPlus(stack string) bool {
	return tibStacks.Contains(stack)
}

// Name returns the EWTS name of a single Tibetan code-point, or false if
// r has no EWTS equivalent.
func Name(r rune) (string, bool) {
	if s, ok := tibTop[r]; ok {
		return s, true
	}
	if s, ok := tibSubjoined[r]; ok {
		return "+" + s, true
	}
	if s, ok := tibVowel[r]; ok {
		return s, true
	}
	if f, ok := tibFinal[r]; ok {
		return f.wylie, true
	}
	if s, ok := tibOther[r]; ok {
		return s, true
	}
	return "", false
}
