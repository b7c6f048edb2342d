package tables

// EWTS consonant => Unicode.
var consonants = map[string]string{
	"k":    "\u0f40",
	"kh":   "\u0f41",
	"g":    "\u0f42",
	"gh":   "\u0f42\u0fb7",
	"g+h":  "\u0f42\u0fb7",
	"ng":   "\u0f44",
	"c":    "\u0f45",
	"ch":   "\u0f46",
	"j":    "\u0f47",
	"ny":   "\u0f49",
	"T":    "\u0f4a",
	"-t":   "\u0f4a",
	"Th":   "\u0f4b",
	"-th":  "\u0f4b",
	"D":    "\u0f4c",
	"-d":   "\u0f4c",
	"Dh":   "\u0f4c\u0fb7",
	"D+h":  "\u0f4c\u0fb7",
	"-dh":  "\u0f4c\u0fb7",
	"-d+h": "\u0f4c\u0fb7",
	"N":    "\u0f4e",
	"-n":   "\u0f4e",
	"t":    "\u0f4f",
	"th":   "\u0f50",
	"d":    "\u0f51",
	"dh":   "\u0f51\u0fb7",
	"d+h":  "\u0f51\u0fb7",
	"n":    "\u0f53",
	"p":    "\u0f54",
	"ph":   "\u0f55",
	"b":    "\u0f56",
	"bh":   "\u0f56\u0fb7",
	"b+h":  "\u0f56\u0fb7",
	"m":    "\u0f58",
	"ts":   "\u0f59",
	"tsh":  "\u0f5a",
	"dz":   "\u0f5b",
	"dzh":  "\u0f5b\u0fb7",
	"dz+h": "\u0f5b\u0fb7",
	"w":    "\u0f5d",
	"zh":   "\u0f5e",
	"z":    "\u0f5f",
	"'":    "\u0f60",
	"y":    "\u0f61",
	"r":    "\u0f62",
	"l":    "\u0f63",
	"sh":   "\u0f64",
	"Sh":   "\u0f65",
	"-sh":  "\u0f65",
	"s":    "\u0f66",
	"h":    "\u0f67",
	"W":    "\u0f5d",
	"Y":    "\u0f61",
	"R":    "\u0f6a",
	"f":    "\u0f55\u0f39",
	"v":    "\u0f56\u0f39",
}

// Subjoined letters. "a" is the subjoined a-chen, reachable only
// through an explicit "+".
var subjoined = map[string]string{
	"k":    "\u0f90",
	"kh":   "\u0f91",
	"g":    "\u0f92",
	"gh":   "\u0f92\u0fb7",
	"g+h":  "\u0f92\u0fb7",
	"ng":   "\u0f94",
	"c":    "\u0f95",
	"ch":   "\u0f96",
	"j":    "\u0f97",
	"ny":   "\u0f99",
	"T":    "\u0f9a",
	"-t":   "\u0f9a",
	"Th":   "\u0f9b",
	"-th":  "\u0f9b",
	"D":    "\u0f9c",
	"-d":   "\u0f9c",
	"Dh":   "\u0f9c\u0fb7",
	"D+h":  "\u0f9c\u0fb7",
	"-dh":  "\u0f9c\u0fb7",
	"-d+h": "\u0f9c\u0fb7",
	"N":    "\u0f9e",
	"-n":   "\u0f9e",
	"t":    "\u0f9f",
	"th":   "\u0fa0",
	"d":    "\u0fa1",
	"dh":   "\u0fa1\u0fb7",
	"d+h":  "\u0fa1\u0fb7",
	"n":    "\u0fa3",
	"p":    "\u0fa4",
	"ph":   "\u0fa5",
	"b":    "\u0fa6",
	"bh":   "\u0fa6\u0fb7",
	"b+h":  "\u0fa6\u0fb7",
	"m":    "\u0fa8",
	"ts":   "\u0fa9",
	"tsh":  "\u0faa",
	"dz":   "\u0fab",
	"dzh":  "\u0fab\u0fb7",
	"dz+h": "\u0fab\u0fb7",
	"w":    "\u0fad",
	"zh":   "\u0fae",
	"z":    "\u0faf",
	"'":    "\u0fb0",
	"y":    "\u0fb1",
	"r":    "\u0fb2",
	"l":    "\u0fb3",
	"sh":   "\u0fb4",
	"Sh":   "\u0fb5",
	"-sh":  "\u0fb5",
	"s":    "\u0fb6",
	"h":    "\u0fb7",
	"a":    "\u0fb8",
	"W":    "\u0fba",
	"Y":    "\u0fbb",
	"R":    "\u0fbc",
}

// Vowels. "a" maps to the stand-alone a-chen, which is used as the carrier
// for a vowel at the start of a stack; as a vowel sign "a" is implicit.
// "E" and "O" are not part of classic Wylie, but show up in
// transliterated Chinese names.
var vowels = map[string]string{
	"a":  "\u0f68",
	"A":  "\u0f71",
	"i":  "\u0f72",
	"I":  "\u0f71\u0f72",
	"u":  "\u0f74",
	"U":  "\u0f71\u0f74",
	"e":  "\u0f7a",
	"E":  "\u0f71\u0f7a",
	"ai": "\u0f7b",
	"o":  "\u0f7c",
	"O":  "\u0f71\u0f7c",
	"au": "\u0f7d",
	"-i": "\u0f80",
	"-I": "\u0f71\u0f80",
}

// A final mark with its Unicode form and its class. Two finals of the
// same class may not be applied to one stack.
type final struct {
	uni   string
	class string
}

var finals = map[string]final{
	"M":   {"\u0f7e", "M"},
	"~M`": {"\u0f82", "M"},
	"~M":  {"\u0f83", "M"},
	"X":   {"\u0f37", "X"},
	"~X":  {"\u0f35", "X"},
	"H":   {"\u0f7f", "H"},
	"?":   {"\u0f84", "?"},
	"^":   {"\u0f39", "^"},
	"&":   {"\u0f85", "&"},
}

// VisargaClass is the final class which terminates a tsekbar.
const VisargaClass = "H"

// Stand-alone symbols: punctuation, digits and the tsek.
var others = map[string]string{
	"0":  "\u0f20",
	"1":  "\u0f21",
	"2":  "\u0f22",
	"3":  "\u0f23",
	"4":  "\u0f24",
	"5":  "\u0f25",
	"6":  "\u0f26",
	"7":  "\u0f27",
	"8":  "\u0f28",
	"9":  "\u0f29",
	" ":  "\u0f0b",
	"*":  "\u0f0c",
	"/":  "\u0f0d",
	"//": "\u0f0e",
	";":  "\u0f0f",
	"|":  "\u0f11",
	"!":  "\u0f08",
	":":  "\u0f14",
	"_":  " ",
	"=":  "\u0f34",
	"<":  "\u0f3a",
	">":  "\u0f3b",
	"(":  "\u0f3c",
	")":  "\u0f3d",
	"@":  "\u0f04",
	"#":  "\u0f05",
	"$":  "\u0f06",
	"%":  "\u0f07",
}

// Consonant returns the Unicode form of an EWTS consonant.
func Consonant(s string) (string, bool) {
	u, ok := consonants[s]
	return u, ok
}

// IsConsonant is true if s is an EWTS consonant.
func IsConsonant(s string) bool {
	_, ok := consonants[s]
	return ok
}

// Subjoined returns the subjoined Unicode form of an EWTS letter.
func Subjoined(s string) (string, bool) {
	u, ok := subjoined[s]
	return u, ok
}

// Vowel returns the Unicode vowel sign for an EWTS vowel.
// For "a" the stand-alone a-chen is returned.
func Vowel(s string) (string, bool) {
	u, ok := vowels[s]
	return u, ok
}

// IsVowel is true if s is an EWTS vowel.
func IsVowel(s string) bool {
	_, ok := vowels[s]
	return ok
}

// Final returns the Unicode form and the class of a final mark.
func Final(s string) (uni string, class string, ok bool) {
	f, ok := finals[s]
	return f.uni, f.class, ok
}

// Other returns the Unicode form of punctuation, digits and the tsek.
func Other(s string) (string, bool) {
	u, ok := others[s]
	return u, ok
}

var specials = newSet(".", "+", "-", "~", "^", "?", "`", "]")

// IsSpecial is true for characters which should be flagged when occuring out
// of context.
func IsSpecial(s string) bool {
	return specials.Contains(s)
}
