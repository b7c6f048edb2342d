package tables

// Characters which start tokens longer than one character, mapped to the
// maximum length of tokens starting with that character.
var tokenStart = map[rune]int{
	'S':  2,
	'/':  2,
	'd':  4,
	'g':  3,
	'b':  3,
	'D':  3,
	'z':  2,
	'~':  3,
	'-':  4,
	'T':  2,
	'a':  2,
	'k':  2,
	't':  3,
	's':  2,
	'c':  2,
	'n':  2,
	'p':  2,
	'\r': 2,
}

// Tokens longer than one character.
var multiTokens = newSet(
	"-d+h", "dz+h", "-dh", "-sh", "-th", "D+h", "b+h", "d+h", "dzh", "g+h",
	"tsh", "~M`", "-I", "-d", "-i", "-n", "-t", "//", "Dh", "Sh", "Th", "ai",
	"au", "bh", "ch", "dh", "dz", "gh", "kh", "ng", "ny", "ph", "sh", "th",
	"ts", "zh", "~M", "~X", "\r\n",
)

// MaxTokenLen returns the maximum length (in runes) of a multi-character token
// starting with r. If no multi-character token starts with r, false is returned.
func MaxTokenLen(r rune) (int, bool) {
	n, ok := tokenStart[r]
	return n, ok
}

// IsMultiToken is true if s is a token of more than one character.
func IsMultiToken(s string) bool {
	return multiTokens.Contains(s)
}
