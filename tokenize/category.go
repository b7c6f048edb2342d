package tokenize

import (
	"strconv"
	"strings"

	"github.com/npillmayer/ewts/tables"
)

// Category is the lexical category of a token.
type Category int

// Token categories. Values are positive, as gorgo's scanner reserves
// negative token values for EOF.
const (
	Consonant Category = iota + 1
	Vowel
	Final
	Punctuation
	Special
	Escape
	Newline
	OpenBracket
	CloseBracket
	Plus
	Other
)

const catname = "ConsonantVowelFinalPunctuationSpecialEscapeNewlineOpenBracketCloseBracketPlusOther"

var catindex = [...]uint8{0, 9, 14, 19, 30, 37, 43, 50, 61, 73, 77, 82}

func (c Category) String() string {
	if c < Consonant || c > Other {
		return "Category(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return catname[catindex[c-1]:catindex[c]]
}

// Classify returns the category of an EWTS token.
//
// Some tokens are members of more than one table. "a" is a vowel, "^" and
// "?" are finals, "]" is a closing bracket. Classification reflects the
// most likely role; the converter decides by context.
func Classify(tok string) Category {
	switch tok {
	case "+":
		return Plus
	case "[":
		return OpenBracket
	case "]":
		return CloseBracket
	case "\n", "\r", "\r\n":
		return Newline
	}
	if tables.IsConsonant(tok) {
		return Consonant
	}
	if tables.IsVowel(tok) {
		return Vowel
	}
	if _, _, ok := tables.Final(tok); ok {
		return Final
	}
	if _, ok := tables.Other(tok); ok {
		return Punctuation
	}
	if len(tok) > 1 && strings.HasPrefix(tok, "\\") {
		return Escape
	}
	if tables.IsSpecial(tok) {
		return Special
	}
	return Other
}
