package tokenize

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/ewts/tables"
)

// Tokens is a sequence of EWTS tokens. Indexing past the end with At yields
// the empty string, which serves as the end sentinel.
type Tokens []string

// At returns the token at position i, or "" if i is out of range.
func (toks Tokens) At(i int) string {
	if i < 0 || i >= len(toks) {
		return ""
	}
	return toks[i]
}

// Join concatenates the tokens in [from, to).
func (toks Tokens) Join(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(toks) {
		to = len(toks)
	}
	if from >= to {
		return ""
	}
	return strings.Join(toks[from:to], "")
}

// Split splits an EWTS string into tokens.
func Split(s string) Tokens {
	return SplitInto(make(Tokens, 0, len(s)), s)
}

// SplitInto splits s into tokens, appending them to buf[:0]. It returns the
// (possibly re-allocated) buffer.
//
// Every byte of s which is not part of valid UTF-8 becomes a token of its
// own, so joining the tokens always reproduces s.
func SplitInto(buf Tokens, s string) Tokens {
	buf = buf[:0]
	for len(s) > 0 {
		n := validPrefix(s)
		if n == 0 {
			buf = append(buf, s[:1])
			s = s[1:]
			continue
		}
		runes := []rune(s[:n])
		for i := 0; i < len(runes); {
			l := tokenLen(runes, i)
			buf = append(buf, string(runes[i:i+l]))
			i += l
		}
		s = s[n:]
	}
	T().Debugf("split input into %d tokens", len(buf))
	return buf
}

// validPrefix returns the length in bytes of the valid UTF-8 prefix of s.
func validPrefix(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(s)
}

// tokenLen returns the length in runes of the token starting at runes[i].
func tokenLen(runes []rune, i int) int {
	rest := len(runes) - i
	if maxLen, ok := tables.MaxTokenLen(runes[i]); ok {
		for l := min(maxLen, rest); l >= 2; l-- {
			if tables.IsMultiToken(string(runes[i : i+l])) {
				return l
			}
		}
	}
	if runes[i] == '\\' && rest >= 2 {
		switch {
		case runes[i+1] == 'u' && rest >= 6:
			return 6
		case runes[i+1] == 'U' && rest >= 10:
			return 10
		}
		return 2
	}
	return 1
}
