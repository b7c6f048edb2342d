package tokenize

import (
	"github.com/npillmayer/gorgo/lr/scanner"
)

// Tokenizer implements the scanner.Tokenizer interface.
// It hands out EWTS tokens one at a time, together with their Category.
//
// Token values are Categories, token positions are byte offsets into the
// input string.
type Tokenizer struct {
	tokens  Tokens
	inx     int         // index of next token
	pos     uint64      // byte position of next token
	onError func(error) // currently never called, tokenizing cannot fail
}

// NewTokenizer creates a tokenizer for an EWTS input string.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{tokens: Split(input)}
}

// NextToken returns the next token as (category, lexeme, position, length).
// After the last token it returns scanner.EOF.
//
// Parameter expected is a filter: if non-nil, tokens whose category is not
// in expected are skipped.
func (tz *Tokenizer) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	for tz.inx < len(tz.tokens) {
		tok := tz.tokens[tz.inx]
		pos := tz.pos
		tz.inx++
		tz.pos += uint64(len(tok))
		cat := Classify(tok)
		if expected != nil && !contains(expected, int(cat)) {
			T().Debugf("skipping token %q of category %s", tok, cat)
			continue
		}
		return int(cat), tok, pos, uint64(len(tok))
	}
	return scanner.EOF, "", tz.pos, 0
}

// SetErrorHandler sets an error handler function. As tokenizing never
// fails, the handler will not be called.
func (tz *Tokenizer) SetErrorHandler(h func(error)) {
	tz.onError = h
}

// Tokens returns all tokens of the input.
func (tz *Tokenizer) Tokens() Tokens {
	return tz.tokens
}

func contains(cats []int, c int) bool {
	for _, x := range cats {
		if x == c {
			return true
		}
	}
	return false
}

var _ scanner.Tokenizer = (*Tokenizer)(nil)
