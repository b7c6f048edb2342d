package wylie

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/ewts"
	"github.com/npillmayer/ewts/tables"
)

// Convert converts an EWTS string to Tibetan Unicode.
//
// If diags is non-nil, every diagnostic found during conversion is appended
// to it. Existing entries are left alone. The returned text does not depend
// on diags being collected.
func (conv *Converter) Convert(input string, diags *[]Diagnostic) string {
	var out strings.Builder
	line := 1
	units := 0 // number of syllables
	if conv.opts.FixSpacing {
		input = strings.TrimLeft(input, " \t\n\v\f\r")
	}
	buf := borrowTokens(input)
	defer buf.releaseIntoPool()
	toks := buf.tokens
	skipSpaces := func(i int) int {
		for toks.At(i) == " " {
			i++
		}
		return i
	}
	i := 0
tokens:
	for i < len(toks) {
		t := toks[i]
		if t == "[" { // [non-Tibetan text] passes through, brackets nest
			nesting := 1
			i++
			for i < len(toks) {
				t = toks[i]
				i++
				if t == "[" {
					nesting++
				} else if t == "]" {
					nesting--
				}
				if nesting == 0 {
					continue tokens
				}
				if isUnicodeEscape(t) {
					if o, ok := conv.unicodeEscape(diags, line, t); ok {
						out.WriteString(o)
						continue
					}
				}
				out.WriteString(strings.TrimPrefix(t, "\\"))
			}
			conv.warn(diags, line, "Unfinished [non-Tibetan text].")
			break
		}
		if o, ok := tables.Other(t); ok { // punctuation, digits, tsek
			out.WriteString(o)
			i++
			if t == " " && conv.opts.FixSpacing {
				i = skipSpaces(i)
			}
			continue
		}
		if isLetter(t) {
			tb := conv.ParseTsekbar(toks, i)
			word := toks.Join(i, i+tb.TokensUsed)
			out.WriteString(tb.Text)
			i += tb.TokensUsed
			units++
			for _, w := range tb.Warnings {
				conv.warn(diags, line, "\"%s\": %s", word, w)
			}
			continue
		}
		switch t {
		case "\ufeff", "\u200b": // BOM, zero-width space
			i++
			continue
		case "\r\n", "\n", "\r":
			line++
			out.WriteString(t)
			i++
			if conv.opts.FixSpacing {
				i = skipSpaces(i)
			}
			continue
		}
		if isUnicodeEscape(t) {
			if o, ok := conv.unicodeEscape(diags, line, t); ok {
				out.WriteString(o)
				i++
				continue
			}
		}
		if strings.HasPrefix(t, "\\") {
			out.WriteString(t[1:])
			i++
			continue
		}
		if !utf8.ValidString(t) {
			conv.warn(diags, line, "Invalid UTF-8 byte 0x%02X.", t[0])
			out.WriteString(t)
			i++
			continue
		}
		if c := t[0]; tables.IsSpecial(t) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			conv.warn(diags, line, "Unexpected character \"%s\".", t)
		}
		out.WriteString(t)
		i++
	}
	if units == 0 {
		conv.warn(diags, line, "No Tibetan characters found!")
	}
	result := out.String()
	if conv.opts.CheckStrict && result != "" {
		if r, _ := utf8.DecodeRuneInString(result); ewts.IsCombining(r) {
			conv.warn(diags, line, "String starts with combining character '%c'", r)
		}
	}
	T().Debugf("converted %d tokens in %d line(s), %d syllable(s)", len(toks), line, units)
	return result
}

func isUnicodeEscape(t string) bool {
	return strings.HasPrefix(t, "\\u") || strings.HasPrefix(t, "\\U")
}

// unicodeEscape decodes "\uXXXX" and "\UXXXXXXXX". If the escape has no
// payload, false is returned. Invalid hex codes result in a diagnostic and
// the empty string.
func (conv *Converter) unicodeEscape(diags *[]Diagnostic, line int, t string) (string, bool) {
	hex := t[2:]
	if hex == "" {
		return "", false
	}
	cp, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || !utf8.ValidRune(rune(cp)) {
		conv.warn(diags, line, "\"%s\": invalid hex code.", t)
		return "", true
	}
	return string(rune(cp)), true
}

var defaultConverter = MustNew(DefaultOptions)

// Convert converts an EWTS string to Tibetan Unicode, using DefaultOptions.
// It returns the converted text together with all diagnostics.
func Convert(input string) (string, []Diagnostic) {
	var diags []Diagnostic
	s := defaultConverter.Convert(input, &diags)
	return s, diags
}
