package wylie

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ewts/tables"
	"github.com/npillmayer/ewts/tokenize"
)

// StackResult is the outcome of parsing a single stack, i.e. one vertical
// cluster of consonants together with its vowel signs and final marks.
type StackResult struct {
	Text            string   // Unicode text of the stack
	TokensUsed      int      // number of tokens consumed, always > 0
	SingleConsonant string   // set if the stack is a single consonant without vowel
	SingleConsA     string   // set if the stack is a single consonant with an explicit "a"
	Warnings        []string // diagnostics local to the stack
	Visarga         bool     // a final of class H has been found
}

// ParseStack converts one stack, starting at token position i. The token at
// i has to be a vowel or a consonant.
//
// If more than one consonant has been consumed, but no vowel and no explicit
// "+", the stack is not valid Tibetan. ParseStack will then back off and
// return the first consonant alone, leaving the rest to the next stack.
func (conv *Converter) ParseStack(toks tokenize.Tokens, i int) StackResult {
	origI := i
	var out strings.Builder
	var warns []string
	check, strict := conv.opts.Check, conv.opts.CheckStrict
	consonants := 0  // number of consonants found
	vowelFound := "" // any vowel, including a-chen
	vowelSign := ""  // any vowel sign, i.e. not "a"
	single := ""     // single consonant
	plus := false    // explicit subjoining
	caret := 0       // number of '^'
	supWarning := -1 // index of superscript warning
	finalsFound := make(map[string]string)
	skipCarets := func() {
		for toks.At(i) == "^" {
			caret++
			i++
		}
	}
	t, t2 := toks.At(i), toks.At(i+1)
	if conv.isSuperscript(t, t2) {
		if strict {
			next := consonantString(toks, i+1)
			if !conv.rules.superscripts.Allows(t, next) {
				next = strings.ReplaceAll(next, "+", "")
				warns = append(warns, fmt.Sprintf("Superscript \"%s\" does not occur above combination \"%s\".", t, next))
				supWarning = len(warns) - 1
			}
		} else if check && !conv.rules.superscripts.Allows(t, t2) {
			warns = append(warns, fmt.Sprintf("Superscript \"%s\" does not occur above combination \"%s\".", t, t2))
			supWarning = len(warns) - 1
		}
		cons, _ := tables.Consonant(t)
		out.WriteString(cons)
		consonants++
		i++
		skipCarets()
	}
	for { // repeated for every "+"
		t = toks.At(i)
		cons, isCons := tables.Consonant(t)
		sub, isSub := tables.Subjoined(t)
		if isCons || (out.Len() > 0 && isSub) {
			if out.Len() > 0 {
				out.WriteString(sub)
			} else {
				out.WriteString(cons)
			}
			i++
			if t == "a" {
				vowelFound = "a"
			} else {
				consonants++
				single = t
			}
			skipCarets()
			// up to two subscripts
			for z := 0; z < 2; z++ {
				t2 = toks.At(i)
				if !conv.rules.subscripts.Has(t2) {
					break
				}
				if t2 == "l" && consonants > 1 { // otherwise "brla" would not be "b.r+la"
					break
				}
				if strict && !plus {
					prev := consonantStringBackwards(toks, i-1, origI)
					if !conv.rules.subscripts.Allows(t2, prev) {
						prev = strings.ReplaceAll(prev, "+", "")
						warns = append(warns, fmt.Sprintf("Subjoined \"%s\" not expected after \"%s\".", t2, prev))
					}
				} else if check {
					if !conv.rules.subscripts.Allows(t2, t) && !(z == 1 && t2 == "w" && t == "y") {
						warns = append(warns, fmt.Sprintf("Subjoined \"%s\" not expected after \"%s\".", t2, t))
					}
				}
				sub, _ = tables.Subjoined(t2)
				out.WriteString(sub)
				i++
				consonants++
				skipCarets()
				t = t2
			}
		}
		// '^' goes after the consonants, but before any vowel
		if caret > 0 {
			if caret > 1 {
				warns = append(warns, "Cannot have more than one \"^\" applied to the same stack.")
			}
			uni, class, _ := tables.Final("^")
			finalsFound[class] = "^"
			out.WriteString(uni)
			caret = 0
		}
		t = toks.At(i)
		if v, ok := tables.Vowel(t); ok {
			if out.Len() == 0 {
				achen, _ := tables.Vowel("a")
				out.WriteString(achen)
			}
			if t != "a" {
				out.WriteString(v)
				vowelSign = t
			}
			i++
			vowelFound = t
		}
		if toks.At(i) != "+" {
			break
		}
		i++
		plus = true
		t = toks.At(i)
		_, isSub = tables.Subjoined(t)
		if !tables.IsVowel(t) && !isSub {
			if check {
				warns = append(warns, "Expected vowel or consonant after \"+\".")
			}
			break
		}
		if check {
			if !tables.IsVowel(t) && vowelSign != "" {
				warns = append(warns, fmt.Sprintf("Cannot subjoin consonant (%s) after vowel (%s) in same stack.", t, vowelSign))
			} else if t == "a" && vowelSign != "" {
				warns = append(warns, fmt.Sprintf("Cannot subjoin a-chen (a) after vowel (%s) in same stack.", vowelSign))
			}
		}
	}
	for {
		t = toks.At(i)
		uni, class, ok := tables.Final(t)
		if !ok {
			break
		}
		if prev, seen := finalsFound[class]; seen {
			if prev == t {
				warns = append(warns, fmt.Sprintf("Cannot have two \"%s\" applied to the same stack.", t))
			} else {
				warns = append(warns, fmt.Sprintf("Cannot have \"%s\" and \"%s\" applied to the same stack.", t, prev))
			}
		} else {
			finalsFound[class] = t
			out.WriteString(uni)
		}
		i++
		single = ""
	}
	if toks.At(i) == "." { // stack separator
		i++
	}
	if consonants > 1 && vowelFound == "" {
		if plus {
			if check {
				warns = append(warns, "Stack with multiple consonants should end with vowel.")
			}
		} else {
			T().Debugf("stack %q has no vowel, backing off", toks.Join(origI, i))
			i = origI + 1
			consonants = 1
			single = toks.At(origI)
			out.Reset()
			cons, _ := tables.Consonant(single)
			out.WriteString(cons)
			finalsFound = map[string]string{}
			if supWarning >= 0 {
				warns = append(warns[:supWarning], warns[supWarning+1:]...)
			}
		}
	}
	if consonants != 1 || plus {
		single = ""
	}
	res := StackResult{
		Text:       out.String(),
		TokensUsed: i - origI,
		Warnings:   warns,
	}
	if vowelFound == "" {
		res.SingleConsonant = single
	} else if vowelFound == "a" {
		res.SingleConsA = single
	}
	_, res.Visarga = finalsFound[tables.VisargaClass]
	T().P("stack", toks.Join(origI, i)).Debugf("%d tokens, single=%q", res.TokensUsed, single)
	return res
}

// isSuperscript decides if t is to be read as a superscript above t2, which
// is the case if the superscript relation lists t2 below t. A superscript
// without any letters below it in the rules (see tables.Relation.Without)
// is still read as a superscript above a consonant, as long as t2 could not
// be read as a subscript below t. Checking will complain about this case.
func (conv *Converter) isSuperscript(t, t2 string) bool {
	if t2 == "" || !conv.rules.superscripts.Has(t) {
		return false
	}
	if conv.rules.superscripts.Allows(t, t2) {
		return true
	}
	if !conv.rules.superscripts[t].Empty() {
		return false
	}
	_, isSub := tables.Subjoined(t2)
	return isSub && tables.IsConsonant(t2) && !conv.rules.subscripts.Allows(t2, t)
}

// consonantString collects consonants from position i onwards, up to the next
// vowel or punctuation, skipping '+' and '^'. The result is joined by '+'.
func consonantString(toks tokenize.Tokens, i int) string {
	var out []string
	for t := toks.At(i); t != ""; t = toks.At(i) {
		i++
		if t == "+" || t == "^" {
			continue
		}
		if !tables.IsConsonant(t) {
			break
		}
		out = append(out, t)
	}
	return strings.Join(out, "+")
}

// consonantStringBackwards is like consonantString, but walks backwards from
// i, not beyond origI. Consonants are returned in input order.
func consonantStringBackwards(toks tokenize.Tokens, i, origI int) string {
	var out []string
	for ; i >= origI && toks.At(i) != ""; i-- {
		t := toks.At(i)
		if t == "+" || t == "^" {
			continue
		}
		if !tables.IsConsonant(t) {
			break
		}
		out = append([]string{t}, out...)
	}
	return strings.Join(out, "+")
}
