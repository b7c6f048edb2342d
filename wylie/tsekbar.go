package wylie

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ewts/tables"
	"github.com/npillmayer/ewts/tokenize"
)

// TsekbarResult is the outcome of parsing a tsekbar (syllable).
type TsekbarResult struct {
	Text       string   // Unicode text of the syllable
	TokensUsed int      // number of tokens consumed
	Warnings   []string // diagnostics for the syllable
}

// Within a tsekbar we expect (in this order) an optional prefix, the main
// stack, an optional first and second suffix, and nothing thereafter.
//
// The state machine is more lenient than this, as a main stack may show up
// at any time, even after suffixes. Abbreviations do this. What is checked is
// that prefixes and suffixes go with what they are attached to.
// Valid tsekbars end in one of SUFF1, SUFF2 or NONE.
type syllableState int

const (
	expectPrefix syllableState = iota
	expectMain
	expectSuff1
	expectSuff2
	expectNone
)

func (s syllableState) String() string {
	return [...]string{"PREFIX", "MAIN", "SUFF1", "SUFF2", "NONE"}[s]
}

func isLetter(t string) bool {
	return tables.IsVowel(t) || tables.IsConsonant(t)
}

// ParseTsekbar converts successive stacks, starting at token position i,
// until the syllable ends. The token at i has to be a vowel or a consonant.
// A syllable ends at the first token which is neither a vowel nor a
// consonant, or after a stack carrying a visarga.
func (conv *Converter) ParseTsekbar(toks tokenize.Tokens, i int) TsekbarResult {
	origI := i
	var out strings.Builder
	var warns []string
	var stack StackResult
	var consonants []string // single consonants in order, for checking the root letter
	prevCons := ""
	visarga := false
	checkRoot := true
	rootInx := -1
	state := expectPrefix
	for n := 0; isLetter(toks.At(i)) && !visarga; n++ {
		if n > 0 {
			prevCons = stack.SingleConsonant
		}
		stack = conv.ParseStack(toks, i)
		i += stack.TokensUsed
		out.WriteString(stack.Text)
		warns = append(warns, stack.Warnings...)
		visarga = stack.Visarga
		if !conv.opts.Check {
			continue
		}
		cons := stack.SingleConsonant
		switch {
		case state == expectPrefix && cons != "":
			consonants = append(consonants, cons)
			if conv.rules.prefixes.Has(cons) {
				next, atEnd := toks.At(i), i >= len(toks)
				if conv.opts.CheckStrict {
					next, atEnd = consonantString(toks, i), false
				}
				if !atEnd && !conv.rules.prefixes.Allows(cons, next) {
					next = strings.ReplaceAll(next, "+", "")
					warns = append(warns, fmt.Sprintf("Prefix \"%s\" does not occur before \"%s\".", cons, next))
				}
			} else {
				warns = append(warns, fmt.Sprintf("Invalid prefix consonant: \"%s\".", cons))
			}
			state = expectMain
		case cons == "": // main stack with vowel or multiple consonants
			state = expectSuff1
			if rootInx >= 0 {
				checkRoot = false
			} else if stack.SingleConsA != "" {
				consonants = append(consonants, stack.SingleConsA)
				rootInx = len(consonants) - 1
			}
		case state == expectMain:
			warns = append(warns, fmt.Sprintf("Expected vowel after \"%s\".", cons))
		case state == expectSuff1:
			consonants = append(consonants, cons)
			if conv.opts.CheckStrict && !tables.IsSuffix(cons) { // trips on Sanskrit if not strict
				warns = append(warns, fmt.Sprintf("Invalid suffix consonant: \"%s\".", cons))
			}
			state = expectSuff2
		case state == expectSuff2:
			consonants = append(consonants, cons)
			if conv.rules.suffixes2.Has(cons) {
				if !conv.rules.suffixes2.Allows(cons, prevCons) {
					warns = append(warns, fmt.Sprintf("Second suffix \"%s\" does not occur after \"%s\".", cons, prevCons))
				}
			} else if !tables.IsAffixedSuffix2(cons) || prevCons != "'" { // pa'm, pa'ng
				warns = append(warns, fmt.Sprintf("Invalid 2nd suffix consonant: \"%s\".", cons))
			}
			state = expectNone
		case state == expectNone:
			warns = append(warns, fmt.Sprintf("Cannot have another consonant \"%s\" after 2nd suffix.", cons))
		}
		T().Debugf("tsekbar state now %s", state)
	}
	if state == expectMain && stack.SingleConsonant != "" && conv.rules.prefixes.Has(stack.SingleConsonant) {
		warns = append(warns, fmt.Sprintf("Vowel expected after \"%s\".", stack.SingleConsonant))
	}
	// The state machine took care of most illegal combinations. What is left
	// is the root letter of syllables which read in more than one way.
	if conv.opts.Check && len(warns) == 0 && checkRoot && rootInx >= 0 {
		if w := conv.checkRootLetter(consonants, rootInx); w != "" {
			warns = append(warns, w)
		}
	}
	return TsekbarResult{
		Text:       out.String(),
		TokensUsed: i - origI,
		Warnings:   warns,
	}
}

// checkRootLetter returns a warning if the root letter of a syllable is not
// where it probably should be.
func (conv *Converter) checkRootLetter(consonants []string, rootInx int) string {
	switch {
	case len(consonants) == 2 && rootInx != 0 &&
		conv.rules.prefixes.Allows(consonants[0], consonants[1]) && tables.IsSuffix(consonants[1]):
		// each letter could be prefix or suffix: root is first
		return fmt.Sprintf("Syllable should probably be \"%sa%s\".", consonants[0], consonants[1])
	case len(consonants) == 3 && conv.rules.prefixes.Has(consonants[0]) &&
		conv.rules.suffixes2.Allows("s", consonants[1]) && consonants[2] == "s":
		// completely ambiguous, use lookup table
		cc := strings.Join(consonants, "")
		cc = strings.NewReplacer("\u2018", "'", "\u2019", "'").Replace(cc)
		if amb, ok := tables.Ambiguous(cc); ok && amb.Root != rootInx {
			return fmt.Sprintf("Syllable should probably be \"%s\".", amb.Wylie)
		}
	}
	return ""
}
