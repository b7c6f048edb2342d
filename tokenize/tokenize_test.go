package tokenize

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplit(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for i, x := range []struct {
		in  string
		out []string
	}{
		{"ka", []string{"k", "a"}},
		{"bsgrubs", []string{"b", "s", "g", "r", "u", "b", "s"}},
		{"tshe", []string{"tsh", "e"}},
		{"dzhai", []string{"dzh", "ai"}},
		{"dz+ha", []string{"dz+h", "a"}},
		{"-d+hI", []string{"-d+h", "I"}},
		{"~M`", []string{"~M`"}},
		{"//", []string{"//"}},
		{"a\r\nb", []string{"a", "\r\n", "b"}},
		{"\\u0f0d", []string{"\\u0f0d"}},
		{"\\U00000f0dx", []string{"\\U00000f0d", "x"}},
		{"\\u0f", []string{"\\u", "0", "f"}},
		{"\\[", []string{"\\["}},
		{"\\", []string{"\\"}},
		{"", []string{}},
	} {
		toks := Split(x.in)
		if strings.Join(toks, "|") != strings.Join(x.out, "|") || len(toks) != len(x.out) {
			t.Errorf("%d: expected %q to split into %q, have %q", i, x.in, x.out, []string(toks))
		}
	}
}

func TestSplitRunes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	toks := Split("k\u0f0b\u00e4")
	if len(toks) != 3 || toks[1] != "\u0f0b" || toks[2] != "\u00e4" {
		t.Errorf("expected non-ASCII characters to be single tokens, have %q", []string(toks))
	}
}

func TestSplitInvalidUTF8(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	in := "\xffka\xe0\x80"
	toks := Split(in)
	if strings.Join(toks, "|") != "\xff|k|a|\xe0|\x80" {
		t.Errorf("expected invalid bytes to be single tokens, have %q", []string(toks))
	}
	if toks.Join(0, len(toks)) != in {
		t.Errorf("expected tokens to join to the input, have %q", toks.Join(0, len(toks)))
	}
	if c := Classify("\xff"); c != Other {
		t.Errorf("expected an invalid byte to be of category Other, is %s", c)
	}
	tz := NewTokenizer("\xffka")
	for {
		tokval, _, pos, _ := tz.NextToken(scanner.AnyToken)
		if tokval == scanner.EOF {
			if pos != 3 {
				t.Errorf("expected EOF at byte 3, is at %d", pos)
			}
			break
		}
	}
}

func TestSentinel(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	toks := Split("ka")
	if toks.At(1) != "a" || toks.At(2) != "" || toks.At(-1) != "" {
		t.Errorf("end sentinel broken")
	}
	if j := toks.Join(0, 5); j != "ka" {
		t.Errorf("expected join to clip range, have %q", j)
	}
}

func TestSplitInto(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	buf := make(Tokens, 0, 16)
	buf = SplitInto(buf, "bkra shis")
	buf = SplitInto(buf, "ka")
	if len(buf) != 2 {
		t.Errorf("expected buffer to be reset, have %q", []string(buf))
	}
}

func TestClassify(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for tok, cat := range map[string]Category{
		"k":       Consonant,
		"tsh":     Consonant,
		"a":       Vowel,
		"-I":      Vowel,
		"M":       Final,
		"^":       Final,
		"/":       Punctuation,
		" ":       Punctuation,
		"7":       Punctuation,
		".":       Special,
		"\\u0f0d": Escape,
		"\\x":     Escape,
		"\r\n":    Newline,
		"[":       OpenBracket,
		"]":       CloseBracket,
		"+":       Plus,
		"x":       Other,
		"\u0f40":  Other,
	} {
		if c := Classify(tok); c != cat {
			t.Errorf("expected %q to be of category %s, is %s", tok, cat, c)
		}
	}
	if Category(99).String() != "Category(99)" {
		t.Errorf("unexpected name for unknown category: %s", Category(99))
	}
}

func TestTokenizer(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tz := NewTokenizer("bkra shis/")
	var cats []string
	var lastpos uint64
	for {
		tokval, token, pos, length := tz.NextToken(scanner.AnyToken)
		if tokval == scanner.EOF {
			lastpos = pos
			break
		}
		t.Logf("token %q at %d+%d = %s", token, pos, length, Category(tokval))
		cats = append(cats, Category(tokval).String())
	}
	if len(cats) != 9 {
		t.Errorf("expected 9 tokens, have %d", len(cats))
	}
	if lastpos != uint64(len("bkra shis/")) {
		t.Errorf("expected EOF at end of input, is at %d", lastpos)
	}
	tz = NewTokenizer("ka ki")
	n := 0
	for {
		tokval, _, _, _ := tz.NextToken([]int{int(Vowel)})
		if tokval == scanner.EOF {
			break
		}
		n++
	}
	if n != 2 {
		t.Errorf("expected filter to yield 2 vowels, have %d", n)
	}
}

func ExampleSplit() {
	toks := Split("bsgrubs//")
	fmt.Println(strings.Join(toks, " "))
	// Output: b s g r u b s //
}
