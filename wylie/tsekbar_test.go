package wylie

import (
	"testing"

	"github.com/npillmayer/ewts/tokenize"
	"github.com/npillmayer/schuko/testconfig"
)

func TestTsekbarClean(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	conv := MustNew(DefaultOptions)
	for i, x := range []struct {
		in   string
		out  string
		used int
	}{
		{"bsgrubs", "\u0f56\u0f66\u0f92\u0fb2\u0f74\u0f56\u0f66", 7},
		{"bkra shis", "\u0f56\u0f40\u0fb2", 4},
		{"legs/", "\u0f63\u0f7a\u0f42\u0f66", 4},
		{"pa'm", "\u0f54\u0f60\u0f58", 4},
		{"dgas", "\u0f51\u0f42\u0f66", 4},
		{"kaHka", "\u0f40\u0f7f", 3},
	} {
		tb := conv.ParseTsekbar(tokenize.Split(x.in), 0)
		if tb.Text != x.out {
			t.Errorf("%d: expected %q to convert to %+q, have %+q", i, x.in, x.out, tb.Text)
		}
		if tb.TokensUsed != x.used {
			t.Errorf("%d: expected %q to use %d tokens, used %d", i, x.in, x.used, tb.TokensUsed)
		}
		if len(tb.Warnings) > 0 {
			t.Errorf("%d: did not expect warnings for %q, have %v", i, x.in, tb.Warnings)
		}
	}
}

func TestTsekbarWarnings(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	conv := MustNew(DefaultOptions)
	for i, x := range []struct {
		in    string
		warns []string
	}{
		{"kta", []string{"Invalid prefix consonant: \"k\"."}},
		{"gd", []string{"Expected vowel after \"d\".", "Vowel expected after \"d\"."}},
		{"dta", []string{"Prefix \"d\" does not occur before \"t\"."}},
		{"bagd", []string{"Second suffix \"d\" does not occur after \"g\"."}},
		{"pa'k", []string{"Invalid 2nd suffix consonant: \"k\"."}},
		{"bagsk", []string{"Cannot have another consonant \"k\" after 2nd suffix."}},
		{"kac", []string{"Invalid suffix consonant: \"c\"."}},
		{"dags", []string{"Syllable should probably be \"dgas\"."}},
		{"dga", []string{"Syllable should probably be \"dag\"."}},
	} {
		tb := conv.ParseTsekbar(tokenize.Split(x.in), 0)
		if len(tb.Warnings) != len(x.warns) {
			t.Errorf("%d: expected %d warnings for %q, have %v", i, len(x.warns), x.in, tb.Warnings)
			continue
		}
		for j, w := range x.warns {
			if tb.Warnings[j] != w {
				t.Errorf("%d: expected warning %q for %q, have %q", i, w, x.in, tb.Warnings[j])
			}
		}
	}
}

func TestTsekbarLenient(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	conv := MustNew(Options{Check: true})
	// suffixes are checked in strict mode only
	if tb := conv.ParseTsekbar(tokenize.Split("kac"), 0); len(tb.Warnings) != 0 {
		t.Errorf("did not expect warnings for 'kac' in lenient mode, have %v", tb.Warnings)
	}
	conv = MustNew(Options{})
	if tb := conv.ParseTsekbar(tokenize.Split("kta"), 0); len(tb.Warnings) != 0 {
		t.Errorf("did not expect warnings without checking, have %v", tb.Warnings)
	}
}

func TestTsekbarPrefixBeforeVowel(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for i, x := range []struct {
		opts Options
		in   string
		warn string
	}{
		{Options{Check: true}, "d.a", "Prefix \"d\" does not occur before \"a\"."},
		{DefaultOptions, "d.a", "Prefix \"d\" does not occur before \"\"."},
	} {
		conv := MustNew(x.opts)
		tb := conv.ParseTsekbar(tokenize.Split(x.in), 0)
		if tb.Text != "\u0f51\u0f68" {
			t.Errorf("%d: expected 'd.a' to convert to d + a-chen, have %+q", i, tb.Text)
		}
		if len(tb.Warnings) != 1 || tb.Warnings[0] != x.warn {
			t.Errorf("%d: expected warning %q, have %v", i, x.warn, tb.Warnings)
		}
	}
	// no following letter at all is not checked in lenient mode
	conv := MustNew(Options{Check: true})
	if tb := conv.ParseTsekbar(tokenize.Split("g"), 0); len(tb.Warnings) != 1 ||
		tb.Warnings[0] != "Vowel expected after \"g\"." {
		t.Errorf("expected a single vowel warning for 'g', have %v", tb.Warnings)
	}
}

func TestSyllableStateNames(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if expectSuff2.String() != "SUFF2" {
		t.Errorf("expected state name SUFF2, have %s", expectSuff2)
	}
}
