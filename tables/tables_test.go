package tables

import (
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/testconfig"
)

func TestLetters(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if u, ok := Consonant("k"); !ok || u != "\u0f40" {
		t.Errorf("expected 'k' to map to U+0F40, have %+q", u)
	}
	if u, _ := Consonant("dzh"); u != "\u0f5b\u0fb7" {
		t.Errorf("expected aspirate 'dzh' to be DZA + subjoined HA, have %+q", u)
	}
	if u, _ := Consonant("g+h"); u != "\u0f42\u0fb7" {
		t.Errorf("expected 'g+h' to be GA + subjoined HA, have %+q", u)
	}
	if _, ok := Subjoined("f"); ok {
		t.Errorf("'f' should not have a subjoined form")
	}
	if u, _ := Subjoined("a"); u != "\u0fb8" {
		t.Errorf("expected subjoined a-chen U+0FB8, have %+q", u)
	}
	if u, _ := Vowel("-I"); u != "\u0f71\u0f80" {
		t.Errorf("expected long reversed i, have %+q", u)
	}
	if !IsVowel("O") || IsVowel("x") {
		t.Errorf("vowel membership broken for 'O' or 'x'")
	}
	if u, _ := Other("//"); u != "\u0f0e" {
		t.Errorf("expected double shad, have %+q", u)
	}
	if !IsSpecial("+") || IsSpecial("k") {
		t.Errorf("special membership broken")
	}
}

func TestFinalClasses(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	classes := map[string]string{
		"M": "M", "~M`": "M", "~M": "M",
		"X": "X", "~X": "X",
		"H": VisargaClass, "?": "?", "^": "^", "&": "&",
	}
	for f, class := range classes {
		uni, c, ok := Final(f)
		if !ok {
			t.Errorf("expected %q to be a final", f)
			continue
		}
		if c != class {
			t.Errorf("expected final %q to be of class %q, is %q", f, class, c)
		}
		if utf8.RuneCountInString(uni) != 1 {
			t.Errorf("expected final %q to be a single code-point, is %+q", f, uni)
		}
	}
}

func TestRelations(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sup := Superscripts()
	if !sup.Has("r") || !sup.Allows("r", "k") || !sup.Allows("r", "g+y") {
		t.Errorf("expected 'r' to sit above 'k' and 'g+y'")
	}
	if sup.Allows("l", "s") {
		t.Errorf("'l' must not sit above 's'")
	}
	if !Subscripts().Allows("w", "r+ts") {
		t.Errorf("expected 'w' to go below 'r+ts'")
	}
	if !Prefixes().Allows("b", "s+g+r") {
		t.Errorf("expected 'b' to prefix 's+g+r'")
	}
	if !Suffixes2().Allows("d", "n") || Suffixes2().Allows("s", "n") {
		t.Errorf("2nd suffix relation broken for 'd'/'s' after 'n'")
	}
	if !IsSuffix("-t") || IsSuffix("k") {
		t.Errorf("suffix membership broken")
	}
	if !IsAffixedSuffix2("ng") || IsAffixedSuffix2("s") {
		t.Errorf("affixed 2nd suffix membership broken")
	}
}

func TestRelationWithout(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	stripped := Superscripts().Without("r")
	if !stripped.Has("r") {
		t.Errorf("expected 'r' to still be a superscript")
	}
	if stripped.Allows("r", "k") {
		t.Errorf("expected 'r' to allow nothing in stripped relation")
	}
	if !stripped.Allows("s", "k") {
		t.Errorf("expected other entries to survive")
	}
	if !Superscripts().Allows("r", "k") {
		t.Errorf("shared relation has been modified")
	}
}

func TestAmbiguous(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	a, ok := Ambiguous("dgs")
	if !ok || a.Root != 1 || a.Wylie != "dgas" {
		t.Errorf("expected dgs => (1, dgas), have %v", a)
	}
	if a, _ = Ambiguous("mngs"); a.Root != 0 || a.Wylie != "mangs" {
		t.Errorf("expected mngs => (0, mangs), have %v", a)
	}
	if _, ok = Ambiguous("gs"); ok {
		t.Errorf("did not expect 'gs' to be ambiguous")
	}
}

func TestTokenTablesConsistent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, v := range multiTokens.Values() {
		tok := v.(string)
		first, _ := utf8.DecodeRuneInString(tok)
		maxLen, ok := MaxTokenLen(first)
		if !ok {
			t.Errorf("token %q starts with %q, which is not registered", tok, first)
			continue
		}
		if l := utf8.RuneCountInString(tok); l > maxLen {
			t.Errorf("token %q is longer (%d) than max length %d for %q", tok, l, maxLen, first)
		}
	}
	if _, ok := MaxTokenLen('x'); ok {
		t.Errorf("no multi-char token starts with 'x'")
	}
}

func TestReverseTables(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	names := map[rune]string{
		'\u0f40': "k",
		'\u0fb2': "+r",
		'\u0f72': "i",
		'\u0f7f': "H",
		'\u0f0d': "/",
		'\u0f68': "a",
	}
	for r, name := range names {
		if n, ok := Name(r); !ok || n != name {
			t.Errorf("expected %#U to be named %q, is %q", r, name, n)
		}
	}
	if _, ok := Name('A'); ok {
		t.Errorf("latin letter should not have an EWTS name")
	}
	if w, c, _ := FinalMark('\u0f82'); w != "~M`" || c != "M" {
		t.Errorf("expected U+0F82 to be ~M` of class M, is %q/%q", w, c)
	}
	if l, _ := LongVowel("-i"); l != "-I" {
		t.Errorf("expected long -i to be -I, is %q", l)
	}
	if c, _ := CaretLetter("ph"); c != "f" {
		t.Errorf("expected ph^ to be f, is %q", c)
	}
	if !StackNeedsNoPlus("g+r+w") || StackNeedsNoPlus("k+t") {
		t.Errorf("stack table broken")
	}
	if s, _ := TopLetter('\u0f69'); s != "k+Sh" {
		t.Errorf("expected KSSA to be k+Sh, is %q", s)
	}
	if s, _ := SubjoinedLetter('\u0fba'); s != "W" {
		t.Errorf("expected fixed-form subjoined WA to be W, is %q", s)
	}
	if s, _ := VowelSign('\u0f7d'); s != "au" {
		t.Errorf("expected U+0F7D to be au, is %q", s)
	}
	if s, _ := OtherSymbol(' '); s != "_" {
		t.Errorf("expected space to be _, is %q", s)
	}
}
