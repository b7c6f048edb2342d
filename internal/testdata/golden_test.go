package testdata

import (
	"testing"
)

func TestParseCase(t *testing.T) {
	c, err := parseCase("ka\t\\u0f40\t0")
	if err != nil {
		t.Fatal(err)
	}
	if c.Input != "ka" || c.Expected != "\u0f40" || c.Diagnostics != 0 {
		t.Errorf("unexpected case %+v", c)
	}
	c, err = parseCase("\\u0f0d\t\\u0f0d\t1")
	if err != nil || c.Input != "\\u0f0d" {
		t.Errorf("expected input to be taken literally, have %+v, %v", c, err)
	}
	for _, bad := range []string{"ka", "ka\t\\x\t0", "ka\t\\u0f40\tmany"} {
		if _, err := parseCase(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestGoldenFiles(t *testing.T) {
	for _, file := range []string{"syllables.txt", "punctuation.txt"} {
		cases, err := GoldenCases(file)
		if err != nil {
			t.Fatal(err)
		}
		if len(cases) == 0 {
			t.Errorf("no cases in %s", file)
		}
	}
	if _, err := GoldenCases("missing.txt"); err == nil {
		t.Errorf("expected error for missing golden file")
	}
}
