// Package testdata gives tests access to the golden conversion corpus.
//
// Golden files live in the golden/ directory next to this file. Every
// non-empty line not starting with '#' holds a test case with three
// tab-separated fields: EWTS input, expected Tibetan output and the number
// of expected diagnostics. The input is taken literally, as EWTS has
// escapes of its own. The expected output may use Go escapes like \u0f40.
package testdata

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Case is a single golden conversion.
type Case struct {
	Line        int // line in the golden file
	Input       string
	Expected    string
	Diagnostics int
}

// GoldenPath returns the path of a golden file.
func GoldenPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "golden", file)
}

// GoldenCases reads all cases of a golden file.
func GoldenCases(file string) ([]Case, error) {
	f, err := os.Open(GoldenPath(file))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cases []Case
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}
		c, err := parseCase(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", file, line, err)
		}
		c.Line = line
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return cases, nil
}

func parseCase(text string) (Case, error) {
	fields := strings.Split(text, "\t")
	if len(fields) != 3 {
		return Case{}, fmt.Errorf("expected 3 fields, have %d", len(fields))
	}
	expected, err := strconv.Unquote(`"` + fields[1] + `"`)
	if err != nil {
		return Case{}, fmt.Errorf("expected output %q: %w", fields[1], err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return Case{}, fmt.Errorf("diagnostics count: %w", err)
	}
	return Case{Input: fields[0], Expected: expected, Diagnostics: n}, nil
}
