package ewts

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Range of the Tibetan Unicode block.
const (
	TibetanFirst rune = 0x0f00
	TibetanLast  rune = 0x0fff
)

// Tibetan is the range table of assigned code-points of the Tibetan block.
var Tibetan *unicode.RangeTable = unicode.Tibetan

var combining *unicode.RangeTable

var setupOnce sync.Once

// SetupCombining creates the range table for Tibetan combining marks.
// IsCombining will call it on first use. (Concurrency-safe).
func SetupCombining() {
	setupOnce.Do(setupCombiningMarks)
}

func setupCombiningMarks() {
	var marks []rune
	for r := TibetanFirst; r <= TibetanLast; r++ {
		if unicode.In(r, unicode.Mn, unicode.Mc) {
			marks = append(marks, r)
		}
	}
	combining = rangetable.New(marks...)
	T().Debugf("Tibetan block has %d combining marks", len(marks))
}

// IsCombining is true if r is a combining mark of the Tibetan block, i.e.
// a vowel sign, a subjoined consonant or a sign which attaches to a
// preceding character. Combining marks may not start a glyph cluster.
func IsCombining(r rune) bool {
	if r < TibetanFirst || r > TibetanLast {
		return false
	}
	SetupCombining()
	return unicode.Is(combining, r)
}

// IsTibetan is true if r is an assigned code-point of the Tibetan block.
func IsTibetan(r rune) bool {
	return unicode.Is(Tibetan, r)
}
