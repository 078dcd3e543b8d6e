package guess

import (
	"strings"
	"unicode"

	"github.com/passwdlab/zxcvbn-core/match"
)

// obviousSequenceStarts are the literal start/end markers spec.md §4.2
// names as needing only a 4-way guess for which alphabet edge the
// attacker started from.
const obviousSequenceStarts = "aAzZ019"

// sequenceGuesses implements spec.md §4.2's sequence estimator.
func sequenceGuesses(m *match.Sequence) float64 {
	token := m.Span().Token
	first := []rune(token)[0]

	var base float64
	switch {
	case strings.ContainsRune(obviousSequenceStarts, first):
		base = 4
	case unicode.IsDigit(first):
		base = 10
	default:
		base = 26
	}

	if m.Ascending != nil && !*m.Ascending {
		base *= 2
	}
	return base * float64(m.Span().Len())
}
