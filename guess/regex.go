package guess

import (
	"math"

	"github.com/passwdlab/zxcvbn-core/match"
)

// regexCardinality gives the base of the exponentiation for each named
// character class regex.
var regexCardinality = map[match.RegexName]float64{
	match.RegexAlphaLower:   26,
	match.RegexAlphaUpper:   26,
	match.RegexAlpha:        52,
	match.RegexAlphanumeric: 62,
	match.RegexDigits:       10,
	match.RegexSymbols:      33,
}

// regexGuesses implements spec.md §4.2's regex estimator.
func regexGuesses(m *match.Regex, t Tunables) float64 {
	if m.RegexName == match.RegexRecentYear {
		return math.Max(math.Abs(float64(m.Year-t.ReferenceYear)), t.MinYearSpace)
	}
	base, ok := regexCardinality[m.RegexName]
	if !ok {
		panic("guess: unknown regex class " + string(m.RegexName))
	}
	return math.Pow(base, float64(m.Span().Len()))
}
