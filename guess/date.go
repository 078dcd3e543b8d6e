package guess

import (
	"math"

	"github.com/passwdlab/zxcvbn-core/match"
)

// dateGuesses implements spec.md §4.2's date estimator.
func dateGuesses(m *match.Date, t Tunables) float64 {
	yearSpace := math.Max(math.Abs(float64(m.Year-t.ReferenceYear)), t.MinYearSpace)
	guesses := yearSpace * 365
	if m.Separator != "" {
		guesses *= 4
	}
	return guesses
}
