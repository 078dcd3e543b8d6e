package guess

import (
	"math"

	"github.com/passwdlab/zxcvbn-core/match"
)

// bruteforceGuesses implements spec.md §4.2's bruteforce estimator:
// cardinality^length, saturating on overflow, floored one above the
// generic submatch floor so a synthesized bruteforce cover is never
// silently preferred to an equivalent-length submatch the optimizer
// also considered.
func bruteforceGuesses(m *match.Bruteforce, t Tunables) float64 {
	length := m.Span().Len()
	guesses := math.Pow(t.BruteforceCardinality, float64(length))
	if math.IsInf(guesses, 1) || guesses > math.MaxFloat64 {
		guesses = math.MaxFloat64
	}

	floorPlusOne := t.MinSubmatchGuessesMultiChar + 1
	if length == 1 {
		floorPlusOne = t.MinSubmatchGuessesSingleChar + 1
	}
	return math.Max(guesses, floorPlusOne)
}
