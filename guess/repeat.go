package guess

import "github.com/passwdlab/zxcvbn-core/match"

// repeatGuesses implements spec.md §4.2's repeat estimator: the base
// unit's own guesses multiplied by how many times it repeats.
func repeatGuesses(m *match.Repeat) float64 {
	return m.BaseGuesses * float64(m.RepeatCount)
}
