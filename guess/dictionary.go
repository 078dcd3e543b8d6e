package guess

import "github.com/passwdlab/zxcvbn-core/match"

// dictionaryGuesses implements spec.md §4.2's dictionary estimator:
// rank scaled by how many capitalization and l33t-substitution patterns
// an attacker would try before this exact one, doubled again if the
// match was found reversed.
func dictionaryGuesses(m *match.Dictionary) float64 {
	uppercase := uppercaseVariations(m.Span().Token)
	l33t := l33tVariations(m)

	m.Est.UppercaseVariations = uppercase
	m.Est.L33tVariations = l33t
	m.Est.BaseGuesses = float64(m.Rank)

	guesses := float64(m.Rank) * uppercase * l33t
	if m.Reversed {
		guesses *= 2
	}
	return guesses
}
