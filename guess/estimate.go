// Package guess implements the per-pattern guess estimators of spec.md
// §4.2: one file per pattern kind, dispatched from Estimate.
package guess

import (
	"fmt"
	"math"

	"github.com/passwdlab/zxcvbn-core/graph"
	"github.com/passwdlab/zxcvbn-core/match"
)

// Estimate computes (and memoizes onto m) the guess count for a single
// match. Calling it twice on the same match returns the memoized value
// unchanged, per spec.md §4.2 and the memoization testable property of
// §8.
//
// passwordLen must be the password's rune count (e.g.
// utf8.RuneCountInString), not its byte length: it is compared directly
// against match.Span.Len(), which is itself a rune count taken after
// NFC normalization, so a multi-byte character in the password never
// throws off the "does this match cover the whole password" check
// submatchFloor relies on.
func Estimate(m match.Match, passwordLen int, graphs graph.Table, t Tunables) float64 {
	est := m.Estimate()
	if est.Estimated() {
		return est.Guesses
	}

	raw := rawGuesses(m, graphs, t)
	guesses := math.Max(raw, submatchFloor(m, passwordLen, t))
	est.Set(guesses)
	return guesses
}

// rawGuesses dispatches on the match's concrete type to the per-pattern
// estimator. Unknown types cannot occur: match.Match is a closed set of
// types defined by this module.
func rawGuesses(m match.Match, graphs graph.Table, t Tunables) float64 {
	switch v := m.(type) {
	case *match.Bruteforce:
		return bruteforceGuesses(v, t)
	case *match.Repeat:
		return repeatGuesses(v)
	case *match.Sequence:
		return sequenceGuesses(v)
	case *match.Regex:
		return regexGuesses(v, t)
	case *match.Date:
		return dateGuesses(v, t)
	case *match.Spatial:
		return spatialGuesses(v, graphs)
	case *match.Dictionary:
		return dictionaryGuesses(v)
	default:
		panic(fmt.Sprintf("guess: unhandled match type %T", m))
	}
}

// submatchFloor implements the generic floor spec.md §4.2 describes
// before the per-pattern estimators: a match narrower than the whole
// password can never be "too cheap" to guess, or the optimizer would
// prefer decomposing every match into single characters.
func submatchFloor(m match.Match, passwordLen int, t Tunables) float64 {
	span := m.Span()
	if span.Len() >= passwordLen {
		return 1
	}
	if span.Len() == 1 {
		return t.MinSubmatchGuessesSingleChar
	}
	return t.MinSubmatchGuessesMultiChar
}
