// Package match defines the tagged match variants the guess-estimation
// core operates on. The source this module is grounded on represents a
// match as one record with a grab-bag of optional attributes selected by
// a pattern tag; per spec.md §9 this package instead gives each pattern
// kind its own Go type, so the compiler — not a runtime tag check —
// enforces which attributes exist for which pattern.
package match

import (
	"math"

	"golang.org/x/text/unicode/norm"
)

// Match is implemented by every pattern-specific match type. The
// optimizer and the guess estimators operate on this interface; the
// per-pattern estimator files type-switch on the concrete type to reach
// pattern-specific fields.
type Match interface {
	// Span returns the match's position and token.
	Span() Span
	// Estimate returns the mutable output block the estimator fills in.
	Estimate() *Estimate
}

// Span is the common header every match carries: its inclusive
// [I, J] range within the password and the substring it covers.
type Span struct {
	I, J  int
	Token string
}

// Len returns the number of characters in Token after NFC
// normalization, so a combining-mark sequence counts as the one
// character a user perceives rather than as several runes.
func (s Span) Len() int {
	return len([]rune(norm.NFC.String(s.Token)))
}

// Estimate is the mutable output block the guess estimators write back
// onto a match, per spec.md §3's "Writable output slots".
type Estimate struct {
	Guesses             float64
	GuessesLog10        float64
	BaseGuesses         float64
	UppercaseVariations float64
	L33tVariations      float64
}

// Set records guesses as the estimator's memoized answer and derives
// GuessesLog10 from it. Callers should not call Set twice; Estimated
// reports whether it already has been.
func (e *Estimate) Set(guesses float64) {
	e.Guesses = guesses
	e.GuessesLog10 = math.Log10(guesses)
}

// Estimated reports whether the estimator has already computed and
// memoized Guesses for this match (spec.md §4.2's memoization rule).
func (e *Estimate) Estimated() bool {
	return e.Guesses != 0
}
