package guess

import "time"

// Tunables holds the literal constants of spec.md §6. They are "fixed
// unless rebuilt" in the reference model; this module exposes them as a
// struct instead of package constants so a caller's Config (see the
// root package) can override them for testing or for a rebuilt cardinality
// assumption, while DefaultTunables reproduces the reference values.
type Tunables struct {
	BruteforceCardinality           float64
	MinGuessesBeforeGrowingSequence float64
	MinSubmatchGuessesSingleChar    float64
	MinSubmatchGuessesMultiChar     float64
	MinYearSpace                    float64
	ReferenceYear                   int
}

// DefaultTunables returns the literal constants from spec.md §6, with
// ReferenceYear derived from the wall clock as spec.md §9 describes.
func DefaultTunables() Tunables {
	return Tunables{
		BruteforceCardinality:           10,
		MinGuessesBeforeGrowingSequence: 10000,
		MinSubmatchGuessesSingleChar:    10,
		MinSubmatchGuessesMultiChar:     50,
		MinYearSpace:                    20,
		ReferenceYear:                   time.Now().Year(),
	}
}
