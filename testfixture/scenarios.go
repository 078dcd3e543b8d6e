// Package testfixture ships the literal scenarios used across the
// module's test suites, the way testutils shipped code samples shared
// across the analyzer's own rule tests: a scenario names its inputs and
// the exact numeric output a correct implementation must produce, so a
// test file need only assert equality instead of re-deriving the math.
package testfixture

import (
	"github.com/passwdlab/zxcvbn-core/guess"
	"github.com/passwdlab/zxcvbn-core/match"
)

// Scenario pairs a password and its candidate matches with the total
// guess count a correct optimal-sequence search must return for them.
// ReferenceYear is 0 for scenarios that don't care about it; a caller
// building tunables from this fixture should only override the
// default when it is nonzero.
type Scenario struct {
	Name            string
	Password        string
	Matches         []match.Match
	ExpectedGuesses float64
	ReferenceYear   int
}

// Tunables returns guess.DefaultTunables() with ReferenceYear pinned to
// s.ReferenceYear when the scenario cares about it, so date scenarios
// stay correct independent of the wall clock the test runs on.
func (s Scenario) Tunables() guess.Tunables {
	t := guess.DefaultTunables()
	if s.ReferenceYear != 0 {
		t.ReferenceYear = s.ReferenceYear
	}
	return t
}

// EmptyPassword covers the trivial base case: nothing to guess.
var EmptyPassword = Scenario{
	Name:            "empty password",
	Password:        "",
	Matches:         nil,
	ExpectedGuesses: 1,
}

// SingleCharBruteforce covers the fallback path: no producer found
// anything, so the optimizer synthesizes a length-1 bruteforce match.
var SingleCharBruteforce = Scenario{
	Name:            "single character falls back to brute force",
	Password:        "a",
	Matches:         nil,
	ExpectedGuesses: 12, // bruteforce estimate max(10^1, 11) = 11, then 1! * 11 + 10000^0 = 12
}

// DictionaryFullCoverage covers a dictionary match spanning the whole
// password, as a length-1 cover: the additive term still applies
// (10000^0 = 1), it just happens to be dwarfed by nothing else here.
var DictionaryFullCoverage = Scenario{
	Name:     "rank-1 dictionary match covering the whole password",
	Password: "zxcvbn",
	Matches: []match.Match{
		&match.Dictionary{SpanInfo: match.Span{I: 0, J: 5, Token: "zxcvbn"}, Rank: 1},
	},
	ExpectedGuesses: 2, // 1! * 1 + 10000^0
}

// RepeatFullCoverage covers a repeat match spanning the whole password.
var RepeatFullCoverage = Scenario{
	Name:     "repeat match covering the whole password",
	Password: "aaaa",
	Matches: []match.Match{
		&match.Repeat{SpanInfo: match.Span{I: 0, J: 3, Token: "aaaa"}, BaseGuesses: 11, RepeatCount: 4},
	},
	ExpectedGuesses: 45, // 1! * 44 + 10000^0
}

// DateReference2000 covers the date estimator against a fixed
// reference year, independent of the wall clock.
var DateReference2000 = Scenario{
	Name:     "date match 2000 against reference year 2024",
	Password: "2000-01-01",
	Matches: []match.Match{
		&match.Date{SpanInfo: match.Span{I: 0, J: 9, Token: "2000-01-01"}, Year: 2000, Separator: "-"},
	},
	ExpectedGuesses: 35041, // year_space=24, 24*365*4=35040, then 1! * 35040 + 10000^0
	ReferenceYear:   2024,
}

// All lists every scenario, for tests that want to range over the full set.
var All = []Scenario{
	EmptyPassword,
	SingleCharBruteforce,
	DictionaryFullCoverage,
	RepeatFullCoverage,
	DateReference2000,
}
