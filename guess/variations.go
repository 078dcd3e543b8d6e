package guess

import (
	"regexp"
	"strings"

	"github.com/passwdlab/zxcvbn-core/internal/cache"
	"github.com/passwdlab/zxcvbn-core/match"
	"github.com/passwdlab/zxcvbn-core/mathutil"
)

var (
	startOnlyUpperRe = regexp.MustCompile(`^[A-Z][^A-Z]+$`)
	endOnlyUpperRe   = regexp.MustCompile(`^[^A-Z]+[A-Z]$`)
	allUpperRe       = regexp.MustCompile(`^[^a-z]+$`)
)

// uppercaseVariations implements spec.md §4.2's uppercase-variations
// helper: how many ways an attacker would have to try capitalizing word
// before landing on its actual case pattern.
func uppercaseVariations(word string) float64 {
	if word == strings.ToLower(word) {
		return 1
	}
	if cache.MatchString(startOnlyUpperRe, word) ||
		cache.MatchString(endOnlyUpperRe, word) ||
		cache.MatchString(allUpperRe, word) {
		return 2
	}

	var upper, lower int
	for _, r := range word {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= 'a' && r <= 'z':
			lower++
		}
	}
	return choiceSum(upper, lower)
}

// l33tVariations implements spec.md §4.2's l33t-variations helper: how
// many ways an attacker would have to try each substitution before
// landing on the one actually used.
func l33tVariations(m *match.Dictionary) float64 {
	if !m.L33t || m.Sub == nil {
		return 1
	}
	lower := strings.ToLower(m.Span().Token)

	variations := 1.0
	for substituted, original := range m.Sub {
		s := strings.Count(lower, substituted)
		u := strings.Count(lower, original)
		if s == 0 || u == 0 {
			variations *= 2
			continue
		}
		variations *= choiceSum(u, s)
	}
	return variations
}

// choiceSum computes Σ_{i=1..min(a,b)} C(a+b, i), the shared combinatorial
// shape both variation helpers use.
func choiceSum(a, b int) float64 {
	limit := a
	if b < limit {
		limit = b
	}
	var sum float64
	for i := 1; i <= limit; i++ {
		sum += float64(mathutil.NChooseK(a+b, i))
	}
	return sum
}
