package sequence

import (
	"sort"
	"unicode/utf8"

	"github.com/passwdlab/zxcvbn-core/graph"
	"github.com/passwdlab/zxcvbn-core/guess"
	"github.com/passwdlab/zxcvbn-core/match"
	"github.com/passwdlab/zxcvbn-core/mathutil"
)

// cell is one Pareto-surviving (length, cover) pair at a prefix end
// index, per spec.md §3's Optimal working state.
type cell struct {
	m  match.Match
	pi float64
	g  float64
}

// optimal holds, for every prefix end index k, the sparse map of
// surviving lengths to their best cover. spec.md §9 suggests small dense
// arrays; a map is used here since l_max is not known in advance and
// stays small in practice regardless.
type optimal struct {
	rows []map[int]cell
	// password and passwordRuneLen are indexed differently on purpose:
	// match spans (I, J) are byte offsets into password, since that is
	// how match producers slice it, while passwordRuneLen is the rune
	// count guess.Estimate compares against match.Span.Len() (itself a
	// rune count), so a multi-byte character never miscounts a match
	// that covers the whole password as falling short of it.
	password        string
	passwordRuneLen int
	graphs          graph.Table
	tunables        guess.Tunables
}

func newOptimal(password string, graphs graph.Table, tunables guess.Tunables) *optimal {
	rows := make([]map[int]cell, len(password))
	for i := range rows {
		rows[i] = make(map[int]cell)
	}
	return &optimal{
		rows:            rows,
		password:        password,
		passwordRuneLen: utf8.RuneCountInString(password),
		graphs:          graphs,
		tunables:        tunables,
	}
}

// update evaluates match as the terminal element of a length-l cover
// ending at match's end index, and records it if no shorter-or-equal
// cover ending there already does at least as well. Per spec.md §4.3's
// Open Question, all three DP fields are written atomically after the
// pruning decision.
func (o *optimal) update(m match.Match, l int, excludeAdditive bool) {
	span := m.Span()
	k := span.J

	piPrev := 1.0
	if l > 1 {
		piPrev = o.rows[span.I-1][l-1].pi
	}
	piNew := guess.Estimate(m, o.passwordRuneLen, o.graphs, o.tunables) * piPrev

	gNew := mathutil.Factorial(l) * piNew
	if !excludeAdditive {
		gNew += pow(o.tunables.MinGuessesBeforeGrowingSequence, l-1)
	}

	for lp, existing := range o.rows[k] {
		if lp <= l && existing.g <= gNew {
			return
		}
	}
	o.rows[k][l] = cell{m: m, pi: piNew, g: gNew}
}

// bruteforceUpdate synthesizes the bruteforce matches spec.md §4.3
// describes for prefix end k: one covering [0, k] as a length-1 cover,
// and one covering [i, k] appended to every non-bruteforce-terminated
// cover ending at i-1, for each i in [1, k].
func (o *optimal) bruteforceUpdate(k int, excludeAdditive bool) {
	o.update(match.NewBruteforce(0, k, o.password), 1, excludeAdditive)

	for i := 1; i <= k; i++ {
		bf := match.NewBruteforce(i, k, o.password)
		for l, existing := range o.rows[i-1] {
			if _, isBruteforce := existing.m.(*match.Bruteforce); isBruteforce {
				continue
			}
			o.update(bf, l+1, excludeAdditive)
		}
	}
}

// bucketByEnd groups matches by their end index and sorts each bucket
// by start index ascending, per spec.md §4.3 step 1.
func bucketByEnd(n int, matches []match.Match) [][]match.Match {
	buckets := make([][]match.Match, n)
	for _, m := range matches {
		j := m.Span().J
		buckets[j] = append(buckets[j], m)
	}
	for _, bucket := range buckets {
		sort.Slice(bucket, func(a, b int) bool {
			return bucket[a].Span().I < bucket[b].Span().I
		})
	}
	return buckets
}

// bestLength returns the length minimizing g at the given row, and
// whether the row had any surviving entry.
func bestLength(row map[int]cell) (int, bool) {
	best := -1
	var bestG float64
	for l, c := range row {
		if best == -1 || c.g < bestG {
			best, bestG = l, c.g
		}
	}
	return best, best != -1
}

// pow raises base to a non-negative integer exponent; used instead of
// math.Pow for the additive term because exponents here are always
// small non-negative integers and this avoids float rounding surprises
// at exponent 0.
func pow(base float64, exp int) float64 {
	if exp <= 0 {
		return 1
	}
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
