package guess

import (
	"math"

	"github.com/passwdlab/zxcvbn-core/graph"
	"github.com/passwdlab/zxcvbn-core/match"
	"github.com/passwdlab/zxcvbn-core/mathutil"
)

// spatialGuesses implements spec.md §4.2's spatial estimator: the
// keyboard-walk guess count for a token of length L with Turns turns,
// summed over every way to split the walk into 1..Turns straight runs,
// then adjusted for shift-key ambiguity.
func spatialGuesses(m *match.Spatial, graphs graph.Table) float64 {
	g := graphs[m.Graph]
	s := float64(graph.StartingPositions(graphs, m.Graph))
	d := graph.AverageDegree(g)

	l := m.Span().Len()
	turns := m.Turns

	var guesses float64
	for i := 2; i <= l; i++ {
		maxJ := turns
		if i-1 < maxJ {
			maxJ = i - 1
		}
		for j := 1; j <= maxJ; j++ {
			guesses += float64(mathutil.NChooseK(i-1, j-1)) * s * math.Pow(d, float64(j))
		}
	}

	u := l - m.ShiftedCount
	switch {
	case m.ShiftedCount == 0 || u == 0:
		guesses *= 2
	default:
		var shiftVariations float64
		limit := m.ShiftedCount
		if u < limit {
			limit = u
		}
		for i := 1; i <= limit; i++ {
			shiftVariations += float64(mathutil.NChooseK(m.ShiftedCount+u, i))
		}
		guesses *= shiftVariations
	}
	return guesses
}
