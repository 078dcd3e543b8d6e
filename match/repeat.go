package match

// Repeat is a match against a repeated unit, e.g. "abcabcabc" (unit
// "abc", RepeatCount 3) or "aaaa" (unit "a", RepeatCount 4).
type Repeat struct {
	SpanInfo Span
	Est      Estimate

	BaseGuesses float64 // guesses for the repeating unit itself
	RepeatCount int     // positive integer; see spec.md §9 on the typing of this field

	// BaseMatches holds the match(es) explaining the repeating unit, for
	// display purposes only. A tree, never cyclic: BaseMatches never
	// contains a Repeat pointing back to this match.
	BaseMatches []Match
}

func (m *Repeat) Span() Span          { return m.SpanInfo }
func (m *Repeat) Estimate() *Estimate { return &m.Est }
