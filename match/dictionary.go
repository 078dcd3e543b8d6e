package match

// Dictionary is a match against a ranked word list, optionally reversed
// and/or reached via l33t substitution.
type Dictionary struct {
	SpanInfo Span
	Est      Estimate

	Rank     int // 1-based popularity rank in the source list
	Reversed bool

	L33t bool
	// Sub maps a substituted character to the original character it
	// replaces, e.g. {"3": "e"}. Nil when L33t is false.
	Sub map[string]string
}

func (m *Dictionary) Span() Span          { return m.SpanInfo }
func (m *Dictionary) Estimate() *Estimate { return &m.Est }
