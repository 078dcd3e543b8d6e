package match

// Sequence is a match against a run of adjacent characters in some base
// alphabet, e.g. "abcd" or "9876".
type Sequence struct {
	SpanInfo Span
	Est      Estimate

	// Ascending is nil when the producer left directionality
	// unreported (spec.md treats that as uninformative rather than an
	// error); non-nil true/false otherwise.
	Ascending *bool
}

func (m *Sequence) Span() Span          { return m.SpanInfo }
func (m *Sequence) Estimate() *Estimate { return &m.Est }
