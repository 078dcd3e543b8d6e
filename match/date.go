package match

// Date is a match against a calendar date, e.g. "1991-11-08" or "1234".
type Date struct {
	SpanInfo Span
	Est      Estimate

	Year int
	// Separator is the literal separator character(s) between date
	// parts, e.g. "-" or "/"; empty when the date had none.
	Separator string
}

func (m *Date) Span() Span          { return m.SpanInfo }
func (m *Date) Estimate() *Estimate { return &m.Est }
