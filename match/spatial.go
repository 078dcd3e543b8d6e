package match

// Spatial is a keyboard- or keypad-walk match, e.g. "qwerty" or "789456".
type Spatial struct {
	SpanInfo Span
	Est      Estimate

	Graph        string // "qwerty", "dvorak", "keypad", ...
	Turns        int    // count of direction changes, >= 1
	ShiftedCount int    // characters requiring shift
}

func (m *Spatial) Span() Span          { return m.SpanInfo }
func (m *Spatial) Estimate() *Estimate { return &m.Est }
