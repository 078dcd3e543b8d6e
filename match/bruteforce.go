package match

// Bruteforce is the fallback pattern the optimizer synthesizes for
// stretches of the password no producer explained. Never emitted by a
// match producer.
type Bruteforce struct {
	SpanInfo Span
	Est      Estimate
}

// NewBruteforce builds a synthetic bruteforce match covering [i, j].
func NewBruteforce(i, j int, password string) *Bruteforce {
	return &Bruteforce{SpanInfo: Span{I: i, J: j, Token: password[i : j+1]}}
}

func (m *Bruteforce) Span() Span          { return m.SpanInfo }
func (m *Bruteforce) Estimate() *Estimate { return &m.Est }
