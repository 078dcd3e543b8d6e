package match

// RegexName selects which named character class or literal pattern a
// Regex match was found by.
type RegexName string

const (
	RegexAlphaLower   RegexName = "alpha_lower"
	RegexAlphaUpper   RegexName = "alpha_upper"
	RegexAlpha        RegexName = "alpha"
	RegexAlphanumeric RegexName = "alphanumeric"
	RegexDigits       RegexName = "digits"
	RegexSymbols      RegexName = "symbols"
	RegexRecentYear   RegexName = "recent_year"
)

// valid reports whether n is one of the documented RegexName values.
// Validate uses this to reject a malformed match before it ever reaches
// the estimator, which panics on an unrecognized class since, once
// validated, the type is meant to be a closed enum.
func (n RegexName) valid() bool {
	switch n {
	case RegexAlphaLower, RegexAlphaUpper, RegexAlpha, RegexAlphanumeric, RegexDigits, RegexSymbols, RegexRecentYear:
		return true
	default:
		return false
	}
}

// Regex is a match against a fixed lexical class or a recent-year
// literal.
type Regex struct {
	SpanInfo Span
	Est      Estimate

	RegexName RegexName
	// Year holds the matched digits when RegexName is RegexRecentYear;
	// unused otherwise.
	Year int
}

func (m *Regex) Span() Span          { return m.SpanInfo }
func (m *Regex) Estimate() *Estimate { return &m.Est }
