package match

import "fmt"

// Error reports a malformed match, in the same spirit as the AST-scanner
// error record this module is grounded on (indices instead of source
// positions). Per spec.md §7, callers that would rather default a
// missing field than reject a match should validate before constructing
// it; Validate always rejects.
type Error struct {
	Index int // position of the offending match within its input slice
	Err   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("match %d: %s", e.Index, e.Err)
}

// NewError creates an Error for the match at the given index.
func NewError(index int, format string, args ...interface{}) *Error {
	return &Error{Index: index, Err: fmt.Sprintf(format, args...)}
}

// Validate checks a single match's span against password and its
// pattern-specific attributes against spec.md §3's invariants. It
// returns nil for a well-formed match.
func Validate(password string, m Match) error {
	n := len(password)
	s := m.Span()
	if s.I < 0 || s.J < s.I || s.J >= n {
		return fmt.Errorf("span [%d, %d] out of bounds for password of length %d", s.I, s.J, n)
	}
	if s.Token != password[s.I:s.J+1] {
		return fmt.Errorf("token %q does not match password[%d:%d]", s.Token, s.I, s.J+1)
	}
	switch v := m.(type) {
	case *Dictionary:
		if v.Rank < 1 {
			return fmt.Errorf("dictionary match has non-positive rank %d", v.Rank)
		}
		if v.L33t && v.Sub == nil {
			return fmt.Errorf("dictionary match has l33t=true but no substitution table")
		}
	case *Spatial:
		if v.Turns < 1 {
			return fmt.Errorf("spatial match has non-positive turns %d", v.Turns)
		}
		if v.ShiftedCount < 0 || v.ShiftedCount > s.Len() {
			return fmt.Errorf("spatial match has out-of-range shifted_count %d for token of length %d", v.ShiftedCount, s.Len())
		}
	case *Repeat:
		if v.RepeatCount < 1 {
			return fmt.Errorf("repeat match has non-positive repeat_count %d", v.RepeatCount)
		}
	case *Regex:
		if !v.RegexName.valid() {
			return fmt.Errorf("regex match has unrecognized regex_name %q", v.RegexName)
		}
		if v.RegexName == RegexRecentYear && v.Year == 0 {
			return fmt.Errorf("recent_year regex match has zero year")
		}
	case *Date:
		if v.Year == 0 {
			return fmt.Errorf("date match has zero year")
		}
	}
	return nil
}
