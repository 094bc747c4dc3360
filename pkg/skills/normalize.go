package skills

import "strings"

// Normalize canonicalizes a single skill token: lower-case and trim.
// Intentionally nothing else (no stemming, no synonym resolution) so the
// same token always maps to the same canonical form.
func Normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// Set is a deduplicated, case-insensitive skill set keyed by canonical form.
type Set map[string]struct{}

// NewSet builds a Set from raw skill strings, normalizing each and dropping
// empties.
func NewSet(items []string) Set {
	s := make(Set, len(items))
	for _, it := range items {
		n := Normalize(it)
		if n == "" {
			continue
		}
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether the set holds the skill (compared canonically).
func (s Set) Contains(skill string) bool {
	_, ok := s[Normalize(skill)]
	return ok
}

// Intersects reports whether at least one of other's elements is in s.
func (s Set) Intersects(other []string) bool {
	for _, it := range other {
		if s.Contains(it) {
			return true
		}
	}
	return false
}

// IntersectionCount returns how many elements the two sets share.
func (s Set) IntersectionCount(other Set) int {
	if len(other) < len(s) {
		s, other = other, s
	}
	n := 0
	for skill := range s {
		if _, ok := other[skill]; ok {
			n++
		}
	}
	return n
}
