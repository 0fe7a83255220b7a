package ports

import "strings"

// Set is a filter set with exact, case-sensitive membership.
type Set map[string]struct{}

// SetOf builds a Set from a filter slice.
func SetOf(values []string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}

	return s
}

// Has reports membership.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Matches applies the filter policy: an empty set matches every value.
func (s Set) Matches(v string) bool {
	return len(s) == 0 || s.Has(v)
}

// Unconstrained reports whether a filter argument imposes no constraint.
func Unconstrained(values []string) bool {
	return len(values) == 0
}

// Compact trims each value, drops empty ones and removes duplicates
// while keeping first-seen order.
func Compact(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(Set, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen.Has(v) {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
