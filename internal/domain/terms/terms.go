// Package terms holds the lower-cased term sets used for category matching.
package terms

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Set is an unordered set of lower-cased terms.
type Set map[string]struct{}

// New builds a Set from the given terms, lower-casing each one and skipping empty strings.
func New(items ...string) Set {
	s := make(Set, len(items))
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts a term after lower-casing it. Empty terms are ignored.
func (s Set) Add(term string) {
	if term == "" {
		return
	}
	s[Lower(term)] = struct{}{}
}

// Union adds every term of other to s.
func (s Set) Union(other Set) {
	for t := range other {
		s[t] = struct{}{}
	}
}

// Contains reports whether the term is in the set.
func (s Set) Contains(term string) bool {
	_, ok := s[term]
	return ok
}

// Len returns the number of terms.
func (s Set) Len() int { return len(s) }

// Slice returns the terms in sorted order.
func (s Set) Slice() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Lower lower-cases s with Unicode-aware casing rules.
// A Caser is stateful, so one is built per call.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
