// Package flagset wraps dictionary/affix flag collections in a small typed
// API over mapset.Set, matching the "unordered set, membership is the
// primary operation" contract dictionaries require for flag alphabets.
package flagset

import mapset "github.com/deckarep/golang-set"

// Set is an unordered collection of flags (opaque string tokens — Hunspell's
// four flag encodings are all normalized to comparable strings by the
// affix reader before they ever reach a Set).
type Set struct {
	s mapset.Set
}

// New builds a Set from zero or more flags.
func New(flags ...string) Set {
	s := mapset.NewSet()
	for _, f := range flags {
		s.Add(f)
	}
	return Set{s: s}
}

// Empty reports whether the set has no flags.
func (s Set) Empty() bool {
	return s.s == nil || s.s.Cardinality() == 0
}

// Has reports whether flag is a member. A zero-value Set (no flags loaded)
// never contains anything, including the empty string.
func (s Set) Has(flag string) bool {
	if flag == "" || s.s == nil {
		return false
	}
	return s.s.Contains(flag)
}

// Add returns a new Set with flag included.
func (s Set) Add(flag string) Set {
	s2 := s.clone()
	s2.s.Add(flag)
	return s2
}

// Union returns a new Set containing flags from both sets.
func (s Set) Union(other Set) Set {
	if s.s == nil {
		return other
	}
	if other.s == nil {
		return s
	}
	return Set{s: s.s.Union(other.s)}
}

// Intersect returns a new Set containing only flags present in both sets.
func (s Set) Intersect(other Set) Set {
	if s.s == nil || other.s == nil {
		return Set{s: mapset.NewSet()}
	}
	return Set{s: s.s.Intersect(other.s)}
}

// Slice returns the flags as a plain string slice (order unspecified).
func (s Set) Slice() []string {
	if s.s == nil {
		return nil
	}
	out := make([]string, 0, s.s.Cardinality())
	for f := range s.s.Iter() {
		out = append(out, f.(string))
	}
	return out
}

func (s Set) clone() Set {
	if s.s == nil {
		return New()
	}
	return Set{s: s.s.Clone()}
}
