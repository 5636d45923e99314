// Package dic holds the compiled ".dic" wordlist: one Word entry per line,
// each with its stem, flag set, and optional morphological data tags.
//
// Grounded on original_source's data/dic.py; the Python defaultdict(list)
// indexes become plain Go maps built by Add, since dic.py's own index
// construction is just an append-as-you-go loop, not a sorted structure.
package dic

import (
	"strings"

	"github.com/azleksandar/hunspore/internal/casing"
	"github.com/azleksandar/hunspore/internal/flagset"
)

// Word is one dictionary entry: a stem, the flags that activate affixes and
// behavior switches on it, and any morphological data tags (st:, ph:, etc).
type Word struct {
	Stem         string
	Flags        flagset.Set
	Data         map[string][]string
	AltSpellings []string
	Captype      casing.Type
}

// HasFlag reports whether this word carries flag.
func (w *Word) HasFlag(flag string) bool { return w.Flags.Has(flag) }

// Dic is a compiled wordlist with indexes for exact and case-insensitive
// lookup by stem.
type Dic struct {
	Words []*Word

	index          map[string][]*Word
	lowercaseIndex map[string][]*Word
}

// New returns an empty Dic, ready for Add.
func New() *Dic {
	return &Dic{
		index:          make(map[string][]*Word),
		lowercaseIndex: make(map[string][]*Word),
	}
}

// Add appends word to the dictionary and indexes it by stem (and, if its
// casing differs, by lowercased stem too).
func (d *Dic) Add(w *Word) {
	d.Words = append(d.Words, w)
	d.index[w.Stem] = append(d.index[w.Stem], w)

	lower := strings.ToLower(w.Stem)
	if lower != w.Stem {
		d.lowercaseIndex[lower] = append(d.lowercaseIndex[lower], w)
	}
}

// Homonyms returns every Word entry sharing stem (exact match, or
// case-insensitive if ignoreCase is set — which additionally matches
// entries indexed only by their lowercased form).
func (d *Dic) Homonyms(stem string, ignoreCase bool) []*Word {
	out := append([]*Word(nil), d.index[stem]...)
	if ignoreCase {
		lower := strings.ToLower(stem)
		out = append(out, d.lowercaseIndex[lower]...)
	}
	return out
}

// HasFlag reports whether any (forAll: every) homonym of stem carries flag.
func (d *Dic) HasFlag(stem, flag string, forAll bool) bool {
	homonyms := d.Homonyms(stem, false)
	if len(homonyms) == 0 {
		return false
	}
	if forAll {
		for _, w := range homonyms {
			if !w.HasFlag(flag) {
				return false
			}
		}
		return true
	}
	for _, w := range homonyms {
		if w.HasFlag(flag) {
			return true
		}
	}
	return false
}
