// Package permute generates candidate misspelling repairs: single-character
// edits, transpositions, keyboard-adjacent substitutions, and word splits.
// Every generator is lazy, streaming candidates over a channel as they're
// produced rather than building a slice up front, so a caller scanning for
// an early hit (spec.md §5) never pays for permutations it doesn't need.
//
// Grounded on original_source's algo/permutations.py; function names kept
// close to Hunspell's own suggest.cxx naming (the Python module's own
// convention) to keep the two traceable against each other.
package permute

import (
	"strings"

	"github.com/azleksandar/hunspore/internal/affix"
	"github.com/azleksandar/hunspore/internal/flagset"
)

// MaxCharDistance bounds how far apart two characters may be for
// LongSwapChar/MoveChar to consider swapping/moving them.
const MaxCharDistance = 4

// WordSplit is a twowords/replchars-space-split candidate: the original
// word broken into two pieces to be checked independently.
type WordSplit struct {
	First, Second string
}

// ReplChars replaces each REP-table pattern match in word with its
// replacement ("_" becomes a space) and yields the result. A result that
// contains a space is yielded twice, as the same space-joined string;
// ReplCharsSplit yields such results as WordSplit pairs instead.
func ReplChars(word string, repTable []affix.RepPattern) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		if len([]rune(word)) < 2 || len(repTable) == 0 {
			return
		}
		for _, pattern := range repTable {
			for _, loc := range pattern.Regexp.FindAllStringIndex(word, -1) {
				suggestion := word[:loc[0]] + strings.ReplaceAll(pattern.Replacement, "_", " ") + word[loc[1]:]
				out <- suggestion
				if strings.Contains(suggestion, " ") {
					parts := strings.SplitN(suggestion, " ", 2)
					out <- parts[0] + " " + parts[1]
				}
			}
		}
	}()
	return out
}

// ReplCharsSplit is the two-word variant of ReplChars: it yields the same
// candidates as ReplChars but as WordSplit pairs wherever the replacement
// introduced a space, for callers checking "is this actually two words".
func ReplCharsSplit(word string, repTable []affix.RepPattern) <-chan WordSplit {
	out := make(chan WordSplit)
	go func() {
		defer close(out)
		if len([]rune(word)) < 2 || len(repTable) == 0 {
			return
		}
		for _, pattern := range repTable {
			for _, loc := range pattern.Regexp.FindAllStringIndex(word, -1) {
				suggestion := word[:loc[0]] + strings.ReplaceAll(pattern.Replacement, "_", " ") + word[loc[1]:]
				if strings.Contains(suggestion, " ") {
					parts := strings.SplitN(suggestion, " ", 2)
					out <- WordSplit{First: parts[0], Second: parts[1]}
				}
			}
		}
	}()
	return out
}

// MapChars recursively substitutes characters within the same MAP group
// (sets of visually/phonetically similar characters), producing every
// combination reachable by picking one alternate per group occurrence.
func MapChars(word string, mapTable []flagset.Set) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		if len([]rune(word)) < 2 || len(mapTable) == 0 {
			return
		}
		var rec func(word string, start int)
		rec = func(word string, start int) {
			if start >= len(word) {
				return
			}
			for _, options := range mapTable {
				opts := options.Slice()
				for _, option := range opts {
					pos := strings.Index(word[start:], option)
					if pos == -1 {
						continue
					}
					pos += start
					for _, other := range opts {
						if other == option {
							continue
						}
						replaced := word[:pos] + other + word[pos+len(option):]
						out <- replaced
						rec(replaced, pos+1)
					}
				}
			}
		}
		rec(word, 0)
	}()
	return out
}

// SwapChar swaps each pair of adjacent characters, plus "double swap"
// permutations (one for 4-letter words, two for 5-letter words) that fix
// transpositions swapchar alone can't reach in one step ("ahev" -> "have").
func SwapChar(word string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		r := []rune(word)
		n := len(r)
		if n < 2 {
			return
		}
		for i := 0; i < n-1; i++ {
			cp := append([]rune(nil), r...)
			cp[i], cp[i+1] = cp[i+1], cp[i]
			out <- string(cp)
		}
		if n == 4 || n == 5 {
			if n == 4 {
				out <- string([]rune{r[1], r[0], r[3], r[2]})
			} else {
				out <- string([]rune{r[1], r[0], r[2], r[4], r[3]})
				out <- string([]rune{r[0], r[2], r[1], r[4], r[3]})
			}
		}
	}()
	return out
}

// LongSwapChar swaps pairs of characters up to MaxCharDistance apart.
func LongSwapChar(word string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		r := []rune(word)
		n := len(r)
		for first := 0; first < n-2; first++ {
			limit := first + MaxCharDistance + 1
			if limit > n {
				limit = n
			}
			for second := first + 2; second < limit; second++ {
				cp := append([]rune(nil), r...)
				cp[first], cp[second] = cp[second], cp[first]
				out <- string(cp)
			}
		}
	}()
	return out
}

// BadCharKey replaces each character with its upper-cased form (in case the
// mismatch was accidental capitalization) and, if layout is non-empty,
// with its keyboard-adjacent neighbors per a KEY-directive layout string
// such as "qwertyuiop|asdfghjkl|zxcvbnm".
func BadCharKey(word, layout string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		r := []rune(word)
		for i, c := range r {
			before := string(r[:i])
			after := string(r[i+1:])

			upper := strings.ToUpper(string(c))
			if upper != string(c) {
				out <- before + upper + after
			}

			if layout == "" {
				continue
			}
			layoutRunes := []rune(layout)
			pos := indexRune(layoutRunes, c, 0)
			for pos != -1 {
				if pos > 0 && layoutRunes[pos-1] != '|' {
					out <- before + string(layoutRunes[pos-1]) + after
				}
				if pos+1 < len(layoutRunes) && layoutRunes[pos+1] != '|' {
					out <- before + string(layoutRunes[pos+1]) + after
				}
				pos = indexRune(layoutRunes, c, pos+1)
			}
		}
	}()
	return out
}

func indexRune(haystack []rune, needle rune, from int) int {
	for i := from; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// ExtraChar removes one character, in every position.
func ExtraChar(word string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		r := []rune(word)
		if len(r) < 2 {
			return
		}
		for i := range r {
			out <- string(r[:i]) + string(r[i+1:])
		}
	}()
	return out
}

// ForgotChar inserts each character of tryString at every position.
func ForgotChar(word, tryString string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		if tryString == "" {
			return
		}
		r := []rune(word)
		for _, c := range tryString {
			for i := 0; i <= len(r); i++ {
				out <- string(r[:i]) + string(c) + string(r[i:])
			}
		}
	}()
	return out
}

// MoveChar moves one character forward or backward by 2, 3 or 4 places
// (distance 1 is already covered by SwapChar).
func MoveChar(word string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		r := []rune(word)
		n := len(r)
		if n < 2 {
			return
		}

		for from := 0; from < n; from++ {
			limit := from + MaxCharDistance + 2
			if limit > n {
				limit = n
			}
			for to := from + 3; to < limit; to++ {
				cp := append([]rune(nil), r[:from]...)
				cp = append(cp, r[from+1:to]...)
				cp = append(cp, r[from])
				cp = append(cp, r[to:]...)
				out <- string(cp)
			}
		}

		for from := n - 1; from >= 0; from-- {
			lo := from - MaxCharDistance
			if lo < 0 {
				lo = 0
			}
			for to := from - 2; to >= lo; to-- {
				cp := append([]rune(nil), r[:to]...)
				cp = append(cp, r[from])
				cp = append(cp, r[to:from]...)
				cp = append(cp, r[from+1:]...)
				out <- string(cp)
			}
		}
	}()
	return out
}

// BadChar replaces each character with each character of tryString.
func BadChar(word, tryString string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		if tryString == "" {
			return
		}
		r := []rune(word)
		for _, c := range tryString {
			for i := len(r) - 1; i >= 0; i-- {
				if r[i] == c {
					continue
				}
				cp := append([]rune(nil), r...)
				cp[i] = c
				out <- string(cp)
			}
		}
	}()
	return out
}

// DoubleTwoChars collapses an accidentally doubled two-letter group
// ("vacacation" -> "vacation").
func DoubleTwoChars(word string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		r := []rune(word)
		if len(r) < 5 {
			return
		}
		for i := 3; i < len(r); i++ {
			if r[i-2] == r[i] && r[i-3] == r[i-1] {
				out <- string(r[:i-1]) + string(r[i+1:])
			}
		}
	}()
	return out
}

// TwoWords splits word into two pieces at every position.
func TwoWords(word string) <-chan WordSplit {
	out := make(chan WordSplit)
	go func() {
		defer close(out)
		r := []rune(word)
		for i := 1; i < len(r); i++ {
			out <- WordSplit{First: string(r[:i]), Second: string(r[i:])}
		}
	}()
	return out
}
