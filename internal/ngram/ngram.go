// Package ngram implements the n-gram similarity suggester: score every
// dictionary stem against the misspelling, expand the best scorers with
// their affixed forms, and rank the result with a precise three-factor
// score.
//
// Grounded on original_source's algo/ngram_suggest.py, the three-phase
// heap-bounded pipeline kept intact; Python's heapq best-of-N selection
// becomes a plain sort-and-slice here since Go's container/heap would add
// ceremony without changing the asymptotic behavior for these bounded N.
package ngram

import (
	"sort"
	"strings"

	"github.com/azleksandar/hunspore/internal/affix"
	"github.com/azleksandar/hunspore/internal/dic"
	"github.com/azleksandar/hunspore/internal/metrics"
)

const (
	maxRoots    = 100
	maxGuesses  = 200
)

type rootScore struct {
	score float64
	stem  string
	word  *dic.Word
}

type guessScore struct {
	score    float64
	compared string
	real     string
}

// Suggest returns n-gram-similarity-based suggestions for misspelling.
func Suggest(misspelling string, dictionaryWords []*dic.Word, prefixes map[string][]*affix.Prefix,
	suffixes map[string][]*affix.Suffix, known map[string]struct{}, maxdiff int, onlymaxdiff bool) []string {

	misRunes := []rune(misspelling)

	var roots []rootScore
	for _, word := range dictionaryWords {
		stemRunes := []rune(word.Stem)
		if abs(len(stemRunes)-len(misRunes)) > 4 {
			continue
		}

		score := rootScoreValue(misRunes, stemRunes)
		for _, variant := range word.AltSpellings {
			if alt := rootScoreValue(misRunes, []rune(variant)); alt > score {
				score = alt
			}
		}

		roots = append(roots, rootScore{score: score, stem: word.Stem, word: word})
	}

	sort.Slice(roots, func(i, j int) bool { return roots[i].score > roots[j].score })
	if len(roots) > maxRoots {
		roots = roots[:maxRoots]
	}

	threshold := detectThreshold(misRunes)

	var guesses []guessScore
	for _, r := range roots {
		root := r.word
		if len(root.AltSpellings) > 0 {
			for _, variant := range root.AltSpellings {
				score := roughAffixScore(misRunes, []rune(variant))
				if score > threshold {
					guesses = append(guesses, guessScore{score: score, compared: variant, real: root.Stem})
				}
			}
		}

		for _, form := range formsFor(root, prefixes, suffixes, misspelling) {
			score := roughAffixScore(misRunes, []rune(strings.ToLower(form)))
			if score > threshold {
				guesses = append(guesses, guessScore{score: score, compared: form, real: form})
			}
		}
	}

	sort.Slice(guesses, func(i, j int) bool { return guesses[i].score > guesses[j].score })
	if len(guesses) > maxGuesses {
		guesses = guesses[:maxGuesses]
	}

	var fact float64 = 1.0
	if maxdiff >= 0 {
		fact = (10.0 - float64(maxdiff)) / 5.0
	}

	type scored struct {
		score float64
		real  string
	}
	results := make([]scored, len(guesses))
	for i, g := range guesses {
		results[i] = scored{
			score: preciseAffixScore(misRunes, []rune(strings.ToLower(g.compared)), fact, g.score),
			real:  g.real,
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })

	pairs := make([][2]interface{}, len(results))
	for i, r := range results {
		pairs[i] = [2]interface{}{r.score, r.real}
	}
	return filterGuesses(pairs, known, onlymaxdiff)
}

func rootScoreValue(word1, word2 []rune) float64 {
	lower2 := toLowerRunes(word2)
	return float64(metrics.Ngram(3, word1, lower2, metrics.NgramOptions{LongerWorse: true})) +
		float64(metrics.LeftCommonSubstring(word1, lower2))
}

func roughAffixScore(word1, word2 []rune) float64 {
	return float64(metrics.Ngram(len(word1), word1, word2, metrics.NgramOptions{AnyMismatch: true})) +
		float64(metrics.LeftCommonSubstring(word1, word2))
}

func preciseAffixScore(word1, word2 []rune, diffFactor float64, base float64) float64 {
	lcs := metrics.LCSLen(word1, word2)

	if len(word1) == len(word2) && len(word1) == lcs {
		return base + 2000
	}

	result := float64(2*lcs - abs(len(word1)-len(word2)))
	result += float64(metrics.LeftCommonSubstring(word1, word2))

	cps, isSwap := metrics.CommonCharacterPositions(word1, toLowerRunes(word2))
	if cps > 0 {
		result++
	}
	if isSwap {
		result += 10
	}

	result += float64(metrics.Ngram(4, word1, word2, metrics.NgramOptions{AnyMismatch: true}))

	bigrams := float64(metrics.Ngram(2, word1, word2, metrics.NgramOptions{AnyMismatch: true, Weighted: true})) +
		float64(metrics.Ngram(2, word2, word1, metrics.NgramOptions{AnyMismatch: true, Weighted: true}))
	result += bigrams

	if bigrams < float64(len(word1)+len(word2))*diffFactor {
		result -= 1000
	}

	return result
}

func detectThreshold(word []rune) float64 {
	var thresh float64
	for startPos := 1; startPos < 4; startPos++ {
		mangled := append([]rune(nil), word...)
		for pos := startPos; pos < len(word); pos += 4 {
			mangled[pos] = '*'
		}
		thresh += float64(metrics.Ngram(len(word), word, mangled, metrics.NgramOptions{AnyMismatch: true}))
	}
	return float64(int(thresh/3)) - 1
}

// formsFor produces a dictionary stem's affixed surface forms restricted
// to affixes whose `add` text is a prefix/suffix of similarTo, mirroring
// ngram_suggest.py's own restricted (non-exhaustive) form generation.
func formsFor(word *dic.Word, allPrefixes map[string][]*affix.Prefix, allSuffixes map[string][]*affix.Suffix, similarTo string) []string {
	res := []string{word.Stem}

	var suffixes []*affix.Suffix
	for _, flag := range word.Flags.Slice() {
		for _, suffix := range allSuffixes[flag] {
			if suffix.CondRegexp().MatchString(word.Stem) && strings.HasSuffix(similarTo, suffix.Add) {
				suffixes = append(suffixes, suffix)
			}
		}
	}
	var prefixes []*affix.Prefix
	for _, flag := range word.Flags.Slice() {
		for _, prefix := range allPrefixes[flag] {
			if prefix.CondRegexp().MatchString(word.Stem) && strings.HasPrefix(similarTo, prefix.Add) {
				prefixes = append(prefixes, prefix)
			}
		}
	}

	stemRunes := []rune(word.Stem)

	for _, suf := range suffixes {
		root := word.Stem
		if suf.Strip != "" {
			stripLen := len([]rune(suf.Strip))
			if stripLen <= len(stemRunes) {
				root = string(stemRunes[:len(stemRunes)-stripLen])
			}
		}
		res = append(res, root+suf.Add)
	}

	for _, pref := range prefixes {
		for _, suf := range suffixes {
			if !suf.CrossProduct || !pref.CrossProduct {
				continue
			}
			prefStripLen := len([]rune(pref.Strip))
			var root string
			if suf.Strip != "" {
				sufStripLen := len([]rune(suf.Strip))
				if prefStripLen+sufStripLen <= len(stemRunes) {
					root = string(stemRunes[prefStripLen : len(stemRunes)-sufStripLen])
				}
			} else if prefStripLen <= len(stemRunes) {
				root = string(stemRunes[prefStripLen:])
			}
			res = append(res, pref.Add+root+suf.Add)
		}
	}

	for _, pref := range prefixes {
		prefStripLen := len([]rune(pref.Strip))
		var root string
		if prefStripLen <= len(stemRunes) {
			root = string(stemRunes[prefStripLen:])
		}
		res = append(res, pref.Add+root)
	}

	return res
}

func filterGuesses(guesses [][2]interface{}, known map[string]struct{}, onlymaxdiff bool) []string {
	var out []string
	seen := false
	found := 0

	for _, g := range guesses {
		score := g[0].(float64)
		value := g[1].(string)

		if seen && score <= 1000 {
			return out
		}

		if score > 1000 {
			seen = true
		} else if score < -100 {
			if found > 0 || onlymaxdiff {
				return out
			}
			seen = true
		}

		containsKnown := false
		for k := range known {
			if strings.Contains(value, k) {
				containsKnown = true
				break
			}
		}
		if !containsKnown {
			found++
			out = append(out, value)
		}
	}
	return out
}

func toLowerRunes(r []rune) []rune {
	return []rune(strings.ToLower(string(r)))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
