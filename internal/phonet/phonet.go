// Package phonet implements the PHONE-table based phonetic suggester: rank
// dictionary stems by metaphone similarity to the misspelling. Vanishingly
// few real dictionaries declare a PHONE table, but when one exists it's a
// distinct, cheap pass worth keeping separate from n-gram suggestion.
//
// Grounded on original_source's algo/phonet_suggest.py.
package phonet

import (
	"sort"
	"strings"

	"github.com/azleksandar/hunspore/internal/affix"
	"github.com/azleksandar/hunspore/internal/dic"
	"github.com/azleksandar/hunspore/internal/metrics"
)

const maxRoots = 100

type scored struct {
	score float64
	word  string
}

// Suggest returns dictionary stems ranked by phonetic similarity to
// misspelling, using root_score (shared with the n-gram suggester) as a
// cheap pre-filter before the metaphone comparison.
func Suggest(misspelling string, dictionaryWords []*dic.Word, table *affix.PhonetTable) []string {
	if table == nil {
		return nil
	}

	misspelling = strings.ToLower(misspelling)
	misspellingPh := table.Metaphone(misspelling)
	misRunes := []rune(misspelling)

	var scores []scored
	for _, word := range dictionaryWords {
		stemRunes := []rune(word.Stem)
		if absInt(len(stemRunes)-len(misRunes)) > 3 {
			continue
		}

		nscore := rootScore(misRunes, stemRunes)
		for _, variant := range word.AltSpellings {
			if alt := rootScore(misRunes, []rune(variant)); alt > nscore {
				nscore = alt
			}
		}
		if nscore <= 2 {
			continue
		}

		score := 2 * float64(metrics.Ngram(3, []rune(misspellingPh), []rune(table.Metaphone(word.Stem)), metrics.NgramOptions{LongerWorse: true}))
		scores = append(scores, scored{score: score, word: word.Stem})
	}

	sort.Slice(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if len(scores) > maxRoots {
		scores = scores[:maxRoots]
	}

	final := make([]scored, len(scores))
	for i, s := range scores {
		final[i] = scored{score: s.score + finalScore(misRunes, []rune(strings.ToLower(s.word))), word: s.word}
	}
	sort.SliceStable(final, func(i, j int) bool { return final[i].score > final[j].score })

	out := make([]string, len(final))
	for i, f := range final {
		out[i] = f.word
	}
	return out
}

func finalScore(word1, word2 []rune) float64 {
	return 2*float64(metrics.LCSLen(word1, word2)) - float64(absInt(len(word1)-len(word2))) + float64(metrics.LeftCommonSubstring(word1, word2))
}

func rootScore(word1, word2 []rune) float64 {
	lower2 := []rune(strings.ToLower(string(word2)))
	return float64(metrics.Ngram(3, word1, lower2, metrics.NgramOptions{LongerWorse: true})) +
		float64(metrics.LeftCommonSubstring(word1, lower2))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
