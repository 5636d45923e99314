// Package suggest produces ranked spelling corrections for a misspelled
// word: permutation-based edits first (cheap, usually sufficient), then
// n-gram dictionary-similarity, then (rarely) phonetic similarity.
//
// Grounded on original_source's algo/suggest.py; the generator pipeline
// becomes an explicit channel of Suggestion values so a caller can stop
// consuming early (spec.md §5's laziness requirement) without this
// package needing to know how many results the caller actually wants.
package suggest

import (
	"strings"
	"unicode"

	"github.com/azleksandar/hunspore/internal/affix"
	"github.com/azleksandar/hunspore/internal/casing"
	"github.com/azleksandar/hunspore/internal/dic"
	"github.com/azleksandar/hunspore/internal/lookup"
	"github.com/azleksandar/hunspore/internal/ngram"
	"github.com/azleksandar/hunspore/internal/permute"
	"github.com/azleksandar/hunspore/internal/phonet"
)

const maxPhonetSuggestions = 2

// Suggestion is one candidate correction, tagged with the permutation
// strategy that produced it (useful for debugging/tuning, mirrors
// Hunspell's own internal bookkeeping).
type Suggestion struct {
	Text       string
	Source     string
	AllowBreak bool
}

type multiWordSuggestion struct {
	words     []string
	source    string
	allowDash bool
}

func (m multiWordSuggestion) stringify(sep string) Suggestion {
	return Suggestion{Text: strings.Join(m.words, sep), Source: m.source, AllowBreak: true}
}

// Suggester produces suggestions for a compiled Aff+Dic.
type Suggester struct {
	Aff *affix.Aff
	Dic *dic.Dic
	L   *lookup.Lookup

	useDash       bool
	wordsForNgram []*dic.Word
}

// New builds a Suggester. Call after the Aff/Dic are fully loaded.
func New(aff *affix.Aff, d *dic.Dic, l *lookup.Lookup) *Suggester {
	s := &Suggester{Aff: aff, Dic: d, L: l}
	s.useDash = strings.Contains(aff.Try, "-") || strings.Contains(aff.Try, "a")

	badFlags := map[string]struct{}{}
	for _, f := range []string{aff.ForbiddenWord, aff.NoSuggest, aff.OnlyInCompound} {
		if f != "" {
			badFlags[f] = struct{}{}
		}
	}
	for _, word := range d.Words {
		bad := false
		for f := range badFlags {
			if word.HasFlag(f) {
				bad = true
				break
			}
		}
		if !bad {
			s.wordsForNgram = append(s.wordsForNgram, word)
		}
	}
	return s
}

// Suggest returns suggestion texts for word, lazily over a channel so a
// caller only interested in the first few never forces the rest of the
// pipeline (ngram/phonet) to run.
func (s *Suggester) Suggest(word string) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		for sug := range s.suggestInternal(word) {
			out <- sug.Text
		}
	}()
	return out
}

func (s *Suggester) isGoodSuggestion(word string, capitalization, allowBreak bool) bool {
	return s.L.Check(word, lookup.Options{Capitalization: capitalization, AllowNosuggest: false, AllowBreak: allowBreak})
}

func (s *Suggester) isForbidden(word string) bool {
	return s.Aff.ForbiddenWord != "" && s.Dic.HasFlag(word, s.Aff.ForbiddenWord, false)
}

// suggestInternal is the main suggestion search loop.
func (s *Suggester) suggestInternal(word string) <-chan Suggestion {
	out := make(chan Suggestion)

	go func() {
		defer close(out)

		handled := map[string]struct{}{}

		handleFound := func(sug Suggestion, captype casing.Type, checkInclusion bool) (Suggestion, bool) {
			text := sug.Text

			if s.Aff.KeepCase != "" && s.Dic.HasFlag(text, s.Aff.KeepCase, false) &&
				!(s.Aff.CheckSharps && strings.Contains(text, "ß")) {
				// keep exact case
			} else {
				coerced := s.Aff.Casing.Coerce(text, captype)
				if coerced != text && s.isForbidden(coerced) {
					coerced = text
				}
				text = coerced

				if (captype == casing.Huh || captype == casing.HuhInit) && strings.Contains(text, " ") {
					pos := strings.Index(text, " ")
					wr := []rune(word)
					tr := []rune(text)
					if pos+1 < len(tr) && pos < len(wr) && tr[pos+1] != wr[pos] &&
						unicode.ToUpper(tr[pos+1]) == wr[pos] {
						tr[pos+1] = wr[pos]
						text = string(tr)
					}
				}
			}

			if s.isForbidden(text) {
				return Suggestion{}, false
			}
			if _, seen := handled[text]; seen {
				return Suggestion{}, false
			}
			if checkInclusion {
				lowerText := strings.ToLower(text)
				for prev := range handled {
					if strings.Contains(lowerText, strings.ToLower(prev)) {
						return Suggestion{}, false
					}
				}
			}

			handled[text] = struct{}{}
			if s.Aff.Oconv != nil {
				text = s.Aff.Oconv.Apply(text)
			}
			sug.Text = text
			return sug, true
		}

		filterSuggestions := func(in <-chan interface{}) <-chan Suggestion {
			o := make(chan Suggestion)
			go func() {
				defer close(o)
				for item := range in {
					switch v := item.(type) {
					case multiWordSuggestion:
						allGood := true
						for _, w := range v.words {
							if !s.isGoodSuggestion(w, false, false) {
								allGood = false
								break
							}
						}
						if allGood {
							o <- v.stringify(" ")
							if v.allowDash {
								o <- v.stringify("-")
							}
						}
					case Suggestion:
						if s.isGoodSuggestion(v.Text, false, v.AllowBreak) {
							o <- v
						}
					}
				}
			}()
			return o
		}

		captype, variants := s.Aff.Casing.Corrections(word)

		good, veryGood := false, false

		if s.Aff.ForceUCase != "" && captype == casing.No {
			for _, capitalized := range s.Aff.Casing.Capitalize(word) {
				if s.isGoodSuggestion(capitalized, true, true) {
					if res, ok := handleFound(Suggestion{Text: capitalized, Source: "forceucase", AllowBreak: true}, captype, false); ok {
						out <- res
					}
					return
				}
			}
		}

		for idx, variant := range variants {
			if idx > 0 && s.isGoodSuggestion(variant, true, true) {
				if res, ok := handleFound(Suggestion{Text: variant, Source: "case", AllowBreak: true}, captype, false); ok {
					out <- res
				}
			}

			for sug := range filterSuggestions(goodPermutations(variant, s.Aff)) {
				if res, ok := handleFound(sug, captype, false); ok {
					good = true
					out <- res
				}
			}

			for sug := range filterSuggestions(veryGoodPermutations(variant, s.useDash)) {
				if res, ok := handleFound(sug, captype, false); ok {
					veryGood = true
					out <- res
				}
			}
			if veryGood {
				return
			}

			for sug := range filterSuggestions(questionablePermutations(variant, s.Aff)) {
				if res, ok := handleFound(sug, captype, false); ok {
					out <- res
				}
			}
		}

		if veryGood || good {
			return
		}

		ngramsSeen := 0
		maxNgram := s.Aff.MaxNGramSugs
		if maxNgram == 0 {
			maxNgram = 20
		}
		for _, sugText := range s.ngramSuggestions(word, handled) {
			if res, ok := handleFound(Suggestion{Text: sugText, Source: "ngram", AllowBreak: true}, captype, true); ok {
				ngramsSeen++
				out <- res
			}
			if ngramsSeen >= maxNgram {
				break
			}
		}

		phonetSeen := 0
		for _, sugText := range s.phonetSuggestions(word) {
			if res, ok := handleFound(Suggestion{Text: sugText, Source: "phonet", AllowBreak: true}, captype, true); ok {
				phonetSeen++
				out <- res
			}
			if phonetSeen >= maxPhonetSuggestions {
				break
			}
		}
	}()

	return out
}

func veryGoodPermutations(word string, useDash bool) <-chan interface{} {
	out := make(chan interface{})
	go func() {
		defer close(out)
		for split := range permute.TwoWords(word) {
			out <- Suggestion{Text: split.First + " " + split.Second, Source: "spaceword", AllowBreak: true}
			if useDash {
				out <- Suggestion{Text: split.First + "-" + split.Second, Source: "spaceword", AllowBreak: false}
			}
		}
	}()
	return out
}

func goodPermutations(word string, aff *affix.Aff) <-chan interface{} {
	out := make(chan interface{})
	go func() {
		defer close(out)
		out <- Suggestion{Text: aff.Casing.Upper(word), Source: "uppercase", AllowBreak: true}

		for s := range permute.ReplChars(word, aff.Rep) {
			if strings.Contains(s, " ") {
				parts := strings.SplitN(s, " ", 2)
				out <- Suggestion{Text: s, Source: "replchars", AllowBreak: true}
				out <- multiWordSuggestion{words: parts, source: "replchars", allowDash: false}
			} else {
				out <- Suggestion{Text: s, Source: "replchars", AllowBreak: true}
			}
		}
	}()
	return out
}

func questionablePermutations(word string, aff *affix.Aff) <-chan interface{} {
	out := make(chan interface{})
	go func() {
		defer close(out)

		for s := range permute.MapChars(word, aff.Map) {
			out <- Suggestion{Text: s, Source: "mapchars", AllowBreak: true}
		}
		for s := range permute.SwapChar(word) {
			out <- Suggestion{Text: s, Source: "swapchar", AllowBreak: true}
		}
		for s := range permute.LongSwapChar(word) {
			out <- Suggestion{Text: s, Source: "longswapchar", AllowBreak: true}
		}
		for s := range permute.BadCharKey(word, aff.Key) {
			out <- Suggestion{Text: s, Source: "badcharkey", AllowBreak: true}
		}
		for s := range permute.ExtraChar(word) {
			out <- Suggestion{Text: s, Source: "extrachar", AllowBreak: true}
		}
		for s := range permute.ForgotChar(word, aff.Try) {
			out <- Suggestion{Text: s, Source: "forgotchar", AllowBreak: true}
		}
		for s := range permute.MoveChar(word) {
			out <- Suggestion{Text: s, Source: "movechar", AllowBreak: true}
		}
		for s := range permute.BadChar(word, aff.Try) {
			out <- Suggestion{Text: s, Source: "badchar", AllowBreak: true}
		}
		for s := range permute.DoubleTwoChars(word) {
			out <- Suggestion{Text: s, Source: "doubletwochars", AllowBreak: true}
		}
		if !aff.NoSplitSugs {
			for split := range permute.TwoWords(word) {
				out <- multiWordSuggestion{words: []string{split.First, split.Second}, source: "twowords", allowDash: strings.Contains(aff.Try, "-")}
			}
		}
	}()
	return out
}

func (s *Suggester) ngramSuggestions(word string, handled map[string]struct{}) []string {
	if s.Aff.MaxNGramSugs == -1 {
		return nil
	}
	known := make(map[string]struct{}, len(handled))
	for h := range handled {
		known[strings.ToLower(h)] = struct{}{}
	}
	return ngram.Suggest(strings.ToLower(word), s.wordsForNgram, s.Aff.Prefixes, s.Aff.Suffixes, known, s.Aff.MaxDiff, s.Aff.OnlyMaxDiff)
}

func (s *Suggester) phonetSuggestions(word string) []string {
	if s.Aff.Phonet == nil {
		return nil
	}
	return phonet.Suggest(word, s.wordsForNgram, s.Aff.Phonet)
}
