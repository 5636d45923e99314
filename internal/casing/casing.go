// Package casing classifies and transforms word capitalization for lookup
// and suggest, the way Hunspell's per-language casing rules do: a generic
// default, a Turkic variant (dotted/dotless I), and a German variant
// (ambiguous "ss"/"ß" lowercasing).
//
// Adapted from the teacher's internal/azcase package, which implements only
// the Turkic rune-mapping half of this; the German half and the
// classify/variants/corrections/coerce API are grounded on
// original_source's algo/capitalization.py.
package casing

import "strings"

// Type is the capitalization class of a word.
type Type int

const (
	No       Type = iota // all lowercase: "foo"
	Init                 // initial letter capitalized, rest lower: "Foo"
	All                  // every letter uppercase: "FOO"
	Huh                  // mixed, first letter lowercase: "fooBar"
	HuhInit              // mixed, first letter uppercase: "FooBar"
)

// Casing implements language-specific capitalization rules. The zero value
// is the generic (non-Turkic, non-German) behavior.
type Casing struct {
	kind kind
}

type kind int

const (
	generic kind = iota
	turkic
	german
)

// Generic returns the default casing rules.
func Generic() Casing { return Casing{kind: generic} }

// Turkic returns casing rules for Turkish/Azerbaijani/Crimean Tatar, where
// lowercase "i" uppercases to "İ" and uppercase "I" lowercases to "ı".
func Turkic() Casing { return Casing{kind: turkic} }

// German returns casing rules for languages with CHECKSHARPS (German ß),
// where uppercase "SS" lowercases ambiguously to both "ss" and "ß".
func German() Casing { return Casing{kind: german} }

var turkicUpperToLower = strings.NewReplacer("İ", "i", "I", "ı")
var turkicLowerToUpper = strings.NewReplacer("i", "İ", "ı", "I")

// Upper uppercases word, applying Turkic I/İ rules when applicable.
func (c Casing) Upper(word string) string {
	if c.kind == turkic {
		word = turkicLowerToUpper.Replace(word)
	}
	return strings.ToUpper(word)
}

// Lower lowercases word. Returns multiple hypotheses because German
// lowercasing of a word containing "SS" is ambiguous between "ss" and "ß"
// (both are enumerated); every other case returns exactly one result, or
// none if the word cannot be properly lowercased (starts with "İ" outside
// Turkic collation).
func (c Casing) Lower(word string) []string {
	if word == "" || (c.kind != turkic && strings.HasPrefix(word, "İ")) {
		return nil
	}

	src := word
	if c.kind == turkic {
		src = turkicUpperToLower.Replace(src)
	}
	lowered := strings.ReplaceAll(strings.ToLower(src), "i̇", "i")

	if c.kind != german || !strings.Contains(word, "SS") {
		return []string{lowered}
	}

	variants := sharpSVariants(lowered, 0)
	return append(variants, lowered)
}

// sharpSVariants enumerates every way "ss" occurrences in text (starting the
// scan at start) can be individually replaced by "ß", recursively, mirroring
// capitalization.py's GermanCasing.lower.sharp_s_variants.
func sharpSVariants(text string, start int) []string {
	pos := strings.Index(text[start:], "ss")
	if pos == -1 {
		return nil
	}
	pos += start

	replaced := text[:pos] + "ß" + text[pos+2:]

	var out []string
	out = append(out, replaced)
	out = append(out, sharpSVariants(replaced, pos+1)...)
	out = append(out, sharpSVariants(text, pos+2)...)
	return out
}

// Capitalize returns hypotheses for "Titlecase" form of word: uppercase
// first rune, lowercase the rest (via Lower, hence possibly several).
func (c Casing) Capitalize(word string) []string {
	if word == "" {
		return nil
	}
	first := []rune(word)[0]
	rest := string([]rune(word)[1:])
	firstUp := c.Upper(string(first))

	var out []string
	for _, lo := range c.Lower(rest) {
		out = append(out, firstUp+lo)
	}
	return out
}

// LowerFirst lowercases only the first rune, keeping the rest unchanged.
func (c Casing) LowerFirst(word string) []string {
	if word == "" {
		return nil
	}
	r := []rune(word)
	rest := string(r[1:])

	var out []string
	for _, lo := range c.Lower(string(r[0])) {
		out = append(out, lo+rest)
	}
	return out
}

// Guess classifies word's capitalization pattern.
func (c Casing) Guess(word string) Type {
	if c.kind == german && strings.Contains(word, "ß") {
		// An uppercased German word may legitimately keep lowercase ß
		// ("STRAßE"); if removing it makes the rest ALL-caps, the word
		// as a whole is still ALL.
		stripped := strings.ReplaceAll(word, "ß", "")
		if isAllUpper(stripped) {
			return All
		}
	}
	return guessGeneric(word)
}

func guessGeneric(word string) Type {
	if word == "" {
		return No
	}
	if isAllLower(word) {
		return No
	}
	r := []rune(word)
	if isUpperRune(r[0]) && strings.IndexFunc(string(r[1:]), isUpperRune) < 0 {
		return Init
	}
	if isAllUpper(word) {
		return All
	}
	if isUpperRune(r[0]) {
		return HuhInit
	}
	return Huh
}

func isAllLower(s string) bool {
	hasLetter := false
	for _, r := range s {
		if isUpperRune(r) {
			return false
		}
		if isLowerRune(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if isLowerRune(r) {
			return false
		}
		if isUpperRune(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func isUpperRune(r rune) bool { return strings.ToUpper(string(r)) == string(r) && strings.ToLower(string(r)) != string(r) }
func isLowerRune(r rune) bool { return strings.ToLower(string(r)) == string(r) && strings.ToUpper(string(r)) != string(r) }

// Variants returns the word's captype plus the list of spellings worth
// searching for in the dictionary, assuming word is spelled correctly.
func (c Casing) Variants(word string) (Type, []string) {
	captype := c.Guess(word)

	var result []string
	switch captype {
	case No, Huh:
		result = []string{word}
	case Init:
		result = append([]string{word}, c.Lower(word)...)
	case HuhInit:
		result = append([]string{word}, c.LowerFirst(word)...)
	case All:
		result = append([]string{word}, c.Lower(word)...)
		result = append(result, c.Capitalize(word)...)
	}
	return captype, result
}

// Corrections returns the word's captype plus a larger set of hypotheses
// worth suggest-searching for, assuming word is a misspelling.
func (c Casing) Corrections(word string) (Type, []string) {
	captype := c.Guess(word)

	var result []string
	switch captype {
	case No:
		result = []string{word}
	case Init:
		result = append([]string{word}, c.Lower(word)...)
	case HuhInit:
		result = append([]string{word}, c.LowerFirst(word)...)
		result = append(result, c.Lower(word)...)
		result = append(result, c.Capitalize(word)...)
	case Huh:
		result = append([]string{word}, c.Lower(word)...)
	case All:
		result = append([]string{word}, c.Lower(word)...)
		result = append(result, c.Capitalize(word)...)
	}
	return captype, result
}

// Coerce reapplies the shape of cap to word (a found-correct suggestion),
// e.g. cap=Init turns "kitten" into "Kitten".
func (c Casing) Coerce(word string, cap Type) string {
	switch cap {
	case Init, HuhInit:
		if word == "" {
			return word
		}
		r := []rune(word)
		return c.Upper(string(r[0])) + string(r[1:])
	case All:
		return c.Upper(word)
	default:
		return word
	}
}
