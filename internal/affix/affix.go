// Package affix holds the compiled ".aff"-directive configuration the
// lookup and suggest engines run against: affix (prefix/suffix) records,
// break/rep/conv/compound-rule/compound-pattern/phonet tables, and the
// scalar options listed in spec.md §6.
//
// Structurally a straight port of original_source's data/aff.py, adapted to
// Go idioms: dataclasses become structs with explicit constructors that do
// the "__post_init__" compilation work (regex compiling, trie building).
package affix

import (
	"regexp"
	"strings"

	"github.com/azleksandar/hunspore/internal/casing"
	"github.com/azleksandar/hunspore/internal/flagset"
	"github.com/azleksandar/hunspore/internal/trie"
)

// Affix is the data shared by Prefix and Suffix records.
type Affix struct {
	Flag        string
	CrossProduct bool
	Strip       string
	Add         string
	Condition   string
	Flags       flagset.Set

	condRegexp    *regexp.Regexp
	lookupRegexp  *regexp.Regexp
	replaceRegexp *regexp.Regexp
}

// CondRegexp exposes the compiled stem-condition matcher.
func (a *Affix) CondRegexp() *regexp.Regexp { return a.condRegexp }

// HasFlag reports whether this affix itself carries flag (distinct from
// the flag that activates it — this is about flags the affix grants,
// e.g. a CIRCUMFIX or NEEDAFFIX marker on the affix entry itself).
func (a *Affix) HasFlag(flag string) bool { return a.Flags.Has(flag) }

// condParts splits a bracket-class condition string into its atomic units
// (either a single char, or a whole `[...]` class), mirroring aff.py's
// `re.findall(r'(\[.+\]|[^\[])', condition)`.
func condParts(condition string) []string {
	var parts []string
	r := []rune(condition)
	for i := 0; i < len(r); i++ {
		if r[i] == '[' {
			j := i
			for j < len(r) && r[j] != ']' {
				j++
			}
			if j < len(r) {
				parts = append(parts, string(r[i:j+1]))
				i = j
				continue
			}
		}
		parts = append(parts, string(r[i]))
	}
	return parts
}

// NewPrefix compiles a Prefix affix record.
func NewPrefix(flag string, crossProduct bool, strip, add, condition string, flags flagset.Set) *Prefix {
	a := &Affix{Flag: flag, CrossProduct: crossProduct, Strip: strip, Add: add, Condition: condition, Flags: flags}

	escCond := strings.ReplaceAll(condition, "-", `\-`)
	a.condRegexp = regexp.MustCompile("^" + escCond)

	parts := condParts(escCond)
	if len(parts) >= len([]rune(strip)) {
		parts = parts[len([]rune(strip)):]
	}

	var condLookahead string
	if len(parts) > 0 && !(len(parts) == 1 && parts[0] == ".") {
		condLookahead = "(" + strings.Join(parts, "") + ")"
	}

	a.lookupRegexp = regexp.MustCompile("^" + regexp.QuoteMeta(add) + condLookahead)
	a.replaceRegexp = regexp.MustCompile("^" + regexp.QuoteMeta(add))

	return &Prefix{Affix: a}
}

// NewSuffix compiles a Suffix affix record.
func NewSuffix(flag string, crossProduct bool, strip, add, condition string, flags flagset.Set) *Suffix {
	a := &Affix{Flag: flag, CrossProduct: crossProduct, Strip: strip, Add: add, Condition: condition, Flags: flags}

	escCond := strings.ReplaceAll(condition, "-", `\-`)
	a.condRegexp = regexp.MustCompile(escCond + "$")

	parts := condParts(escCond)
	stripLen := len([]rune(strip))
	if stripLen > 0 && stripLen <= len(parts) {
		parts = parts[:len(parts)-stripLen]
	}

	var cond string
	if len(parts) > 0 && !(len(parts) == 1 && parts[0] == ".") {
		cond = "(" + strings.Join(parts, "") + ")"
	}

	a.lookupRegexp = regexp.MustCompile(cond + regexp.QuoteMeta(add) + "$")
	a.replaceRegexp = regexp.MustCompile(regexp.QuoteMeta(add) + "$")

	return &Suffix{Affix: a}
}

// Prefix is an affix applied at the beginning of a word.
type Prefix struct{ *Affix }

// Suffix is an affix applied at the end of a word.
type Suffix struct{ *Affix }

// MatchesSurface reports whether word (forward for Prefix, as given for
// Suffix) has this affix's `add` at the relevant end, with the stem-side
// condition satisfied.
func (p *Prefix) MatchesSurface(word string) bool { return p.lookupRegexp.MatchString(word) }
func (s *Suffix) MatchesSurface(word string) bool { return s.lookupRegexp.MatchString(word) }

// StripToStem removes this prefix from word, restoring the stripped
// fragment (if any), producing the candidate stem.
func (p *Prefix) StripToStem(word string) string {
	return p.replaceRegexp.ReplaceAllString(word, literalReplacement(p.Strip))
}

// StripToStem removes this suffix from word, restoring the stripped
// fragment (if any), producing the candidate stem.
func (s *Suffix) StripToStem(word string) string {
	return s.replaceRegexp.ReplaceAllString(word, literalReplacement(s.Strip))
}

// literalReplacement escapes "$" so ReplaceAllString treats text as a
// literal replacement rather than a submatch reference template.
func literalReplacement(text string) string {
	return strings.ReplaceAll(text, "$", "$$")
}

// BuildIndexes constructs the prefix/suffix tries from flag -> []affix maps,
// keyed by Affix.Add (suffixes reversed), per spec.md §4.2.
func BuildIndexes(prefixes map[string][]*Prefix, suffixes map[string][]*Suffix) (prefixTrie, suffixTrie *trie.Trie) {
	prefixTrie = trie.New()
	for _, list := range prefixes {
		for _, p := range list {
			prefixTrie.Put([]rune(p.Add), p)
		}
	}

	suffixTrie = trie.New()
	for _, list := range suffixes {
		for _, s := range list {
			key := []rune(s.Add)
			reversed := make([]rune, len(key))
			for i, r := range key {
				reversed[len(key)-1-i] = r
			}
			suffixTrie.Put(reversed, s)
		}
	}
	return
}

// SelectCasing picks the Casing variant per spec.md "Cross-language
// casing": German wins if CHECKSHARPS is set, else Turkic if lang is one of
// the Turkic codes, else the generic default.
func SelectCasing(checkSharps bool, lang string) casing.Casing {
	if checkSharps {
		return casing.German()
	}
	switch lang {
	case "tr", "tr_TR", "az", "crh":
		return casing.Turkic()
	default:
		return casing.Generic()
	}
}
