// Package lookup implements the word-correctness algorithm: given a
// compiled Aff and Dic, decide whether a string could be one of their
// stems combined with compatible affixes, or a compound of several such
// stems.
//
// Grounded on original_source's algo/lookup.py; the recursive
// producer/filter shape (produce candidate forms, then is_good_form
// decides) is kept as-is, translated to Go's explicit-iteration idiom
// (slices of candidates rather than Python generators, since the sheer
// number of these methods makes a goroutine-per-call channel design both
// noisy and unnecessary — nothing here needs early-exit laziness the way
// permute/ngram do).
package lookup

import (
	"regexp"
	"strings"

	"github.com/azleksandar/hunspore/internal/affix"
	"github.com/azleksandar/hunspore/internal/casing"
	"github.com/azleksandar/hunspore/internal/dic"
	"github.com/azleksandar/hunspore/internal/flagset"
	"github.com/azleksandar/hunspore/internal/permute"
)

var numberRegexp = regexp.MustCompile(`^\d+(\.\d+)?$`)

// CompoundPos marks where within a compound an AffixForm sits.
type CompoundPos int

const (
	NotCompound CompoundPos = iota
	Begin
	Middle
	End
)

// AffixForm is a hypothesis of how a word splits into stem, up to two
// suffixes and up to two prefixes:
// prefix2 + prefix + stem + suffix + suffix2 == text (Prefix2/Suffix2 are
// the outer affixes, stripped first).
type AffixForm struct {
	Text string
	StemText string

	Prefix  *affix.Prefix
	Suffix  *affix.Suffix
	Prefix2 *affix.Prefix
	Suffix2 *affix.Suffix

	InDictionary *dic.Word
}

// HasAffixes reports whether form carries any prefix or suffix.
func (f AffixForm) HasAffixes() bool { return f.Prefix != nil || f.Suffix != nil }

// IsBase reports whether form is the bare stem with no affixes.
func (f AffixForm) IsBase() bool { return !f.HasAffixes() }

// Flags returns the union of the dictionary stem's flags and any
// prefix/suffix flags, as a plain set for membership tests.
func (f AffixForm) Flags() map[string]struct{} {
	out := make(map[string]struct{})
	if f.InDictionary != nil {
		for _, fl := range f.InDictionary.Flags.Slice() {
			out[fl] = struct{}{}
		}
	}
	if f.Prefix != nil {
		for _, fl := range f.Prefix.Flags.Slice() {
			out[fl] = struct{}{}
		}
	}
	if f.Suffix != nil {
		for _, fl := range f.Suffix.Flags.Slice() {
			out[fl] = struct{}{}
		}
	}
	return out
}

// AllAffixes returns every non-nil affix attached to form, in
// prefix2/prefix/suffix/suffix2 order.
func (f AffixForm) AllAffixes() []affixLike {
	var out []affixLike
	if f.Prefix2 != nil {
		out = append(out, f.Prefix2)
	}
	if f.Prefix != nil {
		out = append(out, f.Prefix)
	}
	if f.Suffix != nil {
		out = append(out, f.Suffix)
	}
	if f.Suffix2 != nil {
		out = append(out, f.Suffix2)
	}
	return out
}

type affixLike interface {
	HasFlag(flag string) bool
}

// Stem/IsBase/FlagsUnion implement affix.CompoundEndpoint so AffixForm can
// be used with CompoundPattern.Match.
func (f AffixForm) Stem() string                     { return f.StemText }
func (f AffixForm) FlagsUnion() map[string]struct{} { return f.Flags() }

// CompoundForm is a hypothesis of how a word splits into several stems
// (each itself possibly affixed).
type CompoundForm struct {
	Parts []AffixForm
}

// Lookup runs the word-correctness algorithm against a compiled Aff+Dic.
type Lookup struct {
	Aff *affix.Aff
	Dic *dic.Dic
}

// New builds a Lookup over aff and d.
func New(aff *affix.Aff, d *dic.Dic) *Lookup {
	return &Lookup{Aff: aff, Dic: d}
}

// Options controls the word-correctness check's behavior, used by Suggest
// to relax parts of the algorithm it needs tighter control over.
type Options struct {
	Capitalization bool
	AllowNosuggest bool
	AllowBreak     bool
}

// DefaultOptions is the normal (non-Suggest-driven) behavior.
func DefaultOptions() Options {
	return Options{Capitalization: true, AllowNosuggest: true, AllowBreak: true}
}

// Check is the outermost word-correctness entry point.
func (l *Lookup) Check(word string, opts Options) bool {
	isCorrect := func(w string) bool {
		for range l.GoodForms(w, opts.Capitalization, opts.AllowNosuggest) {
			return true
		}
		return false
	}

	if l.Aff.ForbiddenWord != "" && l.Dic.HasFlag(word, l.Aff.ForbiddenWord, true) {
		return false
	}

	if l.Aff.Iconv != nil {
		word = l.Aff.Iconv.Apply(word)
	}
	word = l.Aff.Ignore.Strip(word)

	if numberRegexp.MatchString(word) {
		return true
	}

	if isCorrect(word) {
		return true
	}

	if !opts.AllowBreak {
		return false
	}

	for _, parts := range l.BreakWord(word, 0) {
		allGood := true
		for _, part := range parts {
			if part == "" {
				continue
			}
			if !isCorrect(part) {
				allGood = false
				break
			}
		}
		if allGood {
			return true
		}
	}
	return false
}

// BreakWord recursively produces every way word can be split at BREAK
// patterns, depth-limited to 10 to bound pathological recursion.
func (l *Lookup) BreakWord(text string, depth int) [][]string {
	if depth > 10 {
		return nil
	}

	result := [][]string{{text}}
	for _, pat := range l.Aff.Break {
		for _, loc := range pat.Regexp.FindAllStringSubmatchIndex(text, -1) {
			if len(loc) < 4 {
				continue
			}
			start := text[:loc[2]]
			rest := text[loc[3]:]
			for _, breaking := range l.BreakWord(rest, depth+1) {
				combined := append([]string{start}, breaking...)
				result = append(result, combined)
			}
		}
	}
	return result
}

// wordForm is either an AffixForm or a CompoundForm.
type wordForm struct {
	Affix    *AffixForm
	Compound *CompoundForm
}

// GoodForms produces every form (affix or compound) the word could
// correspond to, across every capitalization variant worth considering.
func (l *Lookup) GoodForms(word string, capitalization, allowNosuggest bool) []wordForm {
	var captype casing.Type
	var variants []string
	if capitalization {
		captype, variants = l.Aff.Casing.Variants(word)
	} else {
		captype = l.Aff.Casing.Guess(word)
		variants = []string{word}
	}

	var out []wordForm
	for _, variant := range variants {
		for _, form := range l.AffixForms(variant, captype, allowNosuggest, nil, nil, nil, NotCompound, false) {
			if l.Aff.CheckSharps && l.Aff.KeepCase != "" && form.InDictionary != nil &&
				strings.Contains(form.InDictionary.Stem, "ß") &&
				affix.HasFlag(form.InDictionary.Flags, l.Aff.KeepCase) &&
				captype == casing.All && strings.Contains(word, "ß") {
				continue
			}
			f := form
			out = append(out, wordForm{Affix: &f})
		}
		for _, compound := range l.CompoundForms(variant, captype, allowNosuggest) {
			c := compound
			out = append(out, wordForm{Compound: &c})
		}
	}
	return out
}

// AffixForms produces every correct stem+affixes hypothesis for word.
func (l *Lookup) AffixForms(word string, captype casing.Type, allowNosuggest bool,
	prefixFlags, suffixFlags, forbiddenFlags []string, compoundpos CompoundPos, withForbidden bool) []AffixForm {

	isGood := func(form AffixForm) bool {
		return l.isGoodForm(form, compoundpos, captype, allowNosuggest)
	}

	var out []AffixForm
	for _, form := range l.produceAffixForms(word, prefixFlags, suffixFlags, forbiddenFlags, compoundpos) {
		homonyms := l.Dic.Homonyms(form.StemText, false)

		if !withForbidden && l.Aff.ForbiddenWord != "" &&
			(compoundpos != NotCompound || form.HasAffixes()) {
			forbidden := false
			for _, h := range homonyms {
				if affix.HasFlag(h.Flags, l.Aff.ForbiddenWord) {
					forbidden = true
					break
				}
			}
			if forbidden {
				return out
			}
		}

		found := false
		for _, homonym := range homonyms {
			candidate := form
			candidate.InDictionary = homonym
			if isGood(candidate) {
				found = true
				out = append(out, candidate)
			}
		}

		if compoundpos == Begin && l.Aff.ForceUCase != "" && captype == casing.Init {
			for _, homonym := range l.Dic.Homonyms(strings.ToLower(form.StemText), false) {
				candidate := form
				candidate.InDictionary = homonym
				if isGood(candidate) {
					found = true
					out = append(out, candidate)
				}
			}
		}

		if found || compoundpos != NotCompound || captype != casing.All {
			continue
		}

		if l.Aff.Casing.Guess(word) == casing.No {
			for _, homonym := range l.Dic.Homonyms(form.StemText, true) {
				candidate := form
				candidate.InDictionary = homonym
				if isGood(candidate) {
					out = append(out, candidate)
				}
			}
		}
	}
	return out
}

// CompoundForms produces every correct compound-word hypothesis for word.
func (l *Lookup) CompoundForms(word string, captype casing.Type, allowNosuggest bool) []CompoundForm {
	if l.Aff.ForbiddenWord != "" {
		for _, candidate := range l.AffixForms(word, captype, allowNosuggest, nil, nil, nil, NotCompound, true) {
			if _, ok := candidate.Flags()[l.Aff.ForbiddenWord]; ok {
				return nil
			}
		}
	}

	var out []CompoundForm
	if l.Aff.CompoundBegin != "" || l.Aff.CompoundFlag != "" {
		for _, compound := range l.compoundsByFlags(word, captype, 0, allowNosuggest) {
			if !l.isBadCompound(compound, captype) {
				out = append(out, compound)
			}
		}
	}
	if len(l.Aff.CompoundRule) > 0 {
		for _, compound := range l.compoundsByRules(word, nil, l.Aff.CompoundRule) {
			if !l.isBadCompound(compound, captype) {
				out = append(out, compound)
			}
		}
	}
	return out
}

func (l *Lookup) produceAffixForms(word string, prefixFlags, suffixFlags, forbiddenFlags []string, compoundpos CompoundPos) []AffixForm {
	out := []AffixForm{{Text: word, StemText: word}}

	suffixAllowed := compoundpos == NotCompound || compoundpos == End || len(suffixFlags) > 0
	prefixAllowed := compoundpos == NotCompound || compoundpos == Begin || len(prefixFlags) > 0

	if suffixAllowed {
		out = append(out, l.desuffix(word, suffixFlags, forbiddenFlags, false, false)...)
	}

	if prefixAllowed {
		for _, form := range l.deprefix(word, prefixFlags, forbiddenFlags, false) {
			out = append(out, form)
			if suffixAllowed && form.Prefix != nil && form.Prefix.CrossProduct {
				for _, form2 := range l.desuffix(form.StemText, suffixFlags, forbiddenFlags, false, true) {
					form2.Text = form.Text
					form2.Prefix = form.Prefix
					out = append(out, form2)
				}
			}
		}
	}

	return out
}

func flagsContainAll(fs interface{ Has(string) bool }, flags []string) bool {
	for _, f := range flags {
		if !fs.Has(f) {
			return false
		}
	}
	return true
}

func flagsContainNone(fs interface{ Has(string) bool }, flags []string) bool {
	for _, f := range flags {
		if fs.Has(f) {
			return false
		}
	}
	return true
}

func (l *Lookup) desuffix(word string, requiredFlags, forbiddenFlags []string, nested, crossproduct bool) []AffixForm {
	var out []AffixForm

	reversed := []rune(word)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	for _, payload := range l.Aff.SuffixIndex.Lookup(reversed) {
		suffix := payload.(*affix.Suffix)
		if crossproduct && !suffix.CrossProduct {
			continue
		}
		if !flagsContainAll(suffix.Flags, requiredFlags) {
			continue
		}
		if !flagsContainNone(suffix.Flags, forbiddenFlags) {
			continue
		}
		if !suffix.MatchesSurface(word) {
			continue
		}

		stem := suffix.StripToStem(word)

		out = append(out, AffixForm{Text: word, StemText: stem, Suffix: suffix})

		if !nested {
			nestedRequired := append(append([]string{}, suffix.Flag), requiredFlags...)
			for _, form2 := range l.desuffix(stem, nestedRequired, forbiddenFlags, true, crossproduct) {
				form2.Suffix2 = suffix
				form2.Text = word
				out = append(out, form2)
			}
		}
	}
	return out
}

func (l *Lookup) deprefix(word string, requiredFlags, forbiddenFlags []string, nested bool) []AffixForm {
	var out []AffixForm

	for _, payload := range l.Aff.PrefixIndex.Lookup([]rune(word)) {
		prefix := payload.(*affix.Prefix)
		if !flagsContainAll(prefix.Flags, requiredFlags) {
			continue
		}
		if !flagsContainNone(prefix.Flags, forbiddenFlags) {
			continue
		}
		if !prefix.MatchesSurface(word) {
			continue
		}

		stem := prefix.StripToStem(word)

		out = append(out, AffixForm{Text: word, StemText: stem, Prefix: prefix})

		if !nested && l.Aff.ComplexPrefixes {
			nestedRequired := append(append([]string{}, prefix.Flag), requiredFlags...)
			for _, form2 := range l.deprefix(stem, nestedRequired, forbiddenFlags, true) {
				form2.Prefix2 = prefix
				form2.Text = word
				out = append(out, form2)
			}
		}
	}
	return out
}

func (l *Lookup) isGoodForm(form AffixForm, compoundpos CompoundPos, captype casing.Type, allowNosuggest bool) bool {
	aff := l.Aff

	if form.InDictionary == nil {
		return false
	}

	rootFlags := form.InDictionary.Flags
	allFlags := form.Flags()

	if !allowNosuggest && aff.NoSuggest != "" && affix.HasFlag(rootFlags, aff.NoSuggest) {
		return false
	}

	if captype != form.InDictionary.Captype && aff.KeepCase != "" && affix.HasFlag(rootFlags, aff.KeepCase) {
		if !(aff.CheckSharps && strings.Contains(form.InDictionary.Stem, "ß")) {
			return false
		}
	}

	if aff.NeedAffix != "" {
		if affix.HasFlag(rootFlags, aff.NeedAffix) && !form.HasAffixes() {
			return false
		}
		if form.HasAffixes() {
			allHaveNeedAffix := true
			for _, a := range form.AllAffixes() {
				if !a.HasFlag(aff.NeedAffix) {
					allHaveNeedAffix = false
					break
				}
			}
			if allHaveNeedAffix {
				return false
			}
		}
	}

	if form.Prefix != nil {
		if _, ok := allFlags[form.Prefix.Flag]; !ok {
			return false
		}
	}
	if form.Suffix != nil {
		if _, ok := allFlags[form.Suffix.Flag]; !ok {
			return false
		}
	}

	if aff.Circumfix != "" {
		suffixHas := form.Suffix != nil && affix.HasFlag(form.Suffix.Flags, aff.Circumfix)
		prefixHas := form.Prefix != nil && affix.HasFlag(form.Prefix.Flags, aff.Circumfix)
		if prefixHas != suffixHas {
			return false
		}
	}

	if compoundpos == NotCompound {
		_, has := allFlags[aff.OnlyInCompound]
		return aff.OnlyInCompound == "" || !has
	}

	if _, ok := allFlags[aff.CompoundFlag]; ok && aff.CompoundFlag != "" {
		return true
	}
	switch compoundpos {
	case Begin:
		_, ok := allFlags[aff.CompoundBegin]
		return ok
	case End:
		_, ok := allFlags[aff.CompoundLast]
		return ok
	case Middle:
		_, ok := allFlags[aff.CompoundMiddle]
		return ok
	}
	return false
}

func (l *Lookup) compoundsByFlags(wordRest string, captype casing.Type, depth int, allowNosuggest bool) []CompoundForm {
	aff := l.Aff

	var forbiddenFlags []string
	if aff.CompoundForbidFlag != "" {
		forbiddenFlags = []string{aff.CompoundForbidFlag}
	}
	var permitFlags []string
	if aff.CompoundPermitFlag != "" {
		permitFlags = []string{aff.CompoundPermitFlag}
	}

	var out []CompoundForm

	if depth > 0 {
		for _, form := range l.AffixForms(wordRest, captype, allowNosuggest, permitFlags, nil, forbiddenFlags, End, false) {
			out = append(out, CompoundForm{Parts: []AffixForm{form}})
		}
	}

	minLen := aff.CompoundMin
	if minLen <= 0 {
		minLen = 3
	}
	if len([]rune(wordRest)) < minLen*2 || (aff.CompoundWordMax > 0 && depth >= aff.CompoundWordMax) {
		return out
	}

	compoundpos := Begin
	if depth > 0 {
		compoundpos = Middle
	}
	var prefixFlags []string
	if compoundpos != Begin {
		prefixFlags = permitFlags
	}

	r := []rune(wordRest)
	for pos := minLen; pos <= len(r)-minLen; pos++ {
		beg := string(r[:pos])
		rest := string(r[pos:])

		for _, form := range l.AffixForms(beg, captype, allowNosuggest, prefixFlags, permitFlags, forbiddenFlags, compoundpos, false) {
			for _, partial := range l.compoundsByFlags(rest, captype, depth+1, allowNosuggest) {
				parts := append([]AffixForm{form}, partial.Parts...)
				out = append(out, CompoundForm{Parts: parts})
			}
		}

		if aff.SimplifiedTriple && len(r[:pos]) > 0 && len(r[pos:]) > 0 && r[pos-1] == r[pos] {
			begDup := string(r[:pos]) + string(r[pos-1])
			for _, form := range l.AffixForms(begDup, captype, allowNosuggest, prefixFlags, permitFlags, forbiddenFlags, compoundpos, false) {
				form.Text = beg
				for _, partial := range l.compoundsByFlags(rest, captype, depth+1, allowNosuggest) {
					parts := append([]AffixForm{form}, partial.Parts...)
					out = append(out, CompoundForm{Parts: parts})
				}
			}
		}
	}

	return out
}

func (l *Lookup) compoundsByRules(wordRest string, prevParts []*dic.Word, rules []*affix.CompoundRule) []CompoundForm {
	aff := l.Aff
	var out []CompoundForm

	if len(prevParts) > 0 {
		for _, homonym := range l.Dic.Homonyms(wordRest, false) {
			parts := append(append([]*dic.Word{}, prevParts...), homonym)
			flagSets := wordFlagSets(parts)
			for _, r := range rules {
				if r.FullMatch(flagSets) {
					out = append(out, CompoundForm{Parts: []AffixForm{{Text: wordRest, StemText: wordRest}}})
					break
				}
			}
		}
	}

	minLen := aff.CompoundMin
	if minLen <= 0 {
		minLen = 3
	}
	r := []rune(wordRest)
	if len(r) < minLen*2 || (aff.CompoundWordMax > 0 && len(prevParts) >= aff.CompoundWordMax) {
		return out
	}

	for pos := minLen; pos <= len(r)-minLen; pos++ {
		beg := string(r[:pos])
		for _, homonym := range l.Dic.Homonyms(beg, false) {
			parts := append(append([]*dic.Word{}, prevParts...), homonym)
			flagSets := wordFlagSets(parts)

			var matching []*affix.CompoundRule
			for _, rule := range rules {
				if rule.PartialMatch(flagSets) {
					matching = append(matching, rule)
				}
			}
			if len(matching) == 0 {
				continue
			}
			for _, rest := range l.compoundsByRules(string(r[pos:]), parts, matching) {
				combined := append([]AffixForm{{Text: beg, StemText: beg}}, rest.Parts...)
				out = append(out, CompoundForm{Parts: combined})
			}
		}
	}
	return out
}

func wordFlagSets(words []*dic.Word) []flagset.Set {
	out := make([]flagset.Set, len(words))
	for i, w := range words {
		out[i] = w.Flags
	}
	return out
}

func (l *Lookup) isBadCompound(compound CompoundForm, captype casing.Type) bool {
	aff := l.Aff

	if aff.ForceUCase != "" && captype != casing.All && captype != casing.Init {
		last := compound.Parts[len(compound.Parts)-1]
		if l.Dic.HasFlag(last.Text, aff.ForceUCase, false) {
			return true
		}
	}

	for idx := 0; idx < len(compound.Parts)-1; idx++ {
		left := compound.Parts[idx].Text
		right := compound.Parts[idx+1].Text

		if aff.CompoundForbidFlag != "" {
			if l.Dic.HasFlag(left, aff.CompoundForbidFlag, false) {
				return true
			}
		}

		if len(l.AffixForms(left+" "+right, captype, true, nil, nil, nil, NotCompound, false)) > 0 {
			return true
		}

		if aff.CheckCompoundRep {
			for candidate := range permute.ReplChars(left+right, aff.Rep) {
				if len(l.AffixForms(candidate, captype, true, nil, nil, nil, NotCompound, false)) > 0 {
					return true
				}
			}
		}

		if aff.CheckCompoundTriple {
			lr := []rune(left)
			rr := []rune(right)
			if len(lr) >= 2 && len(rr) >= 1 && lr[len(lr)-2] == lr[len(lr)-1] && lr[len(lr)-1] == rr[0] {
				return true
			}
			if len(lr) >= 1 && len(rr) >= 2 && lr[len(lr)-1] == rr[0] && rr[0] == rr[1] {
				return true
			}
		}

		if aff.CheckCompoundCase {
			lr := []rune(left)
			rr := []rune(right)
			leftC := lr[len(lr)-1]
			rightC := rr[0]
			if (strings.ToUpper(string(rightC)) == string(rightC) || strings.ToUpper(string(leftC)) == string(leftC)) &&
				rightC != '-' && leftC != '-' {
				return true
			}
		}

		if len(aff.CompoundPattern) > 0 {
			leftForm := compound.Parts[idx]
			rightForm := compound.Parts[idx+1]
			for _, pattern := range aff.CompoundPattern {
				if pattern.Match(leftForm, rightForm) {
					return true
				}
			}
		}

		if aff.CheckCompoundDup {
			if left == right && idx == len(compound.Parts)-2 {
				return true
			}
		}
	}

	return false
}
