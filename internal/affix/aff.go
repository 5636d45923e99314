package affix

import (
	"github.com/azleksandar/hunspore/internal/casing"
	"github.com/azleksandar/hunspore/internal/flagset"
	"github.com/azleksandar/hunspore/internal/trie"
)

// FlagFormat selects how flag text is tokenized into individual flags, per
// the FLAG directive: short (one char each, default), long (two chars
// each), numeric (comma-separated decimal numbers), or UTF-8 (one rune
// each).
type FlagFormat int

const (
	FlagShort FlagFormat = iota
	FlagLong
	FlagNumeric
	FlagUTF8
)

// Aff is the fully compiled set of ".aff" directives, the configuration
// lookup and suggest run against. Grounded on original_source's
// data/aff.py Aff dataclass; fields not reachable from spec.md's modules
// (e.g. WORDCHARS, documentation-only directives) are intentionally
// omitted, not silently dropped — see DESIGN.md.
type Aff struct {
	FlagFormat FlagFormat

	Prefixes map[string][]*Prefix
	Suffixes map[string][]*Suffix

	PrefixIndex *trie.Trie
	SuffixIndex *trie.Trie

	Break        []BreakPattern
	Rep          []RepPattern
	Map          []flagset.Set
	Iconv        *ConvTable
	Oconv        *ConvTable
	CompoundRule []*CompoundRule
	CompoundPattern []*CompoundPattern
	Phonet       *PhonetTable
	Ignore       Ignore

	AF map[string]flagset.Set
	AM map[string][]string

	// Compound control.
	CompoundFlag          string
	CompoundBegin         string
	CompoundMiddle        string
	CompoundLast          string
	OnlyInCompound        string
	CompoundPermitFlag    string
	CompoundForbidFlag    string
	CompoundMin           int
	CompoundWordMax       int
	CompoundForbidFlagSet bool
	CompoundMoreSuffixes  bool
	CheckCompoundDup      bool
	CheckCompoundRep      bool
	CheckCompoundCase     bool
	CheckCompoundTriple   bool
	SimplifiedTriple      bool
	ForceUCase            string

	// Affix control / word markers.
	NoSuggest       string
	ForbiddenWord   string
	NeedAffix       string
	Circumfix       string
	KeepCase        string
	Warn            string
	ForbidWarn      bool
	ComplexPrefixes bool

	// Casing.
	CheckSharps bool
	Lang        string

	Casing casing.Casing

	// Suggestion control.
	Try          string
	Key          string
	NoSplitSugs  bool
	MaxNGramSugs int
	MaxDiff      int
	OnlyMaxDiff  bool
}

// NewAff builds the cross-referencing indexes and casing strategy for an
// otherwise-populated Aff. Callers (an .aff text reader, or a test fixture)
// are expected to have already filled in the directive fields.
func NewAff(a *Aff) *Aff {
	a.PrefixIndex, a.SuffixIndex = BuildIndexes(a.Prefixes, a.Suffixes)
	a.Casing = SelectCasing(a.CheckSharps, a.Lang)
	if len(a.Break) == 0 {
		a.Break = DefaultBreakPatterns()
	}
	return a
}

// FlagsFromAF resolves an AF-table alias index (a decimal number referring
// to an AF line) back to the flag set it stands for; index "0" or an
// unknown index means "no flags".
func (a *Aff) FlagsFromAF(index string) flagset.Set {
	if index == "" || index == "0" {
		return flagset.New()
	}
	if fs, ok := a.AF[index]; ok {
		return fs
	}
	return flagset.New()
}

// MorphFromAM resolves an AM-table alias index back to its morphological
// data lines, per the AM directive.
func (a *Aff) MorphFromAM(index string) []string {
	if index == "" || index == "0" {
		return nil
	}
	return a.AM[index]
}

// HasFlag reports whether fs contains flag, a nil/empty-safe convenience
// used throughout lookup/suggest.
func HasFlag(fs flagset.Set, flag string) bool {
	return flag != "" && fs.Has(flag)
}
