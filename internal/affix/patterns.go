package affix

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// BreakPattern is a compiled BREAK directive entry, used to split a word
// before lookup at dashes and similar infix/anchored boundaries.
//
// Grounded on aff.py's BreakPattern: a pattern anchored with ^ or $ compiles
// to a single capture group over the literal pattern; any other pattern
// requires a character on both sides (`.(pat).`), so `BREAK -` alone never
// strips a leading/trailing hyphen, only an infix one.
type BreakPattern struct {
	Pattern string
	Regexp  *regexp.Regexp
}

// NewBreakPattern compiles pattern per the anchoring rules above.
func NewBreakPattern(pattern string) BreakPattern {
	esc := regexp.QuoteMeta(pattern)
	esc = strings.ReplaceAll(esc, `\^`, "^")
	esc = strings.ReplaceAll(esc, `\$`, "$")

	var re *regexp.Regexp
	if strings.HasPrefix(esc, "^") || strings.HasSuffix(esc, "$") {
		re = regexp.MustCompile("(" + esc + ")")
	} else {
		re = regexp.MustCompile(".(" + esc + ").")
	}
	return BreakPattern{Pattern: pattern, Regexp: re}
}

// DefaultBreakPatterns is Hunspell's built-in BREAK list when the .aff file
// declares none: split at any dash, or a leading/trailing dash.
func DefaultBreakPatterns() []BreakPattern {
	return []BreakPattern{
		NewBreakPattern("-"),
		NewBreakPattern("^-"),
		NewBreakPattern("-$"),
	}
}

// RepPattern is a REP-table (or dictionary ph:-derived) entry: a frequent
// typo pattern and its replacement. The replacement may contain "_" to mean
// a literal space.
type RepPattern struct {
	Pattern     string
	Replacement string
	Regexp      *regexp.Regexp
}

// NewRepPattern compiles a RepPattern.
func NewRepPattern(pattern, replacement string) RepPattern {
	return RepPattern{Pattern: pattern, Replacement: replacement, Regexp: regexp.MustCompile(pattern)}
}

// Ignore holds the set of characters stripped from words before lookup
// (e.g. Arabic harakat, Hebrew niqqud).
type Ignore struct {
	chars map[rune]struct{}
}

// NewIgnore builds an Ignore set from the IGNORE directive's character list.
func NewIgnore(chars string) Ignore {
	m := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		m[r] = struct{}{}
	}
	return Ignore{chars: m}
}

// Strip removes every ignored character from word.
func (ig Ignore) Strip(word string) string {
	if len(ig.chars) == 0 {
		return word
	}
	var b strings.Builder
	for _, r := range word {
		if _, skip := ig.chars[r]; skip {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// convRow is one compiled ICONV/OCONV table row.
type convRow struct {
	search      string
	pattern     *regexp.Regexp
	replacement string
}

// ConvTable applies ICONV/OCONV pre/post-processing conversions: at each
// input position, the longest matching rule wins, and application advances
// past the matched text (non-recursive, non-overlapping).
type ConvTable struct {
	rows []convRow
}

// NewConvTable compiles a ConvTable from (pattern, replacement) pairs. A
// leading/trailing "_" in pattern anchors to ^/$ respectively and is
// stripped from the literal match text; "_" in replacement becomes a space.
func NewConvTable(pairs [][2]string) *ConvTable {
	rows := make([]convRow, 0, len(pairs))
	for _, pair := range pairs {
		pat, repl := pair[0], pair[1]
		clean := strings.ReplaceAll(pat, "_", "")
		reStr := regexp.QuoteMeta(clean)
		if strings.HasPrefix(pat, "_") {
			reStr = "^" + reStr
		}
		if strings.HasSuffix(pat, "_") {
			reStr = reStr + "$"
		}
		rows = append(rows, convRow{
			search:      clean,
			pattern:     regexp.MustCompile(reStr),
			replacement: strings.ReplaceAll(repl, "_", " "),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].search < rows[j].search })
	return &ConvTable{rows: rows}
}

// Apply runs the conversion table over word.
func (c *ConvTable) Apply(word string) string {
	if c == nil {
		return word
	}

	var out strings.Builder
	pos := 0
	for pos < len(word) {
		bestLen := -1
		bestRepl := ""
		for _, row := range c.rows {
			if pos > 0 && strings.HasPrefix(row.pattern.String(), "^") {
				continue
			}
			loc := row.pattern.FindStringIndex(word[pos:])
			if loc == nil || loc[0] != 0 {
				continue
			}
			if len(row.search) > bestLen {
				bestLen = len(row.search)
				bestRepl = row.replacement
			}
		}
		if bestLen >= 0 {
			out.WriteString(bestRepl)
			pos += bestLen
		} else {
			_, size := utf8.DecodeRuneInString(word[pos:])
			out.WriteString(word[pos : pos+size])
			pos += size
		}
	}
	return out.String()
}
