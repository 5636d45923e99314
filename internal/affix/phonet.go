package affix

import (
	"regexp"
	"strings"
)

// PhonetRule is one compiled PHONE-table rule.
type PhonetRule struct {
	search      *regexp.Regexp
	replacement string
	start       bool // '^' flag: only matches at word position 0
	end         bool // '$' flag: must match to the end of the word
}

// PhonetTable is the metaphone-production table from the PHONE directive,
// used by the phonet scorer (spec.md §4.6). Format borrowed from aspell;
// parsing grounded verbatim on aff.py's PhonetTable.parse_rule.
type PhonetTable struct {
	rules map[byte][]*PhonetRule
}

var phoneRulePattern = regexp.MustCompile(`^(?P<letters>\w+)(\((?P<optional>\w+)\))?(?P<lookahead>-*)(?P<flags>[\^$<]*)(?P<priority>\d)?$`)

// NewPhonetTable compiles a PhonetTable from (search, replacement) pairs.
func NewPhonetTable(rows [][2]string) (*PhonetTable, error) {
	t := &PhonetTable{rules: make(map[byte][]*PhonetRule)}
	for _, row := range rows {
		search, replacement := row[0], row[1]
		rule, err := parsePhonetRule(search, replacement)
		if err != nil {
			return nil, err
		}
		key := search[0]
		t.rules[key] = append(t.rules[key], rule)
	}
	return t, nil
}

func parsePhonetRule(search, replacement string) (*PhonetRule, error) {
	m := phoneRulePattern.FindStringSubmatch(search)
	if m == nil {
		return nil, &InvalidPhonetRuleError{Rule: search}
	}
	names := phoneRulePattern.SubexpNames()
	group := func(name string) string {
		for i, n := range names {
			if n == name && i < len(m) {
				return m[i]
			}
		}
		return ""
	}

	letters := group("letters")
	optional := group("optional")
	lookahead := group("lookahead")
	flags := group("flags")

	text := strings.Split(letters, "")
	if optional != "" {
		text = append(text, "["+optional+"]")
	}

	var regex string
	if lookahead != "" {
		la := len(lookahead)
		if la > len(text) {
			la = len(text)
		}
		head := text[:len(text)-la]
		tail := text[len(text)-la:]
		regex = strings.Join(head, "") + "(?=" + strings.Join(tail, "") + ")"
	} else {
		regex = strings.Join(text, "")
	}

	return &PhonetRule{
		search:      regexp.MustCompile(regex),
		replacement: replacement,
		start:       strings.Contains(flags, "^"),
		end:         strings.Contains(flags, "$"),
	}, nil
}

// InvalidPhonetRuleError reports a malformed PHONE directive rule.
type InvalidPhonetRuleError struct{ Rule string }

func (e *InvalidPhonetRuleError) Error() string { return "not a proper PHONE rule: " + e.Rule }

// match reports whether rule matches word at pos, returning the matched
// span length (0 plus false if no match).
func (r *PhonetRule) match(word string, pos int) (int, bool) {
	if r.start && pos > 0 {
		return 0, false
	}
	if r.end {
		loc := r.search.FindStringIndex(word[pos:])
		if loc == nil || loc[0] != 0 || loc[1] != len(word)-pos {
			return 0, false
		}
		return loc[1], true
	}
	loc := r.search.FindStringIndex(word[pos:])
	if loc == nil || loc[0] != 0 {
		return 0, false
	}
	return loc[1], true
}

// Metaphone computes the phonetic key for word: greedy left-to-right rule
// application, advancing by the match span or by one rune on no match.
func (t *PhonetTable) Metaphone(word string) string {
	if t == nil {
		return ""
	}
	word = strings.ToUpper(word)

	var out strings.Builder
	pos := 0
	for pos < len(word) {
		matched := false
		for _, rule := range t.rules[word[pos]] {
			if span, ok := rule.match(word, pos); ok {
				out.WriteString(rule.replacement)
				pos += span
				matched = true
				break
			}
		}
		if !matched {
			pos++
		}
	}
	return out.String()
}
