package affix

import (
	"regexp"
	"strings"

	"github.com/azleksandar/hunspore/internal/flagset"
)

// CompoundRule is a regexp-alike rule over the flag alphabet, e.g.
// "A*B?CD": any number of flag-A parts, then 0-or-1 flag-B part, then a
// flag-C part and a flag-D part. Flags may be single characters (default),
// or grouped with parentheses for long/numeric flag formats
// ("(aa)(bb)*(cc)", "(1001)(1002)*(1003)").
//
// Grounded verbatim on aff.py's CompoundRule (including its own
// acknowledgment that the grouped-flag parsing is "super ad-hoc").
type CompoundRule struct {
	Text    string
	Flags   flagset.Set
	re      *regexp.Regexp
	partial *regexp.Regexp
}

var groupedFlagRe = regexp.MustCompile(`\((.+?)\)`)
var groupedPartsRe = regexp.MustCompile(`\([^*?]+?\)[*?]?`)
var plainPartsRe = regexp.MustCompile(`[^*?][*?]?`)

// NewCompoundRule compiles a CompoundRule from its directive text.
func NewCompoundRule(text string) *CompoundRule {
	var flags []string
	var parts []string

	if strings.Contains(text, "(") {
		for _, m := range groupedFlagRe.FindAllStringSubmatch(text, -1) {
			flags = append(flags, m[1])
		}
		parts = groupedPartsRe.FindAllString(text, -1)
	} else {
		for _, r := range text {
			if r != '*' && r != '?' {
				flags = append(flags, string(r))
			}
		}
		for _, m := range plainPartsRe.FindAllString(text, -1) {
			parts = append(parts, strings.ReplaceAll(m, ")", `\)`))
		}
	}

	fullPattern := strings.Join(parts, "")

	partialPattern := ""
	for i := len(parts) - 1; i >= 0; i-- {
		if partialPattern == "" {
			partialPattern = parts[i] + "?"
		} else {
			partialPattern = parts[i] + "(" + partialPattern + ")?"
		}
	}

	return &CompoundRule{
		Text:    text,
		Flags:   flagset.New(flags...),
		re:      regexp.MustCompile("^(?:" + fullPattern + ")$"),
		partial: regexp.MustCompile("^(?:" + partialPattern + ")$"),
	}
}

// product calls fn with every combination picked one flag from each of
// relevantFlags (in order), mirroring Python's itertools.product over the
// per-part intersection-with-rule-alphabet flag sets.
func product(relevant [][]string, fn func(combo []string)) {
	combo := make([]string, len(relevant))
	var rec func(i int)
	rec = func(i int) {
		if i == len(relevant) {
			cp := make([]string, len(combo))
			copy(cp, combo)
			fn(cp)
			return
		}
		opts := relevant[i]
		if len(opts) == 0 {
			return
		}
		for _, o := range opts {
			combo[i] = o
			rec(i + 1)
		}
	}
	rec(0)
}

func relevantFlagsFor(rule *CompoundRule, flagSets []flagset.Set) [][]string {
	relevant := make([][]string, len(flagSets))
	for i, fs := range flagSets {
		relevant[i] = rule.Flags.Intersect(fs).Slice()
	}
	return relevant
}

// FullMatch reports whether some combination of each part's relevant flags
// fully matches the rule.
func (r *CompoundRule) FullMatch(flagSets []flagset.Set) bool {
	matched := false
	product(relevantFlagsFor(r, flagSets), func(combo []string) {
		if matched {
			return
		}
		if r.re.MatchString(strings.Join(combo, "")) {
			matched = true
		}
	})
	return matched
}

// PartialMatch reports whether some combination partially (as a still-valid
// prefix) matches the rule — used during recursive compound splitting to
// decide whether a rule remains viable.
func (r *CompoundRule) PartialMatch(flagSets []flagset.Set) bool {
	matched := false
	product(relevantFlagsFor(r, flagSets), func(combo []string) {
		if matched {
			return
		}
		if r.partial.MatchString(strings.Join(combo, "")) {
			matched = true
		}
	})
	return matched
}
