package affix

import "strings"

// CompoundEndpoint is the minimal view of a compound-form part
// CompoundPattern.Match needs: its surface stem, whether it carries no
// affixes, and its effective flag set. lookup.AffixForm satisfies this.
type CompoundEndpoint interface {
	Stem() string
	IsBase() bool
	FlagsUnion() map[string]struct{}
}

// CompoundPattern forbids a specific left/right stem boundary inside a
// compound, per CHECKCOMPOUNDPATTERN: "endchars[/flag] beginchars[/flag]".
// The replacement field documented by Hunspell is acknowledged unused by
// every known dictionary and intentionally ignored here too (spec.md §9
// Open Question).
type CompoundPattern struct {
	leftStem, leftFlag   string
	rightStem, rightFlag string
	leftNoAffix          bool
	rightNoAffix         bool
}

// NewCompoundPattern parses "left" and "right" directive fields
// ("endchars[/flag]" and "beginchars[/flag]"); "0" means "no affixes".
func NewCompoundPattern(left, right string) *CompoundPattern {
	p := &CompoundPattern{}

	p.leftStem, p.leftFlag = splitSlash(left)
	if p.leftStem == "0" {
		p.leftStem = ""
		p.leftNoAffix = true
	}

	p.rightStem, p.rightFlag = splitSlash(right)
	if p.rightStem == "0" {
		p.rightStem = ""
		p.rightNoAffix = true
	}

	return p
}

func splitSlash(s string) (stem, flag string) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// Match reports whether the (left, right) compound boundary is forbidden by
// this pattern.
func (p *CompoundPattern) Match(left, right CompoundEndpoint) bool {
	if !strings.HasSuffix(left.Stem(), p.leftStem) {
		return false
	}
	if !strings.HasPrefix(right.Stem(), p.rightStem) {
		return false
	}
	if p.leftNoAffix && !left.IsBase() {
		return false
	}
	if p.rightNoAffix && !right.IsBase() {
		return false
	}
	if p.leftFlag != "" {
		if _, ok := left.FlagsUnion()[p.leftFlag]; !ok {
			return false
		}
	}
	if p.rightFlag != "" {
		if _, ok := right.FlagsUnion()[p.rightFlag]; !ok {
			return false
		}
	}
	return true
}
