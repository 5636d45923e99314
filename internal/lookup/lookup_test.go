package lookup

import (
	"testing"

	"github.com/azleksandar/hunspore/internal/affix"
	"github.com/azleksandar/hunspore/internal/dic"
	"github.com/azleksandar/hunspore/internal/flagset"
)

// newTestAff builds a minimal compiled Aff: one suffix flag "D" adding "ed"
// to any stem (strip "", condition "."), cross-product disabled.
func newTestAff() *affix.Aff {
	raw := &affix.Aff{
		Prefixes: map[string][]*affix.Prefix{},
		Suffixes: map[string][]*affix.Suffix{
			"D": {affix.NewSuffix("D", false, "", "ed", ".", flagset.New())},
		},
	}
	return affix.NewAff(raw)
}

func newTestDic() *dic.Dic {
	d := dic.New()
	d.Add(&dic.Word{Stem: "walk", Flags: flagset.New("D")})
	d.Add(&dic.Word{Stem: "cat", Flags: flagset.New()})
	return d
}

func TestCheckExactDictionaryWord(t *testing.T) {
	l := New(newTestAff(), newTestDic())

	if !l.Check("cat", DefaultOptions()) {
		t.Error("expected cat to be spelled correctly")
	}
	if l.Check("dog", DefaultOptions()) {
		t.Error("dog is not in the dictionary, should be incorrect")
	}
}

func TestCheckAffixedForm(t *testing.T) {
	l := New(newTestAff(), newTestDic())

	if !l.Check("walked", DefaultOptions()) {
		t.Error("expected walked (walk+D suffix) to be spelled correctly")
	}
}

func TestCheckRejectsSuffixOnWordWithoutFlag(t *testing.T) {
	l := New(newTestAff(), newTestDic())

	if l.Check("catted", DefaultOptions()) {
		t.Error("cat does not carry flag D, catted should be incorrect")
	}
}

func TestCheckCaseInsensitiveByDefault(t *testing.T) {
	l := New(newTestAff(), newTestDic())

	if !l.Check("Cat", DefaultOptions()) {
		t.Error("expected Cat (capitalized known word) to be accepted")
	}
}

// newComplexPrefixAff builds a two-prefix chain: outer prefix A adds "re",
// inner prefix B adds "un" and is itself flagged "A" (its continuation
// class), matching the way desuffix requires the outer suffix's flag on
// the inner one.
func newComplexPrefixAff(complex bool) *affix.Aff {
	raw := &affix.Aff{
		ComplexPrefixes: complex,
		Prefixes: map[string][]*affix.Prefix{
			"A": {affix.NewPrefix("A", false, "", "re", ".", flagset.New())},
			"B": {affix.NewPrefix("B", false, "", "un", ".", flagset.New("A"))},
		},
		Suffixes: map[string][]*affix.Suffix{},
	}
	return affix.NewAff(raw)
}

func newComplexPrefixDic() *dic.Dic {
	d := dic.New()
	d.Add(&dic.Word{Stem: "do", Flags: flagset.New("B")})
	return d
}

func TestCheckComplexPrefixesChainsTwoPrefixes(t *testing.T) {
	l := New(newComplexPrefixAff(true), newComplexPrefixDic())

	if !l.Check("reundo", DefaultOptions()) {
		t.Error("expected reundo (re+un+do, both prefixes chained) to be spelled correctly when ComplexPrefixes is set")
	}
}

func TestCheckComplexPrefixesRequiresDirective(t *testing.T) {
	l := New(newComplexPrefixAff(false), newComplexPrefixDic())

	if l.Check("reundo", DefaultOptions()) {
		t.Error("reundo should be rejected when ComplexPrefixes is not set, since only one prefix level is stripped")
	}
}
