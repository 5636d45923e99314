package affix

import (
	"testing"

	"github.com/azleksandar/hunspore/internal/flagset"
)

func TestSuffixMatchAndStrip(t *testing.T) {
	sfx := NewSuffix("D", true, "", "ed", ".", flagset.New())

	if !sfx.MatchesSurface("walked") {
		t.Fatal("expected walked to match suffix -ed")
	}
	if sfx.MatchesSurface("walk") {
		t.Fatal("walk has no -ed suffix, should not match")
	}
	if got := sfx.StripToStem("walked"); got != "walk" {
		t.Errorf("StripToStem(walked) = %q, want walk", got)
	}
}

func TestSuffixWithStripFragment(t *testing.T) {
	// mimic SFX D Y 1 / y ied y$ : strip "y", add "ied", condition "y"
	sfx := NewSuffix("D", true, "y", "ied", "y", flagset.New())

	if !sfx.MatchesSurface("tried") {
		t.Fatal("expected tried to match -ied suffix")
	}
	if got := sfx.StripToStem("tried"); got != "try" {
		t.Errorf("StripToStem(tried) = %q, want try", got)
	}
}

func TestPrefixMatchAndStrip(t *testing.T) {
	pfx := NewPrefix("U", false, "", "un", ".", flagset.New())

	if !pfx.MatchesSurface("undo") {
		t.Fatal("expected undo to match prefix un-")
	}
	if pfx.MatchesSurface("redo") {
		t.Fatal("redo has no un- prefix, should not match")
	}
	if got := pfx.StripToStem("undo"); got != "do" {
		t.Errorf("StripToStem(undo) = %q, want do", got)
	}
}

func TestAffixHasFlag(t *testing.T) {
	flags := flagset.New("X", "Y")
	sfx := NewSuffix("D", true, "", "ed", ".", flags)

	if !sfx.HasFlag("X") {
		t.Error("expected suffix to carry flag X")
	}
	if sfx.HasFlag("Z") {
		t.Error("suffix should not carry flag Z")
	}
}

func TestIgnoreStrip(t *testing.T) {
	ig := NewIgnore("ًٌ") // two Arabic harakat marks

	if got := ig.Strip("word"); got != "word" {
		t.Errorf("Strip with no matching chars changed %q to %q", "word", got)
	}
	got := ig.Strip("woًrd")
	if got != "word" {
		t.Errorf("Strip(wo<harakat>rd) = %q, want word", got)
	}

	var zero Ignore
	if got := zero.Strip("word"); got != "word" {
		t.Errorf("zero-value Ignore.Strip should be a no-op, got %q", got)
	}
}

func TestBreakPatternAnchoring(t *testing.T) {
	infix := NewBreakPattern("-")
	if !infix.Regexp.MatchString("well-known") {
		t.Error("infix break pattern should match well-known")
	}

	leading := NewBreakPattern("^-")
	if !leading.Regexp.MatchString("-known") {
		t.Error("leading break pattern should match -known")
	}

	trailing := NewBreakPattern("-$")
	if !trailing.Regexp.MatchString("well-") {
		t.Error("trailing break pattern should match well-")
	}
}

func TestConvTableLongestMatchWins(t *testing.T) {
	ct := NewConvTable([][2]string{
		{"a", "X"},
		{"ab", "Y"},
	})
	if got := ct.Apply("abc"); got != "Yc" {
		t.Errorf("Apply(abc) = %q, want Yc (longest pattern ab wins over a)", got)
	}
}

func TestConvTableAnchors(t *testing.T) {
	ct := NewConvTable([][2]string{
		{"_a", "X"},
	})
	if got := ct.Apply("ab"); got != "Xb" {
		t.Errorf("Apply(ab) with leading-anchored pattern = %q, want Xb", got)
	}
}

func TestConvTableNilIsNoop(t *testing.T) {
	var ct *ConvTable
	if got := ct.Apply("word"); got != "word" {
		t.Errorf("nil ConvTable.Apply should be a no-op, got %q", got)
	}
}
