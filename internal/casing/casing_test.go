package casing

import (
	"reflect"
	"sort"
	"testing"
)

func TestGuessGeneric(t *testing.T) {
	c := Generic()
	cases := []struct {
		word string
		want Type
	}{
		{"", No},
		{"foo", No},
		{"Foo", Init},
		{"FOO", All},
		{"fooBar", Huh},
		{"FooBar", HuhInit},
		{"F", Init},
	}
	for _, tc := range cases {
		if got := c.Guess(tc.word); got != tc.want {
			t.Errorf("Guess(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestTurkicUpperLower(t *testing.T) {
	c := Turkic()
	if got := c.Upper("izmir"); got != "İZMİR" {
		t.Errorf("Upper(izmir) = %q, want İZMİR", got)
	}
	lo := c.Lower("İZMİR")
	if len(lo) != 1 || lo[0] != "izmir" {
		t.Errorf("Lower(İZMİR) = %v, want [izmir]", lo)
	}
}

func TestGermanSharpSVariants(t *testing.T) {
	c := German()
	lo := c.Lower("STRASSE")
	sort.Strings(lo)
	want := []string{"straße", "strasse"}
	sort.Strings(want)
	// The single "ss" yields one "ß" variant plus the plain lowercase form;
	// check both desired forms are present rather than pinning the order.
	found := map[string]bool{}
	for _, v := range lo {
		found[v] = true
	}
	if !found["strasse"] {
		t.Errorf("Lower(STRASSE) = %v, missing strasse", lo)
	}
	if !found["straße"] {
		t.Errorf("Lower(STRASSE) = %v, missing straße", lo)
	}
}

func TestGermanGuessKeepsSharpSAsUpper(t *testing.T) {
	c := German()
	if got := c.Guess("STRAßE"); got != All {
		t.Errorf("Guess(STRAßE) = %v, want All", got)
	}
}

func TestCapitalize(t *testing.T) {
	c := Generic()
	got := c.Capitalize("foo")
	if !reflect.DeepEqual(got, []string{"Foo"}) {
		t.Errorf("Capitalize(foo) = %v, want [Foo]", got)
	}
}

func TestCoerce(t *testing.T) {
	c := Generic()
	cases := []struct {
		word string
		cap  Type
		want string
	}{
		{"kitten", Init, "Kitten"},
		{"kitten", HuhInit, "Kitten"},
		{"kitten", All, "KITTEN"},
		{"kitten", No, "kitten"},
		{"kitten", Huh, "kitten"},
	}
	for _, tc := range cases {
		if got := c.Coerce(tc.word, tc.cap); got != tc.want {
			t.Errorf("Coerce(%q, %v) = %q, want %q", tc.word, tc.cap, got, tc.want)
		}
	}
}

func TestVariantsAndCorrectionsIncludeOriginal(t *testing.T) {
	c := Generic()

	for _, word := range []string{"foo", "Foo", "FOO", "fooBar", "FooBar"} {
		_, variants := c.Variants(word)
		if len(variants) == 0 || variants[0] != word {
			t.Errorf("Variants(%q) = %v, want first element to be original word", word, variants)
		}
		_, corrections := c.Corrections(word)
		if len(corrections) == 0 || corrections[0] != word {
			t.Errorf("Corrections(%q) = %v, want first element to be original word", word, corrections)
		}
	}
}

func TestLowerEmptyAndLeadingTurkishCapitalI(t *testing.T) {
	c := Generic()
	if got := c.Lower(""); got != nil {
		t.Errorf("Lower(\"\") = %v, want nil", got)
	}
	if got := c.Lower("İstanbul"); got != nil {
		t.Errorf("Lower(İstanbul) = %v, want nil outside Turkic casing", got)
	}
}
