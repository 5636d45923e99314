package dic

import (
	"testing"

	"github.com/azleksandar/hunspore/internal/flagset"
)

func TestAddAndHomonyms(t *testing.T) {
	d := New()
	d.Add(&Word{Stem: "cat", Flags: flagset.New("X")})
	d.Add(&Word{Stem: "cat", Flags: flagset.New("Y")})
	d.Add(&Word{Stem: "Dog", Flags: flagset.New("X")})

	cats := d.Homonyms("cat", false)
	if len(cats) != 2 {
		t.Fatalf("Homonyms(cat) = %d entries, want 2", len(cats))
	}

	none := d.Homonyms("dog", false)
	if len(none) != 0 {
		t.Errorf("Homonyms(dog) exact-case = %v, want none (stored as Dog)", none)
	}

	withCase := d.Homonyms("dog", true)
	if len(withCase) != 1 {
		t.Errorf("Homonyms(dog) case-insensitive = %d, want 1", len(withCase))
	}
}

func TestHasFlagAnyAndAll(t *testing.T) {
	d := New()
	d.Add(&Word{Stem: "run", Flags: flagset.New("A", "B")})
	d.Add(&Word{Stem: "run", Flags: flagset.New("A")})

	if !d.HasFlag("run", "A", false) {
		t.Error("expected at least one homonym of run to carry flag A")
	}
	if !d.HasFlag("run", "A", true) {
		t.Error("expected every homonym of run to carry flag A")
	}
	if d.HasFlag("run", "B", true) {
		t.Error("not every homonym of run carries flag B")
	}
	if d.HasFlag("missing", "A", false) {
		t.Error("HasFlag on a stem with no entries should be false")
	}
}

func TestWordHasFlag(t *testing.T) {
	w := &Word{Stem: "cat", Flags: flagset.New("X")}
	if !w.HasFlag("X") {
		t.Error("expected word to carry flag X")
	}
	if w.HasFlag("Z") {
		t.Error("word should not carry flag Z")
	}
}
