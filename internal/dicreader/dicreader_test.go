package dicreader

import (
	"strings"
	"testing"

	"github.com/azleksandar/hunspore/internal/affreader"
)

const sampleAff = `SET UTF-8
SFX D Y 2
SFX D 0 ed [^y]
SFX D y ied y
`

func TestReadBasicWordlist(t *testing.T) {
	aff, ctx, err := affreader.Read(strings.NewReader(sampleAff))
	if err != nil {
		t.Fatalf("affreader.Read failed: %v", err)
	}

	dicText := "3\nwalk/D\ncat\ntry/D\n"
	d, err := Read(strings.NewReader(dicText), aff, ctx)
	if err != nil {
		t.Fatalf("dicreader.Read failed: %v", err)
	}

	if len(d.Words) != 3 {
		t.Fatalf("got %d words, want 3 (count line should be skipped)", len(d.Words))
	}

	walk := d.Homonyms("walk", false)
	if len(walk) != 1 {
		t.Fatalf("Homonyms(walk) = %d, want 1", len(walk))
	}
	if !walk[0].HasFlag("D") {
		t.Error("walk should carry flag D")
	}

	cat := d.Homonyms("cat", false)
	if len(cat) != 1 {
		t.Fatalf("Homonyms(cat) = %d, want 1", len(cat))
	}
	if cat[0].HasFlag("D") {
		t.Error("cat should carry no flags")
	}
}

func TestReadEscapedSlashInStem(t *testing.T) {
	aff, ctx, err := affreader.Read(strings.NewReader("SET UTF-8\n"))
	if err != nil {
		t.Fatalf("affreader.Read failed: %v", err)
	}

	// "km\/h" is a stem containing a literal slash, escaped so it isn't
	// parsed as the flag-field separator.
	d, err := Read(strings.NewReader(`km\/h`), aff, ctx)
	if err != nil {
		t.Fatalf("dicreader.Read failed: %v", err)
	}
	if len(d.Words) != 1 || d.Words[0].Stem != "km/h" {
		t.Fatalf("got %+v, want one word with stem km/h", d.Words)
	}
}

func TestReadDataTags(t *testing.T) {
	aff, ctx, err := affreader.Read(strings.NewReader("SET UTF-8\n"))
	if err != nil {
		t.Fatalf("affreader.Read failed: %v", err)
	}

	d, err := Read(strings.NewReader("pretty\tph:prity"), aff, ctx)
	if err != nil {
		t.Fatalf("dicreader.Read failed: %v", err)
	}
	if len(d.Words) != 1 {
		t.Fatalf("got %d words, want 1", len(d.Words))
	}
	w := d.Words[0]
	if w.Stem != "pretty" {
		t.Errorf("Stem = %q, want pretty", w.Stem)
	}
	if len(w.AltSpellings) != 1 || w.AltSpellings[0] != "prity" {
		t.Errorf("AltSpellings = %v, want [prity]", w.AltSpellings)
	}
	if len(aff.Rep) != 1 || aff.Rep[0].Pattern != "prity" || aff.Rep[0].Replacement != "pretty" {
		t.Errorf("Aff.Rep = %v, want one prity->pretty entry added as a side effect", aff.Rep)
	}
}
