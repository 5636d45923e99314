package affreader

import (
	"strings"
	"testing"

	"github.com/azleksandar/hunspore/internal/affix"
)

const sampleAff = `SET UTF-8
TRY esianrtolcdugmphbyfvkwzESIANRTOLCDUGMPHBYFVKWZ
KEY qwertyuiop|asdfghjkl|zxcvbnm
NOSUGGEST !
COMPOUNDMIN 3
REP 1
REP teh the
SFX D Y 2
SFX D 0 ed [^y]
SFX D y ied y
PFX U N 1
PFX U 0 un .
`

func TestReadBasicDirectives(t *testing.T) {
	aff, ctx, err := Read(strings.NewReader(sampleAff))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if ctx.Encoding != "UTF-8" {
		t.Errorf("Encoding = %q, want UTF-8", ctx.Encoding)
	}
	if aff.Try == "" {
		t.Error("expected TRY to be set")
	}
	if aff.NoSuggest != "!" {
		t.Errorf("NoSuggest = %q, want !", aff.NoSuggest)
	}
	if aff.CompoundMin != 3 {
		t.Errorf("CompoundMin = %d, want 3", aff.CompoundMin)
	}
	if len(aff.Rep) != 1 || aff.Rep[0].Pattern != "teh" || aff.Rep[0].Replacement != "the" {
		t.Errorf("Rep = %v, want one teh->the entry", aff.Rep)
	}

	sfx, ok := aff.Suffixes["D"]
	if !ok || len(sfx) != 2 {
		t.Fatalf("Suffixes[D] = %v, want 2 entries", sfx)
	}

	pfx, ok := aff.Prefixes["U"]
	if !ok || len(pfx) != 1 {
		t.Fatalf("Prefixes[U] = %v, want 1 entry", pfx)
	}
	if pfx[0].Strip != "" || pfx[0].Add != "un" {
		t.Errorf("PFX U entry = %+v, want strip=\"\" add=un", pfx[0].Affix)
	}
}

func TestReadMidFileEncodingSwitch(t *testing.T) {
	// Windows-1252 byte 0xE9 is "é"; under SET windows-1252 the KEY line
	// must decode it as such.
	raw := "SET windows-1252\nKEY caf\xe9\n"
	aff, ctx, err := Read(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if ctx.Encoding != "windows-1252" {
		t.Errorf("Encoding = %q, want windows-1252", ctx.Encoding)
	}
	if aff.Key != "café" {
		t.Errorf("Key = %q, want café (0xE9 decoded as Windows-1252 é)", aff.Key)
	}
}

func TestReadIgnoresUnknownDirective(t *testing.T) {
	raw := "SET UTF-8\nWORDCHARS -'.\nTRY abc\n"
	aff, _, err := Read(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if aff.Try != "abc" {
		t.Errorf("Try = %q, want abc (unknown WORDCHARS directive should be skipped, not abort parsing)", aff.Try)
	}
}

func TestFlagFormatLong(t *testing.T) {
	raw := "SET UTF-8\nFLAG long\nSFX aa Y 1\nSFX aa 0 s .\n"
	aff, _, err := Read(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if aff.FlagFormat != affix.FlagLong {
		t.Errorf("FlagFormat = %v, want FlagLong", aff.FlagFormat)
	}
	if _, ok := aff.Suffixes["aa"]; !ok {
		t.Errorf("Suffixes = %v, want key \"aa\" under long flag format", aff.Suffixes)
	}
}
