package trie

import "testing"

func TestLookupCollectsAlongPath(t *testing.T) {
	tr := New()
	tr.Put([]rune("a"), "A")
	tr.Put([]rune("ab"), "AB")
	tr.Put([]rune("abc"), "ABC")
	tr.Put([]rune("abd"), "ABD")

	got := tr.Lookup([]rune("abc"))
	want := map[string]bool{"A": true, "AB": true, "ABC": true}
	if len(got) != len(want) {
		t.Fatalf("Lookup(abc) = %v, want 3 entries", got)
	}
	for _, v := range got {
		if !want[v.(string)] {
			t.Errorf("unexpected payload %v in Lookup(abc)", v)
		}
	}
}

func TestLookupStopsAtMissingBranch(t *testing.T) {
	tr := New()
	tr.Put([]rune("xy"), "XY")

	got := tr.Lookup([]rune("xz"))
	if len(got) != 0 {
		t.Errorf("Lookup(xz) = %v, want empty (no common prefix payload stored)", got)
	}
}

func TestLookupEmptyKeyReturnsRootPayloads(t *testing.T) {
	tr := New()
	tr.Put(nil, "ROOT")
	tr.Put([]rune("a"), "A")

	got := tr.Lookup([]rune("a"))
	if len(got) != 2 {
		t.Fatalf("Lookup(a) = %v, want ROOT and A", got)
	}
}

func TestMultiplePayloadsAtSameKey(t *testing.T) {
	tr := New()
	tr.Put([]rune("ed"), "strip=y")
	tr.Put([]rune("ed"), "strip=ed")

	got := tr.Lookup([]rune("ed"))
	if len(got) != 2 {
		t.Errorf("Lookup(ed) = %v, want 2 payloads stored under the same key", got)
	}
}
