package metrics

import "testing"

func TestCommonCharacterPositions(t *testing.T) {
	count, swap := CommonCharacterPositions([]rune("night"), []rune("nigth"))
	if count != 3 {
		t.Errorf("count = %d, want 3 (n,i,g match, h/t swapped)", count)
	}
	if !swap {
		t.Error("expected a detected swap between night/nigth")
	}

	count2, swap2 := CommonCharacterPositions([]rune("abc"), []rune("abc"))
	if count2 != 3 || swap2 {
		t.Errorf("identical strings: count=%d swap=%v, want 3 false", count2, swap2)
	}

	count3, swap3 := CommonCharacterPositions([]rune("abc"), []rune("xyz"))
	if count3 != 0 || swap3 {
		t.Errorf("totally different strings: count=%d swap=%v, want 0 false", count3, swap3)
	}
}

func TestLeftCommonSubstring(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"hunspell", "hunspore", 5},
		{"abc", "abc", 3},
		{"abc", "xyz", 0},
		{"ab", "abcdef", 2},
	}
	for _, tc := range cases {
		if got := LeftCommonSubstring([]rune(tc.a), []rune(tc.b)); got != tc.want {
			t.Errorf("LeftCommonSubstring(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestLCSLen(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "abc", 0},
		{"abc", "", 0},
		{"abc", "abc", 3},
		{"abcde", "ace", 3},
		{"abc", "def", 0},
	}
	for _, tc := range cases {
		if got := LCSLen([]rune(tc.a), []rune(tc.b)); got != tc.want {
			t.Errorf("LCSLen(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNgramBasic(t *testing.T) {
	s1 := []rune("word")
	s2 := []rune("word")
	got := Ngram(3, s1, s2, NgramOptions{})
	if got <= 0 {
		t.Errorf("Ngram(identical words) = %d, want positive score", got)
	}
}

func TestNgramEmptyDictWord(t *testing.T) {
	got := Ngram(3, []rune("word"), nil, NgramOptions{})
	if got != 0 {
		t.Errorf("Ngram against empty s2 = %d, want 0", got)
	}
}

func TestNgramPenaltyReducesScoreForLengthMismatch(t *testing.T) {
	s1 := []rune("wo")
	s2 := []rune("wordlonger")
	withPenalty := Ngram(3, s1, s2, NgramOptions{AnyMismatch: true})
	withoutPenalty := Ngram(3, s1, s2, NgramOptions{})
	if withPenalty >= withoutPenalty {
		t.Errorf("AnyMismatch penalty should reduce score: with=%d without=%d", withPenalty, withoutPenalty)
	}
}
