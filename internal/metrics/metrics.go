// Package metrics implements the pure string-similarity primitives the
// suggest engine's n-gram and phonet scorers are built on: n-gram overlap,
// longest-common-subsequence length, left-common-substring length, and
// common-character-positions with swap detection.
//
// Semantics are pinned against the reference Hunspell/spylls implementation
// (string_metrics.py) rather than re-derived, since the exact penalty
// arithmetic here determines suggestion ranking.
package metrics

// CommonCharacterPositions counts characters equal at the same rune index
// in s1 and s2, and reports whether the two strings differ in exactly one
// transposed pair of positions (e.g. "paris" vs "piras").
func CommonCharacterPositions(s1, s2 []rune) (count int, isSwap bool) {
	n := len(s1)
	if len(s2) < n {
		n = len(s2)
	}

	var diffPos [2]int
	ndiff := 0
	for i := 0; i < n; i++ {
		if s1[i] == s2[i] {
			count++
		} else if ndiff < 2 {
			diffPos[ndiff] = i
			ndiff++
		} else {
			ndiff++
		}
	}

	if ndiff == 2 && len(s1) == len(s2) {
		p1, p2 := diffPos[0], diffPos[1]
		isSwap = s1[p1] == s2[p2] && s1[p2] == s2[p1]
	}

	return count, isSwap
}

// LeftCommonSubstring returns the length of the longest shared prefix of s1
// and s2, capped at the shorter string's length.
func LeftCommonSubstring(s1, s2 []rune) int {
	n := len(s1)
	if len(s2) < n {
		n = len(s2)
	}
	for i := 0; i < n; i++ {
		if s1[i] != s2[i] {
			return i
		}
	}
	return n
}

// NgramOptions tunes Ngram's scoring: Weighted makes the counting loop
// subtract for every missing gram (twice at either end of s1) and disables
// the early exit; LongerWorse and AnyMismatch select the final length
// penalty.
type NgramOptions struct {
	Weighted    bool
	AnyMismatch bool
	LongerWorse bool
}

// Ngram sums, over gram sizes 1..maxSize, the number of positions in s1
// whose gram of that size occurs anywhere in s2. Exits early past gram size
// k once an unweighted pass scores fewer than 2 hits (mirrors Hunspell's own
// early-out, not just an optimization — it changes the score for long
// words).
func Ngram(maxSize int, s1, s2 []rune, opts NgramOptions) int {
	l2 := len(s2)
	if l2 == 0 {
		return 0
	}
	l1 := len(s1)

	s2str := string(s2)

	score := 0
	for size := 1; size <= maxSize; size++ {
		ns := 0
		for pos := 0; pos <= l1-size; pos++ {
			gram := string(s1[pos : pos+size])
			if containsRuneSlice(s2str, gram) {
				ns++
			} else if opts.Weighted {
				ns--
				if pos == 0 || pos+size == l1 {
					ns--
				}
			}
		}
		score += ns
		if ns < 2 && !opts.Weighted {
			break
		}
	}

	var penalty int
	switch {
	case opts.LongerWorse:
		penalty = (l2 - l1) - 2
	case opts.AnyMismatch:
		penalty = absInt(l2-l1) - 2
	default:
		penalty = 0
	}

	if penalty > 0 {
		return score - penalty
	}
	return score
}

func containsRuneSlice(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// LCSLen returns the length of the longest common subsequence of s1 and s2
// (classic O(m*n) dynamic program).
func LCSLen(s1, s2 []rune) int {
	m, n := len(s1), len(s2)
	if m == 0 || n == 0 {
		return 0
	}

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if s1[i-1] == s2[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[n]
}
