// Package similarity implements a normalized string-similarity ratio used
// for fuzzy event deduplication.
//
// Ratio follows the Gestalt pattern-matching approach of Python's
// difflib.SequenceMatcher (without the autojunk heuristic): it sums the
// lengths of recursively found longest matching blocks and normalizes by
// the combined length. The dedup thresholds are tuned to this metric's
// scale.
package similarity

// Ratio returns a similarity score in [0, 1] for the two strings.
// 1.0 means identical, 0.0 means no characters in common. The comparison
// is rune-based so Hebrew titles are measured per character, not per byte.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingRunes(ra, rb)) / float64(total)
}

// matchingRunes counts the total length of matching blocks: the longest
// common block plus, recursively, the best matches to its left and right.
func matchingRunes(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	i, j, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingRunes(a[:i], b[:j]) +
		matchingRunes(a[i+size:], b[j+size:])
}

// longestMatch finds the longest block of runes common to a and b,
// preferring the earliest occurrence in a, then in b.
func longestMatch(a, b []rune) (bestI, bestJ, bestSize int) {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	// j2len[j] is the length of the match ending at a[i-1], b[j].
	j2len := make(map[int]int)
	for i, r := range a {
		newJ2len := make(map[int]int)
		for _, j := range b2j[r] {
			k := j2len[j-1] + 1
			newJ2len[j] = k
			if k > bestSize {
				bestI, bestJ, bestSize = i-k+1, j-k+1, k
			}
		}
		j2len = newJ2len
	}
	return bestI, bestJ, bestSize
}
