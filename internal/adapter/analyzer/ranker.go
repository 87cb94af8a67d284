package analyzer

import (
	"cmp"
	"slices"
	"strings"

	"wordfreq/internal/domain"
)

// Rank orders every entry by count descending, then by word ascending.
// Byte-wise comparison of UTF-8 strings matches code-point order.
func Rank(freq map[string]int) []domain.WordCount {
	ranked := make([]domain.WordCount, 0, len(freq))
	for word, count := range freq {
		ranked = append(ranked, domain.WordCount{Word: word, Count: count})
	}
	slices.SortFunc(ranked, compareWordCounts)
	return ranked
}

// TopN returns the first n entries of Rank(freq). A non-positive n yields an
// empty list; an n beyond the number of distinct words yields all of them.
func TopN(freq map[string]int, n int) []domain.WordCount {
	if n <= 0 {
		return []domain.WordCount{}
	}
	ranked := Rank(freq)
	if n < len(ranked) {
		ranked = ranked[:n:n]
	}
	return ranked
}

func compareWordCounts(a, b domain.WordCount) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return strings.Compare(a.Word, b.Word)
}
