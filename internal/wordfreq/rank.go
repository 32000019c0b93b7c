package wordfreq

import (
	"cmp"
	"slices"
	"strings"

	"github.com/nao1215/wordrank/internal/model"
)

// compareEntries orders by count descending, then word ascending.
func compareEntries(a, b model.RankedEntry) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return strings.Compare(a.Word, b.Word)
}

// Rank returns the entries of m ordered from most to least frequent.
// Words with equal counts are ordered by ascending byte-wise comparison,
// which makes the result independent of map iteration order.
func Rank(m FrequencyMap) []model.RankedEntry {
	entries := make([]model.RankedEntry, 0, len(m))
	for word, n := range m {
		entries = append(entries, model.RankedEntry{Word: word, Count: n})
	}
	slices.SortFunc(entries, compareEntries)
	return entries
}

// Top returns the first n entries. A non-positive n returns all entries.
func Top(entries []model.RankedEntry, n int) []model.RankedEntry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
