// Handles aggregations over commit sets.
//
// Every analysis here is a pure function of the commit slice; nothing is
// cached or persisted between calls.
package stats

import (
	"slices"
)

// Count pairs a key with its occurrence count, for ranked listings.
type Count struct {
	Key string
	N   int
}

// RankCounts orders a count map by descending count. Ties are broken by key
// so that output is deterministic.
func RankCounts(counts map[string]int) []Count {
	ranked := make([]Count, 0, len(counts))
	for key, n := range counts {
		ranked = append(ranked, Count{Key: key, N: n})
	}

	slices.SortFunc(ranked, func(a, b Count) int {
		if a.N != b.N {
			return b.N - a.N
		}

		if a.Key < b.Key {
			return -1
		} else if a.Key > b.Key {
			return 1
		}

		return 0
	})

	return ranked
}

// topCounts keeps only the n highest counts from the map.
func topCounts(counts map[string]int, n int) map[string]int {
	if len(counts) <= n {
		return counts
	}

	ranked := RankCounts(counts)

	top := make(map[string]int, n)
	for _, c := range ranked[:n] {
		top[c.Key] = c.N
	}

	return top
}

// Limit truncates a ranked listing for display.
func Limit(ranked []Count, n int) []Count {
	if n > 0 && n < len(ranked) {
		return ranked[:n]
	}

	return ranked
}
