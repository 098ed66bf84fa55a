package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SortedKeys returns the keys of a map in ascending order so callers iterate
// deterministically.
func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}
