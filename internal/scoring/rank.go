package scoring

import "sort"

// DefaultTopN is how many recommendations a student receives.
const DefaultTopN = 10

// Rank stable-sorts items by descending score and keeps the first n.
// Items with equal scores keep their input order. The input is not modified.
func Rank[T any](items []T, n int, score func(T) float64) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return score(out[i]) > score(out[j]) })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
