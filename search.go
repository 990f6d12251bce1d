package pointset

import (
	"cmp"
	"slices"
)

// SearchResult is the outcome of a binary search over a sorted sequence.
//
// If Exact is true, Index is the position of an element whose key equals the
// target. Among several equal keys, which one is found is unspecified.
// Otherwise, Index is the position at which the target would have to be
// inserted to keep the sequence sorted, 0 ≤ Index ≤ len(s).
type SearchResult struct {
	Index int
	Exact bool
}

// SearchFunc searches s, which must be sorted ascending by key, for target.
// Only the key of each element takes part in the comparison. s is never
// modified.
func SearchFunc[E any, K cmp.Ordered](s []E, target K, key func(E) K) SearchResult {
	i, found := slices.BinarySearchFunc(s, target, func(el E, target K) int {
		return cmp.Compare(key(el), target)
	})
	return SearchResult{Index: i, Exact: found}
}

func pointX(pt Point) float64 { return pt.X }

// LocateX searches points, which must be sorted ascending by x, for x. The
// y coordinates are ignored.
func LocateX(points []Point, x float64) SearchResult {
	return SearchFunc(points, x, pointX)
}
