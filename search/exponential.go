package search

import "golang.org/x/exp/constraints"

// ExponentialSearch returns an index i with s[i] == target, or NotFound.
//
// It doubles a probe bound until the element there reaches the target, then
// binary-searches the narrowed range. The cost is O(log i) probes where i is
// the position of the target, which beats BinarySearch when the target sits
// near the front of a very large slice.
func ExponentialSearch[E constraints.Ordered](s []E, target E) int {
	if len(s) == 0 {
		return NotFound
	}

	bound := 1
	for bound < len(s) && s[bound] < target {
		bound <<= 1
	}

	// The previous probe at bound/2 was below the target (or is index 0),
	// so the target can only live in [bound/2, min(bound, len(s)-1)].
	high := bound
	if high > len(s)-1 {
		high = len(s) - 1
	}
	return BoundedBinarySearch(s, target, bound>>1, high)
}
