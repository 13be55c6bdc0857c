// Package search provides classic search algorithms over sorted slices:
// binary search, bounded binary search, exponential search, and
// interpolation search.
//
// Every function takes a slice sorted in non-decreasing order and a target
// value, and returns the index of an element equal to the target, or
// NotFound. Sortedness is a caller precondition: it is not verified, and
// results on unsorted input are unspecified (but never a panic). When the
// slice contains duplicates of the target, the returned index is whichever
// one the probing order lands on, not necessarily the first or last
// occurrence.
//
// All functions are pure and safe for concurrent use on the same slice.
package search

import "golang.org/x/exp/constraints"

// NotFound is returned when the target is not present in the searched range.
const NotFound = -1

// BinarySearch returns an index i with s[i] == target, or NotFound.
// It searches the whole slice in O(log n) probes.
func BinarySearch[E constraints.Ordered](s []E, target E) int {
	return BoundedBinarySearch(s, target, 0, len(s)-1)
}

// BoundedBinarySearch returns an index i in the inclusive range [low, high]
// with s[i] == target, or NotFound.
//
// low and high are clamped to the valid index range of s, so out-of-slice
// bounds never panic. A range that is empty after clamping (including any
// low > high) returns NotFound.
func BoundedBinarySearch[E constraints.Ordered](s []E, target E, low, high int) int {
	if low < 0 {
		low = 0
	}
	if high > len(s)-1 {
		high = len(s) - 1
	}

	for low <= high {
		// Overflow-safe midpoint; never (low+high)/2.
		mid := low + ((high - low) >> 1)
		v := s[mid]
		if v == target {
			return mid
		}
		if v < target {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	return NotFound
}
