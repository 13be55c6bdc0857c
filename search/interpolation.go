package search

import "golang.org/x/exp/constraints"

// Number constrains interpolation search to element types whose differences
// carry meaningful magnitude. It is deliberately narrower than
// constraints.Ordered: strings order fine but cannot be interpolated.
type Number interface {
	constraints.Integer | constraints.Float
}

// InterpolationSearch returns an index i with s[i] == target, or NotFound.
//
// Instead of probing the midpoint it estimates the target's position by
// linear interpolation between the values at the range endpoints, which
// takes O(log log n) expected probes when the values are roughly uniformly
// distributed across the slice. On skewed data it still terminates,
// degrading toward linear probing. Behavior with NaN or infinite elements
// is unspecified.
func InterpolationSearch[E Number](s []E, target E) int {
	low := 0
	high := len(s) - 1

	for low <= high && s[low] <= target && target <= s[high] {
		if s[low] == s[high] {
			// Uniform value range; also keeps the division below safe.
			if s[low] == target {
				return low
			}
			return NotFound
		}

		// Estimate in float64 so (target-s[low])*(high-low) cannot
		// overflow the element type.
		est := (float64(target) - float64(s[low])) * float64(high-low) / (float64(s[high]) - float64(s[low]))
		pos := low + int(est)
		if pos < low {
			pos = low
		} else if pos > high {
			pos = high
		}

		v := s[pos]
		if v == target {
			return pos
		}
		if v < target {
			low = pos + 1
		} else {
			high = pos - 1
		}
	}
	return NotFound
}
