package bsearch

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Midpoint returns floor((low+high)/2) for low ≤ high, computed on the
// unsigned difference so it cannot overflow T.
func Midpoint[T constraints.Integer](low, high T) T {
	return low + T((uint64(high)-uint64(low))/2)
}

// First returns the smallest x in [low, high] with feasible(x) true, for a
// predicate that is false on a prefix and true on the remaining suffix.
// If feasible is false everywhere below high, high is returned without
// being evaluated, so high doubles as the "none" sentinel.
// low > high returns low.
func First[T constraints.Integer](low, high T, feasible func(T) bool) T {
	for low < high {
		mid := Midpoint(low, high)
		if feasible(mid) {
			high = mid
		} else {
			low = mid + 1
		}
	}

	return low
}

// Last returns the largest x in [low, high] with feasible(x) true, for a
// predicate that is true on a prefix and false on the remaining suffix.
// If feasible is false everywhere above low, low is returned without being
// evaluated. low > high returns low.
func Last[T constraints.Integer](low, high T, feasible func(T) bool) T {
	for low < high {
		// ceiling midpoint: mid > low, so low = mid always makes progress
		mid := high - T((uint64(high)-uint64(low))/2)
		if feasible(mid) {
			low = mid
		} else {
			high = mid - 1
		}
	}

	return low
}

// Steps returns the maximum number of predicate evaluations First or Last
// perform on [low, high]: the bit length of high-low.
func Steps[T constraints.Integer](low, high T) int {
	if low >= high {
		return 0
	}

	return bits.Len64(uint64(high) - uint64(low))
}
