package window

import (
	"fmt"
	"math/bits"
	"slices"
)

// LongestOnes returns the longest run of a binary slice containing at most
// k zeros (equivalently: ones after flipping up to k zeros).
func LongestOnes(nums []int, k int) int {
	zeros := CountOf(func(x int) bool { return x == 0 })
	return Longest(nums, zeros, func(*Window[int]) bool { return zeros.N <= k })
}

// CountMaxAtLeastK returns the number of subarrays in which the maximum
// element of the whole slice occurs at least k times.
func CountMaxAtLeastK(nums []int, k int) int64 {
	if len(nums) == 0 {
		return 0
	}
	maximum := slices.Max(nums)
	hits := CountOf(func(x int) bool { return x == maximum })

	return CountAtLeast(nums, hits, func(*Window[int]) bool { return hits.N >= k })
}

// CountComplete returns the number of subarrays containing every distinct
// value of nums.
func CountComplete(nums []int) int64 {
	all := NewFrequency[int]()
	for _, x := range nums {
		all.Include(x)
	}
	want := all.Distinct()

	freq := NewFrequency[int]()
	return CountAtLeast(nums, freq, func(*Window[int]) bool { return freq.Distinct() == want })
}

// CountGoodPairs returns the number of subarrays holding at least k pairs
// of equal values.
func CountGoodPairs(nums []int, k int64) int64 {
	freq := NewFrequency[int]()
	return CountAtLeast(nums, freq, func(*Window[int]) bool { return freq.Pairs() >= k })
}

// CountScoreBelow returns the number of subarrays whose score
// (sum × length) is strictly less than k. The sum is carried in 128 bits
// and the score compared exactly, so large elements never wrap around.
// k ≤ 0 admits no subarray.
//
// Errors:
//   - ErrNegative if an element is negative.
func CountScoreBelow(nums []int64, k int64) (int64, error) {
	for i, x := range nums {
		if x < 0 {
			return 0, fmt.Errorf("%w: nums[%d] = %d", ErrNegative, i, x)
		}
	}
	if k <= 0 {
		return 0, nil
	}

	sum := &wideSum{}
	return CountAtMost(nums, sum, func(w *Window[int64]) bool {
		return sum.scoreBelow(w.Len(), uint64(k))
	}), nil
}

// wideSum is a running sum of non-negative int64 values as a 128-bit
// unsigned integer hi:lo.
type wideSum struct {
	hi, lo uint64
}

// Include implements Aggregate.
func (s *wideSum) Include(x int64) {
	var carry uint64
	s.lo, carry = bits.Add64(s.lo, uint64(x), 0)
	s.hi += carry
}

// Exclude implements Aggregate.
func (s *wideSum) Exclude(x int64) {
	var borrow uint64
	s.lo, borrow = bits.Sub64(s.lo, uint64(x), 0)
	s.hi -= borrow
}

// scoreBelow reports whether sum × n < k.
func (s *wideSum) scoreBelow(n int, k uint64) bool {
	if n == 0 {
		return true
	}
	if s.hi != 0 {
		// sum ≥ 2^64 > k
		return false
	}
	hi, lo := bits.Mul64(s.lo, uint64(n))

	return hi == 0 && lo < k
}
