// Package fenwick provides a Fenwick tree (Binary Indexed Tree) over the
// bounded integer range [0, size).
//
// What:
//
//   - Tree[T] keeps a mutable multiset (or weighted histogram) over [0, size)
//     and answers prefix aggregates in logarithmic time.
//   - Positions are 0-based externally and 1-based internally: position i is
//     stored at node i+1, and node k covers the range whose length is the
//     lowest set bit of k.
//   - Add walks upward by adding the lowest set bit; PrefixSum walks downward
//     by subtracting it.
//
// Why:
//
//   - Counting ordering violations in one pass: query how many already-seen
//     elements satisfy a relation, then insert the current element
//     (CountInversions, CountGoodTriplets).
//   - Running rank and order statistics over small value ranges.
//
// Complexity:
//
//   - New:                O(size) time and memory.
//   - Add, Increment:     O(log size).
//   - PrefixSum, RangeSum: O(log size).
//
// Preconditions:
//
//	Add and Increment require 0 ≤ i < size and are not validated.
//	PrefixSum accepts any i: i < 0 yields 0 and i ≥ size is clamped.
//
// Errors:
//
//   - ErrInvalidSize:    New called with size < 0.
//   - ErrLengthMismatch: CountGoodTriplets got inputs of different lengths.
//   - ErrNotPermutation: CountGoodTriplets got a non-permutation of 0..n-1.
package fenwick
