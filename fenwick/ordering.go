package fenwick

import (
	"cmp"
	"fmt"
	"slices"
)

// CountGoodTriplets counts index triples whose values appear in the same
// relative order in both a and b. Both inputs must be permutations of 0..n-1.
//
// Steps:
//  1. pos[v] = index of v in b.
//  2. Walk a left to right. For the current value at b-position p:
//     left  = already-walked values placed before p in b (one prefix query);
//     right = values after p in b that are not yet walked.
//  3. Every (left, right) pair forms a triple with the current value.
//
// Complexity: O(n log n) time, O(n) memory.
func CountGoodTriplets(a, b []int) (int64, error) {
	n := len(a)
	if len(b) != n {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(b))
	}
	pos, err := positions(b)
	if err != nil {
		return 0, err
	}
	if _, err = positions(a); err != nil {
		return 0, err
	}

	seen := newTree[int64](n)
	var count int64
	for i, v := range a {
		p := pos[v]
		left := seen.PrefixCount(p - 1)
		right := int64(n-1-p) - (int64(i) - left)
		count += left * right
		seen.Increment(p)
	}

	return count, nil
}

// positions inverts a permutation of 0..n-1.
func positions(perm []int) ([]int, error) {
	pos := make([]int, len(perm))
	filled := make([]bool, len(perm))
	for i, v := range perm {
		if v < 0 || v >= len(perm) || filled[v] {
			return nil, fmt.Errorf("%w: value %d at index %d", ErrNotPermutation, v, i)
		}
		filled[v] = true
		pos[v] = i
	}

	return pos, nil
}

// CountInversions returns the number of pairs i < j with xs[i] > xs[j].
// Values are rank-compressed first, so any ordered type is accepted.
//
// Complexity: O(n log n) time, O(n) memory.
func CountInversions[T cmp.Ordered](xs []T) int64 {
	ranks := slices.Clone(xs)
	slices.Sort(ranks)
	ranks = slices.Compact(ranks)

	seen := newTree[int64](len(ranks))
	var inv int64
	for i, x := range xs {
		r, _ := slices.BinarySearch(ranks, x)
		// earlier elements strictly greater than x
		inv += int64(i) - seen.PrefixCount(r)
		seen.Increment(r)
	}

	return inv
}
