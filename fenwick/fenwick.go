package fenwick

import "fmt"

// Tree is a Fenwick tree over positions [0, size).
// tree[0] is unused; tree[k] holds the sum of the (k & -k) positions ending at k-1.
// A Tree is not safe for concurrent use.
type Tree[T Number] struct {
	tree []T
}

// New returns an all-zero Tree over [0, size).
//
// Errors:
//   - ErrInvalidSize if size < 0.
func New[T Number](size int) (*Tree[T], error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	return newTree[T](size), nil
}

// newTree allocates a Tree for a size already known to be non-negative.
func newTree[T Number](size int) *Tree[T] {
	return &Tree[T]{tree: make([]T, size+1)}
}

// Size returns the number of addressable positions.
func (t *Tree[T]) Size() int { return len(t.tree) - 1 }

// Add adds delta at position i.
func (t *Tree[T]) Add(i int, delta T) {
	for k := i + 1; k < len(t.tree); k += k & -k {
		t.tree[k] += delta
	}
}

// Increment records one more occurrence at position i.
func (t *Tree[T]) Increment(i int) { t.Add(i, 1) }

// PrefixSum returns the sum over positions ≤ i.
// i < 0 yields 0; i ≥ Size() is treated as Size()-1.
func (t *Tree[T]) PrefixSum(i int) T {
	var sum T
	if i < 0 {
		return sum
	}
	k := i + 1
	if k >= len(t.tree) {
		k = len(t.tree) - 1
	}
	for ; k > 0; k -= k & -k {
		sum += t.tree[k]
	}

	return sum
}

// PrefixCount is PrefixSum under its counting name, for trees fed only by
// Increment.
func (t *Tree[T]) PrefixCount(i int) T { return t.PrefixSum(i) }

// RangeSum returns the sum over positions in [l, r]; an empty range yields 0.
func (t *Tree[T]) RangeSum(l, r int) T {
	if r < l {
		var zero T
		return zero
	}

	return t.PrefixSum(r) - t.PrefixSum(l-1)
}

// Total returns the sum over every position.
func (t *Tree[T]) Total() T { return t.PrefixSum(t.Size() - 1) }

// Reset zeroes every position, keeping the allocation.
func (t *Tree[T]) Reset() { clear(t.tree) }
