package bitmask

import (
	"math/big"
	"math/bits"
)

// Wide is a set of non-negative integers with no upper bound on the
// universe. Bit i of the backing integer is set iff i is a member.
type Wide struct {
	m *big.Int
}

// NewWide returns an empty Wide set.
func NewWide() *Wide {
	return &Wide{m: new(big.Int)}
}

// Add inserts i. Negative i is ignored.
func (w *Wide) Add(i int) {
	if i >= 0 {
		w.m.SetBit(w.m, i, 1)
	}
}

// Remove deletes i.
func (w *Wide) Remove(i int) {
	if i >= 0 {
		w.m.SetBit(w.m, i, 0)
	}
}

// Has reports whether i is a member.
func (w *Wide) Has(i int) bool {
	return i >= 0 && w.m.Bit(i) == 1
}

// Lowest returns the smallest member, or false for the empty set.
func (w *Wide) Lowest() (int, bool) {
	if w.m.Sign() == 0 {
		return 0, false
	}

	return int(w.m.TrailingZeroBits()), true
}

// Union returns a new set holding the members of w and o.
func (w *Wide) Union(o *Wide) *Wide {
	return &Wide{m: new(big.Int).Or(w.m, o.m)}
}

// Len returns the number of members.
func (w *Wide) Len() int {
	n := 0
	for _, word := range w.m.Bits() {
		n += bits.OnesCount(uint(word))
	}

	return n
}

// FirstRepeatFromEnd scans nums right to left and returns the index of the
// first value already seen further right, or -1 if all values are distinct.
// Values must be non-negative.
func FirstRepeatFromEnd(nums []int) int {
	seen := NewWide()
	for i := len(nums) - 1; i >= 0; i-- {
		if seen.Has(nums[i]) {
			return i
		}
		seen.Add(nums[i])
	}

	return -1
}
