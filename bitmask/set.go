package bitmask

import (
	"fmt"
	"math/bits"
)

// Set is a subset of [0, 64). The zero value is the empty set.
type Set uint64

// Of returns the set holding elems.
//
// Errors:
//   - ErrRange if an element lies outside [0, 64).
func Of(elems ...int) (Set, error) {
	var s Set
	for _, e := range elems {
		if e < 0 || e >= Width {
			return 0, fmt.Errorf("%w: got %d", ErrRange, e)
		}
		s.Add(e)
	}

	return s, nil
}

// bit returns the single-bit mask of i, zero outside [0, 64).
func bit(i int) Set {
	return 1 << uint(i) // shifts past 63 give 0, negatives wrap past 63
}

// Add inserts i.
func (s *Set) Add(i int) { *s |= bit(i) }

// Remove deletes i.
func (s *Set) Remove(i int) { *s &^= bit(i) }

// Has reports whether i is a member.
func (s Set) Has(i int) bool { return s&bit(i) != 0 }

// Lowest returns the smallest member, or false for the empty set.
func (s Set) Lowest() (int, bool) {
	if s == 0 {
		return 0, false
	}
	low := s & -s

	return bits.TrailingZeros64(uint64(low)), true
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set { return s | o }

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set { return s & o }

// IsSubset reports whether every member of s is in o.
func (s Set) IsSubset(o Set) bool { return s&^o == 0 }

// Len returns the number of members.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// Empty reports whether s has no members.
func (s Set) Empty() bool { return s == 0 }

// Members returns the members in ascending order.
func (s Set) Members() []int {
	out := make([]int, 0, s.Len())
	for m := s; m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(uint64(m)))
	}

	return out
}

// String renders the members, e.g. {2 5 9}.
func (s Set) String() string {
	return fmt.Sprintf("{%s}", trimBrackets(fmt.Sprint(s.Members())))
}

func trimBrackets(v string) string { return v[1 : len(v)-1] }
