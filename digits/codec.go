package digits

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Decompose returns the radix digits of v, least significant first.
// Decompose(0, r) is [0].
//
// Errors:
//   - ErrRadix if radix < 2.
//   - ErrNegative if v < 0.
func Decompose[T constraints.Integer](v T, radix int) ([]int, error) {
	if radix < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrRadix, radix)
	}
	if v < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegative, v)
	}

	return decompose(uint64(v), uint64(radix)), nil
}

func decompose(u, r uint64) []int {
	if u == 0 {
		return []int{0}
	}
	ds := make([]int, 0, 20)
	for u > 0 {
		ds = append(ds, int(u%r))
		u /= r
	}

	return ds
}

// Recompose folds ds into an integer, reading ds in the given order.
//
// Errors:
//   - ErrRadix if radix < 2.
//   - ErrDigit if a digit lies outside [0, radix).
//   - ErrOverflow if the value does not fit T.
func Recompose[T constraints.Integer](ds []int, radix int, order Order) (T, error) {
	var zero T
	if radix < 2 {
		return zero, fmt.Errorf("%w: got %d", ErrRadix, radix)
	}

	var acc uint64
	r := uint64(radix)
	for k := range ds {
		d := ds[k]
		if order == LSDFirst {
			d = ds[len(ds)-1-k]
		}
		if d < 0 || d >= radix {
			return zero, fmt.Errorf("%w: digit %d, radix %d", ErrDigit, d, radix)
		}
		hi, lo := bits.Mul64(acc, r)
		sum, carry := bits.Add64(lo, uint64(d), 0)
		if hi != 0 || carry != 0 {
			return zero, fmt.Errorf("%w: more than 64 bits", ErrOverflow)
		}
		acc = sum
	}

	// round-trip through T catches both truncation and sign flips
	t := T(acc)
	if t < 0 || uint64(t) != acc {
		return zero, fmt.Errorf("%w: %d", ErrOverflow, acc)
	}

	return t, nil
}

// Len returns the number of radix digits of v (1 for zero). Negative v and
// radix < 2 yield 0.
func Len[T constraints.Integer](v T, radix int) int {
	if radix < 2 || v < 0 {
		return 0
	}
	n := 1
	for u, r := uint64(v), uint64(radix); u >= r; u /= r {
		n++
	}

	return n
}

// Reverse returns a reversed copy of ds, converting between LSDFirst and
// MSDFirst.
func Reverse(ds []int) []int {
	out := make([]int, len(ds))
	for i, d := range ds {
		out[len(ds)-1-i] = d
	}

	return out
}
