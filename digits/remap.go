package digits

import (
	"fmt"
	"math"
)

// RemapMax returns the largest value reachable by choosing one digit and
// rewriting every occurrence of it as 9. The candidate is the most
// significant digit that is not already 9; it is tracked while the digits
// are being extracted, so no second scan is needed to find it.
//
// Errors:
//   - ErrNegative if v < 0.
//   - ErrOverflow if the rewritten value exceeds int64.
func RemapMax(v int64) (int64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNegative, v)
	}
	from := 9
	ds := make([]int, 0, 19)
	for u := v; ; {
		d := int(u % 10)
		if d < 9 {
			// the last one seen is the most significant
			from = d
		}
		ds = append(ds, d)
		u /= 10
		if u == 0 {
			break
		}
	}

	return rewrite(ds, from, 9)
}

// RemapMin returns the smallest value reachable by choosing one digit and
// rewriting every occurrence of it as another digit.
//
// With allowLeadingZero the leading digit becomes 0. Otherwise the result
// keeps no leading zero: the first digit greater than 1, scanning from the
// most significant end, becomes 1 if it is the leading digit and 0 if not.
//
// Errors:
//   - ErrNegative if v < 0.
func RemapMin(v int64, allowLeadingZero bool) (int64, error) {
	ds, err := Decompose(v, 10)
	if err != nil {
		return 0, err
	}
	last := len(ds) - 1

	if allowLeadingZero {
		return rewrite(ds, ds[last], 0)
	}
	for i := last; i >= 0; i-- {
		if ds[i] > 1 {
			to := 0
			if i == last {
				to = 1
			}
			return rewrite(ds, ds[i], to)
		}
	}

	return v, nil
}

// rewrite recomposes LSD-first decimal digits MSD-first, replacing from
// with to. At most 19 digits fit the uint64 accumulator.
func rewrite(ds []int, from, to int) (int64, error) {
	var acc uint64
	for i := len(ds) - 1; i >= 0; i-- {
		d := ds[i]
		if d == from {
			d = to
		}
		acc = acc*10 + uint64(d)
	}
	if acc > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d", ErrOverflow, acc)
	}

	return int64(acc), nil
}
