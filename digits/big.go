package digits

import (
	"fmt"
	"math/big"
)

// DecomposeBig is Decompose for arbitrary-precision values.
//
// Errors:
//   - ErrRadix if radix < 2.
//   - ErrNegative if v < 0.
func DecomposeBig(v *big.Int, radix int) ([]int, error) {
	if radix < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrRadix, radix)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: got %s", ErrNegative, v)
	}
	if v.Sign() == 0 {
		return []int{0}, nil
	}

	r := big.NewInt(int64(radix))
	u := new(big.Int).Set(v)
	d := new(big.Int)
	var ds []int
	for u.Sign() > 0 {
		u.QuoRem(u, r, d)
		ds = append(ds, int(d.Int64()))
	}

	return ds, nil
}

// RecomposeBig is Recompose without an upper bound.
//
// Errors:
//   - ErrRadix if radix < 2.
//   - ErrDigit if a digit lies outside [0, radix).
func RecomposeBig(ds []int, radix int, order Order) (*big.Int, error) {
	if radix < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrRadix, radix)
	}

	r := big.NewInt(int64(radix))
	acc := new(big.Int)
	for k := range ds {
		d := ds[k]
		if order == LSDFirst {
			d = ds[len(ds)-1-k]
		}
		if d < 0 || d >= radix {
			return nil, fmt.Errorf("%w: digit %d, radix %d", ErrDigit, d, radix)
		}
		acc.Mul(acc, r)
		acc.Add(acc, big.NewInt(int64(d)))
	}

	return acc, nil
}

// MirrorPalindrome builds the palindrome whose leading half is half.
// With odd set, the last digit of half is the shared centre:
// half 123 gives 12321 (odd) or 123321 (even).
//
// Errors:
//   - ErrRadix if radix < 2.
//   - ErrNegative if half < 0.
func MirrorPalindrome(half *big.Int, radix int, odd bool) (*big.Int, error) {
	ds, err := DecomposeBig(half, radix)
	if err != nil {
		return nil, err
	}
	if odd {
		ds = ds[1:]
	}

	r := big.NewInt(int64(radix))
	out := new(big.Int).Set(half)
	// LSD-first digits of half are exactly the mirrored tail, in order
	for _, d := range ds {
		out.Mul(out, r)
		out.Add(out, big.NewInt(int64(d)))
	}

	return out, nil
}

// ModPow returns base^exp mod mod, in [0, mod). Intermediate products are
// carried in big.Int, so any int64 inputs are safe.
//
// Errors:
//   - ErrModulus if mod ≤ 0.
//   - ErrNegative if exp < 0.
func ModPow(base, exp, mod int64) (int64, error) {
	if mod <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrModulus, mod)
	}
	if exp < 0 {
		return 0, fmt.Errorf("%w: exponent %d", ErrNegative, exp)
	}

	m := big.NewInt(mod)
	b := new(big.Int).Mod(big.NewInt(base), m)
	res := new(big.Int).Exp(b, big.NewInt(exp), m)

	return Narrow(res)
}

// Narrow converts v to int64.
//
// Errors:
//   - ErrOverflow if v lies outside the int64 range.
func Narrow(v *big.Int) (int64, error) {
	if !v.IsInt64() {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, v)
	}

	return v.Int64(), nil
}
