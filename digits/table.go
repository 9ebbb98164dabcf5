package digits

import (
	"fmt"
	"math/big"
)

// FactorialTable holds 0!, 1!, …, n! as big integers. It is built once by
// the caller and passed explicitly to the functions that need it; nothing
// in this package caches it.
type FactorialTable struct {
	f []*big.Int
}

// NewFactorialTable returns the factorials 0! through n!.
//
// Errors:
//   - ErrNegative if n < 0.
func NewFactorialTable(n int) (*FactorialTable, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: table size %d", ErrNegative, n)
	}
	f := make([]*big.Int, n+1)
	f[0] = big.NewInt(1)
	for i := 1; i <= n; i++ {
		f[i] = new(big.Int).Mul(f[i-1], big.NewInt(int64(i)))
	}

	return &FactorialTable{f: f}, nil
}

// Len returns the number of entries (n+1).
func (t *FactorialTable) Len() int { return len(t.f) }

// Get returns a copy of i!. i must be in [0, Len()).
func (t *FactorialTable) Get(i int) *big.Int { return new(big.Int).Set(t.f[i]) }

// Arrangements returns how many distinct decimal numbers use exactly the
// digit multiset counts (counts[d] copies of digit d) without a leading
// zero. A lone 0 counts as a leading zero, so it is not an arrangement.
//
//	(n - counts[0]) · (n-1)! / Π counts[d]!,  n = Σ counts[d]
//
// Errors:
//   - ErrNegative if any count is negative.
//   - ErrTableTooSmall if table does not reach n!.
func Arrangements(counts [10]int, table *FactorialTable) (*big.Int, error) {
	n := 0
	for d, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("%w: count of digit %d is %d", ErrNegative, d, c)
		}
		n += c
	}
	if n == 0 || n == counts[0] {
		return new(big.Int), nil
	}
	if table == nil || table.Len() <= n {
		return nil, fmt.Errorf("%w: need %d!", ErrTableTooSmall, n)
	}

	out := new(big.Int).Mul(big.NewInt(int64(n-counts[0])), table.f[n-1])
	for _, c := range counts {
		out.Quo(out, table.f[c])
	}

	return out, nil
}
