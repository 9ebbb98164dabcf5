package digits_test

import (
	"math/big"
	"testing"

	"github.com/amykhsub/leetcode/digits"
)

// BenchmarkDecomposeRecompose round-trips an 18-digit value.
func BenchmarkDecomposeRecompose(b *testing.B) {
	const v = int64(987654321987654321)
	for i := 0; i < b.N; i++ {
		ds, _ := digits.Decompose(v, 10)
		_, _ = digits.Recompose[int64](ds, 10, digits.LSDFirst)
	}
}

// BenchmarkCountSymmetric scans the full 1..10^4 range.
func BenchmarkCountSymmetric(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = digits.CountSymmetric(1, 10_000)
	}
}

// BenchmarkMirrorPalindrome mirrors a 9-digit half.
func BenchmarkMirrorPalindrome(b *testing.B) {
	half := big.NewInt(123456789)
	for i := 0; i < b.N; i++ {
		_, _ = digits.MirrorPalindrome(half, 10, true)
	}
}
