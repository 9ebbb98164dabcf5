package fenwick_test

import (
	"math/rand"
	"testing"

	"github.com/amykhsub/leetcode/fenwick"
)

// BenchmarkTree_IncrementQuery interleaves increments and prefix queries on 1<<16 positions.
func BenchmarkTree_IncrementQuery(b *testing.B) {
	const size = 1 << 16
	r := rand.New(rand.NewSource(42))
	idx := make([]int, 4096)
	for i := range idx {
		idx[i] = r.Intn(size)
	}
	tr, _ := fenwick.New[int64](size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := idx[i%len(idx)]
		tr.Increment(j)
		_ = tr.PrefixCount(j)
	}
}

// BenchmarkCountGoodTriplets measures the one-pass triplet count on n = 10k.
func BenchmarkCountGoodTriplets(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	a, c := r.Perm(10_000), r.Perm(10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fenwick.CountGoodTriplets(a, c)
	}
}
