package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/amykhsub/leetcode/dsu"
)

// benchmarkUnions runs n random unions followed by n finds per iteration.
func benchmarkUnions(b *testing.B, n int, p dsu.Policy) {
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}

	b.ResetTimer() // exclude pair generation
	for i := 0; i < b.N; i++ {
		d, _ := dsu.New(n, dsu.WithPolicy(p))
		for _, pr := range pairs {
			d.Union(pr[0], pr[1])
		}
		for x := 0; x < n; x++ {
			_ = d.Find(x)
		}
	}
}

// BenchmarkDSU_BySize10k measures union-by-size on 10k elements.
func BenchmarkDSU_BySize10k(b *testing.B) { benchmarkUnions(b, 10_000, dsu.BySize) }

// BenchmarkDSU_ByValue10k measures union-by-value on 10k elements.
func BenchmarkDSU_ByValue10k(b *testing.B) { benchmarkUnions(b, 10_000, dsu.ByValue) }
