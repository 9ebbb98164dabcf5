package window_test

import (
	"math/rand"
	"testing"

	"github.com/amykhsub/leetcode/window"
)

// BenchmarkLongestOnes measures the at-most-k-zeros scan on 100k elements.
func BenchmarkLongestOnes(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	nums := randomInts(r, 100_000, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = window.LongestOnes(nums, 50)
	}
}

// BenchmarkCountComplete measures the frequency-map scan on 100k elements.
func BenchmarkCountComplete(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	nums := randomInts(r, 100_000, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = window.CountComplete(nums)
	}
}
