package window_test

import (
	"fmt"

	"github.com/amykhsub/leetcode/window"
)

// ExampleLongestOnes finds the longest run with at most two zeros.
func ExampleLongestOnes() {
	fmt.Println(window.LongestOnes([]int{1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 0}, 2))
	// Output: 6
}

// ExampleCountAtLeast counts subarrays where 3 appears at least twice,
// using a custom counter aggregate.
func ExampleCountAtLeast() {
	nums := []int{1, 3, 2, 3, 3}
	threes := window.CountOf(func(x int) bool { return x == 3 })
	n := window.CountAtLeast(nums, threes, func(*window.Window[int]) bool { return threes.N >= 2 })
	fmt.Println(n)
	// Output: 6
}

// ExampleWindow drives a window by hand, keeping its sum at most 5.
func ExampleWindow() {
	sum := &window.Sum[int]{}
	w := window.New([]int{2, 3, 1, 4}, sum)
	for w.Advance() {
		w.ShrinkWhile(func() bool { return sum.Total > 5 })
		fmt.Printf("[%d,%d) sum=%d\n", w.Left(), w.Right(), sum.Total)
	}
	// Output:
	// [0,1) sum=2
	// [0,2) sum=5
	// [1,3) sum=4
	// [2,4) sum=5
}
