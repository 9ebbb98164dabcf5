package fenwick_test

import (
	"fmt"

	"github.com/amykhsub/leetcode/fenwick"
)

// ExampleTree counts occurrences per position and answers prefix counts.
func ExampleTree() {
	tr, err := fenwick.New[int](6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range []int{1, 3, 3, 5} {
		tr.Increment(v)
	}
	fmt.Println(tr.PrefixCount(-1), tr.PrefixCount(2), tr.PrefixCount(3), tr.Total())
	// Output: 0 1 3 4
}

// ExampleCountGoodTriplets counts triples ordered the same way in both permutations.
func ExampleCountGoodTriplets() {
	n, _ := fenwick.CountGoodTriplets([]int{4, 0, 1, 3, 2}, []int{4, 1, 0, 2, 3})
	fmt.Println(n)
	// Output: 4
}
