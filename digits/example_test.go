package digits_test

import (
	"fmt"

	"github.com/amykhsub/leetcode/digits"
)

// ExampleDecompose shows the least-significant-first order and folding back.
func ExampleDecompose() {
	ds, _ := digits.Decompose(1203, 10)
	fmt.Println(ds)

	v, _ := digits.Recompose[int]([]int{1, 2, 0, 3}, 10, digits.MSDFirst)
	fmt.Println(v)
	// Output:
	// [3 0 2 1]
	// 1203
}

// ExampleRemapMax maximises and minimises a value by rewriting one digit.
func ExampleRemapMax() {
	hi, err := digits.RemapMax(11891)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	lo, _ := digits.RemapMin(11891, true)
	fmt.Println(hi, lo)
	// Output: 99899 890
}

// ExampleCountSymmetric counts 4-digit values with balanced halves.
func ExampleCountSymmetric() {
	fmt.Println(digits.CountSymmetric(1200, 1230))
	// Output: 4
}

// ExampleModPow counts digit strings of length n whose even positions hold
// an even digit and odd positions a prime digit: 5^ceil(n/2) · 4^floor(n/2).
func ExampleModPow() {
	const mod = 1_000_000_007
	good := func(n int64) int64 {
		even, _ := digits.ModPow(5, (n+1)/2, mod)
		odd, _ := digits.ModPow(4, n/2, mod)
		return even * odd % mod
	}
	fmt.Println(good(1), good(4), good(50))
	// Output: 5 400 564908303
}

// ExampleArrangements counts numbers spelled by the digits 0, 1, 1, 2.
func ExampleArrangements() {
	tab, _ := digits.NewFactorialTable(4)
	n, _ := digits.Arrangements([10]int{1, 2, 1}, tab)
	fmt.Println(n)
	// Output: 9
}
