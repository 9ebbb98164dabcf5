package digits_test

import (
	"strconv"
	"testing"

	"github.com/amykhsub/leetcode/digits"
	"github.com/stretchr/testify/assert"
)

// TestIsPalindrome covers several radices and invalid input.
func TestIsPalindrome(t *testing.T) {
	assert.True(t, digits.IsPalindrome(0, 10))
	assert.True(t, digits.IsPalindrome(7, 10))
	assert.True(t, digits.IsPalindrome(12321, 10))
	assert.True(t, digits.IsPalindrome(1221, 10))
	assert.False(t, digits.IsPalindrome(10, 10))
	assert.True(t, digits.IsPalindrome(uint8(9), 2), "1001")
	assert.False(t, digits.IsPalindrome(-121, 10))
	assert.False(t, digits.IsPalindrome(121, 1))
}

// TestIsSymmetric covers even and odd lengths.
func TestIsSymmetric(t *testing.T) {
	assert.True(t, digits.IsSymmetric(11))
	assert.True(t, digits.IsSymmetric(1230))
	assert.True(t, digits.IsSymmetric(2002))
	assert.False(t, digits.IsSymmetric(1231))
	assert.False(t, digits.IsSymmetric(121), "odd digit count")
	assert.False(t, digits.IsSymmetric(5))
}

// TestCountSymmetric compares the skipping scan with a string-based count.
func TestCountSymmetric(t *testing.T) {
	assert.Equal(t, 9, digits.CountSymmetric(1, 100))
	assert.Equal(t, 4, digits.CountSymmetric(1200, 1230))
	assert.Equal(t, 0, digits.CountSymmetric(100, 999))
	assert.Equal(t, 0, digits.CountSymmetric(50, 10))

	brute := func(low, high int) int {
		c := 0
		for v := low; v <= high; v++ {
			s := strconv.Itoa(v)
			if len(s)%2 != 0 {
				continue
			}
			a, b := 0, 0
			for i := 0; i < len(s)/2; i++ {
				a += int(s[i] - '0')
				b += int(s[len(s)-1-i] - '0')
			}
			if a == b {
				c++
			}
		}
		return c
	}
	for _, rg := range [][2]int{{1, 10000}, {73, 4521}, {999, 1001}, {9, 12}} {
		assert.Equal(t, brute(rg[0], rg[1]), digits.CountSymmetric(rg[0], rg[1]), "range %v", rg)
	}
}
