package digits

import "golang.org/x/exp/constraints"

// IsPalindrome reports whether v reads the same in both directions in the
// given radix. Negative values and radix < 2 are never palindromes.
func IsPalindrome[T constraints.Integer](v T, radix int) bool {
	ds, err := Decompose(v, radix)
	if err != nil {
		return false
	}
	for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
		if ds[i] != ds[j] {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether v has an even number of decimal digits and
// the digit sum of its first half equals that of its second half.
func IsSymmetric[T constraints.Integer](v T) bool {
	ds, err := Decompose(v, 10)
	if err != nil || len(ds)%2 != 0 {
		return false
	}
	half := len(ds) / 2
	balance := 0
	for i := 0; i < half; i++ {
		balance += ds[i] - ds[len(ds)-1-i]
	}

	return balance == 0
}

// CountSymmetric counts symmetric integers in [low, high].
// Whole odd-length decades are skipped without being inspected.
// high must be below 10^18.
func CountSymmetric(low, high int) int {
	if low < 1 {
		low = 1
	}
	count := 0
	for v := low; v <= high; {
		n := Len(v, 10)
		if n%2 != 0 {
			// jump to the first value with n+1 digits
			v = pow10(n)
			continue
		}
		if IsSymmetric(v) {
			count++
		}
		v++
	}

	return count
}

// pow10 returns 10^n for n small enough to fit an int.
func pow10(n int) int {
	p := 1
	for ; n > 0; n-- {
		p *= 10
	}

	return p
}
