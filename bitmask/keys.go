package bitmask

import "fmt"

// Letters returns the set of letters present in s, 'a' as element 0.
//
// Errors:
//   - ErrAlphabet if s holds a byte outside 'a'..'z'.
func Letters(s string) (Set, error) {
	var set Set
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("%w: position %d", ErrAlphabet, i)
		}
		set.Add(int(c - 'a'))
	}

	return set, nil
}

// PairKey maps the two-letter word ab to a dense index in [0, 676).
//
// Errors:
//   - ErrAlphabet if a or b is outside 'a'..'z'.
func PairKey(a, b byte) (int, error) {
	if a < 'a' || a > 'z' || b < 'a' || b > 'z' {
		return 0, fmt.Errorf("%w: %q%q", ErrAlphabet, a, b)
	}

	return int(a-'a')*alphabetSize + int(b-'a'), nil
}
