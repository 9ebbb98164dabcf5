package dsu

import "fmt"

// alphabetSize is the number of lowercase latin letters.
const alphabetSize = 26

// Classes returns every class as an ascending slice of members.
// Classes are ordered by their smallest member, which makes the output
// independent of the union policy and of the order unions were applied in.
//
// Complexity: O(N·α(N)).
func (d *DSU) Classes() [][]int {
	byRoot := make(map[int][]int, d.count)
	heads := make([]int, 0, d.count)
	for x := range d.parent {
		r := d.Find(x)
		if _, ok := byRoot[r]; !ok {
			// x ascends, so heads come out ordered by smallest member
			heads = append(heads, r)
		}
		byRoot[r] = append(byRoot[r], x)
	}

	out := make([][]int, 0, len(heads))
	for _, r := range heads {
		out = append(out, byRoot[r])
	}

	return out
}

// CountComponents returns the number of connected components of an
// undirected graph on vertices [0, n) with the given edges.
//
// Errors:
//   - ErrInvalidSize if n < 0.
//   - ErrEdge if any endpoint lies outside [0, n).
//
// Complexity: O(n + E·α(n)).
func CountComponents(n int, edges [][2]int) (int, error) {
	d, err := New(n, WithPolicy(BySize))
	if err != nil {
		return 0, err
	}
	for i, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return 0, fmt.Errorf("%w: edge %d = %v, n = %d", ErrEdge, i, e, n)
		}
		d.Union(e[0], e[1])
	}

	return d.Count(), nil
}

// SmallestEquivalent treats s1[i] and s2[i] as equivalent letters and
// rewrites base with the smallest letter of each byte's class.
// Equivalence is reflexive, symmetric and transitive.
//
// Errors:
//   - ErrLengthMismatch if len(s1) != len(s2).
//   - ErrAlphabet if any input byte is outside 'a'..'z'.
//
// Complexity: O(len(s1) + len(base)).
func SmallestEquivalent(s1, s2, base string) (string, error) {
	if len(s1) != len(s2) {
		return "", fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(s1), len(s2))
	}
	// ByValue keeps the smallest letter as representative.
	d, err := New(alphabetSize, WithPolicy(ByValue))
	if err != nil {
		return "", err
	}
	for i := 0; i < len(s1); i++ {
		a, b := s1[i], s2[i]
		if !isLower(a) || !isLower(b) {
			return "", fmt.Errorf("%w: position %d", ErrAlphabet, i)
		}
		d.Union(int(a-'a'), int(b-'a'))
	}

	out := make([]byte, len(base))
	for i := 0; i < len(base); i++ {
		c := base[i]
		if !isLower(c) {
			return "", fmt.Errorf("%w: base position %d", ErrAlphabet, i)
		}
		out[i] = byte(d.Find(int(c-'a'))) + 'a'
	}

	return string(out), nil
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
