package dsu_test

import (
	"testing"

	"github.com/amykhsub/leetcode/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClasses_Ordering verifies members ascend and classes are ordered by
// their smallest member regardless of policy.
func TestClasses_Ordering(t *testing.T) {
	for _, p := range []dsu.Policy{dsu.BySize, dsu.ByValue} {
		d, err := dsu.New(7, dsu.WithPolicy(p))
		require.NoError(t, err)
		d.Union(6, 2)
		d.Union(5, 1)
		d.Union(2, 4)

		want := [][]int{{0}, {1, 5}, {2, 4, 6}, {3}}
		assert.Equal(t, want, d.Classes(), "policy %v", p)
	}
}

// TestCountComponents covers typical graphs and validation.
func TestCountComponents(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][2]int
		want  int
	}{
		{"two components", 5, [][2]int{{0, 1}, {1, 2}, {3, 4}}, 2},
		{"single component", 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, 1},
		{"no edges", 3, nil, 3},
		{"empty graph", 0, nil, 0},
		{"self loop and duplicate", 3, [][2]int{{1, 1}, {0, 2}, {2, 0}}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dsu.CountComponents(tc.n, tc.edges)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := dsu.CountComponents(2, [][2]int{{0, 2}})
	assert.ErrorIs(t, err, dsu.ErrEdge)
	_, err = dsu.CountComponents(-1, nil)
	assert.ErrorIs(t, err, dsu.ErrInvalidSize)
}

// TestSmallestEquivalent covers the character-equivalence rewrite.
func TestSmallestEquivalent(t *testing.T) {
	tests := []struct {
		s1, s2, base, want string
	}{
		{"parker", "morris", "parser", "makkek"},
		{"hello", "world", "hold", "hdld"},
		{"leetcode", "programs", "sourcecode", "aauaaaaada"},
		{"", "", "abc", "abc"},
	}
	for _, tc := range tests {
		got, err := dsu.SmallestEquivalent(tc.s1, tc.s2, tc.base)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s/%s/%s", tc.s1, tc.s2, tc.base)
	}

	_, err := dsu.SmallestEquivalent("ab", "a", "x")
	assert.ErrorIs(t, err, dsu.ErrLengthMismatch)
	_, err = dsu.SmallestEquivalent("aB", "ab", "x")
	assert.ErrorIs(t, err, dsu.ErrAlphabet)
	_, err = dsu.SmallestEquivalent("ab", "ba", "a1")
	assert.ErrorIs(t, err, dsu.ErrAlphabet)
}
