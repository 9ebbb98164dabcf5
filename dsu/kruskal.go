package dsu

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Edge is an undirected weighted edge between vertices of [0, n).
type Edge struct {
	From, To int
	Weight   int64
}

// Kruskal computes a minimum spanning tree of the undirected graph on
// vertices [0, n) and returns its edges with the total weight.
//
// Steps:
//  1. Validate n and every endpoint; n == 0 has no tree, n == 1 has the
//     trivial empty one.
//  2. Drop self-loops, then stable-sort by weight so equal weights keep
//     input order.
//  3. Take each edge joining two different classes, accumulating the
//     weight with an overflow check, until n-1 edges are taken.
//  4. Fewer than n-1 edges means the graph was disconnected.
//
// Errors:
//   - ErrInvalidSize if n < 0.
//   - ErrEdge if an endpoint lies outside [0, n).
//   - ErrDisconnected if n == 0 or the graph is not connected.
//   - ErrWeightOverflow if the tree weight leaves the int64 range.
//
// Complexity: O(E log E + E·α(n)) time, O(n + E) memory.
func Kruskal(n int, edges []Edge) ([]Edge, int64, error) {
	// 1. Validate size through New; BySize keeps the trees shallow.
	d, err := New(n, WithPolicy(BySize))
	if err != nil {
		return nil, 0, err
	}
	// An empty vertex set has no spanning tree.
	if n == 0 {
		return nil, 0, ErrDisconnected
	}

	// 2. Validate endpoints and filter self-loops in one pass.
	sorted := make([]Edge, 0, len(edges))
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, 0, fmt.Errorf("%w: edge %d = (%d,%d), n = %d", ErrEdge, i, e.From, e.To, n)
		}
		if e.From != e.To {
			// a self-loop can never join two classes
			sorted = append(sorted, e)
		}
	}
	// A single vertex is its own tree.
	if n == 1 {
		return []Edge{}, 0, nil
	}
	// Stable sort: ties resolve by input order, deterministically.
	slices.SortStableFunc(sorted, func(a, b Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	// 3. Greedily take the lightest edge that merges two classes.
	var (
		tree  = make([]Edge, 0, n-1) // resulting tree edges
		total int64                  // running tree weight
	)
	for _, e := range sorted {
		// Union reports false when both ends already share a class.
		if !d.Union(e.From, e.To) {
			continue
		}
		if addOverflows(total, e.Weight) {
			return nil, 0, fmt.Errorf("%w: %d + %d", ErrWeightOverflow, total, e.Weight)
		}
		tree = append(tree, e)
		total += e.Weight
		// n-1 edges span every vertex; the rest can be skipped.
		if len(tree) == n-1 {
			break
		}
	}

	// 4. A short tree means some vertex was never reached.
	if len(tree) < n-1 {
		return nil, 0, fmt.Errorf("%w: %d classes remain", ErrDisconnected, d.Count())
	}

	return tree, total, nil
}

// addOverflows reports whether a+b leaves the int64 range.
func addOverflows(a, b int64) bool {
	if b > 0 {
		return a > math.MaxInt64-b
	}

	return a < math.MinInt64-b
}
