package dsu

import "fmt"

// DSU is a disjoint set union over [0, N).
//
// parent[x] == x marks a root. size[r] is meaningful only for roots and is
// maintained under both policies. A DSU is not safe for concurrent use.
type DSU struct {
	parent []int
	size   []int
	count  int
	policy Policy
}

// New returns a DSU of n singletons.
//
// Errors:
//   - ErrInvalidSize if n < 0.
//   - ErrOptionViolation if an option rejected its value.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) (*DSU, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
		policy: o.Policy,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Find returns the representative of x's class.
//
// The walk is iterative: first to the root, then a second pass repoints
// every node on the path directly at the root.
func (d *DSU) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		x, d.parent[x] = d.parent[x], root
	}

	return root
}

// Union merges the classes of x and y and reports whether a merge happened.
// Union of two members of the same class is a no-op.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}

	switch d.policy {
	case ByValue:
		if ry < rx {
			rx, ry = ry, rx
		}
	default:
		// ties keep x's root
		if d.size[rx] < d.size[ry] {
			rx, ry = ry, rx
		}
	}
	// ry goes under rx
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	d.count--

	return true
}

// Connected reports whether x and y share a class.
func (d *DSU) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Count returns the number of classes.
func (d *DSU) Count() int { return d.count }

// SizeOf returns the number of members in x's class.
func (d *DSU) SizeOf(x int) int { return d.size[d.Find(x)] }

// Len returns the universe size N.
func (d *DSU) Len() int { return len(d.parent) }

// Policy returns the union policy chosen at construction.
func (d *DSU) Policy() Policy { return d.policy }
