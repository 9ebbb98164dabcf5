// Package dsu provides a Disjoint Set Union (Union-Find) over the fixed
// universe of integers [0, N).
//
// What:
//
//   - DSU maintains a partition of [0, N) into equivalence classes.
//   - Find returns the canonical representative of a class, with full path
//     compression (every visited node is repointed at the root).
//   - Union merges two classes under one of two mutually exclusive policies:
//     with ByValue the numerically smaller root survives, so every class
//     reports its smallest member as representative; with BySize the smaller
//     tree is attached under the larger root, bounding tree height when
//     representative identity does not matter.
//
// Why:
//
//   - Equivalence of characters (smallest equivalent string).
//   - Connected components of undirected graphs given as edge lists.
//   - Kruskal's minimum spanning tree over an edge list (Kruskal).
//   - Land regions of a 2D grid under 4- or 8-connectivity (GridComponents).
//
// Complexity:
//
//   - New:     O(N) time, O(N) memory.
//   - Find:    amortized O(α(N)) with BySize; amortized O(log N) with ByValue.
//   - Union:   two Finds plus O(1).
//   - Classes: O(N·α(N)).
//
// Preconditions:
//
//	Indices passed to Find/Union/Connected/SizeOf must lie in [0, N). They are
//	not validated; an out-of-range index faults like any slice access.
//
// Errors:
//
//   - ErrInvalidSize:     New called with N < 0.
//   - ErrOptionViolation: an unknown Policy was supplied.
//   - ErrLengthMismatch:  SmallestEquivalent got s1, s2 of different lengths.
//   - ErrAlphabet:        SmallestEquivalent got a byte outside 'a'..'z'.
//   - ErrEdge:            CountComponents or Kruskal got an endpoint outside [0, n).
//   - ErrDisconnected:    Kruskal found no spanning tree.
//   - ErrWeightOverflow:  Kruskal's total weight left the int64 range.
//   - ErrEmptyGrid, ErrNonRectangular: GridComponents got a malformed grid.
package dsu
