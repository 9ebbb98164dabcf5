// Package leetcode is a toolkit of finite-domain data structures and
// numeric primitives that recur across counting, partitioning and search
// problems.
//
// What:
//
//   - dsu      Disjoint Set Union with ByValue or BySize linking, plus
//     connected components, Kruskal MST and grid regions.
//   - fenwick  Binary Indexed Tree over [0, size): point add, prefix sums,
//     inversion and good-triplet counting.
//   - window   Monotonic two-pointer window with O(1) aggregates and
//     linear-time longest/count scans.
//   - bsearch  Binary search for the boundary of a monotonic predicate on
//     any integer type, overflow-free.
//   - digits   Bounded-radix digit codec with checked recomposition and
//     big.Int variants where magnitudes outgrow int64.
//   - bitmask  Subsets of a small universe as a uint64, or unbounded via
//     big.Int, with lowest-member extraction and subset enumeration.
//
// Every package is independent of the others. Instances are owned by one
// caller and are not safe for concurrent use.
//
// Errors:
//
//	Constructors and whole-input helpers validate and return wrapped
//	sentinel errors (check with errors.Is). Hot-path methods such as
//	Find, Add or PrefixSum do not validate indices.
package leetcode
