// Package bsearch implements binary search on a monotonic predicate
// ("search the answer").
//
// What:
//
//   - First finds the smallest value in [low, high] for which a
//     false…false,true…true predicate holds.
//   - Last finds the largest value in [low, high] for which a
//     true…true,false…false predicate holds.
//   - Midpoint computes floor((low+high)/2) without overflow for every
//     integer type, including ranges spanning the whole signed domain.
//
// The predicate may be arbitrarily expensive (a greedy simulation, a
// two-pointer pass); total cost is Steps(low, high) × predicate cost.
//
// Monotonicity is the caller's responsibility. A non-monotonic predicate
// yields a deterministic but unspecified boundary, never an error.
//
// Complexity: O(log(high-low+1)) predicate evaluations.
package bsearch
