// Package bitmask represents subsets of a small finite universe as integers.
//
// What:
//
//   - Set is a uint64 with bit i set iff i is a member, for a universe of
//     at most 64 elements. Add, Remove and Has are single word operations;
//     Lowest isolates the lowest bit with m & -m and counts trailing zeros.
//   - Wide is the same contract over an unbounded universe, backed by
//     *big.Int. It serves as a seen-set for arbitrary non-negative values.
//   - Letters and PairKey encode short lowercase strings: Letters as the
//     set of letters present, PairKey as a dense index of a two-letter word.
//   - Subsets walks the k-element subsets of a Set in increasing numeric
//     order (Gosper's hack over member ranks).
//
// Elements outside the universe are never members: Set ignores Add and
// Remove outside [0, 64) and Wide ignores negative elements.
//
// Complexity:
//
//   - Set: O(1) for every operation except Members, O(|S|).
//   - Wide: O(width/64) per operation.
//   - Subsets: O(64) per yielded subset.
//
// Errors:
//
//   - ErrRange:    Of got an element outside [0, 64).
//   - ErrAlphabet: Letters or PairKey got a byte outside 'a'..'z'.
package bitmask
