// Package digits is a bounded-radix digit codec: it splits integers into
// digit sequences and folds digit sequences back into integers.
//
// What:
//
//   - Decompose yields digits least-significant first, the natural order of
//     repeated v % radix, v /= radix. Zero decomposes to [0], never to [].
//   - Recompose folds acc = acc*radix + d in the order the caller states
//     (MSDFirst or LSDFirst) and reports overflow instead of truncating.
//   - Digit predicates and rewrites built on the codec: IsPalindrome,
//     IsSymmetric, CountSymmetric, RemapMax, RemapMin.
//   - Arbitrary precision at the points where magnitudes outgrow int64:
//     DecomposeBig, RecomposeBig, MirrorPalindrome, ModPow and Arrangements.
//     Results come back as *big.Int and are narrowed with Narrow only when
//     they fit.
//   - FactorialTable is an explicit, caller-built table of big factorials,
//     passed to Arrangements instead of living in package state.
//
// Complexity:
//
//	Decompose/Recompose are O(log_radix v). Big variants add the cost of
//	big.Int arithmetic per digit.
//
// Errors:
//
//   - ErrRadix:         radix < 2.
//   - ErrNegative:      negative value, exponent, count or table size.
//   - ErrDigit:         a digit outside [0, radix).
//   - ErrOverflow:      a result does not fit the requested integer type.
//   - ErrModulus:       ModPow with a non-positive modulus.
//   - ErrTableTooSmall: a FactorialTable shorter than the request needs.
package digits
