// Package window implements the monotonic two-pointer sliding window.
//
// What:
//
//   - Window[T] bounds a half-open region [Left, Right) of a slice. Right
//     advances one element at a time; Left only ever moves forward. There is
//     no rewind, which is what keeps every scan linear.
//   - An Aggregate is updated in O(1) amortized as elements enter (Include)
//     and leave (Exclude) the window: Count, Sum and Frequency cover counters,
//     running sums and multiplicity maps.
//   - Longest and CountAtMost scan predicates that survive shrinking: the
//     longest valid window, and the number of valid subarrays.
//   - CountAtLeast scans predicates that survive extension; every earlier
//     left start contributes one more subarray.
//
// Why:
//
//   - "at most k zeros" (LongestOnes), "max element at least k times"
//     (CountMaxAtLeastK), "every distinct value present" (CountComplete),
//     "at least k equal pairs" (CountGoodPairs), "sum·length below k"
//     (CountScoreBelow): each is O(n) instead of O(n²).
//
// Complexity:
//
//	Every scan is O(n) aggregate updates plus O(n) predicate calls per
//	pointer, as each pointer crosses each element once.
//
// Errors:
//
//   - ErrNegative: CountScoreBelow got a negative element.
package window
