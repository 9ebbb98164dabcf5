package window

// Predicate reports whether the current window satisfies a condition.
// It reads the window (Len, Left, Right) and whatever aggregate the caller
// closed over.
type Predicate[T any] func(w *Window[T]) bool

// Longest returns the length of the longest window of seq satisfying valid.
// valid must survive shrinking: if a window is valid, so is every window it
// contains.
//
// The left edge moves only while the window is invalid.
func Longest[T any](seq []T, agg Aggregate[T], valid Predicate[T]) int {
	w := New(seq, agg)
	best := 0
	for w.Advance() {
		w.ShrinkWhile(func() bool { return !valid(w) })
		if w.Len() > best {
			best = w.Len()
		}
	}

	return best
}

// CountAtMost returns the number of non-empty subarrays of seq satisfying
// valid, where valid survives shrinking. After each advance the window is
// the longest valid one ending at Right()-1, and every suffix of it is valid.
func CountAtMost[T any](seq []T, agg Aggregate[T], valid Predicate[T]) int64 {
	w := New(seq, agg)
	var count int64
	for w.Advance() {
		w.ShrinkWhile(func() bool { return !valid(w) })
		count += int64(w.Len())
	}

	return count
}

// CountAtLeast returns the number of non-empty subarrays of seq satisfying
// satisfied, where satisfied survives extension. After each advance the
// window is shrunk until it stops satisfying; every start before Left()
// then yields one satisfying subarray ending at Right()-1.
func CountAtLeast[T any](seq []T, agg Aggregate[T], satisfied Predicate[T]) int64 {
	w := New(seq, agg)
	var count int64
	for w.Advance() {
		w.ShrinkWhile(func() bool { return satisfied(w) })
		count += int64(w.Left())
	}

	return count
}
