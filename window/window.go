package window

// Window is a half-open region [left, right) over seq with an aggregate that
// exactly reflects seq[left:right]. left ≤ right always holds and neither
// pointer moves backward.
type Window[T any] struct {
	seq         []T
	left, right int
	agg         Aggregate[T]
}

// New returns an empty window at the start of seq.
func New[T any](seq []T, agg Aggregate[T]) *Window[T] {
	return &Window[T]{seq: seq, agg: agg}
}

// Advance includes seq[Right()] and moves the right edge forward.
// It returns false, without changes, once the whole sequence is consumed.
func (w *Window[T]) Advance() bool {
	if w.right >= len(w.seq) {
		return false
	}
	w.agg.Include(w.seq[w.right])
	w.right++

	return true
}

// Shrink excludes seq[Left()] and moves the left edge forward.
// It is a no-op on an empty window.
func (w *Window[T]) Shrink() {
	if w.left >= w.right {
		return
	}
	w.agg.Exclude(w.seq[w.left])
	w.left++
}

// ShrinkWhile shrinks while cond holds and the window is non-empty,
// returning how many elements were dropped.
func (w *Window[T]) ShrinkWhile(cond func() bool) int {
	dropped := 0
	for w.left < w.right && cond() {
		w.Shrink()
		dropped++
	}

	return dropped
}

// Left returns the inclusive left edge.
func (w *Window[T]) Left() int { return w.left }

// Right returns the exclusive right edge.
func (w *Window[T]) Right() int { return w.right }

// Len returns the number of elements in the window.
func (w *Window[T]) Len() int { return w.right - w.left }

// Done reports whether the right edge reached the end of the sequence.
func (w *Window[T]) Done() bool { return w.right >= len(w.seq) }
