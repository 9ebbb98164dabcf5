package window

import "golang.org/x/exp/constraints"

// Aggregate is incremental window state. Include is called when an element
// enters at the right edge, Exclude when it leaves at the left edge; both
// must be O(1) amortized.
type Aggregate[T any] interface {
	Include(x T)
	Exclude(x T)
}

// Count counts window elements that match a predicate.
type Count[T any] struct {
	Match func(T) bool
	N     int
}

// CountOf returns a Count for elements matching match.
func CountOf[T any](match func(T) bool) *Count[T] {
	return &Count[T]{Match: match}
}

// Include implements Aggregate.
func (c *Count[T]) Include(x T) {
	if c.Match(x) {
		c.N++
	}
}

// Exclude implements Aggregate.
func (c *Count[T]) Exclude(x T) {
	if c.Match(x) {
		c.N--
	}
}

// Sum keeps the running sum of the window.
type Sum[T constraints.Integer | constraints.Float] struct {
	Total T
}

// Include implements Aggregate.
func (s *Sum[T]) Include(x T) { s.Total += x }

// Exclude implements Aggregate.
func (s *Sum[T]) Exclude(x T) { s.Total -= x }

// Frequency keeps the multiplicity of every value in the window, plus the
// number of equal-value pairs (i < j, w[i] == w[j]).
type Frequency[K comparable] struct {
	counts map[K]int
	pairs  int64
}

// NewFrequency returns an empty Frequency.
func NewFrequency[K comparable]() *Frequency[K] {
	return &Frequency[K]{counts: make(map[K]int)}
}

// Include implements Aggregate.
func (f *Frequency[K]) Include(x K) {
	c := f.counts[x]
	f.pairs += int64(c)
	f.counts[x] = c + 1
}

// Exclude implements Aggregate. Values dropping to zero are deleted, so
// Distinct stays exact.
func (f *Frequency[K]) Exclude(x K) {
	c := f.counts[x] - 1
	f.pairs -= int64(c)
	if c == 0 {
		delete(f.counts, x)
		return
	}
	f.counts[x] = c
}

// Of returns the multiplicity of x.
func (f *Frequency[K]) Of(x K) int { return f.counts[x] }

// Distinct returns the number of distinct values in the window.
func (f *Frequency[K]) Distinct() int { return len(f.counts) }

// Pairs returns the number of equal-value pairs in the window.
func (f *Frequency[K]) Pairs() int64 { return f.pairs }
