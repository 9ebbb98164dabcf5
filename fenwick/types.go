// Package fenwick defines the value constraint and sentinel errors for the
// Fenwick tree.
package fenwick

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for Fenwick tree construction and helpers.
var (
	// ErrInvalidSize is returned when the range size is negative.
	ErrInvalidSize = errors.New("fenwick: size must be non-negative")

	// ErrLengthMismatch indicates two paired inputs of differing lengths.
	ErrLengthMismatch = errors.New("fenwick: paired inputs must have equal length")

	// ErrNotPermutation indicates an input that is not a permutation of 0..n-1.
	ErrNotPermutation = errors.New("fenwick: input is not a permutation of 0..n-1")
)

// Number is the set of value types a Tree can aggregate.
type Number interface {
	constraints.Integer | constraints.Float
}
