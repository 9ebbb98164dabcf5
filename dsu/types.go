// Package dsu defines the union policy, options and sentinel errors
// for the disjoint set union.
package dsu

import (
	"errors"
	"fmt"
)

// Sentinel errors for DSU construction and helpers.
var (
	// ErrInvalidSize is returned when the universe size is negative.
	ErrInvalidSize = errors.New("dsu: universe size must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dsu: invalid option supplied")

	// ErrLengthMismatch indicates two paired inputs of differing lengths.
	ErrLengthMismatch = errors.New("dsu: paired inputs must have equal length")

	// ErrAlphabet indicates a byte outside the lowercase latin alphabet.
	ErrAlphabet = errors.New("dsu: byte outside 'a'..'z'")

	// ErrEdge indicates an edge endpoint outside [0, n).
	ErrEdge = errors.New("dsu: edge endpoint out of range")

	// ErrDisconnected is returned by Kruskal when no spanning tree exists.
	ErrDisconnected = errors.New("dsu: graph is disconnected")

	// ErrWeightOverflow is returned by Kruskal when the tree weight leaves the int64 range.
	ErrWeightOverflow = errors.New("dsu: total weight overflows int64")

	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("dsu: grid must have at least one row and one column")

	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("dsu: all grid rows must have the same length")
)

// Policy selects how Union links two roots.
type Policy int

const (
	// BySize attaches the smaller tree under the larger root.
	BySize Policy = iota
	// ByValue attaches the larger root label under the smaller one, so the
	// smallest member of every class is its representative.
	ByValue
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case BySize:
		return "by-size"
	case ByValue:
		return "by-value"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Option configures a DSU at construction time.
type Option func(*Options)

// Options holds DSU construction parameters.
type Options struct {
	// Policy is fixed for the lifetime of the DSU; mixing policies on one
	// instance would break the size invariant.
	Policy Policy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Policy = BySize.
func DefaultOptions() Options {
	return Options{Policy: BySize}
}

// WithPolicy selects the union policy.
// Values other than BySize and ByValue surface as ErrOptionViolation from New.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		switch p {
		case BySize, ByValue:
			o.Policy = p
		default:
			o.err = fmt.Errorf("%w: unknown policy %d", ErrOptionViolation, int(p))
		}
	}
}
