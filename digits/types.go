// Package digits defines digit order and sentinel errors for the codec.
package digits

import "errors"

// Sentinel errors for the digit codec.
var (
	// ErrRadix is returned for radix < 2.
	ErrRadix = errors.New("digits: radix must be at least 2")

	// ErrNegative is returned for negative inputs where only non-negative ones are defined.
	ErrNegative = errors.New("digits: value must be non-negative")

	// ErrDigit is returned for a digit outside [0, radix).
	ErrDigit = errors.New("digits: digit out of range for radix")

	// ErrOverflow is returned when a value does not fit the target integer type.
	ErrOverflow = errors.New("digits: value overflows target type")

	// ErrModulus is returned for a non-positive modulus.
	ErrModulus = errors.New("digits: modulus must be positive")

	// ErrTableTooSmall is returned when a precomputed table does not cover the request.
	ErrTableTooSmall = errors.New("digits: precomputed table too small")
)

// Order is the order of a digit sequence.
type Order int

const (
	// LSDFirst puts the least significant digit at index 0 (Decompose output).
	LSDFirst Order = iota
	// MSDFirst puts the most significant digit at index 0 (reading order).
	MSDFirst
)

// String implements fmt.Stringer.
func (o Order) String() string {
	if o == MSDFirst {
		return "msd-first"
	}
	return "lsd-first"
}
