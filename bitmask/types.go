package bitmask

import "errors"

// Sentinel errors for bitmask constructors.
var (
	// ErrRange indicates an element outside the universe of a Set.
	ErrRange = errors.New("bitmask: element outside [0, 64)")

	// ErrAlphabet indicates a byte outside the lowercase latin alphabet.
	ErrAlphabet = errors.New("bitmask: byte outside 'a'..'z'")
)

// Width is the universe size of a Set.
const Width = 64

// alphabetSize is the number of lowercase latin letters.
const alphabetSize = 26
