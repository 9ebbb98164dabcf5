package window

import "errors"

// ErrNegative indicates a negative element where only non-negative ones are defined.
var ErrNegative = errors.New("window: element must be non-negative")
