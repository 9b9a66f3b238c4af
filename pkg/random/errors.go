package random

import (
	"errors"
	"fmt"
)

// Error kinds reported by the selection operations. Specific failures wrap
// one of the kinds, so callers can discriminate with errors.Is against either
// the kind or the specific sentinel.
var (
	// ErrInvalidArgument indicates a caller-supplied parameter was out of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyInput indicates a selection was requested from a zero-length
	// (or nil) sequence.
	ErrEmptyInput = errors.New("selection from empty sequence")

	// ErrNoMatch indicates a predicate rejected every element.
	ErrNoMatch = errors.New("no element matches predicate")
)

var (
	// ErrNonPositiveBound indicates a bounded integer draw with bound <= 0.
	ErrNonPositiveBound = fmt.Errorf("%w: bound must be positive", ErrInvalidArgument)

	// ErrNonPositiveWeight indicates a weighted selection whose total weight
	// was zero or negative.
	ErrNonPositiveWeight = fmt.Errorf("%w: total weight must be positive", ErrInvalidArgument)

	// ErrNegativeCount indicates a multi-selection with a negative count.
	ErrNegativeCount = fmt.Errorf("%w: count must be non-negative", ErrInvalidArgument)
)
