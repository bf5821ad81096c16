package motif

import "errors"

var (
	// ErrInvalidConfiguration rejects parameters before any search work.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrNotConverged reports an exhausted iteration or time budget.
	ErrNotConverged = errors.New("motif search did not converge")
)
