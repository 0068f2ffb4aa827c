package grid

import "errors"

var (
	// ErrInvalidDomain indicates domain bounds without positive, finite extent.
	ErrInvalidDomain = errors.New("grid: domain must have positive width and height")
	// ErrNilField indicates a grid was built without a field evaluator.
	ErrNilField = errors.New("grid: field evaluator is required")
)
