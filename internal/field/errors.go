package field

import "errors"

var (
	// ErrNoAttractors indicates an attractor field was built from an empty set.
	ErrNoAttractors = errors.New("field: at least one attractor is required")
	// ErrBadPeriod indicates an attractor with a zero or non-finite period.
	ErrBadPeriod = errors.New("field: attractor period must be finite and non-zero")
	// ErrBadAttractor indicates an attractor with a non-finite radius or center.
	ErrBadAttractor = errors.New("field: attractor radii and center must be finite")
)
