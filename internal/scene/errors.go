package scene

import "errors"

var (
	// ErrNoLevels indicates a scene configured without isoline levels.
	ErrNoLevels = errors.New("scene: at least one isoline level is required")
	// ErrNoIsolines indicates an export of a frame that carries no isolines.
	ErrNoIsolines = errors.New("scene: frame has no isolines")
)
