package contour

import "errors"

// ErrMeshMismatch indicates mesh arrays that disagree with the slot map.
var ErrMeshMismatch = errors.New("contour: mesh arrays do not match the slot map")
