package render

import "errors"

var (
	ErrInvalidSize = errors.New("render: snapshot size out of range")
	ErrBadFrame    = errors.New("render: frame is nil or has a partial triangle")
	ErrNoPath      = errors.New("render: snapshot path is empty")
)
