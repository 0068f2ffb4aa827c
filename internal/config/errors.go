package config

import "errors"

var (
	ErrDomain     = errors.New("config: domain must have positive width and height")
	ErrNoLevels   = errors.New("config: at least one isoline level is required")
	ErrLevelRange = errors.New("config: isoline levels must lie in [0, 1]")
	ErrActive     = errors.New("config: active level count out of range")
	ErrFPS        = errors.New("config: fps must be in [1, 240]")
	ErrTimeScale  = errors.New("config: time scale must be finite")
)
