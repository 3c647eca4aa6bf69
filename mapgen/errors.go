package mapgen

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("mapgen: width and height must be positive")
	// ErrUnknownPattern indicates an unrecognized corridor pattern.
	ErrUnknownPattern = errors.New("mapgen: unknown corridor pattern")
)
