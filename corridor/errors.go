package corridor

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive grid width or height.
	ErrInvalidDimensions = errors.New("corridor: width and height must be positive")
)
