package placement

import "errors"

var (
	// ErrNilGenerator indicates a nil corridor generator.
	ErrNilGenerator = errors.New("placement: corridor generator must not be nil")
	// ErrNilRand indicates a nil random source.
	ErrNilRand = errors.New("placement: random source must not be nil")
	// ErrInvalidDimensions indicates a non-positive grid width or height.
	ErrInvalidDimensions = errors.New("placement: width and height must be positive")
)
