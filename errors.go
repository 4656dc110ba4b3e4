package labelpress

import "errors"

var (
	// ErrInvalidRange is returned by the levels adjustment when the black
	// point is not strictly below the white point. The linear mapping
	// divides by the span, so a zero span would be undefined.
	ErrInvalidRange = errors.New("labelpress: black point must be below white point")

	// ErrInvalidDimensions is returned when a transform would produce a
	// buffer with a non-positive width or height.
	ErrInvalidDimensions = errors.New("labelpress: invalid target dimensions")
)
