package pxgen

import "errors"

// Configuration errors. They are reported before a pass starts; a pass that
// begins always covers the whole canvas.
var (
	// ErrInvalidSize is returned when a width or height is not positive.
	ErrInvalidSize = errors.New("pxgen: width and height must be positive")

	// ErrTooLarge is returned when width*height overflows or exceeds MaxPixels.
	ErrTooLarge = errors.New("pxgen: canvas too large")

	// ErrSizeMismatch is returned when a kernel was built for a different canvas size.
	ErrSizeMismatch = errors.New("pxgen: kernel size does not match canvas")

	// ErrNilKernel is returned when Render is called without a kernel.
	ErrNilKernel = errors.New("pxgen: nil kernel")

	// ErrReleased is returned when rendering into a released canvas.
	ErrReleased = errors.New("pxgen: canvas released")
)
