package estimate

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrDimensionMismatch is returned when the frame and mask differ in size.
	ErrDimensionMismatch = errors.New("frame and mask dimensions differ")

	// ErrNilImage is returned when the frame or mask is nil.
	ErrNilImage = errors.New("frame and mask are required")
)

// DimensionMismatchError reports the sizes of a frame and mask that cannot be combined.
type DimensionMismatchError struct {
	Frame image.Point
	Mask  image.Point
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: frame is %dx%d, mask is %dx%d",
		ErrDimensionMismatch, e.Frame.X, e.Frame.Y, e.Mask.X, e.Mask.Y)
}

// Unwrap lets errors.Is match ErrDimensionMismatch.
func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}
