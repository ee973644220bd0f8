package estimate

import (
	"context"
	"fmt"
	"image"
)

// FrameProvider supplies camera frames.
type FrameProvider interface {
	Frame(ctx context.Context) (image.Image, error)
}

// MaskProvider supplies the segmentation mask for the current frame.
type MaskProvider interface {
	Mask(ctx context.Context) (image.Image, error)
}

// EstimateFrom pulls a frame and mask from the providers and estimates the masked colour.
func (e *Estimator) EstimateFrom(ctx context.Context, frames FrameProvider, masks MaskProvider) (ColorInfo, error) {
	frame, err := frames.Frame(ctx)
	if err != nil {
		return ColorInfo{}, fmt.Errorf("failed to get frame: %w", err)
	}
	mask, err := masks.Mask(ctx)
	if err != nil {
		return ColorInfo{}, fmt.Errorf("failed to get mask: %w", err)
	}
	return e.Estimate(frame, mask)
}
