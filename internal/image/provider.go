package image

import (
	"context"
	"image"
)

// FileFrameProvider serves a frame from a file or URL. It satisfies estimate.FrameProvider.
type FileFrameProvider struct {
	Path   string
	Loader Loader
}

// Frame loads the frame.
func (p FileFrameProvider) Frame(ctx context.Context) (image.Image, error) {
	return loaderOrDefault(p.Loader).Load(ctx, p.Path)
}

// FileMaskProvider serves a mask from a file or URL. It satisfies estimate.MaskProvider.
type FileMaskProvider struct {
	Path   string
	Loader Loader
}

// Mask loads the mask.
func (p FileMaskProvider) Mask(ctx context.Context) (image.Image, error) {
	return loaderOrDefault(p.Loader).Load(ctx, p.Path)
}

func loaderOrDefault(l Loader) Loader {
	if l == nil {
		return NewSmartLoader()
	}
	return l
}
