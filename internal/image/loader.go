// Package image loads camera frames and segmentation masks from files and URLs.
package image

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"

	_ "golang.org/x/image/webp" // Register WebP format

	httputil "github.com/huehome/huecore/internal/util/http"
	"github.com/huehome/huecore/internal/util/imagecache"
)

// Loader loads an image from a path.
type Loader interface {
	Load(ctx context.Context, path string) (image.Image, error)
}

// SmartLoader loads images from local files and HTTP(S) URLs.
// Supported formats: JPEG, PNG, GIF, WebP.
type SmartLoader struct {
	Fetch httputil.FetchOptions

	// Cache, when set, keeps downloaded images on disk and reuses them.
	Cache *imagecache.Cache
}

// NewSmartLoader creates a SmartLoader with default fetch options.
func NewSmartLoader() *SmartLoader {
	return &SmartLoader{}
}

// Load decodes the image at path, which may be a file or an HTTP(S) URL.
func (l *SmartLoader) Load(ctx context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}
	if httputil.IsURL(path) {
		return l.loadFromURL(ctx, path)
	}
	return loadFile(path)
}

func loadFile(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return img, nil
}

func (l *SmartLoader) loadFromURL(ctx context.Context, url string) (image.Image, error) {
	if l.Cache != nil {
		path, err := l.Cache.Path(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
		}
		return loadFile(path)
	}

	data, err := httputil.Fetch(ctx, url, l.Fetch)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return img, nil
}

// ValidateImagePath checks that path is a URL or a decodable local image.
func ValidateImagePath(path string) error {
	if path == "" {
		return fmt.Errorf("image path cannot be empty")
	}
	if httputil.IsURL(path) {
		return nil
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image file not found: %s", path)
		}
		return fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	if _, _, err := image.DecodeConfig(file); err != nil {
		return fmt.Errorf("unsupported or invalid image format: %w", err)
	}
	return nil
}
