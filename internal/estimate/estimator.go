// Package estimate measures the material colour of a masked surface in a camera frame,
// discounting shadows and specular highlights.
package estimate

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/hashicorp/go-hclog"
	"gonum.org/v1/gonum/stat"

	"github.com/huehome/huecore/internal/colour"
)

const (
	// clusterCount separates the material colour from residual shadow and highlight groups.
	clusterCount = 3

	// outlierSigma bounds the accepted lightness band around the mean, in standard deviations.
	outlierSigma = 1.5

	// confidenceScale is the mean LAB distance at which confidence reaches zero before clamping.
	confidenceScale = 50.0

	minConfidence      = 0.3
	maxConfidence      = 0.95
	fallbackConfidence = 0.5
)

// Options configures an Estimator.
type Options struct {
	// MaxIterations caps the k-means refinement loop.
	MaxIterations int

	// Convergence stops k-means once no centroid moves further than this many LAB units.
	Convergence float64

	// MaxSamples limits how many pixels are clustered. Zero clusters every selected pixel.
	MaxSamples int

	// Seed pins the k-means seed. When nil the seed is derived from the pixels themselves.
	Seed *int64

	Logger hclog.Logger
}

// DefaultOptions returns the default estimator configuration.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 100,
		Convergence:   0.2,
		MaxSamples:    0,
	}
}

// Validate validates the estimator configuration.
func (o Options) Validate() error {
	if o.MaxIterations < 1 {
		return fmt.Errorf("max iterations must be at least 1, got %d", o.MaxIterations)
	}
	if o.Convergence < 0 {
		return fmt.Errorf("convergence must not be negative, got %v", o.Convergence)
	}
	if o.MaxSamples < 0 {
		return fmt.Errorf("max samples must not be negative, got %d", o.MaxSamples)
	}
	if o.MaxSamples > 0 && o.MaxSamples < clusterCount {
		return fmt.Errorf("max samples must be at least %d, got %d", clusterCount, o.MaxSamples)
	}
	return nil
}

// Estimator extracts the dominant material colour of a masked region.
// An Estimator holds only immutable configuration and is safe for concurrent use.
type Estimator struct {
	opts   Options
	logger hclog.Logger
}

// New creates an Estimator.
func New(opts Options) (*Estimator, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid estimator options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Estimator{opts: opts, logger: logger.Named("estimate")}, nil
}

// Estimate returns the material colour of the pixels selected by mask.
//
// A mask pixel is selected when its weight is non-zero. A mask that selects nothing is not
// an error: the result is mid-grey with confidence 0.5. Frame and mask must be the same size.
//
// Frame pixels are read alpha-premultiplied, as color.Color.RGBA reports them, so translucent
// pixels measure darker: NRGBA{200, 100, 50, 128} counts as #643219.
func (e *Estimator) Estimate(frame, mask image.Image) (ColorInfo, error) {
	if frame == nil || mask == nil {
		return ColorInfo{}, ErrNilImage
	}
	if fs, ms := frame.Bounds().Size(), mask.Bounds().Size(); fs != ms {
		return ColorInfo{}, &DimensionMismatchError{Frame: fs, Mask: ms}
	}

	pixels := maskedPixels(frame, mask)
	if len(pixels) == 0 {
		e.logger.Debug("mask selects no pixels, using fallback colour")
		return fallbackInfo(), nil
	}

	refined := refineByLightness(pixels)
	e.logger.Debug("filtered shadows and highlights", "selected", len(pixels), "kept", len(refined))
	if len(refined) == 0 {
		refined = pixels
	}

	samples := samplePoints(refined, e.opts.MaxSamples)
	seed := contentSeed(samples)
	if e.opts.Seed != nil {
		seed = *e.opts.Seed
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 - clustering seed, not security sensitive

	result := kmeans(samples, clusterCount, e.opts.MaxIterations, e.opts.Convergence, rng)
	winner := result.dominant()
	centre := result.centroids[winner]
	e.logger.Debug("clustered region",
		"samples", len(samples), "iterations", result.iterations, "counts", result.counts, "winner", winner)

	rgb := colour.LabToRGB(centre.L, centre.A, centre.B)
	return ColorInfo{
		RGB:        rgb,
		Lab:        colour.RGBToLab(rgb),
		Confidence: confidence(refined, centre),
	}, nil
}

// maskedPixels converts every frame pixel selected by the mask to LAB.
func maskedPixels(frame, mask image.Image) []labPoint {
	fb := frame.Bounds()
	mb := mask.Bounds()
	weight := maskWeightFunc(mask)

	pixels := make([]labPoint, 0, fb.Dx()*fb.Dy()/2)
	for y := 0; y < fb.Dy(); y++ {
		for x := 0; x < fb.Dx(); x++ {
			if weight(mb.Min.X+x, mb.Min.Y+y) == 0 {
				continue
			}
			rgb := colour.ToRGB(frame.At(fb.Min.X+x, fb.Min.Y+y))
			pixels = append(pixels, pointFromLab(colour.RGBToLab(rgb)))
		}
	}
	return pixels
}

// maskWeightFunc returns the selection weight reader for a mask. Alpha masks are weighted by
// coverage; every other mask by its grey level.
func maskWeightFunc(mask image.Image) func(x, y int) uint16 {
	switch m := mask.(type) {
	case *image.Alpha:
		return func(x, y int) uint16 { return uint16(m.AlphaAt(x, y).A) }
	case *image.Alpha16:
		return func(x, y int) uint16 { return m.Alpha16At(x, y).A }
	case *image.Gray:
		return func(x, y int) uint16 { return uint16(m.GrayAt(x, y).Y) }
	default:
		return func(x, y int) uint16 {
			return color.Gray16Model.Convert(mask.At(x, y)).(color.Gray16).Y
		}
	}
}

// refineByLightness drops pixels whose L lies more than outlierSigma standard deviations
// from the mean lightness.
func refineByLightness(pixels []labPoint) []labPoint {
	lightness := make([]float64, len(pixels))
	for i, p := range pixels {
		lightness[i] = p.L
	}
	mean, std := stat.PopMeanStdDev(lightness, nil)
	lower := mean - outlierSigma*std
	upper := mean + outlierSigma*std

	refined := make([]labPoint, 0, len(pixels))
	for _, p := range pixels {
		if p.L >= lower && p.L <= upper {
			refined = append(refined, p)
		}
	}
	return refined
}

// samplePoints takes an evenly strided subset of at most limit points. Zero means no limit.
func samplePoints(points []labPoint, limit int) []labPoint {
	if limit <= 0 || len(points) <= limit {
		return points
	}
	step := int(math.Ceil(float64(len(points)) / float64(limit)))
	sampled := make([]labPoint, 0, limit)
	for i := 0; i < len(points); i += step {
		sampled = append(sampled, points[i])
	}
	return sampled
}

// confidence maps the mean distance of points from centre onto [minConfidence, maxConfidence].
func confidence(points []labPoint, centre labPoint) float64 {
	if len(points) == 0 {
		return fallbackConfidence
	}
	total := 0.0
	for _, p := range points {
		total += p.distance(centre)
	}
	avg := total / float64(len(points))
	return colour.Clamp(1-avg/confidenceScale, minConfidence, maxConfidence)
}
