// Package recommend turns a measured surface colour into a ranked list of alternative paint
// colours using colour theory, style palettes and the room's lighting.
package recommend

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/huehome/huecore/internal/colour"
	"github.com/huehome/huecore/internal/estimate"
	"github.com/huehome/huecore/internal/style"
)

// MaxRecommendations is the most recommendations a single request returns.
const MaxRecommendations = 6

const (
	complementaryConfidence      = 0.85
	monochromaticConfidence      = 0.75
	styleConfidence              = 0.90
	lightingConfidence           = 0.70
	splitComplementaryConfidence = 0.65

	// lightingShift is the lightness change suggested for very dim or very bright rooms.
	lightingShift = 15.0

	lowLightThreshold    = 0.3
	brightLightThreshold = 0.7
)

// analogousConfidence holds the confidence of each successive analogous step.
var analogousConfidence = []float64{0.80, 0.75}

const (
	reasonComplementary      = "Complementary color provides maximum contrast and visual interest"
	reasonAnalogous          = "Analogous color creates harmonious, cohesive look"
	reasonMonochromatic      = "Monochromatic variation provides subtle sophistication"
	reasonSplitComplementary = "Split-complementary color adds contrast with less tension than the complement"
	reasonLowLight           = "Lighter shade compensates for low ambient lighting"
	reasonBrightLight        = "Darker shade works well with bright lighting"
)

// Recommendation is one suggested paint colour.
type Recommendation struct {
	Color      colour.RGB      `json:"color"`
	Lab        colour.LabColor `json:"lab"`
	Reason     string          `json:"reason"`
	Confidence float64         `json:"confidence"`
	Category   Category        `json:"category"`
}

// fromLab builds a recommendation for a derived LAB colour.
func fromLab(lab colour.LabColor, reason string, confidence float64, category Category) Recommendation {
	return Recommendation{
		Color:      lab.RGB(),
		Lab:        lab,
		Reason:     reason,
		Confidence: confidence,
		Category:   category,
	}
}

// RecommendOption customises a single Recommend call.
type RecommendOption func(*request)

type request struct {
	style *style.Style
}

// WithStyle adds a recommendation from the given style's palette.
func WithStyle(s style.Style) RecommendOption {
	return func(r *request) {
		r.style = &s
	}
}

// WithStyleName is WithStyle for a user-supplied name. Unknown names select Modern.
// An empty name adds no style recommendation.
func WithStyleName(name string) RecommendOption {
	return func(r *request) {
		if name == "" {
			r.style = nil
			return
		}
		s := style.Parse(name)
		r.style = &s
	}
}

func buildRequest(opts []RecommendOption) request {
	var r request
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Engine generates on-device recommendations. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	logger hclog.Logger
}

// NewEngine creates an Engine. A nil logger discards output.
func NewEngine(logger hclog.Logger) *Engine {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Engine{logger: logger.Named("recommend")}
}

// Recommend returns between one and MaxRecommendations colours for base, sorted by confidence
// with ties kept in generation order. Exactly one recommendation is complementary.
func (e *Engine) Recommend(base estimate.ColorInfo, room RoomContext, opts ...RecommendOption) []Recommendation {
	req := buildRequest(opts)
	lab := base.Lab

	candidates := make([]Recommendation, 0, 8)
	candidates = append(candidates, fromLab(colour.Complementary(lab), reasonComplementary, complementaryConfidence, CategoryComplementary))

	for i, c := range colour.Analogous(lab, len(analogousConfidence)) {
		candidates = append(candidates, fromLab(c, reasonAnalogous, analogousConfidence[i], CategoryAnalogous))
	}

	for _, c := range colour.Monochromatic(lab, 2) {
		candidates = append(candidates, fromLab(c, reasonMonochromatic, monochromaticConfidence, CategoryMonochromatic))
	}

	if req.style != nil {
		candidates = append(candidates, styleMatch(lab, *req.style))
	}

	switch {
	case room.LightingIntensity < lowLightThreshold:
		candidates = append(candidates, fromLab(colour.Lighten(lab, lightingShift), reasonLowLight, lightingConfidence, CategoryContrast))
	case room.LightingIntensity > brightLightThreshold:
		candidates = append(candidates, fromLab(colour.Darken(lab, lightingShift), reasonBrightLight, lightingConfidence, CategoryContrast))
	}

	// Lowest-ranked filler; it only survives truncation when no style or lighting entry was added.
	split := colour.SplitComplementary(lab)[0]
	candidates = append(candidates, fromLab(split, reasonSplitComplementary, splitComplementaryConfidence, CategorySplitComplementary))

	e.logger.Debug("generated candidates", "base", base.RGB.Hex(), "count", len(candidates),
		"lighting", room.LightingIntensity, "style", req.style != nil)

	return rank(candidates)
}

// styleMatch recommends the palette colour closest to lab.
func styleMatch(lab colour.LabColor, s style.Style) Recommendation {
	closest := style.FindClosest(lab, style.PaletteFor(s))
	return Recommendation{
		Color:      closest,
		Lab:        colour.RGBToLab(closest),
		Reason:     fmt.Sprintf("Matches %s style aesthetic", s.Title()),
		Confidence: styleConfidence,
		Category:   CategoryForStyle(s),
	}
}

// rank stable-sorts by descending confidence and truncates to MaxRecommendations.
func rank(recs []Recommendation) []Recommendation {
	slices.SortStableFunc(recs, func(a, b Recommendation) int {
		switch {
		case a.Confidence > b.Confidence:
			return -1
		case a.Confidence < b.Confidence:
			return 1
		default:
			return 0
		}
	})
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}
