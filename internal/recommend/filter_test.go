package recommend

import (
	"testing"

	"github.com/huehome/huecore/internal/colour"
	"github.com/huehome/huecore/internal/estimate"
)

func TestFilterByContrast(t *testing.T) {
	white := colour.NewLab(100, 0, 0)
	recs := []Recommendation{
		fromLab(colour.NewLab(0, 0, 0), "black", 0.9, CategoryContrast),
		fromLab(colour.NewLab(95, 0, 0), "near white", 0.8, CategoryMonochromatic),
		fromLab(colour.NewLab(50, 0, 0), "mid grey", 0.7, CategoryMonochromatic),
	}

	got := FilterByContrast(recs, white, DefaultFilterContrast)
	if len(got) != 2 {
		t.Fatalf("FilterByContrast() returned %d, want 2", len(got))
	}
	if got[0].Reason != "black" || got[1].Reason != "mid grey" {
		t.Errorf("FilterByContrast() = [%s, %s], want [black, mid grey]", got[0].Reason, got[1].Reason)
	}
}

func TestFilterByContrast_Properties(t *testing.T) {
	backgrounds := []colour.RGB{{}, {R: 255, G: 255, B: 255}, {R: 128, G: 128, B: 128}, {R: 200, G: 30, B: 30}}
	ratios := []float64{1, 1.5, DefaultFilterContrast, colour.DefaultMinContrast, 7}

	e := NewEngine(nil)
	recs := e.Recommend(estimate.NewColorInfo(colour.RGB{R: 90, G: 140, B: 200}, 0.9), roomWithLighting(0.2))
	for _, bg := range backgrounds {
		bgLab := colour.RGBToLab(bg)
		for _, ratio := range ratios {
			got := FilterByContrast(recs, bgLab, ratio)
			if len(got) > len(recs) {
				t.Errorf("FilterByContrast(%s, %.1f) returned %d of %d", bg, ratio, len(got), len(recs))
			}
			for _, r := range got {
				if colour.ContrastRatio(r.Lab, bgLab) < ratio {
					t.Errorf("FilterByContrast(%s, %.1f) kept %s", bg, ratio, r.Color)
				}
			}
		}
	}

	if got := FilterByContrast(recs, colour.NewLab(50, 0, 0), 1); len(got) != len(recs) {
		t.Errorf("FilterByContrast(ratio 1) returned %d, want all %d", len(got), len(recs))
	}
	if got := FilterByContrast(nil, colour.NewLab(50, 0, 0), 3); len(got) != 0 {
		t.Errorf("FilterByContrast(nil) returned %d, want 0", len(got))
	}
}
