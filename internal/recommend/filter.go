package recommend

import "github.com/huehome/huecore/internal/colour"

// DefaultFilterContrast is the minimum contrast ratio FilterByContrast callers normally use.
const DefaultFilterContrast = 3.0

// FilterByContrast returns the recommendations whose contrast against background is at least
// minRatio, in their original order.
func FilterByContrast(recs []Recommendation, background colour.LabColor, minRatio float64) []Recommendation {
	filtered := make([]Recommendation, 0, len(recs))
	for _, rec := range recs {
		if colour.ContrastRatio(rec.Lab, background) >= minRatio {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
