package colour

import "math"

// DefaultMinContrast is the WCAG AA ratio for normal text.
const DefaultMinContrast = 4.5

// analogousStep is the hue rotation between successive analogous colours.
const analogousStep = 30.0

// monochromaticRange is the maximum lightness offset applied by Monochromatic.
const monochromaticRange = 20.0

// Rotate turns the colour around the neutral axis of the a/b plane by the given number of
// degrees. Lightness is preserved.
func Rotate(c LabColor, degrees float64) LabColor {
	theta := degrees * math.Pi / 180
	sin, cos := math.Sincos(theta)
	a := c.A*cos - c.B*sin
	b := c.A*sin + c.B*cos
	return NewLab(c.L, a, b)
}

// Complementary returns the colour opposite c on the wheel by negating both chromatic axes.
func Complementary(c LabColor) LabColor {
	return NewLab(c.L, -c.A, -c.B)
}

// Analogous returns count colours rotated by 30°, 60°, ... from c.
func Analogous(c LabColor, count int) []LabColor {
	colours := make([]LabColor, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		colours = append(colours, Rotate(c, analogousStep*float64(i)))
	}
	return colours
}

// Triadic returns the two colours 120° and 240° around the wheel from c.
func Triadic(c LabColor) []LabColor {
	return []LabColor{Rotate(c, 120), Rotate(c, 240)}
}

// SplitComplementary returns the two neighbours of the complement, at 150° and 210°.
func SplitComplementary(c LabColor) []LabColor {
	return []LabColor{Rotate(c, 150), Rotate(c, 210)}
}

// Monochromatic returns count variations of c that differ only in lightness, spread evenly
// across ±20 L around the input colour.
func Monochromatic(c LabColor, count int) []LabColor {
	colours := make([]LabColor, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		factor := float64(i) / float64(count+1)
		l := clamp(c.L+monochromaticRange*(factor-0.5)*2, 0, 100)
		colours = append(colours, NewLab(l, c.A, c.B))
	}
	return colours
}

// Lighten raises L by amount, clamped to 100.
func Lighten(c LabColor, amount float64) LabColor {
	return NewLab(clamp(c.L+amount, 0, 100), c.A, c.B)
}

// Darken lowers L by amount, clamped to 0.
func Darken(c LabColor, amount float64) LabColor {
	return NewLab(clamp(c.L-amount, 0, 100), c.A, c.B)
}

// ContrastRatio calculates the WCAG contrast ratio between two colours from their
// lightness. L* is expanded back to relative luminance Y before the WCAG formula is applied,
// so the ratio runs from 1 (equal lightness) to 21 (white against black).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 LabColor) float64 {
	y1 := RelativeLuminance(c1)
	y2 := RelativeLuminance(c2)

	// Ensure y1 is the lighter colour.
	if y1 < y2 {
		y1, y2 = y2, y1
	}

	return (y1 + 0.05) / (y2 + 0.05)
}

// RelativeLuminance returns Y in [0, 1] for the colour's L*, the inverse of the L* companding.
func RelativeLuminance(c LabColor) float64 {
	return clamp(labFInv((clamp(c.L, 0, 100)+16.0)/116.0)*whiteY, 0, 1)
}

// HasSufficientContrast reports whether the pair reaches minRatio.
// Pass DefaultMinContrast for the WCAG AA text threshold.
func HasSufficientContrast(c1, c2 LabColor, minRatio float64) bool {
	return ContrastRatio(c1, c2) >= minRatio
}
