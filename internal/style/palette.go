package style

import (
	"math"

	"github.com/huehome/huecore/internal/colour"
)

// Palette is an ordered set of colours. Order matters: FindClosest breaks ties by position.
type Palette []colour.RGB

var palettes = map[Style][]uint32{
	Modern: {
		0xFFFFFF, // Pure white
		0x2C3E50, // Dark blue grey
		0xECF0F1, // Light grey
		0x3498DB, // Bright blue
		0xE74C3C, // Red accent
		0x95A5A6, // Medium grey
	},
	Minimal: {
		0xFAFAFA, // Off white
		0xF5F5F5, // Light grey
		0xEEEEEE, // Lighter grey
		0xBDBDBD, // Medium grey
		0x757575, // Dark grey
		0x424242, // Charcoal
	},
	Warm: {
		0xFFF8E1, // Cream
		0xFFE0B2, // Light peach
		0xD7CCC8, // Warm beige
		0xBCAAA4, // Taupe
		0x8D6E63, // Brown
		0xFF8A65, // Coral
	},
	Luxury: {
		0x1A1A2E, // Deep navy
		0x16213E, // Dark blue
		0xD4AF37, // Gold
		0x2C3E50, // Slate
		0x8B4513, // Saddle brown
		0xFFFFFF, // Pure white
	},
	Scandinavian: {
		0xFFFFFF, // White
		0xF5F5DC, // Beige
		0xD3D3D3, // Light grey
		0x8B7355, // Natural wood
		0x2F4F4F, // Dark slate grey
		0xB0C4DE, // Light steel blue
	},
}

// PaletteFor returns a copy of the style's palette. Unknown styles get the Modern palette.
func PaletteFor(s Style) Palette {
	packed, ok := palettes[s]
	if !ok {
		packed = palettes[Modern]
	}
	p := make(Palette, len(packed))
	for i, v := range packed {
		p[i] = colour.FromPacked(v)
	}
	return p
}

// FindClosest returns the palette colour nearest to c by Euclidean LAB distance.
// The first of several equally distant colours wins. An empty palette yields mid-grey.
func FindClosest(c colour.LabColor, p Palette) colour.RGB {
	if len(p) == 0 {
		return colour.Grey
	}

	closest := p[0]
	minDistance := math.MaxFloat64
	for _, candidate := range p {
		d := colour.Distance(c, colour.RGBToLab(candidate))
		if d < minDistance {
			minDistance = d
			closest = candidate
		}
	}
	return closest
}
