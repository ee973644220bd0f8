package estimate

import (
	"fmt"
	"strings"

	"github.com/huehome/huecore/internal/colour"
)

// ColorInfo is the measured material colour of one surface region.
type ColorInfo struct {
	RGB        colour.RGB
	Lab        colour.LabColor
	Confidence float64
}

// NewColorInfo builds a ColorInfo for a known colour, such as one typed in by a user.
func NewColorInfo(rgb colour.RGB, confidence float64) ColorInfo {
	return ColorInfo{
		RGB:        rgb,
		Lab:        colour.RGBToLab(rgb),
		Confidence: colour.Clamp(confidence, 0, 1),
	}
}

// fallbackInfo is returned when a mask selects no pixels.
func fallbackInfo() ColorInfo {
	return NewColorInfo(colour.Grey, fallbackConfidence)
}

// SurfaceType identifies what kind of surface a mask covers.
type SurfaceType string

const (
	SurfaceWall    SurfaceType = "wall"
	SurfaceDoor    SurfaceType = "door"
	SurfaceWindow  SurfaceType = "window"
	SurfaceCeiling SurfaceType = "ceiling"
	SurfaceFloor   SurfaceType = "floor"
	SurfaceUnknown SurfaceType = "unknown"
)

// SurfaceTypes returns every known surface type.
func SurfaceTypes() []SurfaceType {
	return []SurfaceType{SurfaceWall, SurfaceDoor, SurfaceWindow, SurfaceCeiling, SurfaceFloor, SurfaceUnknown}
}

// ParseSurfaceType matches a surface name case-insensitively.
func ParseSurfaceType(name string) (SurfaceType, error) {
	n := SurfaceType(strings.ToLower(strings.TrimSpace(name)))
	for _, st := range SurfaceTypes() {
		if st == n {
			return st, nil
		}
	}
	return SurfaceUnknown, fmt.Errorf("unknown surface type: %s (valid: wall, door, window, ceiling, floor, unknown)", name)
}
