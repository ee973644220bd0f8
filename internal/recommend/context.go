package recommend

import (
	"fmt"
	"strings"

	"github.com/huehome/huecore/internal/colour"
)

// RoomSize is the approximate size of the room being painted.
type RoomSize int

const (
	RoomSmall RoomSize = iota
	RoomMedium
	RoomLarge
)

func (s RoomSize) String() string {
	switch s {
	case RoomSmall:
		return "small"
	case RoomMedium:
		return "medium"
	case RoomLarge:
		return "large"
	default:
		return fmt.Sprintf("RoomSize(%d)", int(s))
	}
}

// ParseRoomSize parses "small", "medium" or "large".
func ParseRoomSize(name string) (RoomSize, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "small":
		return RoomSmall, nil
	case "medium", "":
		return RoomMedium, nil
	case "large":
		return RoomLarge, nil
	default:
		return RoomMedium, fmt.Errorf("unknown room size: %s (valid: small, medium, large)", name)
	}
}

// RoomContext describes the scene a recommendation is made for. Only LightingIntensity
// currently changes the result; the remaining fields are accepted so scene layers can pass
// everything they know.
type RoomContext struct {
	// LightingIntensity is the ambient light level in [0, 1].
	LightingIntensity float64 `json:"lightingIntensity"`

	// LightingTint is the RGBA colour correction reported by light estimation.
	LightingTint [4]float64 `json:"lightingTint"`

	RoomSize         RoomSize     `json:"roomSize"`
	ColorTemperature float64      `json:"colorTemperature"`
	WallCount        int          `json:"wallCount"`
	ExistingColors   []colour.RGB `json:"existingColors,omitempty"`
}

// DefaultRoomContext returns a neutral, medium-lit room.
func DefaultRoomContext() RoomContext {
	return RoomContext{
		LightingIntensity: 0.5,
		LightingTint:      [4]float64{1, 1, 1, 1},
		RoomSize:          RoomMedium,
		ColorTemperature:  0.5,
	}
}

// Validate checks that the normalised fields lie in [0, 1].
func (c RoomContext) Validate() error {
	if c.LightingIntensity < 0 || c.LightingIntensity > 1 {
		return fmt.Errorf("lighting intensity must be between 0 and 1, got %v", c.LightingIntensity)
	}
	if c.ColorTemperature < 0 || c.ColorTemperature > 1 {
		return fmt.Errorf("colour temperature must be between 0 and 1, got %v", c.ColorTemperature)
	}
	if c.WallCount < 0 {
		return fmt.Errorf("wall count must not be negative, got %d", c.WallCount)
	}
	return nil
}
