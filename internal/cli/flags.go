package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/huehome/huecore/internal/estimate"
	"github.com/huehome/huecore/internal/recommend"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// validateFormat checks an output format flag.
func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid: text, json)", format)
	}
}

// contextFlags holds the room description shared by commands that recommend colours.
type contextFlags struct {
	lighting    float64
	roomSize    string
	temperature float64
	walls       int
}

// addContextFlags registers the room context flags on fs.
func addContextFlags(fs *pflag.FlagSet, f *contextFlags) {
	defaults := recommend.DefaultRoomContext()
	fs.Float64VarP(&f.lighting, "lighting", "l", defaults.LightingIntensity, "ambient lighting intensity (0-1)")
	fs.StringVar(&f.roomSize, "room-size", defaults.RoomSize.String(), "room size (small, medium, large)")
	fs.Float64Var(&f.temperature, "temperature", defaults.ColorTemperature, "colour temperature of the light (0 cool - 1 warm)")
	fs.IntVar(&f.walls, "walls", 0, "number of walls being painted")
}

// roomContext builds and validates the room context from the flags.
func (f contextFlags) roomContext() (recommend.RoomContext, error) {
	room := recommend.DefaultRoomContext()
	size, err := recommend.ParseRoomSize(f.roomSize)
	if err != nil {
		return room, err
	}
	room.LightingIntensity = f.lighting
	room.RoomSize = size
	room.ColorTemperature = f.temperature
	room.WallCount = f.walls
	if err := room.Validate(); err != nil {
		return room, err
	}
	return room, nil
}

// estimatorFlags holds the colour estimator settings of a command.
type estimatorFlags struct {
	fs         *pflag.FlagSet
	seed       int64
	maxSamples int
}

// addEstimatorFlags registers the estimator flags on fs.
func addEstimatorFlags(fs *pflag.FlagSet, f *estimatorFlags) {
	f.fs = fs
	fs.Int64Var(&f.seed, "seed", 0, "clustering seed (default: derived from the pixels)")
	fs.IntVar(&f.maxSamples, "max-samples", 0, "maximum pixels to cluster per region (0 = all)")
}

// newEstimator builds an estimator from the flags. The seed is pinned only when --seed was given.
func (f *estimatorFlags) newEstimator() (*estimate.Estimator, error) {
	opts := estimate.DefaultOptions()
	opts.Logger = logger
	opts.MaxSamples = f.maxSamples
	if f.fs != nil && f.fs.Changed("seed") {
		seed := f.seed
		opts.Seed = &seed
	}
	return estimate.New(opts)
}
