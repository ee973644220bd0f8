package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/huehome/huecore/internal/colour"
	"github.com/huehome/huecore/internal/estimate"
	"github.com/huehome/huecore/internal/image"
)

var (
	// Detect command flags
	detectMasks     []string
	detectSurface   string
	detectEstimator estimatorFlags
	detectFormat    string
	detectOutput    string
)

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect <frame>",
	Short: "Measure the material colour of masked surfaces",
	Long: `Measure the true colour of one or more surfaces in a camera frame.

Each mask selects a surface: non-zero pixels (or non-zero alpha) are part of it.
Shadows and highlights are discounted before the dominant colour is chosen.
Masks may be labelled as name=path; a label that is a surface type (wall, door,
window, ceiling, floor) also sets the surface.

Frames and masks may be local files (JPEG, PNG, GIF, WebP) or HTTP(S) URLs.

Examples:
  # Measure a wall
  huecore detect room.png --mask wall.png

  # Measure several surfaces at once
  huecore detect room.png --mask wall=wall.png --mask door=door.png

  # Output JSON with a pinned clustering seed
  huecore detect room.png --mask wall.png --seed 42 --format json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateDetectInputs,
	RunE:    runDetect,
}

func init() {
	detectCmd.Flags().StringArrayVarP(&detectMasks, "mask", "m", nil, "mask image, optionally labelled as name=path (repeatable)")
	detectCmd.Flags().StringVarP(&detectSurface, "surface", "s", string(estimate.SurfaceWall), "surface type for unlabelled masks")
	addEstimatorFlags(detectCmd.Flags(), &detectEstimator)
	detectCmd.Flags().StringVarP(&detectFormat, "format", "f", formatText, "output format (text, json)")
	detectCmd.Flags().StringVarP(&detectOutput, "output", "o", "", "output file (default: stdout)")
	_ = detectCmd.MarkFlagRequired("mask")
}

// maskSpec is a parsed --mask value.
type maskSpec struct {
	name    string
	surface estimate.SurfaceType
	path    string
}

// parseMaskSpec splits "[name=]path". A name that is a surface type also sets the surface.
func parseMaskSpec(spec string, fallback estimate.SurfaceType) maskSpec {
	if name, path, ok := strings.Cut(spec, "="); ok && name != "" && !strings.ContainsAny(name, `/\:.`) {
		surface := fallback
		if st, err := estimate.ParseSurfaceType(name); err == nil {
			surface = st
		}
		return maskSpec{name: name, surface: surface, path: path}
	}
	return maskSpec{name: string(fallback), surface: fallback, path: spec}
}

// validateDetectInputs checks the frame and mask paths before anything is fetched.
func validateDetectInputs(_ *cobra.Command, args []string) error {
	if err := image.ValidateImagePath(args[0]); err != nil {
		return fmt.Errorf("invalid frame: %w", err)
	}
	for _, raw := range detectMasks {
		spec := parseMaskSpec(raw, estimate.SurfaceWall)
		if err := image.ValidateImagePath(spec.path); err != nil {
			return fmt.Errorf("invalid mask %q: %w", spec.name, err)
		}
	}
	return nil
}

// runDetect executes the detect command.
func runDetect(cmd *cobra.Command, args []string) error {
	if err := validateFormat(detectFormat); err != nil {
		return err
	}
	surface, err := estimate.ParseSurfaceType(detectSurface)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loader := newLoader()
	frame, err := loader.Load(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load frame: %w", err)
	}
	logger.Debug("loaded frame", "path", args[0], "bounds", frame.Bounds())

	regions := make([]estimate.Region, 0, len(detectMasks))
	for _, raw := range detectMasks {
		spec := parseMaskSpec(raw, surface)
		mask, err := loader.Load(ctx, spec.path)
		if err != nil {
			return fmt.Errorf("failed to load mask %q: %w", spec.name, err)
		}
		regions = append(regions, estimate.Region{Name: spec.name, Surface: spec.surface, Mask: mask})
	}

	estimator, err := detectEstimator.newEstimator()
	if err != nil {
		return fmt.Errorf("failed to create estimator: %w", err)
	}

	results, err := estimator.EstimateRegions(ctx, frame, regions)
	if err != nil {
		return fmt.Errorf("failed to estimate colours: %w", err)
	}

	var failed []error
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r.Err)
		}
	}
	if len(failed) == len(results) {
		return fmt.Errorf("failed to estimate colours: %w", errors.Join(failed...))
	}

	var output string
	switch detectFormat {
	case formatJSON:
		output, err = formatRegionsJSON(results)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
	default:
		output = formatRegionsText(results)
	}
	if err := writeOutput(cmd, detectOutput, output); err != nil {
		return err
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d regions failed: %w", len(failed), len(results), errors.Join(failed...))
	}
	return nil
}

type regionJSON struct {
	Name       string               `json:"name"`
	Surface    estimate.SurfaceType `json:"surface"`
	Color      *colour.ColorJSON    `json:"color,omitempty"`
	Lab        *colour.LabColor     `json:"lab,omitempty"`
	Confidence float64              `json:"confidence,omitempty"`
	Error      string               `json:"error,omitempty"`
}

func formatRegionsJSON(results []estimate.RegionResult) (string, error) {
	out := make([]regionJSON, len(results))
	for i, r := range results {
		out[i] = regionJSON{Name: r.Region.Name, Surface: r.Region.Surface}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
			continue
		}
		c := r.Info.RGB.JSON()
		lab := r.Info.Lab
		out[i].Color = &c
		out[i].Lab = &lab
		out[i].Confidence = r.Info.Confidence
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func formatRegionsText(results []estimate.RegionResult) string {
	table := NewTable([]string{"Region", "Surface", "Swatch", "Hex", "Lab", "Confidence"})
	for _, r := range results {
		if r.Err != nil {
			table.AddRow([]string{r.Region.Name, string(r.Region.Surface), "", "", "error: " + r.Err.Error(), ""})
			continue
		}
		table.AddRow([]string{
			r.Region.Name,
			string(r.Region.Surface),
			colour.ColourPreview(r.Info.RGB, 6),
			r.Info.RGB.Hex(),
			formatLab(r.Info.Lab),
			fmt.Sprintf("%.2f", r.Info.Confidence),
		})
	}
	return table.Render()
}

// formatLab renders LAB coordinates compactly for tables.
func formatLab(c colour.LabColor) string {
	return fmt.Sprintf("%.1f, %.1f, %.1f", c.L, c.A, c.B)
}
