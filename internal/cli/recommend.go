package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/huehome/huecore/internal/colour"
	"github.com/huehome/huecore/internal/estimate"
	"github.com/huehome/huecore/internal/image"
	"github.com/huehome/huecore/internal/recommend"
	"github.com/huehome/huecore/internal/recommend/cloud"
	"github.com/huehome/huecore/internal/style"
)

var (
	// Recommend command flags
	recommendColour      string
	recommendFrame       string
	recommendMask        string
	recommendEstimator   estimatorFlags
	recommendStyle       string
	recommendMode        recommend.ProcessingMode
	recommendModel       string
	recommendBackend     string
	recommendBackground  string
	recommendMinContrast float64
	recommendFormat      string
	recommendOutput      string
	recommendContext     contextFlags
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend paint colours for a surface",
	Long: `Recommend alternative paint colours for a surface.

The base colour is either given directly with --color (hex or a colour name) or
measured from --frame and --mask. Recommendations combine colour theory
(complementary, analogous, monochromatic), an optional style palette and the
room's lighting, ranked by confidence.

Processing modes:
  on-device  colour theory only (default)
  cloud      suggestions from Gemini (requires GOOGLE_API_KEY or --backend vertex-ai)
  hybrid     on-device results plus any new cloud suggestions

Examples:
  # Recommend colours for a blue wall in a dim room
  huecore recommend --color "#0000ff" --lighting 0.2

  # Measure the wall first and prefer a Scandinavian palette
  huecore recommend --frame room.png --mask wall.png --style scandinavian

  # Keep only colours readable against white trim
  huecore recommend --color navy --background "#ffffff" --min-contrast 4.5

  # Blend in cloud suggestions
  huecore recommend --color "#8d6e63" --mode hybrid --format json`,
	Args:    cobra.NoArgs,
	PreRunE: validateRecommendInputs,
	RunE:    runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendColour, "color", "c", "", "base colour (hex or name)")
	recommendCmd.Flags().StringVar(&recommendFrame, "frame", "", "camera frame to measure the base colour from")
	recommendCmd.Flags().StringVar(&recommendMask, "mask", "", "mask selecting the surface in --frame")
	recommendCmd.Flags().StringVarP(&recommendStyle, "style", "s", "", "preferred style ("+strings.Join(style.Names(), ", ")+")")
	recommendCmd.Flags().Var(&recommendMode, "mode", "processing mode (on-device, cloud, hybrid)")
	recommendCmd.Flags().StringVar(&recommendModel, "model", cloud.DefaultModel, "Gemini model for cloud suggestions")
	recommendCmd.Flags().StringVar(&recommendBackend, "backend", cloud.DefaultBackend, "cloud backend (gemini-api, vertex-ai)")
	recommendCmd.Flags().StringVar(&recommendBackground, "background", "", "drop colours without enough contrast against this colour")
	recommendCmd.Flags().Float64Var(&recommendMinContrast, "min-contrast", recommend.DefaultFilterContrast, "minimum contrast ratio against --background")
	recommendCmd.Flags().StringVarP(&recommendFormat, "format", "f", formatText, "output format (text, json)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "output", "o", "", "output file (default: stdout)")
	addContextFlags(recommendCmd.Flags(), &recommendContext)
	addEstimatorFlags(recommendCmd.Flags(), &recommendEstimator)

	recommendCmd.MarkFlagsMutuallyExclusive("color", "frame")
	recommendCmd.MarkFlagsRequiredTogether("frame", "mask")
}

// validateRecommendInputs checks --frame and --mask before anything is fetched.
func validateRecommendInputs(_ *cobra.Command, _ []string) error {
	if recommendFrame != "" {
		if err := image.ValidateImagePath(recommendFrame); err != nil {
			return fmt.Errorf("invalid frame: %w", err)
		}
	}
	if recommendMask != "" {
		if err := image.ValidateImagePath(recommendMask); err != nil {
			return fmt.Errorf("invalid mask: %w", err)
		}
	}
	return nil
}

// runRecommend executes the recommend command.
func runRecommend(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(recommendFormat); err != nil {
		return err
	}
	room, err := recommendContext.roomContext()
	if err != nil {
		return fmt.Errorf("invalid room context: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	base, err := resolveBase(ctx, cmd)
	if err != nil {
		return err
	}
	logger.Debug("base colour", "hex", base.RGB.Hex(), "lab", base.Lab.String(), "confidence", base.Confidence)

	var opts []recommend.RecommendOption
	if recommendStyle != "" {
		if _, ok := style.Lookup(recommendStyle); !ok {
			infof(cmd, "Unknown style %q, using %s\n", recommendStyle, style.Modern)
		}
		opts = append(opts, recommend.WithStyleName(recommendStyle))
	}

	svc := recommend.NewService(recommend.NewEngine(logger), newSuggester(ctx, cmd), logger)
	recs, err := svc.Recommend(ctx, recommendMode, base, room, opts...)
	if err != nil {
		return fmt.Errorf("failed to recommend colours: %w", err)
	}

	if recommendBackground != "" {
		bg, err := colour.Parse(recommendBackground)
		if err != nil {
			return fmt.Errorf("invalid background colour: %w", err)
		}
		before := len(recs)
		recs = recommend.FilterByContrast(recs, colour.RGBToLab(bg), recommendMinContrast)
		logger.Debug("filtered by contrast", "background", bg.Hex(), "min", recommendMinContrast, "kept", len(recs), "of", before)
	}

	var output string
	switch recommendFormat {
	case formatJSON:
		output, err = formatRecommendationsJSON(base, recs)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
	default:
		output = formatRecommendationsText(base, recs)
	}
	return writeOutput(cmd, recommendOutput, output)
}

// resolveBase returns the base colour from --color, or measures it from --frame and --mask.
func resolveBase(ctx context.Context, cmd *cobra.Command) (estimate.ColorInfo, error) {
	if recommendColour != "" {
		rgb, err := colour.Parse(recommendColour)
		if err != nil {
			return estimate.ColorInfo{}, fmt.Errorf("invalid base colour: %w", err)
		}
		return estimate.NewColorInfo(rgb, 1), nil
	}
	if recommendFrame == "" {
		return estimate.ColorInfo{}, fmt.Errorf("either --color or --frame and --mask is required")
	}

	estimator, err := recommendEstimator.newEstimator()
	if err != nil {
		return estimate.ColorInfo{}, fmt.Errorf("failed to create estimator: %w", err)
	}
	loader := newLoader()
	info, err := estimator.EstimateFrom(ctx,
		image.FileFrameProvider{Path: recommendFrame, Loader: loader},
		image.FileMaskProvider{Path: recommendMask, Loader: loader})
	if err != nil {
		return estimate.ColorInfo{}, fmt.Errorf("failed to measure base colour: %w", err)
	}
	infof(cmd, "Measured base colour %s (confidence %.2f)\n", info.RGB.Hex(), info.Confidence)
	return info, nil
}

// newSuggester creates the cloud suggester when the mode needs one. In hybrid mode a
// configuration problem only disables cloud suggestions.
func newSuggester(ctx context.Context, cmd *cobra.Command) recommend.Suggester {
	if recommendMode == recommend.OnDevice {
		return nil
	}

	cfg := cloud.DefaultConfig()
	cfg.Model = recommendModel
	cfg.Backend = recommendBackend

	r, err := cloud.NewClient(ctx, cfg, logger)
	if err != nil {
		if recommendMode == recommend.Hybrid {
			infof(cmd, "Cloud suggestions unavailable (%v), using on-device results\n", err)
		}
		logger.Warn("cloud recommender unavailable", "error", err)
		return nil
	}
	return r
}

type recommendationJSON struct {
	Color      colour.ColorJSON   `json:"color"`
	Lab        colour.LabColor    `json:"lab"`
	Category   recommend.Category `json:"category"`
	Confidence float64            `json:"confidence"`
	Reason     string             `json:"reason"`
}

type baseJSON struct {
	Color      colour.ColorJSON `json:"color"`
	Lab        colour.LabColor  `json:"lab"`
	Confidence float64          `json:"confidence"`
}

type recommendOutputJSON struct {
	Base            baseJSON             `json:"base"`
	Mode            string               `json:"mode"`
	Recommendations []recommendationJSON `json:"recommendations"`
}

func formatRecommendationsJSON(base estimate.ColorInfo, recs []recommend.Recommendation) (string, error) {
	out := recommendOutputJSON{
		Base: baseJSON{
			Color:      base.RGB.JSON(),
			Lab:        base.Lab,
			Confidence: base.Confidence,
		},
		Mode:            recommendMode.String(),
		Recommendations: make([]recommendationJSON, len(recs)),
	}
	for i, r := range recs {
		out.Recommendations[i] = recommendationJSON{
			Color:      r.Color.JSON(),
			Lab:        r.Lab,
			Category:   r.Category,
			Confidence: r.Confidence,
			Reason:     r.Reason,
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func formatRecommendationsText(base estimate.ColorInfo, recs []recommend.Recommendation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Base: %s (lab %s, confidence %.2f)\n\n",
		colour.FormatColourWithPreview(base.RGB, 6), formatLab(base.Lab), base.Confidence)

	if len(recs) == 0 {
		sb.WriteString("No recommendations met the contrast requirement.\n")
		return sb.String()
	}

	table := NewTable([]string{"#", "Swatch", "Hex", "Category", "Confidence", "Reason"})
	table.SetColumnMaxWidth(5, 48)
	for i, r := range recs {
		table.AddRow([]string{
			fmt.Sprintf("%d", i+1),
			colour.ColourPreview(r.Color, 6),
			r.Color.Hex(),
			r.Category.String(),
			fmt.Sprintf("%.2f", r.Confidence),
			r.Reason,
		})
	}
	sb.WriteString(table.Render())
	return sb.String()
}
