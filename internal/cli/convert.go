package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/huehome/huecore/internal/colour"
)

var (
	// Convert command flags
	convertFormat    string
	convertHarmonies bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <colour>",
	Short: "Convert a colour between sRGB and CIE LAB",
	Long: `Convert a colour between sRGB and CIE LAB (D65).

The colour may be a hex value (#rrggbb or #rgb), a colour name, or LAB
coordinates written as L,a,b.

Examples:
  huecore convert "#3498db"
  huecore convert 32.3,79.2,-107.9
  huecore convert teal --harmonies`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", formatText, "output format (text, json)")
	convertCmd.Flags().BoolVar(&convertHarmonies, "harmonies", false, "also show colour-wheel harmonies")
}

// parseColourArg parses a hex value, colour name or "L,a,b" triple.
func parseColourArg(s string) (colour.LabColor, error) {
	if !strings.Contains(s, ",") {
		rgb, err := colour.Parse(s)
		if err != nil {
			return colour.LabColor{}, err
		}
		return colour.RGBToLab(rgb), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return colour.LabColor{}, fmt.Errorf("invalid LAB colour %q: expected L,a,b", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return colour.LabColor{}, fmt.Errorf("invalid LAB component %q: %w", p, err)
		}
		v[i] = f
	}
	if v[0] < 0 || v[0] > 100 {
		return colour.LabColor{}, fmt.Errorf("invalid LAB lightness %v: must be between 0 and 100", v[0])
	}
	return colour.NewLab(v[0], v[1], v[2]), nil
}

type harmony struct {
	name    string
	colours []colour.LabColor
}

func harmoniesOf(c colour.LabColor) []harmony {
	return []harmony{
		{"complementary", []colour.LabColor{colour.Complementary(c)}},
		{"analogous", colour.Analogous(c, 2)},
		{"triadic", colour.Triadic(c)},
		{"split-complementary", colour.SplitComplementary(c)},
		{"monochromatic", colour.Monochromatic(c, 4)},
	}
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	if err := validateFormat(convertFormat); err != nil {
		return err
	}
	lab, err := parseColourArg(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse colour: %w", err)
	}

	var output string
	if convertFormat == formatJSON {
		output, err = formatConvertJSON(lab)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
	} else {
		output = formatConvertText(lab)
	}
	return writeOutput(cmd, "", output)
}

type convertJSON struct {
	colour.ColorJSON
	Lab       colour.LabColor     `json:"lab"`
	Chroma    float64             `json:"chroma"`
	Hue       float64             `json:"hue"`
	Harmonies map[string][]string `json:"harmonies,omitempty"`
}

func formatConvertJSON(lab colour.LabColor) (string, error) {
	out := convertJSON{
		ColorJSON: lab.RGB().JSON(),
		Lab:       lab,
		Chroma:    colour.Chroma(lab),
		Hue:       colour.Hue(lab),
	}
	if convertHarmonies {
		out.Harmonies = make(map[string][]string)
		for _, h := range harmoniesOf(lab) {
			for _, c := range h.colours {
				out.Harmonies[h.name] = append(out.Harmonies[h.name], c.RGB().Hex())
			}
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func formatConvertText(lab colour.LabColor) string {
	rgb := lab.RGB()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", colour.ColourPreviewWithText(rgb, rgb.Hex(), 12))
	fmt.Fprintf(&sb, "hex:    %s\n", rgb.Hex())
	fmt.Fprintf(&sb, "rgb:    %s\n", rgb)
	fmt.Fprintf(&sb, "packed: 0x%06X\n", rgb.Packed())
	fmt.Fprintf(&sb, "lab:    %s\n", lab)
	fmt.Fprintf(&sb, "lch:    lch(%.2f, %.2f, %.1f)\n", lab.L, colour.Chroma(lab), colour.Hue(lab))

	if convertHarmonies {
		sb.WriteString("\n")
		table := NewTable([]string{"Harmony", "Colours"})
		for _, h := range harmoniesOf(lab) {
			cells := make([]string, len(h.colours))
			for i, c := range h.colours {
				cells[i] = colour.FormatColourWithPreview(c.RGB(), 4)
			}
			table.AddRow([]string{h.name, strings.Join(cells, "  ")})
		}
		sb.WriteString(table.Render())
	}
	return sb.String()
}
