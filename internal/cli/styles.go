package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/huehome/huecore/internal/colour"
	"github.com/huehome/huecore/internal/style"
)

var (
	// Styles command flags
	stylesFormat  string
	stylesClosest string
)

// stylesCmd represents the styles command
var stylesCmd = &cobra.Command{
	Use:   "styles [style]",
	Short: "List the interior style palettes",
	Long: `List the interior style palettes used for style recommendations.

With --closest, each palette also reports its colour nearest to the given one.

Examples:
  huecore styles
  huecore styles warm
  huecore styles --closest "#5a7d9a" --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStyles,
}

func init() {
	stylesCmd.Flags().StringVarP(&stylesFormat, "format", "f", formatText, "output format (text, json)")
	stylesCmd.Flags().StringVar(&stylesClosest, "closest", "", "find the nearest palette colour to this colour")
}

type styleJSON struct {
	Name    string   `json:"name"`
	Colours []string `json:"colours"`
	Closest string   `json:"closest,omitempty"`
}

// runStyles executes the styles command.
func runStyles(cmd *cobra.Command, args []string) error {
	if err := validateFormat(stylesFormat); err != nil {
		return err
	}

	styles := style.All()
	if len(args) == 1 {
		s, ok := style.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown style: %s (valid: %s)", args[0], strings.Join(style.Names(), ", "))
		}
		styles = []style.Style{s}
	}

	var target *colour.LabColor
	if stylesClosest != "" {
		rgb, err := colour.Parse(stylesClosest)
		if err != nil {
			return fmt.Errorf("invalid colour for --closest: %w", err)
		}
		lab := colour.RGBToLab(rgb)
		target = &lab
	}

	out := make([]styleJSON, 0, len(styles))
	for _, s := range styles {
		p := style.PaletteFor(s)
		entry := styleJSON{Name: s.String(), Colours: make([]string, len(p))}
		for i, c := range p {
			entry.Colours[i] = c.Hex()
		}
		if target != nil {
			entry.Closest = style.FindClosest(*target, p).Hex()
		}
		out = append(out, entry)
	}

	if stylesFormat == formatJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		return writeOutput(cmd, "", string(data)+"\n")
	}

	var sb strings.Builder
	for i, s := range styles {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(s.Title() + "\n")
		for _, c := range style.PaletteFor(s) {
			fmt.Fprintf(&sb, "  %s\n", colour.FormatColourWithPreview(c, 6))
		}
		if out[i].Closest != "" {
			fmt.Fprintf(&sb, "  closest: %s\n", out[i].Closest)
		}
	}
	return writeOutput(cmd, "", sb.String())
}
