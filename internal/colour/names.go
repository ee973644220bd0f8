package colour

import (
	"strings"

	"golang.org/x/image/colornames"
)

// paintColours are common paint names missing from the SVG colour set.
var paintColours = map[string]RGB{
	"charcoal":   {66, 66, 66},
	"offwhite":   {250, 249, 246},
	"sage":       {188, 184, 138},
	"terracotta": {226, 114, 91},
}

// normaliseName lowercases and strips spaces and dashes.
func normaliseName(name string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.TrimSpace(name)))
}

// Named looks up a colour by SVG/CSS name or common paint name. Matching is
// case-insensitive and ignores spaces, dashes and underscores.
func Named(name string) (RGB, bool) {
	n := normaliseName(name)
	if c, ok := colornames.Map[n]; ok {
		return RGB{R: c.R, G: c.G, B: c.B}, true
	}
	rgb, ok := paintColours[n]
	return rgb, ok
}

// ColourNames returns every supported colour name.
func ColourNames() []string {
	names := make([]string, 0, len(colornames.Names)+len(paintColours))
	names = append(names, colornames.Names...)
	for name := range paintColours {
		names = append(names, name)
	}
	return names
}

// Parse accepts either a colour name or a hex string.
func Parse(s string) (RGB, error) {
	if rgb, ok := Named(s); ok {
		return rgb, nil
	}
	return ParseHex(s)
}
