package colour

import (
	"fmt"
	"strings"
)

const (
	ansiReset         = "\033[0m"
	ansiForeground    = 38
	ansiBackground    = 48
	defaultSwatchSize = 8
)

// DisableColourOutput turns every preview helper into plain text.
var DisableColourOutput = false

// sgr returns the 24-bit SGR escape selecting c as the foreground or background colour.
func sgr(layer int, c RGB) string {
	return fmt.Sprintf("\033[%d;2;%d;%d;%dm", layer, c.R, c.G, c.B)
}

// ColourPreview renders a solid swatch of c, width cells wide.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultSwatchSize
	}
	block := strings.Repeat(" ", width)
	if DisableColourOutput {
		return block
	}
	return sgr(ansiBackground, c) + block + ansiReset
}

// ColourPreviewWithText renders a swatch of c with text centred on it, in black or white
// depending on which reads better.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultSwatchSize
	}

	label := text
	switch {
	case len(label) > width:
		label = label[:width]
	case len(label) < width:
		left := (width - len(label)) / 2
		label = strings.Repeat(" ", left) + label + strings.Repeat(" ", width-len(label)-left)
	}
	if DisableColourOutput {
		return label
	}

	ink := RGB{}
	if Luminance(c) <= 0.5 {
		ink = RGB{R: 255, G: 255, B: 255}
	}
	return sgr(ansiBackground, c) + sgr(ansiForeground, ink) + label + ansiReset
}

// FormatColourWithPreview returns a swatch followed by the hex code.
func FormatColourWithPreview(rgb RGB, width int) string {
	return ColourPreview(rgb, width) + " " + rgb.Hex()
}
