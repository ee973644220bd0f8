// Package style provides the fixed interior-design palettes and nearest-colour matching
// against them.
package style

import (
	"fmt"
	"strings"
)

// Style is an interior-design aesthetic with a curated palette.
type Style int

const (
	// Modern is clean and neutral with bold accents. It is also the fallback for unknown names.
	Modern Style = iota
	// Minimal is monochromatic with subtle variations.
	Minimal
	// Warm uses earthy, cosy tones.
	Warm
	// Luxury uses rich, sophisticated colours.
	Luxury
	// Scandinavian is light and airy with natural accents.
	Scandinavian
)

var styleNames = map[Style]string{
	Modern:       "modern",
	Minimal:      "minimal",
	Warm:         "warm",
	Luxury:       "luxury",
	Scandinavian: "scandinavian",
}

// String returns the lowercase style name.
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// Title returns the style name with a leading capital, as shown to users.
func (s Style) Title() string {
	name := s.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// All returns every style in declaration order.
func All() []Style {
	return []Style{Modern, Minimal, Warm, Luxury, Scandinavian}
}

// Names returns the lowercase names of every style.
func Names() []string {
	names := make([]string, 0, len(styleNames))
	for _, s := range All() {
		names = append(names, s.String())
	}
	return names
}

// Lookup matches a style name case-insensitively, reporting whether it was recognised.
func Lookup(name string) (Style, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, s := range All() {
		if s.String() == n {
			return s, true
		}
	}
	return Modern, false
}

// Parse matches a style name case-insensitively. Unrecognised names fall back to Modern.
func Parse(name string) Style {
	s, _ := Lookup(name)
	return s
}

// Set implements pflag.Value so a Style can be bound directly to a command-line flag.
// Unlike Parse, it rejects unknown names so typos surface to the user.
func (s *Style) Set(value string) error {
	parsed, ok := Lookup(value)
	if !ok {
		return fmt.Errorf("unknown style %q (valid: %s)", value, strings.Join(Names(), ", "))
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Style) Type() string {
	return "style"
}
