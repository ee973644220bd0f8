package recommend

import (
	"fmt"
	"strings"

	"github.com/huehome/huecore/internal/style"
)

// Category classifies how a recommendation was derived.
type Category int

const (
	CategoryComplementary Category = iota
	CategoryAnalogous
	CategoryTriadic
	CategoryMonochromatic
	CategorySplitComplementary
	CategoryContrast
	CategoryModern
	CategoryMinimal
	CategoryWarm
	CategoryLuxury
	CategoryScandinavian
)

var categoryNames = [...]string{
	CategoryComplementary:      "COMPLEMENTARY",
	CategoryAnalogous:          "ANALOGOUS",
	CategoryTriadic:            "TRIADIC",
	CategoryMonochromatic:      "MONOCHROMATIC",
	CategorySplitComplementary: "SPLIT_COMPLEMENTARY",
	CategoryContrast:           "CONTRAST",
	CategoryModern:             "MODERN",
	CategoryMinimal:            "MINIMAL",
	CategoryWarm:               "WARM",
	CategoryLuxury:             "LUXURY",
	CategoryScandinavian:       "SCANDINAVIAN",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	all := make([]Category, len(categoryNames))
	for i := range categoryNames {
		all[i] = Category(i)
	}
	return all
}

// categoryLabels returns the name of every category in declaration order.
func categoryLabels() []string {
	all := Categories()
	labels := make([]string, len(all))
	for i, c := range all {
		labels[i] = c.String()
	}
	return labels
}

// String returns the upper snake case category name.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory matches a category name case-insensitively. Hyphens and spaces are accepted
// in place of underscores.
func ParseCategory(name string) (Category, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "_", " ", "_").Replace(n)
	for i, candidate := range categoryNames {
		if candidate == n {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown recommendation category: %q", name)
}

// MarshalText encodes the category as its name, so JSON output carries "COMPLEMENTARY" and so on.
func (c Category) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(categoryNames) {
		return nil, fmt.Errorf("invalid recommendation category: %d", int(c))
	}
	return []byte(categoryNames[c]), nil
}

// UnmarshalText decodes a category name.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CategoryForStyle returns the category used for a style palette match.
func CategoryForStyle(s style.Style) Category {
	switch s {
	case style.Minimal:
		return CategoryMinimal
	case style.Warm:
		return CategoryWarm
	case style.Luxury:
		return CategoryLuxury
	case style.Scandinavian:
		return CategoryScandinavian
	default:
		return CategoryModern
	}
}
