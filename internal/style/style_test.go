package style

import (
	"testing"

	"github.com/huehome/huecore/internal/colour"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Style
		wantKnown bool
	}{
		{name: "lowercase", input: "warm", want: Warm, wantKnown: true},
		{name: "title case", input: "Scandinavian", want: Scandinavian, wantKnown: true},
		{name: "upper case with space", input: " LUXURY ", want: Luxury, wantKnown: true},
		{name: "minimal", input: "minimal", want: Minimal, wantKnown: true},
		{name: "unknown falls back", input: "art-deco", want: Modern, wantKnown: false},
		{name: "empty falls back", input: "", want: Modern, wantKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.input); got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if _, known := Lookup(tt.input); known != tt.wantKnown {
				t.Errorf("Lookup(%q) known = %v, want %v", tt.input, known, tt.wantKnown)
			}
		})
	}
}

func TestStyleFlagValue(t *testing.T) {
	var s Style
	if err := s.Set("Warm"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if s != Warm {
		t.Errorf("Set(Warm) = %v, want warm", s)
	}
	if err := s.Set("gothic"); err == nil {
		t.Error("Set(gothic) expected error")
	}
	if s.Type() != "style" {
		t.Errorf("Type() = %s, want style", s.Type())
	}
}

func TestStyleStrings(t *testing.T) {
	if got := Scandinavian.Title(); got != "Scandinavian" {
		t.Errorf("Title() = %s, want Scandinavian", got)
	}
	if got := Style(42).String(); got != "unknown" {
		t.Errorf("String() = %s, want unknown", got)
	}
	if got := len(Names()); got != 5 {
		t.Errorf("Names() returned %d names, want 5", got)
	}
}

func TestPalettes(t *testing.T) {
	for _, s := range All() {
		t.Run(s.String(), func(t *testing.T) {
			if got := len(PaletteFor(s)); got != 6 {
				t.Errorf("PaletteFor(%v) has %d colours, want 6", s, got)
			}
		})
	}

	if got := PaletteFor(Parse("unknown"))[1]; got != colour.FromPacked(0x2C3E50) {
		t.Errorf("PaletteFor(Parse(unknown))[1] = %s, want modern #2c3e50", got.Hex())
	}
	if got := PaletteFor(Style(99)); len(got) != 6 || got[3] != colour.FromPacked(0x3498DB) {
		t.Errorf("PaletteFor(invalid) = %v, want modern palette", got)
	}
}

func TestPaletteForReturnsCopy(t *testing.T) {
	p := PaletteFor(Warm)
	p[0] = colour.RGB{}
	if PaletteFor(Warm)[0] != colour.FromPacked(0xFFF8E1) {
		t.Error("mutating a returned palette changed the shared palette")
	}
}

func TestFindClosest(t *testing.T) {
	tests := []struct {
		name    string
		input   colour.RGB
		palette Palette
		want    colour.RGB
	}{
		{
			name:    "exact match",
			input:   colour.FromPacked(0xD4AF37),
			palette: PaletteFor(Luxury),
			want:    colour.FromPacked(0xD4AF37),
		},
		{
			name:    "pure blue nearest bright blue",
			input:   colour.RGB{B: 255},
			palette: PaletteFor(Modern),
			want:    colour.FromPacked(0x3498DB),
		},
		{
			name:    "near black nearest charcoal",
			input:   colour.RGB{R: 10, G: 10, B: 10},
			palette: PaletteFor(Minimal),
			want:    colour.FromPacked(0x424242),
		},
		{
			name:    "tie keeps first occurrence",
			input:   colour.RGB{R: 255, G: 255, B: 255},
			palette: Palette{colour.FromPacked(0xFFFFFF), colour.FromPacked(0xFFFFFF)},
			want:    colour.FromPacked(0xFFFFFF),
		},
		{
			name:    "empty palette",
			input:   colour.RGB{R: 1},
			palette: Palette{},
			want:    colour.Grey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindClosest(colour.RGBToLab(tt.input), tt.palette)
			if got != tt.want {
				t.Errorf("FindClosest(%s) = %s, want %s", tt.input.Hex(), got.Hex(), tt.want.Hex())
			}
		})
	}
}

func TestFindClosestDuplicateEntries(t *testing.T) {
	// Luxury lists pure white last and slate (shared with Modern) fourth; a white input must
	// resolve to the white entry, not an earlier, farther one.
	got := FindClosest(colour.RGBToLab(colour.RGB{R: 250, G: 250, B: 250}), PaletteFor(Luxury))
	if got != colour.FromPacked(0xFFFFFF) {
		t.Errorf("FindClosest() = %s, want #ffffff", got.Hex())
	}
}
