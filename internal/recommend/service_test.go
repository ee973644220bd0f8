package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/huehome/huecore/internal/colour"
	"github.com/huehome/huecore/internal/estimate"
	"github.com/huehome/huecore/internal/recommend/cloud"
	"github.com/huehome/huecore/internal/style"
)

type fakeSuggester struct {
	suggestions []cloud.Suggestion
	err         error
	got         cloud.Request
	calls       int
}

func (f *fakeSuggester) Suggest(_ context.Context, req cloud.Request) ([]cloud.Suggestion, error) {
	f.calls++
	f.got = req
	return f.suggestions, f.err
}

func TestService_OnDevice(t *testing.T) {
	fake := &fakeSuggester{}
	svc := NewService(nil, fake, nil)
	base := estimate.NewColorInfo(colour.RGB{B: 255}, 0.9)

	recs, err := svc.Recommend(context.Background(), OnDevice, base, DefaultRoomContext())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != MaxRecommendations {
		t.Errorf("Recommend() returned %d, want %d", len(recs), MaxRecommendations)
	}
	if fake.calls != 0 {
		t.Errorf("OnDevice called the suggester %d times, want 0", fake.calls)
	}
}

func TestService_Cloud(t *testing.T) {
	fake := &fakeSuggester{suggestions: []cloud.Suggestion{
		{Color: colour.RGB{R: 200, G: 180, B: 160}, Category: "warm", Reason: "Soft and warm", Confidence: 0.6},
		{Color: colour.RGB{R: 20, G: 40, B: 60}, Category: "split-complementary", Confidence: 1.4},
		{Color: colour.RGB{R: 90, G: 90, B: 90}, Category: "bogus", Reason: "Neutral", Confidence: 0.7},
	}}
	svc := NewService(NewEngine(nil), fake, nil)
	base := estimate.NewColorInfo(colour.RGB{R: 120, G: 60, B: 40}, 0.9)

	recs, err := svc.Recommend(context.Background(), Cloud, base, roomWithLighting(0.25), WithStyle(style.Luxury))
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if fake.got.Base != base.RGB || fake.got.Lighting != 0.25 || fake.got.Style != "luxury" || fake.got.Count != MaxRecommendations {
		t.Errorf("Suggest() request = %+v", fake.got)
	}
	if len(fake.got.Categories) != len(Categories()) {
		t.Fatalf("Suggest() request offers %d categories, want %d", len(fake.got.Categories), len(Categories()))
	}
	for i, c := range Categories() {
		if fake.got.Categories[i] != c.String() {
			t.Errorf("request category %d = %q, want %q", i, fake.got.Categories[i], c)
		}
	}

	want := []struct {
		category   Category
		confidence float64
	}{
		{CategorySplitComplementary, 1},
		{CategoryModern, 0.7},
		{CategoryWarm, 0.6},
	}
	if len(recs) != len(want) {
		t.Fatalf("Recommend() returned %d, want %d", len(recs), len(want))
	}
	for i, w := range want {
		if recs[i].Category != w.category || recs[i].Confidence != w.confidence {
			t.Errorf("Recommend()[%d] = %v %.2f, want %v %.2f", i, recs[i].Category, recs[i].Confidence, w.category, w.confidence)
		}
		if recs[i].Reason == "" {
			t.Errorf("Recommend()[%d] has an empty reason", i)
		}
		if recs[i].Lab != colour.RGBToLab(recs[i].Color) {
			t.Errorf("Recommend()[%d] lab = %s, want lab of %s", i, recs[i].Lab, recs[i].Color)
		}
	}
}

func TestService_CloudErrors(t *testing.T) {
	base := estimate.NewColorInfo(colour.Grey, 0.9)

	_, err := NewService(nil, nil, nil).Recommend(context.Background(), Cloud, base, DefaultRoomContext())
	if !errors.Is(err, ErrCloudUnavailable) {
		t.Errorf("Recommend(no suggester) error = %v, want ErrCloudUnavailable", err)
	}

	errBackend := errors.New("quota exceeded")
	_, err = NewService(nil, &fakeSuggester{err: errBackend}, nil).Recommend(context.Background(), Cloud, base, DefaultRoomContext())
	if !errors.Is(err, errBackend) {
		t.Errorf("Recommend(failing suggester) error = %v, want %v", err, errBackend)
	}

	_, err = NewService(nil, nil, nil).Recommend(context.Background(), ProcessingMode(42), base, DefaultRoomContext())
	if err == nil {
		t.Error("Recommend(unknown mode) error = nil, want error")
	}
}

func TestService_Hybrid(t *testing.T) {
	base := estimate.NewColorInfo(colour.RGB{B: 255}, 0.9)
	room := DefaultRoomContext()
	local := NewEngine(nil).Recommend(base, room)

	novel := colour.RGB{R: 250, G: 240, B: 200}
	fake := &fakeSuggester{suggestions: []cloud.Suggestion{
		{Color: local[0].Color, Category: "COMPLEMENTARY", Reason: "duplicate", Confidence: 0.99},
		{Color: novel, Category: "WARM", Reason: "Warm off-white", Confidence: 0.95},
	}}

	recs, err := NewService(nil, fake, nil).Recommend(context.Background(), Hybrid, base, room)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != MaxRecommendations {
		t.Fatalf("Recommend() returned %d, want %d", len(recs), MaxRecommendations)
	}
	if recs[0].Color != novel || recs[0].Category != CategoryWarm {
		t.Errorf("Recommend()[0] = %s %v, want %s WARM", recs[0].Color, recs[0].Category, novel)
	}
	if countCategory(recs, CategoryComplementary) != 1 {
		t.Errorf("Recommend() complementary entries = %d, want 1", countCategory(recs, CategoryComplementary))
	}
	for _, r := range recs {
		if r.Reason == "duplicate" {
			t.Error("Recommend() kept a cloud duplicate of an on-device colour")
		}
	}
}

func TestService_HybridFallback(t *testing.T) {
	base := estimate.NewColorInfo(colour.RGB{R: 40, G: 160, B: 90}, 0.9)
	room := roomWithLighting(0.9)
	local := NewEngine(nil).Recommend(base, room)

	for name, suggester := range map[string]Suggester{
		"failing": &fakeSuggester{err: errors.New("network down")},
		"none":    nil,
	} {
		t.Run(name, func(t *testing.T) {
			recs, err := NewService(nil, suggester, nil).Recommend(context.Background(), Hybrid, base, room)
			if err != nil {
				t.Fatalf("Recommend() error = %v, want nil", err)
			}
			if len(recs) != len(local) {
				t.Fatalf("Recommend() returned %d, want %d", len(recs), len(local))
			}
			for i := range recs {
				if recs[i] != local[i] {
					t.Errorf("Recommend()[%d] = %+v, want %+v", i, recs[i], local[i])
				}
			}
		})
	}
}

func TestParseProcessingMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ProcessingMode
		wantErr bool
	}{
		{"on-device", OnDevice, false},
		{"", OnDevice, false},
		{"LOCAL", OnDevice, false},
		{"cloud", Cloud, false},
		{" Hybrid ", Hybrid, false},
		{"edge", OnDevice, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProcessingMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProcessingMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseProcessingMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	var m ProcessingMode
	if err := m.Set("hybrid"); err != nil || m != Hybrid {
		t.Errorf("Set(hybrid) = %v, %v, want hybrid", m, err)
	}
	if err := m.Set("nope"); err == nil {
		t.Error("Set(nope) error = nil, want error")
	}
	if m.String() != "hybrid" {
		t.Errorf("String() = %q after failed Set, want hybrid", m.String())
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"COMPLEMENTARY", CategoryComplementary, false},
		{"split-complementary", CategorySplitComplementary, false},
		{"split complementary", CategorySplitComplementary, false},
		{" scandinavian ", CategoryScandinavian, false},
		{"pastel", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if len(Categories()) != 11 {
		t.Errorf("Categories() returned %d, want 11", len(Categories()))
	}
	if got := Category(99).String(); got != "Category(99)" {
		t.Errorf("Category(99).String() = %q", got)
	}
	for _, s := range style.All() {
		if got := CategoryForStyle(s).String(); got != strings.ToUpper(s.String()) {
			t.Errorf("CategoryForStyle(%v) = %s", s, got)
		}
	}
}


func TestRoomContext(t *testing.T) {
	room := DefaultRoomContext()
	if room.LightingIntensity != 0.5 || room.RoomSize != RoomMedium || room.LightingTint != [4]float64{1, 1, 1, 1} {
		t.Errorf("DefaultRoomContext() = %+v", room)
	}
	if err := room.Validate(); err != nil {
		t.Errorf("DefaultRoomContext().Validate() error = %v", err)
	}

	room.LightingIntensity = 1.2
	if err := room.Validate(); err == nil {
		t.Error("Validate(lighting 1.2) error = nil, want error")
	}

	for in, want := range map[string]RoomSize{"small": RoomSmall, "": RoomMedium, "LARGE": RoomLarge} {
		if got, err := ParseRoomSize(in); err != nil || got != want {
			t.Errorf("ParseRoomSize(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseRoomSize("huge"); err == nil {
		t.Error("ParseRoomSize(huge) error = nil, want error")
	}
}
