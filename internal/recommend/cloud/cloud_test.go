package cloud

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/huehome/huecore/internal/colour"
)

type fakeGenerator struct {
	text   string
	err    error
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.config = config
	for _, c := range contents {
		for _, p := range c.Parts {
			f.prompt += p.Text
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}},
		}},
	}, nil
}

func TestSuggest(t *testing.T) {
	gen := &fakeGenerator{text: `[
		{"color": "#F5F5DC", "category": "SCANDINAVIAN", "reason": "Calm beige", "confidence": 0.8},
		{"color": "not a colour", "category": "WARM", "reason": "broken", "confidence": 0.9},
		{"color": "2c3e50", "category": "modern", "reason": " Deep navy ", "confidence": 1.7}
	]`}
	r := New(gen, "", nil)

	got, err := r.Suggest(context.Background(), Request{
		Base:       colour.RGB{R: 200, G: 100, B: 50},
		Lighting:   0.2,
		Style:      "scandinavian",
		Count:      4,
		Categories: []string{"WARM", "SCANDINAVIAN"},
	})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	want := []Suggestion{
		{Color: colour.FromPacked(0xF5F5DC), Category: "SCANDINAVIAN", Reason: "Calm beige", Confidence: 0.8},
		{Color: colour.FromPacked(0x2C3E50), Category: "modern", Reason: "Deep navy", Confidence: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("Suggest() returned %d suggestions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Suggest()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if gen.model != DefaultModel {
		t.Errorf("GenerateContent() model = %q, want %q", gen.model, DefaultModel)
	}
	if gen.config == nil || gen.config.ResponseMIMEType != "application/json" {
		t.Errorf("GenerateContent() config = %+v, want JSON response type", gen.config)
	}
	for _, want := range []string{"#c86432", "dim", "scandinavian", "Suggest 4"} {
		if !strings.Contains(gen.prompt, want) {
			t.Errorf("prompt %q does not mention %q", gen.prompt, want)
		}
	}
	if gen.config != nil && gen.config.SystemInstruction != nil {
		system := gen.config.SystemInstruction.Parts[0].Text
		if !strings.Contains(system, "one of WARM, SCANDINAVIAN,") {
			t.Errorf("system instruction %q does not list the categories", system)
		}
	} else {
		t.Error("GenerateContent() config has no system instruction")
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		want       string
	}{
		{"listed", []string{"MODERN", "WARM"}, `"category": one of MODERN, WARM,`},
		{"open", nil, `"category": a short upper-case label`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildSystemPrompt(tt.categories)
			if !strings.Contains(got, tt.want) {
				t.Errorf("buildSystemPrompt() = %q, want it to contain %q", got, tt.want)
			}
			if !strings.HasSuffix(got, "a number between 0 and 1.") {
				t.Errorf("buildSystemPrompt() = %q, want the confidence field last", got)
			}
		})
	}
}

func TestSuggest_ResponseShapes(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		count   int
		want    int
		wantErr error
	}{
		{"fenced", "```json\n[{\"color\":\"#ffffff\",\"confidence\":0.5}]\n```", 3, 1, nil},
		{"wrapped", `{"suggestions":[{"color":"#000000"},{"color":"#111111"}]}`, 3, 2, nil},
		{"truncated to count", `[{"color":"#000000"},{"color":"#111111"},{"color":"#222222"}]`, 2, 2, nil},
		{"empty", "   ", 3, 0, ErrEmptyResponse},
		{"nothing usable", `[{"color":"blue-ish"}]`, 3, 0, ErrNoSuggestions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeGenerator{text: tt.text}, "test-model", nil)
			got, err := r.Suggest(context.Background(), Request{Base: colour.Grey, Count: tt.count})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Suggest() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Suggest() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Suggest() returned %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSuggest_Errors(t *testing.T) {
	errQuota := errors.New("quota exceeded")
	r := New(&fakeGenerator{err: errQuota}, "", nil)
	if _, err := r.Suggest(context.Background(), Request{Base: colour.Grey}); !errors.Is(err, errQuota) {
		t.Errorf("Suggest() error = %v, want %v", err, errQuota)
	}

	r = New(&fakeGenerator{text: "this is not json"}, "", nil)
	if _, err := r.Suggest(context.Background(), Request{Base: colour.Grey}); err == nil {
		t.Error("Suggest(invalid JSON) error = nil, want error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini with key", Config{Model: DefaultModel, Backend: "gemini-api", APIKey: "k"}, false},
		{"gemini without key", Config{Model: DefaultModel, Backend: "gemini-api"}, true},
		{"vertex", Config{Model: DefaultModel, Backend: "vertex-ai"}, false},
		{"unknown backend", Config{Model: DefaultModel, Backend: "openai", APIKey: "k"}, true},
		{"no model", Config{Backend: "gemini-api", APIKey: "k"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if err := (Config{Model: DefaultModel, Backend: "gemini-api"}).Validate(); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Validate() error = %v, want ErrMissingAPIKey", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv(APIKeyEnv, "secret")
	cfg := DefaultConfig()
	if cfg.Model != DefaultModel || cfg.Backend != DefaultBackend || cfg.APIKey != "secret" {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := map[string]string{
		"[1]":                 "[1]",
		"```\n[1]\n```":       "[1]",
		"```json\n[1]\n```  ": "[1]",
	}
	for in, want := range tests {
		if got := stripCodeFence(in); got != want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", in, got, want)
		}
	}
}
