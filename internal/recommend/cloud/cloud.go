// Package cloud asks a hosted Gemini model for paint colour suggestions.
package cloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"google.golang.org/genai"

	"github.com/huehome/huecore/internal/colour"
)

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-2.5-flash"

	// DefaultBackend is the backend used when none is configured.
	DefaultBackend = "gemini-api"

	// APIKeyEnv names the environment variable holding the Gemini API key.
	APIKeyEnv = "GOOGLE_API_KEY"
)

var (
	// ErrMissingAPIKey is returned when the Gemini API backend has no key.
	ErrMissingAPIKey = errors.New(APIKeyEnv + " environment variable is required")

	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("no text in model response")

	// ErrNoSuggestions is returned when the response held no usable colours.
	ErrNoSuggestions = errors.New("model returned no usable suggestions")
)

// Generator is the part of the Gen AI client the recommender needs.
// *genai.Models satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config configures a Recommender.
type Config struct {
	Model   string
	Backend string // "gemini-api" or "vertex-ai"
	APIKey  string
}

// DefaultConfig returns the default configuration with the API key read from the environment.
func DefaultConfig() Config {
	return Config{
		Model:   DefaultModel,
		Backend: DefaultBackend,
		APIKey:  os.Getenv(APIKeyEnv),
	}
}

// Validate validates the configuration.
func (c Config) Validate() error {
	switch c.Backend {
	case "gemini-api":
		if c.APIKey == "" {
			return ErrMissingAPIKey
		}
	case "vertex-ai":
	default:
		return fmt.Errorf("unknown backend: %s (valid: gemini-api, vertex-ai)", c.Backend)
	}
	if c.Model == "" {
		return errors.New("model is required")
	}
	return nil
}

// Request describes what to ask the model for.
type Request struct {
	Base     colour.RGB
	Lighting float64
	Style    string
	Count    int

	// Categories lists the category names the model may use.
	Categories []string
}

// Suggestion is one colour proposed by the model.
type Suggestion struct {
	Color      colour.RGB
	Category   string
	Reason     string
	Confidence float64
}

// Recommender requests suggestions from a Generator.
type Recommender struct {
	gen    Generator
	model  string
	logger hclog.Logger
}

// New creates a Recommender over an existing Generator.
func New(gen Generator, model string, logger hclog.Logger) *Recommender {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if model == "" {
		model = DefaultModel
	}
	return &Recommender{gen: gen, model: model, logger: logger.Named("cloud")}
}

// NewClient creates a Recommender backed by a Gen AI client.
func NewClient(ctx context.Context, cfg Config, logger hclog.Logger) (*Recommender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{Backend: genai.BackendGeminiAPI, APIKey: cfg.APIKey}
	if cfg.Backend == "vertex-ai" {
		clientConfig = &genai.ClientConfig{Backend: genai.BackendVertexAI}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gen AI client: %w", err)
	}

	r := New(client.Models, cfg.Model, logger)
	r.logger.Debug("created cloud recommender", "backend", cfg.Backend, "model", cfg.Model)
	return r, nil
}

// Suggest asks the model for req.Count colours. Entries that cannot be parsed are skipped.
func (r *Recommender) Suggest(ctx context.Context, req Request) ([]Suggestion, error) {
	if req.Count <= 0 {
		req.Count = 3
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(buildSystemPrompt(req.Categories), genai.RoleUser),
	}

	r.logger.Debug("requesting suggestions", "model", r.model, "base", req.Base.Hex(), "count", req.Count)
	resp, err := r.gen.GenerateContent(ctx, r.model, genai.Text(buildPrompt(req)), config)
	if err != nil {
		return nil, fmt.Errorf("suggestion request failed: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	suggestions, err := r.parse(text)
	if err != nil {
		return nil, err
	}
	if len(suggestions) > req.Count {
		suggestions = suggestions[:req.Count]
	}
	return suggestions, nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

type suggestionJSON struct {
	Color      string  `json:"color"`
	Category   string  `json:"category"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

func (r *Recommender) parse(text string) ([]Suggestion, error) {
	text = stripCodeFence(text)

	var raw []suggestionJSON
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		// Some models wrap the array in an object.
		var wrapped struct {
			Suggestions []suggestionJSON `json:"suggestions"`
		}
		if err2 := json.Unmarshal([]byte(text), &wrapped); err2 != nil {
			return nil, fmt.Errorf("failed to parse model response: %w", err)
		}
		raw = wrapped.Suggestions
	}

	suggestions := make([]Suggestion, 0, len(raw))
	for _, s := range raw {
		rgb, err := colour.ParseHex(s.Color)
		if err != nil {
			r.logger.Debug("skipping suggestion", "color", s.Color, "error", err)
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Color:      rgb,
			Category:   strings.TrimSpace(s.Category),
			Reason:     strings.TrimSpace(s.Reason),
			Confidence: colour.Clamp(s.Confidence, 0, 1),
		})
	}
	if len(suggestions) == 0 {
		return nil, ErrNoSuggestions
	}
	return suggestions, nil
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
