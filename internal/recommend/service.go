package recommend

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/huehome/huecore/internal/colour"
	"github.com/huehome/huecore/internal/estimate"
	"github.com/huehome/huecore/internal/recommend/cloud"
)

// ErrCloudUnavailable is returned for Cloud mode when no suggester is configured.
var ErrCloudUnavailable = errors.New("cloud recommendations are not configured")

// Suggester produces remote colour suggestions. *cloud.Recommender implements it.
type Suggester interface {
	Suggest(ctx context.Context, req cloud.Request) ([]cloud.Suggestion, error)
}

// Service routes recommendation requests according to a ProcessingMode.
type Service struct {
	engine    *Engine
	suggester Suggester
	logger    hclog.Logger
}

// NewService creates a Service. suggester may be nil, in which case Hybrid behaves like
// OnDevice and Cloud fails with ErrCloudUnavailable.
func NewService(engine *Engine, suggester Suggester, logger hclog.Logger) *Service {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if engine == nil {
		engine = NewEngine(logger)
	}
	return &Service{engine: engine, suggester: suggester, logger: logger.Named("service")}
}

// Recommend returns recommendations for base computed in the given mode.
func (s *Service) Recommend(ctx context.Context, mode ProcessingMode, base estimate.ColorInfo, room RoomContext, opts ...RecommendOption) ([]Recommendation, error) {
	switch mode {
	case OnDevice:
		return s.engine.Recommend(base, room, opts...), nil

	case Cloud:
		if s.suggester == nil {
			return nil, ErrCloudUnavailable
		}
		recs, err := s.fromCloud(ctx, base, room, buildRequest(opts))
		if err != nil {
			return nil, err
		}
		return rank(recs), nil

	case Hybrid:
		local := s.engine.Recommend(base, room, opts...)
		if s.suggester == nil {
			s.logger.Debug("no cloud suggester configured, using on-device results")
			return local, nil
		}
		remote, err := s.fromCloud(ctx, base, room, buildRequest(opts))
		if err != nil {
			s.logger.Warn("cloud suggestions failed, using on-device results", "error", err)
			return local, nil
		}
		return merge(local, remote), nil

	default:
		return nil, fmt.Errorf("unknown processing mode: %d", int(mode))
	}
}

func (s *Service) fromCloud(ctx context.Context, base estimate.ColorInfo, room RoomContext, req request) ([]Recommendation, error) {
	cloudReq := cloud.Request{
		Base:       base.RGB,
		Lighting:   room.LightingIntensity,
		Count:      MaxRecommendations,
		Categories: categoryLabels(),
	}
	if req.style != nil {
		cloudReq.Style = req.style.String()
	}

	suggestions, err := s.suggester.Suggest(ctx, cloudReq)
	if err != nil {
		return nil, fmt.Errorf("failed to get cloud suggestions: %w", err)
	}

	recs := make([]Recommendation, 0, len(suggestions))
	for _, sg := range suggestions {
		category, err := ParseCategory(sg.Category)
		if err != nil {
			s.logger.Debug("unrecognised cloud category", "category", sg.Category)
			category = CategoryModern
		}
		reason := sg.Reason
		if reason == "" {
			reason = "Suggested by cloud colour consultant"
		}
		recs = append(recs, Recommendation{
			Color:      sg.Color,
			Lab:        colour.RGBToLab(sg.Color),
			Reason:     reason,
			Confidence: colour.Clamp(sg.Confidence, 0, 1),
			Category:   category,
		})
	}
	s.logger.Debug("received cloud suggestions", "count", len(recs))
	return recs, nil
}

// merge appends remote recommendations whose colour is not already present, then re-ranks.
func merge(local, remote []Recommendation) []Recommendation {
	seen := make(map[colour.RGB]bool, len(local)+len(remote))
	merged := make([]Recommendation, 0, len(local)+len(remote))
	for _, rec := range local {
		seen[rec.Color] = true
		merged = append(merged, rec)
	}
	for _, rec := range remote {
		if seen[rec.Color] {
			continue
		}
		seen[rec.Color] = true
		merged = append(merged, rec)
	}
	return rank(merged)
}
