package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"tux-be/internal/dto"
	"tux-be/internal/pkg/logger"
	"tux-be/pkg/llm"
	"tux-be/pkg/uxspec/generator"
	"tux-be/pkg/uxspec/prompt"
)

// ErrMockupNotFound is returned when a mockup id is unknown or its TTL has
// lapsed.
var ErrMockupNotFound = errors.New("mockup not found")

const apiVersion = "1.0.0"

type IDesignService interface {
	GenerateDesign(ctx context.Context, req *dto.GenerateDesignRequest) (*dto.DesignResponse, error)
	GenerateLayout(ctx context.Context, req *dto.GenerateLayoutRequest) (*dto.MockupResponse, error)
	GetMockup(id uuid.UUID) (*dto.Mockup, error)
	ListModels() *dto.ModelsResponse
	Health() *dto.HealthResponse
}

type designService struct {
	generator             *generator.Generator
	mockups               *cache.Cache
	logger                logger.ILogger
	togetherConfigured    bool
	huggingfaceConfigured bool
}

func NewDesignService(gen *generator.Generator, mockups *cache.Cache, sysLogger logger.ILogger, togetherConfigured, huggingfaceConfigured bool) IDesignService {
	return &designService{
		generator:             gen,
		mockups:               mockups,
		logger:                sysLogger,
		togetherConfigured:    togetherConfigured,
		huggingfaceConfigured: huggingfaceConfigured,
	}
}

func (s *designService) GenerateDesign(ctx context.Context, req *dto.GenerateDesignRequest) (*dto.DesignResponse, error) {
	spec, outcome := s.generator.Generate(ctx, &req.Requirements, req.PreferredLLM)

	if outcome.Degraded() {
		s.logger.Warn("design", "Serving fallback UX specification", map[string]interface{}{
			"purpose": req.Requirements.Purpose,
			"error":   outcome.Err.Error(),
		})
	} else {
		s.logger.Info("design", "Generated UX specification", map[string]interface{}{
			"purpose": req.Requirements.Purpose,
			"screens": len(spec.Screens),
		})
	}

	return &dto.DesignResponse{
		UXSpecification: *spec,
		Source:          outcome.Source,
	}, nil
}

func (s *designService) GenerateLayout(ctx context.Context, req *dto.GenerateLayoutRequest) (*dto.MockupResponse, error) {
	start := time.Now()

	layoutPrompt := prompt.HTMLLayout(&req.UXSpecs, req.ImageStyle)
	html, outcome := s.generator.GenerateLayout(ctx, layoutPrompt)

	if outcome.Degraded() {
		details := map[string]interface{}{}
		if outcome.Err != nil {
			details["error"] = outcome.Err.Error()
		}
		s.logger.Warn("design", "Serving fallback HTML layout", details)
	}

	screenName := "Application Screen"
	description := ""
	if len(req.UXSpecs.Screens) > 0 {
		screenName = req.UXSpecs.Screens[0].Name
		description = req.UXSpecs.Screens[0].Description
	}

	mockup := dto.Mockup{
		Id:          uuid.New(),
		ScreenName:  screenName,
		Description: description,
		Html:        html,
		Source:      outcome.Source,
		GeneratedAt: time.Now().UTC(),
	}
	s.mockups.Set(mockup.Id.String(), mockup, cache.DefaultExpiration)

	return &dto.MockupResponse{
		Mockups:        []dto.Mockup{mockup},
		TotalGenerated: 1,
		GenerationTime: time.Since(start).Seconds(),
	}, nil
}

func (s *designService) GetMockup(id uuid.UUID) (*dto.Mockup, error) {
	val, ok := s.mockups.Get(id.String())
	if !ok {
		return nil, ErrMockupNotFound
	}
	mockup := val.(dto.Mockup)
	return &mockup, nil
}

func (s *designService) ListModels() *dto.ModelsResponse {
	return &dto.ModelsResponse{
		Models: []dto.ModelInfo{
			{Id: llm.ModelLlama370B, Provider: "together", Configured: s.togetherConfigured},
			{Id: llm.ModelLlama38B, Provider: "together", Configured: s.togetherConfigured},
			{Id: llm.ModelMistral7B, Provider: "huggingface", Configured: s.huggingfaceConfigured},
			{Id: llm.ModelMistral8x7B, Provider: "huggingface", Configured: s.huggingfaceConfigured},
			{Id: llm.ModelQwen272B, Provider: "huggingface", Configured: s.huggingfaceConfigured},
			{Id: llm.ModelPhi3Mini, Provider: "huggingface", Configured: s.huggingfaceConfigured},
			{Id: llm.ModelOpenChat35, Provider: "huggingface", Configured: s.huggingfaceConfigured},
		},
	}
}

func (s *designService) Health() *dto.HealthResponse {
	status := func(configured bool) string {
		if configured {
			return "configured"
		}
		return "not_configured"
	}

	return &dto.HealthResponse{
		Status:    "active",
		Timestamp: time.Now().UTC(),
		Version:   apiVersion,
		AIServices: map[string]string{
			"together":    status(s.togetherConfigured),
			"huggingface": status(s.huggingfaceConfigured),
		},
	}
}
