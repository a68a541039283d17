package dto

import (
	"time"

	"github.com/google/uuid"

	"tux-be/pkg/uxspec"
)

type GenerateDesignRequest struct {
	Requirements uxspec.Requirements `json:"requirements" validate:"required"`
	PreferredLLM string              `json:"preferred_llm"`
}

// DesignResponse is a UXSpecification plus the outcome tag, so callers can
// tell a degraded (synthesized) response from a model-derived one.
type DesignResponse struct {
	uxspec.UXSpecification
	Source uxspec.Source `json:"source"`
}

type GenerateLayoutRequest struct {
	UXSpecs    uxspec.UXSpecification `json:"ux_specs" validate:"required"`
	ImageStyle string                 `json:"image_style"`
}

// Mockup is a generated HTML layout retrievable by id until its TTL lapses.
type Mockup struct {
	Id          uuid.UUID     `json:"id"`
	ScreenName  string        `json:"screenName"`
	Description string        `json:"description"`
	Html        string        `json:"html"`
	Source      uxspec.Source `json:"source"`
	GeneratedAt time.Time     `json:"generatedAt"`
}

type MockupResponse struct {
	Mockups        []Mockup `json:"mockups"`
	TotalGenerated int      `json:"total_generated"`
	GenerationTime float64  `json:"generation_time"`
}

type ModelInfo struct {
	Id         string `json:"id"`
	Provider   string `json:"provider"`
	Configured bool   `json:"configured"`
}

type ModelsResponse struct {
	Models []ModelInfo `json:"models"`
}

type HealthResponse struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Version    string            `json:"version"`
	AIServices map[string]string `json:"ai_services"`
}
