package generator

import (
	"context"
	"log"
	"strings"

	"tux-be/pkg/llm"
	"tux-be/pkg/uxspec"
	"tux-be/pkg/uxspec/fallback"
	"tux-be/pkg/uxspec/parse"
	"tux-be/pkg/uxspec/prompt"
)

// LayoutModels is the sequential retry list for HTML layout generation.
// Tried in order, not in parallel.
var LayoutModels = []string{
	llm.ModelLlama370B,
	llm.ModelLlama38B,
	llm.ModelMistral7B,
	llm.ModelPhi3Mini,
}

// Generator orchestrates multi-role analysis, specification generation and
// typed assembly, substituting the deterministic fallback at any failure
// point. Callers never observe a generative error, only the Outcome tag.
type Generator struct {
	provider llm.Provider
	logger   *log.Logger
}

func New(provider llm.Provider, logger *log.Logger) *Generator {
	return &Generator{
		provider: provider,
		logger:   logger,
	}
}

// Generate produces a UXSpecification from the requirements record. Any
// failure in the chain discards partial work and returns the fallback
// specification: the result is never a mix of real and synthesized data.
func (g *Generator) Generate(ctx context.Context, req *uxspec.Requirements, preferredModel string) (*uxspec.UXSpecification, uxspec.Outcome) {
	if preferredModel == "" {
		preferredModel = llm.ModelLlama370B
	}

	var insights *uxspec.RoleInsight
	if req.SimulateRolesEnabled() {
		text, err := g.provider.Generate(ctx, prompt.MultiRole(req), llm.WithModel(preferredModel))
		if err != nil {
			g.logger.Printf("[ERROR] multi-role analysis failed: %v", err)
			return fallback.Specification(req), uxspec.Outcome{Source: uxspec.SourceFallback, Err: err}
		}
		parsed := parse.RoleInsightsFromResponse(text)
		insights = &parsed
	}

	text, err := g.provider.Generate(ctx, prompt.UXSpec(req, insights), llm.WithModel(preferredModel))
	if err != nil {
		g.logger.Printf("[ERROR] UX specification generation failed: %v", err)
		return fallback.Specification(req), uxspec.Outcome{Source: uxspec.SourceFallback, Err: err}
	}

	var payload parse.SpecPayload
	if err := parse.ExtractJSONObject(text, &payload); err != nil {
		g.logger.Printf("[ERROR] UX specification parse failed: %v", err)
		return fallback.Specification(req), uxspec.Outcome{Source: uxspec.SourceFallback, Err: err}
	}

	return assemble(req, insights, &payload), uxspec.Outcome{Source: uxspec.SourceModel}
}

// GenerateLayout renders a specification as an HTML fragment, walking the
// model-retry list sequentially and accepting the first response that looks
// like markup. Exhaustion yields the static fallback fragment.
func (g *Generator) GenerateLayout(ctx context.Context, layoutPrompt string) (string, uxspec.Outcome) {
	var lastErr error

	for _, model := range LayoutModels {
		text, err := g.provider.Generate(ctx, layoutPrompt, llm.WithModel(model))
		if err != nil {
			g.logger.Printf("[WARN] model %s failed for HTML generation: %v", model, err)
			lastErr = err
			continue
		}
		if strings.Contains(strings.ToLower(text), "<div") {
			return text, uxspec.Outcome{Source: uxspec.SourceModel}
		}
	}

	return fallback.BasicHTML(), uxspec.Outcome{Source: uxspec.SourceFallback, Err: lastErr}
}

func assemble(req *uxspec.Requirements, insights *uxspec.RoleInsight, payload *parse.SpecPayload) *uxspec.UXSpecification {
	screens := make([]uxspec.ScreenElement, 0, len(payload.Screens))
	for _, s := range payload.Screens {
		name := s.Name
		if name == "" {
			name = "Untitled Screen"
		}
		elements := s.Elements
		if elements == nil {
			elements = []string{}
		}
		interactions := s.Interactions
		if interactions == nil {
			interactions = []string{}
		}
		screens = append(screens, uxspec.ScreenElement{
			Name:         name,
			Description:  s.Description,
			Elements:     elements,
			UserFlow:     s.UserFlow,
			Interactions: interactions,
		})
	}

	iaStructure := payload.IAStructure
	if iaStructure == nil {
		iaStructure = map[string]any{}
	}
	standards := payload.Standards
	if standards == nil {
		standards = map[string]any{}
	}

	finalPrompt := payload.FinalPrompt
	if strings.TrimSpace(finalPrompt) == "" {
		finalPrompt = fallback.ImagePrompt(req)
	}

	return &uxspec.UXSpecification{
		RoleInsights: insights,
		Screens:      screens,
		IAStructure:  iaStructure,
		Standards:    standards,
		FinalPrompt:  finalPrompt,
	}
}
