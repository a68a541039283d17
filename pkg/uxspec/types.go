package uxspec

// Requirements is the structured product-requirements record submitted by
// the client. Use-case order matters: the first three are privileged by the
// fallback synthesizer and the image-prompt template.
type Requirements struct {
	Purpose       string   `json:"purpose" validate:"required"`
	Audience      string   `json:"audience" validate:"required"`
	Demographics  string   `json:"demographics,omitempty"`
	Goals         string   `json:"goals" validate:"required"`
	UseCases      []string `json:"use_cases" validate:"required,min=1"`
	SimulateRoles *bool    `json:"simulate_roles"`
}

// SimulateRolesEnabled reports whether multi-role analysis is requested.
// Defaults to true when the field is omitted.
func (r *Requirements) SimulateRolesEnabled() bool {
	return r.SimulateRoles == nil || *r.SimulateRoles
}

// RoleInsight holds the three reviewer-persona insights. Fields are
// independently optional and never merged across sources.
type RoleInsight struct {
	Designer  string `json:"designer,omitempty"`
	Analyst   string `json:"analyst,omitempty"`
	Architect string `json:"architect,omitempty"`
}

// ScreenElement describes a single screen of the generated specification.
type ScreenElement struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Elements     []string `json:"elements"`
	UserFlow     string   `json:"userFlow,omitempty"`
	Interactions []string `json:"interactions"`
}

// UXSpecification is the terminal artifact of the pipeline. Immutable once
// constructed; one instance per request.
type UXSpecification struct {
	RoleInsights *RoleInsight    `json:"roleInsights,omitempty"`
	Screens      []ScreenElement `json:"screens"`
	IAStructure  map[string]any  `json:"ia_structure"`
	Standards    map[string]any  `json:"standards"`
	FinalPrompt  string          `json:"final_prompt_for_image_model"`
}

// Source tags whether a generated artifact came from a model or from the
// deterministic fallback synthesizer.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Outcome records how a generative call concluded. Callers never observe a
// generative failure directly, only a possibly-degraded result plus this tag.
type Outcome struct {
	Source Source
	Err    error // the triggering error when Source is SourceFallback
}

// Degraded reports whether the result was synthesized instead of
// model-derived.
func (o Outcome) Degraded() bool {
	return o.Source == SourceFallback
}
