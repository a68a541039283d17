package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tux-be/pkg/uxspec"
)

// ErrMalformedResponse is returned when no parseable JSON object can be
// extracted from a model response.
var ErrMalformedResponse = errors.New("parse: no JSON object in model response")

// ExtractJSONObject locates the first '{' and the last '}' in text, slices
// inclusively and unmarshals the span into v.
//
// This is a best-effort heuristic: it assumes the model emits at most one
// top-level object and that no '}' appears after the intended closing brace
// (trailing commentary containing one over-captures and fails the parse).
// Both assumptions are unverified; a failed parse routes the caller to its
// deterministic fallback.
func ExtractJSONObject(text string, v any) error {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return ErrMalformedResponse
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// ExtractRoleInsights buckets free-form text into the three reviewer roles.
// A line containing a role keyword switches the current accumulator; every
// subsequent non-blank line is appended (space-joined) until the next
// marker. Lines before the first marker are discarded.
//
// Check order is the priority: a line containing several role keywords is
// assigned to the earliest-checked role (designer, then analyst, then
// architect). Kept for parity with prior outputs.
func ExtractRoleInsights(text string) uxspec.RoleInsight {
	var insights uxspec.RoleInsight
	var current *string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		switch {
		case strings.Contains(lower, "designer"):
			current = &insights.Designer
		case strings.Contains(lower, "analyst"):
			current = &insights.Analyst
		case strings.Contains(lower, "architect"):
			current = &insights.Architect
		case current != nil && line != "":
			*current += line + " "
		}
	}

	return insights
}

// RoleInsightsFromResponse parses a multi-role analysis response. It tries
// JSON extraction first; when the text carries no JSON object at all, the
// keyword-line scanner takes over. A present-but-invalid JSON span yields
// empty insights rather than an error.
func RoleInsightsFromResponse(text string) uxspec.RoleInsight {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return ExtractRoleInsights(text)
	}

	var insights uxspec.RoleInsight
	if err := json.Unmarshal([]byte(text[start:end+1]), &insights); err != nil {
		return uxspec.RoleInsight{}
	}
	return insights
}

// SpecPayload mirrors the JSON object the UX-specification prompt asks for.
type SpecPayload struct {
	Screens     []ScreenPayload `json:"screens"`
	IAStructure map[string]any  `json:"ia_structure"`
	Standards   map[string]any  `json:"standards"`
	FinalPrompt string          `json:"final_prompt_for_image_model"`
}

// ScreenPayload is one screen object as emitted by the model. Missing
// fields stay zero-valued; the orchestrator applies defaults.
type ScreenPayload struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Elements     []string `json:"elements"`
	UserFlow     string   `json:"userFlow"`
	Interactions []string `json:"interactions"`
}
