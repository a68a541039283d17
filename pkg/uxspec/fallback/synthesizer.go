package fallback

import (
	"fmt"
	"strings"

	"tux-be/pkg/uxspec"
)

// Deterministic, call-free synthesizers substituted when model calls or
// parsing fail. Same record in, same output out.

// Specification builds a basic specification from common app patterns: a
// Dashboard screen plus up to three screens derived from the leading use
// cases.
func Specification(req *uxspec.Requirements) *uxspec.UXSpecification {
	screens := []uxspec.ScreenElement{
		{
			Name:         "Dashboard",
			Description:  fmt.Sprintf("Main overview screen for %s", req.Purpose),
			Elements:     []string{"header", "navigation", "main_content", "quick_actions"},
			UserFlow:     "Users land here to get an overview and access main features",
			Interactions: []string{"view_overview", "navigate_to_features", "quick_actions"},
		},
	}

	for i, useCase := range leadingUseCases(req) {
		screens = append(screens, uxspec.ScreenElement{
			Name:         ScreenName(useCase, i),
			Description:  fmt.Sprintf("Screen for: %s", useCase),
			Elements:     []string{"header", "form_inputs", "action_buttons", "data_display"},
			UserFlow:     fmt.Sprintf("Users access this screen to: %s", useCase),
			Interactions: []string{"input_data", "submit_form", "view_results"},
		})
	}

	return &uxspec.UXSpecification{
		RoleInsights: &uxspec.RoleInsight{
			Designer:  "Focus on clean, intuitive interface design with clear visual hierarchy",
			Analyst:   "Ensure all user requirements are met with efficient workflows",
			Architect: "Structure information logically with scalable navigation patterns",
		},
		Screens: screens,
		IAStructure: map[string]any{
			"navigation":    "Top-level navigation with clear categories",
			"hierarchy":     "Dashboard → Feature screens → Detail views",
			"relationships": "Linear flow with cross-navigation options",
		},
		Standards: map[string]any{
			"accessibility": "WCAG 2.1 AA compliance with proper ARIA labels",
			"responsive":    "Mobile-first design with breakpoints at 768px and 1024px",
			"patterns":      "Material Design principles with consistent spacing and typography",
		},
		FinalPrompt: ImagePrompt(req),
	}
}

// ScreenName maps a use case to a screen name by keyword, defaulting to
// "Feature {index+1}".
func ScreenName(useCase string, index int) string {
	lower := strings.ToLower(useCase)
	switch {
	case strings.Contains(lower, "log") || strings.Contains(lower, "track"):
		return "Tracking"
	case strings.Contains(lower, "view") || strings.Contains(lower, "browse"):
		return "Browse"
	case strings.Contains(lower, "manage") || strings.Contains(lower, "edit"):
		return "Management"
	default:
		return fmt.Sprintf("Feature %d", index+1)
	}
}

// ImagePrompt builds the mockup-generation prompt from the record. Used on
// the happy path when the model omits final_prompt_for_image_model, and by
// Specification.
func ImagePrompt(req *uxspec.Requirements) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Create a clean, modern UI mockup for %s.\n", req.Purpose))
	b.WriteString(fmt.Sprintf("Target audience: %s\n", req.Audience))
	b.WriteString(fmt.Sprintf("Key features: %s\n", strings.Join(leadingUseCases(req), ", ")))
	b.WriteString("Style: Clean, professional, mobile-friendly interface with good typography and spacing.\n")
	b.WriteString("Include: Header navigation, main content area, clear call-to-action buttons.\n")
	b.WriteString("Color scheme: Modern, accessible colors with good contrast ratios.\n")
	return b.String()
}

func leadingUseCases(req *uxspec.Requirements) []string {
	if len(req.UseCases) > 3 {
		return req.UseCases[:3]
	}
	return req.UseCases
}

// BasicHTML returns the static layout fragment used when layout generation
// exhausts its model-retry list.
func BasicHTML() string {
	return `<div style="width: 100%; min-height: 100vh; background: #f8fafc; font-family: Inter, -apple-system, BlinkMacSystemFont, sans-serif;">
    <header style="background: #3b82f6; color: white; padding: 1.5rem 2rem; box-shadow: 0 2px 10px rgba(0,0,0,0.1);">
        <h1 style="margin: 0; font-size: 1.75rem; font-weight: 600;">Application Screen</h1>
    </header>

    <main style="padding: 2rem; max-width: 1200px; margin: 0 auto;">
        <div style="background: white; border-radius: 12px; padding: 2rem; box-shadow: 0 4px 6px rgba(0,0,0,0.05); border: 1px solid #e5e7eb;">
            <h2 style="margin: 0 0 1.5rem 0; color: #1f2937; font-size: 1.5rem; font-weight: 600;">Welcome</h2>
            <p style="color: #6b7280; line-height: 1.6; margin-bottom: 2rem;">This is a placeholder screen layout. The actual content will be generated based on your requirements.</p>

            <div style="display: grid; gap: 1rem; margin-bottom: 2rem;">
                <button style="background: #10b981; color: white; border: none; border-radius: 8px; padding: 0.875rem 2rem; font-weight: 500; font-size: 1rem; cursor: pointer; transition: all 0.2s; box-shadow: 0 2px 4px rgba(16, 185, 129, 0.2);">
                    Primary Action
                </button>
                <button style="background: #f3f4f6; color: #374151; border: 1px solid #d1d5db; border-radius: 8px; padding: 0.875rem 2rem; font-weight: 500; font-size: 1rem; cursor: pointer; transition: all 0.2s;">
                    Secondary Action
                </button>
            </div>

            <div style="background: #f9fafb; border: 1px solid #e5e7eb; border-radius: 8px; padding: 1.5rem;">
                <h3 style="margin: 0 0 0.5rem 0; color: #111827; font-size: 1.125rem; font-weight: 500;">Information Panel</h3>
                <p style="margin: 0; color: #6b7280; font-size: 0.875rem;">Additional content and information would appear here based on your specific requirements.</p>
            </div>
        </div>
    </main>
</div>`
}
