package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"tux-be/internal/dto"
	"tux-be/internal/pkg/logger"
	"tux-be/pkg/uxspec"
)

type IRequirementsService interface {
	Process(ctx context.Context, req *uxspec.Requirements) (*dto.ProcessRequirementsResponse, error)
	Validate(ctx context.Context, req *uxspec.Requirements) (*dto.ValidationResult, error)
	Suggest(req *uxspec.Requirements) []string
	Score(req *uxspec.Requirements) int
}

type requirementsService struct {
	logger logger.ILogger
}

func NewRequirementsService(logger logger.ILogger) IRequirementsService {
	return &requirementsService{logger: logger}
}

// Process trims and enriches the record: blank use cases are dropped, a
// completeness score and derived insights are attached.
func (s *requirementsService) Process(ctx context.Context, req *uxspec.Requirements) (*dto.ProcessRequirementsResponse, error) {
	s.logger.Info("requirements", "Processing requirements", map[string]interface{}{
		"purpose": req.Purpose,
	})

	useCases := make([]string, 0, len(req.UseCases))
	for _, uc := range req.UseCases {
		if trimmed := strings.TrimSpace(uc); trimmed != "" {
			useCases = append(useCases, trimmed)
		}
	}

	processed := dto.ProcessedRequirements{
		Purpose:           strings.TrimSpace(req.Purpose),
		Audience:          strings.TrimSpace(req.Audience),
		Demographics:      strings.TrimSpace(req.Demographics),
		Goals:             strings.TrimSpace(req.Goals),
		UseCases:          useCases,
		SimulateRoles:     req.SimulateRolesEnabled(),
		ProcessedAt:       time.Now().UTC(),
		CompletenessScore: s.Score(req),
		Insights:          deriveInsights(req),
	}

	return &dto.ProcessRequirementsResponse{
		Status:      "processed",
		Data:        processed,
		Suggestions: s.Suggest(req),
	}, nil
}

// Validate checks completeness and quality. Errors are independent: several
// can fire on one record.
func (s *requirementsService) Validate(ctx context.Context, req *uxspec.Requirements) (*dto.ValidationResult, error) {
	result := &dto.ValidationResult{
		IsValid:     true,
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	if trimmedLen(req.Purpose) < 10 {
		result.Errors = append(result.Errors, "Purpose must be at least 10 characters long")
		result.IsValid = false
	}
	if trimmedLen(req.Audience) < 5 {
		result.Errors = append(result.Errors, "Target audience must be specified")
		result.IsValid = false
	}
	if trimmedLen(req.Goals) < 10 {
		result.Errors = append(result.Errors, "User goals must be clearly defined")
		result.IsValid = false
	}
	if len(req.UseCases) < 1 {
		result.Errors = append(result.Errors, "At least one use case must be provided")
		result.IsValid = false
	}

	if len(req.UseCases) < 3 {
		result.Warnings = append(result.Warnings, "Consider adding more use cases for better UX analysis")
	}
	if strings.TrimSpace(req.Demographics) == "" {
		result.Warnings = append(result.Warnings, "Demographics information would help create more targeted designs")
	}

	result.CompletenessScore = s.Score(req)
	result.Suggestions = s.Suggest(req)

	return result, nil
}

// Score computes the 0-100 completeness score: 15 points per required
// field, 10 per quality factor. The natural maximum is exactly 100; the cap
// is defensive only.
func (s *requirementsService) Score(req *uxspec.Requirements) int {
	score := 0

	if trimmedLen(req.Purpose) >= 10 {
		score += 15
	}
	if trimmedLen(req.Audience) >= 5 {
		score += 15
	}
	if trimmedLen(req.Goals) >= 10 {
		score += 15
	}
	if len(req.UseCases) >= 1 {
		score += 15
	}

	if strings.TrimSpace(req.Demographics) != "" {
		score += 10
	}
	if len(req.UseCases) >= 3 {
		score += 10
	}
	if utf8.RuneCountInString(req.Purpose) >= 50 {
		score += 10
	}
	if utf8.RuneCountInString(req.Goals) >= 50 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Suggest runs independent advisory rules in declaration order; each rule
// appends zero or one string and none removes another's output.
func (s *requirementsService) Suggest(req *uxspec.Requirements) []string {
	suggestions := []string{}

	purposeLower := strings.ToLower(req.Purpose)
	if strings.Contains(purposeLower, "app") &&
		!strings.Contains(purposeLower, "mobile") && !strings.Contains(purposeLower, "web") {
		suggestions = append(suggestions, "Consider specifying if this is a mobile app, web app, or both")
	}

	if strings.Contains(strings.ToLower(req.Audience), "users") && strings.TrimSpace(req.Demographics) == "" {
		suggestions = append(suggestions, "Adding demographic details (age, tech-savviness, etc.) would improve the design")
	}

	if len(req.UseCases) < 3 {
		suggestions = append(suggestions, "Adding more specific use cases will result in more comprehensive UX specifications")
	}

	goalsLower := strings.ToLower(req.Goals)
	if strings.Contains(goalsLower, "manage") || strings.Contains(goalsLower, "track") {
		suggestions = append(suggestions, "Consider adding use cases for data visualization and reporting")
	}

	return suggestions
}

func deriveInsights(req *uxspec.Requirements) map[string]string {
	insights := map[string]string{}

	purposeLower := strings.ToLower(req.Purpose)
	switch {
	case containsAny(purposeLower, "fitness", "health", "workout", "exercise"):
		insights["app_category"] = "Health & Fitness"
	case containsAny(purposeLower, "business", "productivity", "work", "task"):
		insights["app_category"] = "Business & Productivity"
	case containsAny(purposeLower, "social", "chat", "message", "community"):
		insights["app_category"] = "Social & Communication"
	default:
		insights["app_category"] = "General Application"
	}

	switch {
	case len(req.UseCases) >= 5:
		insights["complexity"] = "High - Multiple features and workflows"
	case len(req.UseCases) >= 3:
		insights["complexity"] = "Medium - Several key features"
	default:
		insights["complexity"] = "Low - Simple, focused functionality"
	}

	audienceLower := strings.ToLower(req.Audience)
	switch {
	case containsAny(audienceLower, "mobile", "phone", "on-the-go"):
		insights["recommended_platform"] = "Mobile-first design recommended"
	case containsAny(audienceLower, "professional", "business", "office"):
		insights["recommended_platform"] = "Desktop/web application recommended"
	default:
		insights["recommended_platform"] = "Cross-platform approach recommended"
	}

	return insights
}

// trimmedLen counts characters, not bytes. Minimum lengths apply to what
// the user typed, so multi-byte text must not pass on byte count alone.
func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
