package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tux-be/pkg/uxspec"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func completeRequirements() *uxspec.Requirements {
	return &uxspec.Requirements{
		Purpose:      "A fitness tracking application that helps busy professionals stay consistent",
		Audience:     "Health-conscious professionals",
		Demographics: "Ages 25-45, comfortable with technology",
		Goals:        "Help users build and maintain consistent workout habits over the long term",
		UseCases:     []string{"track daily workouts", "browse exercise library", "manage weekly plans"},
	}
}

func TestValidate(t *testing.T) {
	svc := NewRequirementsService(noopLogger{})

	t.Run("complete record is valid", func(t *testing.T) {
		result, err := svc.Validate(context.Background(), completeRequirements())
		require.NoError(t, err)

		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
		assert.Equal(t, 100, result.CompletenessScore)
	})

	t.Run("errors accumulate independently", func(t *testing.T) {
		result, err := svc.Validate(context.Background(), &uxspec.Requirements{
			Purpose:  "short",
			Audience: "me",
			Goals:    "fun",
			UseCases: []string{},
		})
		require.NoError(t, err)

		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 4)
		assert.Contains(t, result.Errors, "Purpose must be at least 10 characters long")
		assert.Contains(t, result.Errors, "Target audience must be specified")
		assert.Contains(t, result.Errors, "User goals must be clearly defined")
		assert.Contains(t, result.Errors, "At least one use case must be provided")
	})

	t.Run("whitespace padding does not satisfy length checks", func(t *testing.T) {
		result, err := svc.Validate(context.Background(), &uxspec.Requirements{
			Purpose:  "short     ",
			Audience: "Health-conscious professionals",
			Goals:    "Build consistent habits",
			UseCases: []string{"track workouts"},
		})
		require.NoError(t, err)

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "Purpose must be at least 10 characters long")
	})

	t.Run("lengths count characters, not bytes", func(t *testing.T) {
		// 5 characters but 15 bytes: must still fail the 10-char minimum.
		result, err := svc.Validate(context.Background(), &uxspec.Requirements{
			Purpose:  "目的は明確",
			Audience: "Health-conscious professionals",
			Goals:    "Build consistent workout habits",
			UseCases: []string{"track workouts"},
		})
		require.NoError(t, err)

		assert.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "Purpose must be at least 10 characters long")
	})

	t.Run("warnings on thin records", func(t *testing.T) {
		req := completeRequirements()
		req.Demographics = ""
		req.UseCases = req.UseCases[:2]

		result, err := svc.Validate(context.Background(), req)
		require.NoError(t, err)

		assert.True(t, result.IsValid)
		assert.Len(t, result.Warnings, 2)
		assert.Contains(t, result.Warnings, "Consider adding more use cases for better UX analysis")
		assert.Contains(t, result.Warnings, "Demographics information would help create more targeted designs")
	})
}

func TestScore(t *testing.T) {
	svc := NewRequirementsService(noopLogger{})

	t.Run("empty record scores zero", func(t *testing.T) {
		assert.Equal(t, 0, svc.Score(&uxspec.Requirements{}))
	})

	t.Run("complete record scores exactly 100", func(t *testing.T) {
		assert.Equal(t, 100, svc.Score(completeRequirements()))
	})

	t.Run("required fields only", func(t *testing.T) {
		req := &uxspec.Requirements{
			Purpose:  "A note app", // 10 chars, below the 50-char quality bar
			Audience: "Students",
			Goals:    "Capture ideas quickly and easily",
			UseCases: []string{"write a note"},
		}
		assert.Equal(t, 60, svc.Score(req))
	})

	t.Run("non-ASCII fields earn no points on byte count", func(t *testing.T) {
		req := &uxspec.Requirements{
			Purpose:  "目的は明確", // 5 chars, below the 10-char minimum
			Audience: "学生向け",  // 3 chars, below the 5-char minimum
			Goals:    "アイデアをすばやく記録する", // 13 chars, passes
			UseCases: []string{"write a note"},
		}
		assert.Equal(t, 30, svc.Score(req))
	})

	t.Run("score is monotone in added detail", func(t *testing.T) {
		req := &uxspec.Requirements{
			Purpose:  "A note app",
			Audience: "Students",
			Goals:    "Capture ideas quickly and easily",
			UseCases: []string{"write a note"},
		}
		base := svc.Score(req)

		req.Demographics = "University students"
		withDemo := svc.Score(req)
		assert.Greater(t, withDemo, base)

		req.UseCases = append(req.UseCases, "organize notebooks", "search old notes")
		withCases := svc.Score(req)
		assert.Greater(t, withCases, withDemo)
	})
}

func TestSuggest(t *testing.T) {
	svc := NewRequirementsService(noopLogger{})

	t.Run("all four rules fire in declaration order", func(t *testing.T) {
		req := &uxspec.Requirements{
			Purpose:  "An app for personal finance",
			Audience: "General users",
			Goals:    "Track spending and manage budgets",
			UseCases: []string{"log expenses"},
		}

		got := svc.Suggest(req)
		require.Len(t, got, 4)
		assert.Equal(t, "Consider specifying if this is a mobile app, web app, or both", got[0])
		assert.Equal(t, "Adding demographic details (age, tech-savviness, etc.) would improve the design", got[1])
		assert.Equal(t, "Adding more specific use cases will result in more comprehensive UX specifications", got[2])
		assert.Equal(t, "Consider adding use cases for data visualization and reporting", got[3])
	})

	t.Run("platform rule skipped when platform named", func(t *testing.T) {
		req := completeRequirements()
		req.Purpose = "A mobile app for fitness tracking with a long detailed description"

		for _, s := range svc.Suggest(req) {
			assert.NotContains(t, s, "mobile app, web app, or both")
		}
	})

	t.Run("complete record without trigger words yields none", func(t *testing.T) {
		req := completeRequirements()
		req.Purpose = "A fitness tracking platform that helps busy professionals stay consistent"
		req.Goals = "Help users build and keep consistent workout habits over the long term"
		assert.Empty(t, svc.Suggest(req))
	})
}

func TestProcess(t *testing.T) {
	svc := NewRequirementsService(noopLogger{})

	t.Run("trims fields and drops blank use cases", func(t *testing.T) {
		req := &uxspec.Requirements{
			Purpose:  "  A fitness tracking application for busy professionals  ",
			Audience: " Health-conscious professionals ",
			Goals:    " Build consistent workout habits ",
			UseCases: []string{" track workouts ", "   ", "browse library", ""},
		}

		res, err := svc.Process(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "processed", res.Status)
		assert.Equal(t, "A fitness tracking application for busy professionals", res.Data.Purpose)
		assert.Equal(t, []string{"track workouts", "browse library"}, res.Data.UseCases)
		assert.True(t, res.Data.SimulateRoles)
		assert.False(t, res.Data.ProcessedAt.IsZero())
		assert.Equal(t, svc.Score(req), res.Data.CompletenessScore)
	})

	t.Run("derives category, complexity and platform insights", func(t *testing.T) {
		req := completeRequirements()
		res, err := svc.Process(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "Health & Fitness", res.Data.Insights["app_category"])
		assert.Equal(t, "Medium - Several key features", res.Data.Insights["complexity"])
		assert.Equal(t, "Desktop/web application recommended", res.Data.Insights["recommended_platform"])
	})

	t.Run("defaults for unrecognized records", func(t *testing.T) {
		req := &uxspec.Requirements{
			Purpose:  "A tool for collecting stamps",
			Audience: "Collectors",
			Goals:    "Catalog a collection",
			UseCases: []string{"add a stamp"},
		}
		res, err := svc.Process(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, "General Application", res.Data.Insights["app_category"])
		assert.Equal(t, "Low - Simple, focused functionality", res.Data.Insights["complexity"])
		assert.Equal(t, "Cross-platform approach recommended", res.Data.Insights["recommended_platform"])
	})

	t.Run("respects explicit simulate_roles false", func(t *testing.T) {
		req := completeRequirements()
		off := false
		req.SimulateRoles = &off

		res, err := svc.Process(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, res.Data.SimulateRoles)
	})
}
