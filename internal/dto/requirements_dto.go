package dto

import (
	"time"
)

// ProcessRequirementsResponse wraps the processed record per the public
// contract: {status, data, suggestions}.
type ProcessRequirementsResponse struct {
	Status      string                `json:"status"`
	Data        ProcessedRequirements `json:"data"`
	Suggestions []string              `json:"suggestions"`
}

// ProcessedRequirements is the trimmed and enriched record.
type ProcessedRequirements struct {
	Purpose           string            `json:"purpose"`
	Audience          string            `json:"audience"`
	Demographics      string            `json:"demographics,omitempty"`
	Goals             string            `json:"goals"`
	UseCases          []string          `json:"use_cases"`
	SimulateRoles     bool              `json:"simulate_roles"`
	ProcessedAt       time.Time         `json:"processed_at"`
	CompletenessScore int               `json:"completeness_score"`
	Insights          map[string]string `json:"insights"`
}

// ValidationResult reports completeness and quality of a requirements
// record. Multiple errors can fire on the same record.
type ValidationResult struct {
	IsValid           bool     `json:"is_valid"`
	Errors            []string `json:"errors"`
	Warnings          []string `json:"warnings"`
	Suggestions       []string `json:"suggestions"`
	CompletenessScore int      `json:"completeness_score"`
}
