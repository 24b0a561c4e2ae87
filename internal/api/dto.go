package api

import (
	"github.com/cigo/compound-calculator/internal/domain"
)

// CalculateRequest carries the raw text fields exactly as a form posts them.
// Numbers may be locale-formatted ("1.234,56" under de-DE); the handler
// parses and validates before the engine ever sees them.
type CalculateRequest struct {
	Principal             string `json:"principal"`
	AnnualRatePercent     string `json:"annual_rate_percent"`
	Years                 string `json:"years"`
	CompoundsPerYear      string `json:"compounds_per_year"`
	ContributionAmount    string `json:"contribution_amount"`
	ContributionFrequency string `json:"contribution_frequency"`
}

// ValidationError names the offending field so the client can surface a
// field-specific message.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse wraps validation failures.
type ErrorResponse struct {
	Errors []ValidationError `json:"errors"`
}

// SummaryDTO holds display-rounded, localized summary figures.
type SummaryDTO struct {
	FinalAmount        string `json:"final_amount"`
	TotalContributions string `json:"total_contributions"`
	TotalInterest      string `json:"total_interest"`
}

// CalculateResponse returns the full projection plus a localized summary.
type CalculateResponse struct {
	Locale  string                   `json:"locale"`
	Summary SummaryDTO               `json:"summary"`
	Result  domain.CalculationResult `json:"result"`
}

// FrequencyDTO describes one contribution frequency choice.
type FrequencyDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
