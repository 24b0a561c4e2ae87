package api

import (
	"encoding/json"
	"math"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/cigo/compound-calculator/internal/calculation"
	"github.com/cigo/compound-calculator/internal/domain"
	"github.com/cigo/compound-calculator/internal/i18n"
	"github.com/cigo/compound-calculator/internal/output"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine *calculation.Engine
	// DefaultLocale is the fallback when the request carries no preference.
	// The zero tag means the built-in default.
	DefaultLocale language.Tag
}

// NewHandler creates a new handler around a projection engine.
func NewHandler(engine *calculation.Engine) *Handler {
	return &Handler{Engine: engine}
}

func (h *Handler) requestTag(r *http.Request) language.Tag {
	fallback := h.DefaultLocale
	if fallback == language.Und {
		fallback = i18n.DefaultTag()
	}
	return i18n.ResolveTagDefault(r, fallback)
}

// Calculate parses a raw form-style request, validates it field by field,
// runs the projection and returns the result with a localized summary.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	tag := h.requestTag(r)

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Errors: []ValidationError{
			{Field: "body", Message: "invalid JSON body"},
		}})
		return
	}

	input, errs := parseInput(&req, tag)
	if len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Errors: errs})
		return
	}

	result := h.Engine.Project(input)
	p := i18n.Printer(tag)
	writeJSON(w, http.StatusOK, CalculateResponse{
		Locale: tag.String(),
		Summary: SummaryDTO{
			FinalAmount:        output.LocalizedAmount(p, result.FinalAmount),
			TotalContributions: output.LocalizedAmount(p, result.TotalContributions),
			TotalInterest:      output.LocalizedAmount(p, result.TotalInterest),
		},
		Result: result,
	})
}

// Chart runs the same projection and responds with the SVG line chart.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	tag := h.requestTag(r)

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Errors: []ValidationError{
			{Field: "body", Message: "invalid JSON body"},
		}})
		return
	}

	input, errs := parseInput(&req, tag)
	if len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Errors: errs})
		return
	}

	result := h.Engine.Project(input)
	report := &domain.ProjectionReport{
		Locale:    tag.String(),
		Scenarios: []domain.ScenarioResult{{Name: "chart", Input: input, Result: result}},
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(output.RenderChart(report))
}

// Frequencies lists the contribution frequency menu for form rendering.
func (h *Handler) Frequencies(w http.ResponseWriter, r *http.Request) {
	p := i18n.Printer(h.requestTag(r))
	writeJSON(w, http.StatusOK, []FrequencyDTO{
		{Value: string(domain.FrequencyMonthly), Label: p.Sprintf("Contributions") + " / " + p.Sprintf("Year") + " x12"},
		{Value: string(domain.FrequencyAnnual), Label: p.Sprintf("Contributions") + " / " + p.Sprintf("Year") + " x1"},
	})
}

// Healthz reports liveness.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseInput converts the raw request into a validated engine input. Empty
// principal and contribution fields default to zero; every other empty or
// unparseable field is rejected with a field-specific error, and the engine
// is never invoked while any error is outstanding.
func parseInput(req *CalculateRequest, tag language.Tag) (domain.CalculationInput, []ValidationError) {
	var errs []ValidationError
	input := domain.CalculationInput{}

	fail := func(field, message string) {
		errs = append(errs, ValidationError{Field: field, Message: message})
	}

	parseAmountField := func(field, raw string) decimal.Decimal {
		if strings.TrimSpace(raw) == "" {
			return decimal.Zero
		}
		d, err := i18n.ParseAmount(raw, tag)
		if err != nil {
			fail(field, "must be a number")
			return decimal.Zero
		}
		return d
	}

	input.Principal = parseAmountField("principal", req.Principal)
	if input.Principal.LessThan(decimal.Zero) {
		fail("principal", "cannot be negative")
	}

	input.ContributionAmount = parseAmountField("contribution_amount", req.ContributionAmount)
	if input.ContributionAmount.LessThan(decimal.Zero) {
		fail("contribution_amount", "cannot be negative")
	}

	if strings.TrimSpace(req.AnnualRatePercent) == "" {
		fail("annual_rate_percent", "is required")
	} else if d, err := i18n.ParseAmount(req.AnnualRatePercent, tag); err != nil {
		fail("annual_rate_percent", "must be a number")
	} else if d.LessThan(decimal.Zero) {
		fail("annual_rate_percent", "cannot be negative")
	} else {
		input.AnnualRatePercent = d
	}

	input.Years = parseFloatField("years", req.Years, tag, fail)
	if input.Years <= 0 && !hasError(errs, "years") {
		fail("years", "must be positive")
	}

	input.CompoundsPerYear = parseFloatField("compounds_per_year", req.CompoundsPerYear, tag, fail)
	if input.CompoundsPerYear <= 0 && !hasError(errs, "compounds_per_year") {
		fail("compounds_per_year", "must be positive")
	}

	switch freq := domain.Frequency(strings.TrimSpace(req.ContributionFrequency)); {
	case freq == "":
		input.ContributionFrequency = domain.FrequencyMonthly
	case freq.Valid():
		input.ContributionFrequency = freq
	default:
		fail("contribution_frequency", "must be \"monthly\" or \"annual\"")
	}

	return input, errs
}

func parseFloatField(field, raw string, tag language.Tag, fail func(field, message string)) float64 {
	if strings.TrimSpace(raw) == "" {
		fail(field, "is required")
		return 0
	}
	d, err := i18n.ParseAmount(raw, tag)
	if err != nil {
		fail(field, "must be a number")
		return 0
	}
	f, _ := d.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		fail(field, "must be a finite number")
		return 0
	}
	return f
}

func hasError(errs []ValidationError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
