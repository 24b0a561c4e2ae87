package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Frequency describes how often the periodic contribution is deposited.
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyAnnual  Frequency = "annual"
)

// Valid reports whether the frequency is one of the supported values.
func (f Frequency) Valid() bool {
	return f == FrequencyMonthly || f == FrequencyAnnual
}

// CalculationInput is the validated, already-parsed input record the engine
// consumes. Callers are responsible for rejecting out-of-domain values
// (negative principal, non-positive years or compounding frequency,
// non-finite numbers) before invoking the engine.
type CalculationInput struct {
	// Principal is the starting balance.
	Principal decimal.Decimal `json:"principal" yaml:"principal"`
	// AnnualRatePercent is the nominal annual rate as a percentage (5 means 5%).
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent" yaml:"annual_rate_percent"`
	// Years is the projection horizon; fractional years are allowed.
	Years float64 `json:"years" yaml:"years"`
	// CompoundsPerYear is how many times per year the nominal rate is applied.
	// Any positive value is accepted, not just the common 1/4/12/365 menu.
	CompoundsPerYear float64 `json:"compounds_per_year" yaml:"compounds_per_year"`
	// ContributionAmount is added per contribution event.
	ContributionAmount decimal.Decimal `json:"contribution_amount" yaml:"contribution_amount"`
	// ContributionFrequency selects monthly or annual deposits.
	ContributionFrequency Frequency `json:"contribution_frequency" yaml:"contribution_frequency"`
}

// calculationInputYAML mirrors CalculationInput with string amount fields.
// YAML scalars do not decode into decimal.Decimal directly, so amounts pass
// through strings on both paths.
type calculationInputYAML struct {
	Principal             string    `yaml:"principal"`
	AnnualRatePercent     string    `yaml:"annual_rate_percent"`
	Years                 float64   `yaml:"years"`
	CompoundsPerYear      float64   `yaml:"compounds_per_year"`
	ContributionAmount    string    `yaml:"contribution_amount"`
	ContributionFrequency Frequency `yaml:"contribution_frequency"`
}

// UnmarshalYAML implements custom YAML unmarshaling for CalculationInput.
// Missing amount fields default to zero.
func (ci *CalculationInput) UnmarshalYAML(value *yaml.Node) error {
	var aux calculationInputYAML
	if err := value.Decode(&aux); err != nil {
		return err
	}

	parseAmount := func(field, raw string) (decimal.Decimal, error) {
		if raw == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid %s value %q: %w", field, raw, err)
		}
		return d, nil
	}

	var err error
	if ci.Principal, err = parseAmount("principal", aux.Principal); err != nil {
		return err
	}
	if ci.AnnualRatePercent, err = parseAmount("annual_rate_percent", aux.AnnualRatePercent); err != nil {
		return err
	}
	if ci.ContributionAmount, err = parseAmount("contribution_amount", aux.ContributionAmount); err != nil {
		return err
	}
	ci.Years = aux.Years
	ci.CompoundsPerYear = aux.CompoundsPerYear
	ci.ContributionFrequency = aux.ContributionFrequency
	return nil
}

// MarshalYAML emits the same string-amount shape UnmarshalYAML accepts.
func (ci CalculationInput) MarshalYAML() (interface{}, error) {
	return calculationInputYAML{
		Principal:             ci.Principal.String(),
		AnnualRatePercent:     ci.AnnualRatePercent.String(),
		Years:                 ci.Years,
		CompoundsPerYear:      ci.CompoundsPerYear,
		ContributionAmount:    ci.ContributionAmount.String(),
		ContributionFrequency: ci.ContributionFrequency,
	}, nil
}

// YearlyRow is one snapshot per elapsed year, plus one trailing partial-year
// snapshot when the horizon ends mid-year.
type YearlyRow struct {
	YearNumber int  `json:"year_number"`
	IsPartial  bool `json:"is_partial"`

	EndBalance          decimal.Decimal `json:"end_balance"`
	YearlyContributions decimal.Decimal `json:"yearly_contributions"`
	YearlyInterest      decimal.Decimal `json:"yearly_interest"`
	TotalContributions  decimal.Decimal `json:"total_contributions"`
	TotalInterest       decimal.Decimal `json:"total_interest"`
}

// CalculationResult is the full projection for one input record.
// TotalInterest is always FinalAmount minus TotalContributions by
// construction; the principal counts toward TotalContributions.
type CalculationResult struct {
	FinalAmount        decimal.Decimal `json:"final_amount"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalInterest      decimal.Decimal `json:"total_interest"`
	Rows               []YearlyRow     `json:"rows"`
}

// LastRow returns the final yearly snapshot, or nil for an empty projection.
func (cr *CalculationResult) LastRow() *YearlyRow {
	if len(cr.Rows) == 0 {
		return nil
	}
	return &cr.Rows[len(cr.Rows)-1]
}

// MaxEndBalance returns the largest end-of-year balance across all rows.
// Chart rendering normalizes the y axis against this value.
func (cr *CalculationResult) MaxEndBalance() decimal.Decimal {
	max := decimal.Zero
	for _, row := range cr.Rows {
		if row.EndBalance.GreaterThan(max) {
			max = row.EndBalance
		}
	}
	return max
}

// Scenario is a named calculation input, as it appears in configuration files.
type Scenario struct {
	Name  string           `json:"name" yaml:"name"`
	Input CalculationInput `json:"input" yaml:"input"`
}

// ScenarioResult pairs a scenario with its projection.
type ScenarioResult struct {
	Name   string            `json:"name"`
	Input  CalculationInput  `json:"input"`
	Result CalculationResult `json:"result"`
}

// ProjectionReport is what the output formatters consume: every scenario's
// projection, plus the locale the textual formatters should render in.
type ProjectionReport struct {
	Locale    string           `json:"locale,omitempty"`
	Scenarios []ScenarioResult `json:"scenarios"`
}

// MaxEndBalance returns the largest end balance across every scenario, so
// multi-series charts share one y axis.
func (pr *ProjectionReport) MaxEndBalance() decimal.Decimal {
	max := decimal.Zero
	for _, sc := range pr.Scenarios {
		if m := sc.Result.MaxEndBalance(); m.GreaterThan(max) {
			max = m
		}
	}
	return max
}
