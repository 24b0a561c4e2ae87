package config

import (
	"fmt"
	"math"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cigo/compound-calculator/internal/domain"
	"github.com/cigo/compound-calculator/internal/i18n"
)

// InputParser handles parsing of calculation configuration files.
//
// The projection engine itself is a total function with no error taxonomy;
// rejecting out-of-domain input is this layer's job, and the engine must not
// be invoked until validation passes.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg domain.Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(cfg *domain.Configuration) error {
	if len(cfg.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	for i, sc := range cfg.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if err := ValidateInput(&sc.Input); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", sc.Name, err)
		}
	}

	if cfg.Report.Locale != "" {
		if _, ok := i18n.ParseTag(cfg.Report.Locale); !ok {
			return fmt.Errorf("report locale %q is not supported", cfg.Report.Locale)
		}
	}

	return nil
}

// ValidateInput checks a single calculation input against the documented
// input domain. Behavior of the engine on out-of-domain values is
// unspecified, so everything here must hold before the engine is called.
func ValidateInput(input *domain.CalculationInput) error {
	if input.Principal.LessThan(decimal.Zero) {
		return fmt.Errorf("principal cannot be negative")
	}
	if input.AnnualRatePercent.LessThan(decimal.Zero) {
		return fmt.Errorf("annual rate cannot be negative")
	}
	if math.IsNaN(input.Years) || math.IsInf(input.Years, 0) {
		return fmt.Errorf("years must be a finite number")
	}
	if input.Years <= 0 {
		return fmt.Errorf("years must be positive")
	}
	if math.IsNaN(input.CompoundsPerYear) || math.IsInf(input.CompoundsPerYear, 0) {
		return fmt.Errorf("compounds per year must be a finite number")
	}
	if input.CompoundsPerYear <= 0 {
		return fmt.Errorf("compounds per year must be positive")
	}
	if input.ContributionAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("contribution amount cannot be negative")
	}
	if !input.ContributionFrequency.Valid() {
		return fmt.Errorf("contribution frequency must be %q or %q",
			domain.FrequencyMonthly, domain.FrequencyAnnual)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration that passes
// validation as written.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name: "Savings only",
				Input: domain.CalculationInput{
					Principal:             decimal.NewFromInt(10000),
					AnnualRatePercent:     decimal.NewFromInt(5),
					Years:                 10,
					CompoundsPerYear:      12,
					ContributionAmount:    decimal.Zero,
					ContributionFrequency: domain.FrequencyMonthly,
				},
			},
			{
				Name: "Monthly deposits",
				Input: domain.CalculationInput{
					Principal:             decimal.NewFromInt(5000),
					AnnualRatePercent:     decimal.NewFromInt(7),
					Years:                 5,
					CompoundsPerYear:      4,
					ContributionAmount:    decimal.NewFromInt(150),
					ContributionFrequency: domain.FrequencyMonthly,
				},
			},
		},
		Report: domain.ReportOptions{
			Locale: "en-US",
			Format: "console",
		},
	}
}
