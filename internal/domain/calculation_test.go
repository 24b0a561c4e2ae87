package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFrequencyValid(t *testing.T) {
	assert.True(t, FrequencyMonthly.Valid())
	assert.True(t, FrequencyAnnual.Valid())
	assert.False(t, Frequency("weekly").Valid())
	assert.False(t, Frequency("").Valid())
}

func TestCalculationInputUnmarshalYAML(t *testing.T) {
	content := `
principal: 10000
annual_rate_percent: 5.5
years: 2.5
compounds_per_year: 12
contribution_amount: 150
contribution_frequency: monthly
`
	var in CalculationInput
	require.NoError(t, yaml.Unmarshal([]byte(content), &in))

	assert.True(t, in.Principal.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, "5.5", in.AnnualRatePercent.String())
	assert.Equal(t, 2.5, in.Years)
	assert.Equal(t, 12.0, in.CompoundsPerYear)
	assert.True(t, in.ContributionAmount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, FrequencyMonthly, in.ContributionFrequency)
}

func TestCalculationInputUnmarshalYAMLDefaultsMissingAmounts(t *testing.T) {
	content := `
years: 1
compounds_per_year: 12
`
	var in CalculationInput
	require.NoError(t, yaml.Unmarshal([]byte(content), &in))
	assert.True(t, in.Principal.IsZero())
	assert.True(t, in.ContributionAmount.IsZero())
}

func TestCalculationInputUnmarshalYAMLRejectsBadAmount(t *testing.T) {
	var in CalculationInput
	err := yaml.Unmarshal([]byte("principal: lots\nyears: 1\n"), &in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "principal")
}

func TestCalculationInputYAMLRoundTrip(t *testing.T) {
	in := CalculationInput{
		Principal:             decimal.NewFromInt(5000),
		AnnualRatePercent:     decimal.NewFromFloat(7.25),
		Years:                 5,
		CompoundsPerYear:      4,
		ContributionAmount:    decimal.NewFromInt(150),
		ContributionFrequency: FrequencyAnnual,
	}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	var decoded CalculationInput
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.True(t, decoded.Principal.Equal(in.Principal))
	assert.True(t, decoded.AnnualRatePercent.Equal(in.AnnualRatePercent))
	assert.Equal(t, in.Years, decoded.Years)
	assert.Equal(t, in.ContributionFrequency, decoded.ContributionFrequency)
}

func TestMaxEndBalance(t *testing.T) {
	report := ProjectionReport{
		Scenarios: []ScenarioResult{
			{Result: CalculationResult{Rows: []YearlyRow{
				{EndBalance: decimal.NewFromInt(100)},
				{EndBalance: decimal.NewFromInt(250)},
			}}},
			{Result: CalculationResult{Rows: []YearlyRow{
				{EndBalance: decimal.NewFromInt(175)},
			}}},
		},
	}
	assert.True(t, report.MaxEndBalance().Equal(decimal.NewFromInt(250)))

	empty := ProjectionReport{}
	assert.True(t, empty.MaxEndBalance().IsZero())
}

func TestLastRow(t *testing.T) {
	var cr CalculationResult
	assert.Nil(t, cr.LastRow())

	cr.Rows = []YearlyRow{{YearNumber: 1}, {YearNumber: 2, IsPartial: true}}
	last := cr.LastRow()
	require.NotNil(t, last)
	assert.Equal(t, 2, last.YearNumber)
	assert.True(t, last.IsPartial)
}
