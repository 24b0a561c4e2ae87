package calculation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cigo/compound-calculator/internal/domain"
)

func TestRunReport(t *testing.T) {
	engine := NewEngine()
	cfg := &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "a", Input: input(10000, 5, 10, 12, 0, domain.FrequencyMonthly)},
			{Name: "b", Input: input(5000, 7, 5, 4, 150, domain.FrequencyAnnual)},
		},
		Report: domain.ReportOptions{Locale: "de-DE"},
	}

	report, err := engine.RunReport(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, report.Scenarios, 2)
	assert.Equal(t, "de-DE", report.Locale)
	assert.Equal(t, "a", report.Scenarios[0].Name)
	assert.Len(t, report.Scenarios[0].Result.Rows, 10)
	assert.Len(t, report.Scenarios[1].Result.Rows, 5)
}

func TestRunReportNoScenarios(t *testing.T) {
	engine := NewEngine()
	_, err := engine.RunReport(context.Background(), &domain.Configuration{})
	assert.Error(t, err)
}

func TestRunReportCancelledContext(t *testing.T) {
	engine := NewEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "a", Input: input(10000, 5, 10, 12, 0, domain.FrequencyMonthly)},
		},
	}
	_, err := engine.RunReport(ctx, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	engine := NewEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
