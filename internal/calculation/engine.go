package calculation

import (
	"context"
	"fmt"

	"github.com/cigo/compound-calculator/internal/domain"
)

// Engine runs compound-growth projections. It owns no state across calls:
// every Project invocation is independent and deterministic for identical
// inputs, so concurrent use needs no coordination.
type Engine struct {
	Logger Logger
}

// NewEngine creates a projection engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunReport projects every scenario in the configuration and assembles the
// report record the output formatters consume.
func (e *Engine) RunReport(ctx context.Context, cfg *domain.Configuration) (*domain.ProjectionReport, error) {
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to run")
	}

	report := &domain.ProjectionReport{
		Locale:    cfg.Report.Locale,
		Scenarios: make([]domain.ScenarioResult, len(cfg.Scenarios)),
	}
	for i, sc := range cfg.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result := e.Project(sc.Input)
		e.Logger.Infof("scenario %q: final=%s contributions=%s over %d rows",
			sc.Name, result.FinalAmount.StringFixed(2), result.TotalContributions.StringFixed(2), len(result.Rows))
		report.Scenarios[i] = domain.ScenarioResult{
			Name:   sc.Name,
			Input:  sc.Input,
			Result: result,
		}
	}
	return report, nil
}
