package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"golang.org/x/text/message"

	"github.com/cigo/compound-calculator/internal/domain"
	"github.com/cigo/compound-calculator/internal/i18n"
)

// HTMLFormatter produces a standalone HTML report: summary, year table and
// the inline SVG chart, localized to the report locale.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

type htmlRow struct {
	Year                string
	EndBalance          string
	YearlyContributions string
	YearlyInterest      string
	TotalContributions  string
	TotalInterest       string
}

type htmlScenario struct {
	Name               string
	FinalAmount        string
	TotalContributions string
	TotalInterest      string
	Rows               []htmlRow
}

type htmlView struct {
	Title              string
	ScenarioLabel      string
	FinalLabel         string
	ContributionsLabel string
	InterestLabel      string
	YearLabel          string
	EndBalanceLabel    string
	Scenarios          []htmlScenario
	Chart              template.HTML
}

func (h HTMLFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	p := i18n.Printer(reportTag(report.Locale))

	view := htmlView{
		Title:              p.Sprintf("Growth projection"),
		ScenarioLabel:      p.Sprintf("Scenario"),
		FinalLabel:         p.Sprintf("Final balance"),
		ContributionsLabel: p.Sprintf("Total contributions"),
		InterestLabel:      p.Sprintf("Total interest"),
		YearLabel:          p.Sprintf("Year"),
		EndBalanceLabel:    p.Sprintf("End balance"),
		Chart:              template.HTML(RenderChart(report)),
	}

	for _, sc := range report.Scenarios {
		view.Scenarios = append(view.Scenarios, htmlScenario{
			Name:               sc.Name,
			FinalAmount:        LocalizedAmount(p, sc.Result.FinalAmount),
			TotalContributions: LocalizedAmount(p, sc.Result.TotalContributions),
			TotalInterest:      LocalizedAmount(p, sc.Result.TotalInterest),
			Rows:               htmlRows(p, sc.Result.Rows),
		})
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func htmlRows(p *message.Printer, rows []domain.YearlyRow) []htmlRow {
	out := make([]htmlRow, 0, len(rows))
	for _, row := range rows {
		year := fmt.Sprintf("%d", row.YearNumber)
		if row.IsPartial {
			year += "*"
		}
		out = append(out, htmlRow{
			Year:                year,
			EndBalance:          LocalizedAmount(p, row.EndBalance),
			YearlyContributions: LocalizedAmount(p, row.YearlyContributions),
			YearlyInterest:      LocalizedAmount(p, row.YearlyInterest),
			TotalContributions:  LocalizedAmount(p, row.TotalContributions),
			TotalInterest:       LocalizedAmount(p, row.TotalInterest),
		})
	}
	return out
}
