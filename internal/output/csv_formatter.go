package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/cigo/compound-calculator/internal/domain"
)

// CSVFormatter emits one row per yearly snapshot per scenario.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Partial", "EndBalance", "YearlyContributions", "YearlyInterest", "TotalContributions", "TotalInterest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		for _, row := range sc.Result.Rows {
			record := []string{
				sc.Name,
				strconv.Itoa(row.YearNumber),
				strconv.FormatBool(row.IsPartial),
				row.EndBalance.StringFixed(2),
				row.YearlyContributions.StringFixed(2),
				row.YearlyInterest.StringFixed(2),
				row.TotalContributions.StringFixed(2),
				row.TotalInterest.StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
