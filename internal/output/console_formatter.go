package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cigo/compound-calculator/internal/domain"
	"github.com/cigo/compound-calculator/internal/i18n"
)

// ConsoleFormatter renders the summary block and year-by-year table for each
// scenario, with labels and numbers localized to the report locale.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	p := i18n.Printer(reportTag(report.Locale))

	var buf bytes.Buffer
	title := p.Sprintf("Growth projection")
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len([]rune(title))))

	for _, sc := range report.Scenarios {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s: %s\n", p.Sprintf("Scenario"), sc.Name)
		fmt.Fprintf(&buf, "  %-24s %s\n", p.Sprintf("Final balance")+":", LocalizedAmount(p, sc.Result.FinalAmount))
		fmt.Fprintf(&buf, "  %-24s %s\n", p.Sprintf("Total contributions")+":", LocalizedAmount(p, sc.Result.TotalContributions))
		fmt.Fprintf(&buf, "  %-24s %s\n", p.Sprintf("Total interest")+":", LocalizedAmount(p, sc.Result.TotalInterest))
		fmt.Fprintln(&buf)

		fmt.Fprintf(&buf, "  %-6s %16s %16s %16s %16s %16s\n",
			p.Sprintf("Year"),
			p.Sprintf("End balance"),
			p.Sprintf("Contributions"),
			p.Sprintf("Interest"),
			p.Sprintf("Total contributions"),
			p.Sprintf("Total interest"),
		)
		for _, row := range sc.Result.Rows {
			year := fmt.Sprintf("%d", row.YearNumber)
			if row.IsPartial {
				year += "*"
			}
			fmt.Fprintf(&buf, "  %-6s %16s %16s %16s %16s %16s\n",
				year,
				LocalizedAmount(p, row.EndBalance),
				LocalizedAmount(p, row.YearlyContributions),
				LocalizedAmount(p, row.YearlyInterest),
				LocalizedAmount(p, row.TotalContributions),
				LocalizedAmount(p, row.TotalInterest),
			)
		}
		if last := sc.Result.LastRow(); last != nil && last.IsPartial {
			fmt.Fprintf(&buf, "  * %s\n", p.Sprintf("partial"))
		}
	}

	return buf.Bytes(), nil
}
