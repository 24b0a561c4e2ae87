package output

import (
	"bytes"
	"fmt"

	"github.com/cigo/compound-calculator/internal/domain"
)

// SVGChartFormatter draws the end-balance line chart. Points are evenly
// spaced on x by row index; y is normalized against the largest end balance
// in the report and inverted, so larger balances plot higher.
type SVGChartFormatter struct{}

func (s SVGChartFormatter) Name() string { return "svg" }

func (s SVGChartFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	return RenderChart(report), nil
}

const (
	chartWidth  = 640.0
	chartHeight = 360.0
	chartPad    = 48.0
)

// seriesColors cycles across scenarios.
var seriesColors = []string{"#2563eb", "#dc2626", "#059669", "#d97706", "#7c3aed"}

// RenderChart renders the report as a standalone SVG document. It is shared
// by the svg formatter, the HTML report and the API chart endpoint.
func RenderChart(report *domain.ProjectionReport) []byte {
	plotW := chartWidth - 2*chartPad
	plotH := chartHeight - 2*chartPad
	maxBalance := report.MaxEndBalance().InexactFloat64()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		chartWidth, chartHeight, chartWidth, chartHeight)
	fmt.Fprintf(&buf, `<rect width="%.0f" height="%.0f" fill="white"/>`+"\n", chartWidth, chartHeight)

	// Axis frame: y on the left, x along the bottom.
	fmt.Fprintf(&buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444" stroke-width="1"/>`+"\n",
		chartPad, chartPad, chartPad, chartHeight-chartPad)
	fmt.Fprintf(&buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444" stroke-width="1"/>`+"\n",
		chartPad, chartHeight-chartPad, chartWidth-chartPad, chartHeight-chartPad)
	if maxBalance > 0 {
		fmt.Fprintf(&buf, `<text x="%.1f" y="%.1f" font-size="11" text-anchor="start" fill="#444">%.2f</text>`+"\n",
			chartPad+4, chartPad-6, maxBalance)
	}

	for si, sc := range report.Scenarios {
		rows := sc.Result.Rows
		if len(rows) == 0 {
			continue
		}
		color := seriesColors[si%len(seriesColors)]

		type point struct{ x, y float64 }
		points := make([]point, len(rows))
		for i, row := range rows {
			x := chartPad + plotW/2
			if len(rows) > 1 {
				x = chartPad + plotW*float64(i)/float64(len(rows)-1)
			}
			norm := 0.0
			if maxBalance > 0 {
				norm = row.EndBalance.InexactFloat64() / maxBalance
			}
			y := chartPad + plotH*(1-norm)
			points[i] = point{x, y}
		}

		if len(points) > 1 {
			fmt.Fprintf(&buf, `<polyline fill="none" stroke="%s" stroke-width="2" points="`, color)
			for i, pt := range points {
				if i > 0 {
					buf.WriteByte(' ')
				}
				fmt.Fprintf(&buf, "%.1f,%.1f", pt.x, pt.y)
			}
			fmt.Fprint(&buf, `"/>`+"\n")
		}
		for _, pt := range points {
			fmt.Fprintf(&buf, `<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>`+"\n", pt.x, pt.y, color)
		}
	}

	fmt.Fprint(&buf, "</svg>\n")
	return buf.Bytes()
}
