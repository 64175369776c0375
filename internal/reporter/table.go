package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/kmorrow/bayescm/internal/analysis"
	"github.com/kmorrow/bayescm/internal/ui"
)

// TableReporter renders the summary as an aligned table grouped by
// reporting group, styled when the terminal supports it
type TableReporter struct {
	w      io.Writer
	styles *ui.Styles
}

// NewTableReporter creates a new table reporter
func NewTableReporter(w io.Writer, styles *ui.Styles) *TableReporter {
	return &TableReporter{w: w, styles: styles}
}

// Report renders the summary as a table
func (r *TableReporter) Report(s *analysis.Summary) error {
	cols := statColumns(s)

	// Column widths: metric names plus one column per statistic.
	nameWidth := len("Metric")
	for _, g := range s.Groups {
		for _, m := range g.Metrics {
			if len(m.Name) > nameWidth {
				nameWidth = len(m.Name)
			}
		}
	}
	const valWidth = 10 // fits "%.4f" values and the statistic headers

	for gi, g := range s.Groups {
		if gi > 0 {
			fmt.Fprintln(r.w)
		}
		fmt.Fprintln(r.w, r.styles.Header.Render(g.Name))

		// Header row
		header := fmt.Sprintf("  %-*s", nameWidth, "Metric")
		for _, c := range cols {
			header += fmt.Sprintf("  %*s", valWidth, c)
		}
		fmt.Fprintln(r.w, r.styles.Subheader.Render(header))
		fmt.Fprintln(r.w, r.styles.Subheader.Render("  "+strings.Repeat("─", nameWidth+(valWidth+2)*len(cols))))

		for _, m := range g.Metrics {
			// Pad before styling; ANSI escapes would break %-*s widths.
			row := "  " + r.styles.MetricName.Render(m.Name+strings.Repeat(" ", nameWidth-len(m.Name)))
			for _, c := range cols {
				cell := strings.Repeat(" ", valWidth)
				if v, ok := m.Get(c); ok {
					style := r.styles.Value
					if c == analysis.StatLower || c == analysis.StatUpper {
						style = r.styles.Interval
					}
					cell = style.Render(fmt.Sprintf("%*s", valWidth, formatValue(v)))
				}
				row += "  " + cell
			}
			fmt.Fprintln(r.w, row)
		}
	}

	return nil
}
