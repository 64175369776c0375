package reporter

import (
	"fmt"

	"github.com/kmorrow/bayescm/internal/analysis"
)

// Reporter defines the interface for rendering an analysis summary
type Reporter interface {
	// Report renders the summary
	Report(s *analysis.Summary) error
}

// formatValue projects a statistic as a fixed 4-decimal-place string.
func formatValue(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// statColumns returns the statistic names present in the summary, in
// order of first appearance, so the table has one column per statistic.
func statColumns(s *analysis.Summary) []string {
	var cols []string
	seen := make(map[string]bool)
	for _, g := range s.Groups {
		for _, m := range g.Metrics {
			for _, st := range m.Stats {
				if !seen[st.Name] {
					seen[st.Name] = true
					cols = append(cols, st.Name)
				}
			}
		}
	}
	return cols
}
