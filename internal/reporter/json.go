package reporter

import (
	"encoding/json"
	"io"

	"github.com/kmorrow/bayescm/internal/analysis"
)

// JSONReporter outputs the summary as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Groups []JSONGroup `json:"groups"`
}

// JSONGroup represents one reporting group in JSON format
type JSONGroup struct {
	Name    string       `json:"name"`
	Metrics []JSONMetric `json:"metrics"`
}

// JSONMetric represents one metric's statistics in JSON format. Values
// are projected as fixed 4-decimal strings, matching the table renderer.
type JSONMetric struct {
	Name  string     `json:"name"`
	Stats []JSONStat `json:"stats"`
}

// JSONStat is a single named statistic in JSON format
type JSONStat struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Report outputs the summary as indented JSON
func (r *JSONReporter) Report(s *analysis.Summary) error {
	out := JSONOutput{Groups: make([]JSONGroup, 0, len(s.Groups))}

	for _, g := range s.Groups {
		jg := JSONGroup{Name: g.Name, Metrics: make([]JSONMetric, 0, len(g.Metrics))}
		for _, m := range g.Metrics {
			jm := JSONMetric{Name: m.Name, Stats: make([]JSONStat, 0, len(m.Stats))}
			for _, st := range m.Stats {
				jm.Stats = append(jm.Stats, JSONStat{Name: st.Name, Value: formatValue(st.Value)})
			}
			jg.Metrics = append(jg.Metrics, jm)
		}
		out.Groups = append(out.Groups, jg)
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
