package analysis

import "fmt"

// Statistic names within a metric summary. Instance is the point value
// computed from the observed matrix at construction; the remaining keys
// appear once the posterior has been estimated.
const (
	StatInstance = "Instance"
	StatMean     = "Mean"
	StatLower    = "CI Lower"
	StatUpper    = "CI Upper"
)

// Reporting groups and metric names, matching the rendered report.
const (
	GroupOverall = "Overall"

	MetricAccuracy  = "Accuracy"
	MetricF1Micro   = "F1 (Micro)"
	MetricF1Macro   = "F1 (Macro)"
	MetricMCC       = "MCC"
	MetricPrecision = "Precision"
	MetricRecall    = "Recall"
	MetricF1        = "F1"
)

// GroupClass returns the reporting group name for a class index.
func GroupClass(c int) string {
	return fmt.Sprintf("Class %d", c)
}

// Summary is the ordered report structure: groups ("Overall", "Class 0",
// ...), each holding metrics, each holding named statistics. Order is
// preserved for deterministic rendering.
type Summary struct {
	Groups []Group `json:"groups"`
}

// Group is one reporting group of the summary.
type Group struct {
	Name    string   `json:"name"`
	Metrics []Metric `json:"metrics"`
}

// Metric is one metric's named statistics, in insertion order.
type Metric struct {
	Name  string `json:"name"`
	Stats []Stat `json:"stats"`
}

// Stat is a single named statistic value.
type Stat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Group returns the group with the given name, creating it at the end of
// the summary if absent.
func (s *Summary) Group(name string) *Group {
	for i := range s.Groups {
		if s.Groups[i].Name == name {
			return &s.Groups[i]
		}
	}
	s.Groups = append(s.Groups, Group{Name: name})
	return &s.Groups[len(s.Groups)-1]
}

// Metric returns the metric with the given name, creating it at the end
// of the group if absent.
func (g *Group) Metric(name string) *Metric {
	for i := range g.Metrics {
		if g.Metrics[i].Name == name {
			return &g.Metrics[i]
		}
	}
	g.Metrics = append(g.Metrics, Metric{Name: name})
	return &g.Metrics[len(g.Metrics)-1]
}

// Set records a statistic, overwriting an existing value of the same name
// and otherwise appending. Repeated posterior estimation overwrites the
// interval statistics in place without disturbing order.
func (m *Metric) Set(stat string, value float64) {
	for i := range m.Stats {
		if m.Stats[i].Name == stat {
			m.Stats[i].Value = value
			return
		}
	}
	m.Stats = append(m.Stats, Stat{Name: stat, Value: value})
}

// Get looks up a statistic by name.
func (m *Metric) Get(stat string) (float64, bool) {
	for _, st := range m.Stats {
		if st.Name == stat {
			return st.Value, true
		}
	}
	return 0, false
}
