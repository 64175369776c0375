// Package analysis ties the statistical engine together: it owns the
// observed confusion matrix, the resolved prior and the confidence level,
// and maintains the ordered metric summary that posterior estimation
// augments with credible intervals.
package analysis

import (
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/kmorrow/bayescm/internal/matrix"
	"github.com/kmorrow/bayescm/internal/metrics"
	"github.com/kmorrow/bayescm/internal/posterior"
	"github.com/kmorrow/bayescm/internal/prior"
)

// ConfusionAnalysis holds one observed confusion matrix and its derived
// summary. Construction computes the observed-data point metrics; calling
// EstimatePosterior adds credible-interval statistics to the same summary.
// The configuration portion (matrix, prior, confidence) is immutable after
// construction; only the summary mutates, and only through these methods.
type ConfusionAnalysis struct {
	Matrix     matrix.ConfusionMatrix `json:"matrix"`
	PriorSpec  string                 `json:"prior_spec"`
	Prior      []float64              `json:"prior"`
	Confidence float64                `json:"confidence"`
	Summary    *Summary               `json:"summary"`

	alpha float64
	log   *zap.SugaredLogger
}

// New validates the configuration and computes the observed-data summary.
// The confidence level must lie strictly between 0 and 1; the prior spec
// is resolved against the K² flattened cells. A nil logger disables
// diagnostics.
func New(m matrix.ConfusionMatrix, spec prior.Spec, confidence float64, log *zap.SugaredLogger) (*ConfusionAnalysis, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if err := posterior.ValidateConfidence(confidence); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	k := m.Classes()
	priorVec, err := prior.Resolve(spec, k*k)
	if err != nil {
		return nil, err
	}

	a := &ConfusionAnalysis{
		Matrix:     m,
		PriorSpec:  spec.String(),
		Prior:      priorVec,
		Confidence: confidence,
		alpha:      1 - confidence,
		log:        log,
	}

	batch, err := metrics.Compute([]matrix.ConfusionMatrix{m})
	if err != nil {
		return nil, err
	}
	a.Summary = instanceSummary(batch, k)

	log.Debugw("analysis constructed",
		"classes", k,
		"total", m.Total(),
		"prior", spec.String(),
		"alpha", a.alpha,
	)
	return a, nil
}

// Alpha returns the tail mass 1 - confidence.
func (a *ConfusionAnalysis) Alpha() float64 {
	return a.alpha
}

// EstimatePosterior draws samples posterior predictive confusion matrices,
// recomputes every tracked metric on the batch, and merges mean and
// credible-interval statistics into the summary. Repeat calls resample
// and overwrite the interval statistics; the Instance values never change.
// A nil src means a time-seeded source.
func (a *ConfusionAnalysis) EstimatePosterior(samples int, src rand.Source) error {
	sampler, err := posterior.NewSampler(a.Matrix, a.Prior, src)
	if err != nil {
		return err
	}

	draws, err := sampler.Sample(samples)
	if err != nil {
		return err
	}
	a.log.Debugw("posterior matrices sampled", "samples", samples)

	batch, err := metrics.Compute(draws)
	if err != nil {
		return err
	}

	overall := a.Summary.Group(GroupOverall)
	for _, mv := range []struct {
		name    string
		samples []float64
	}{
		{MetricAccuracy, batch.Accuracy},
		{MetricF1Micro, batch.F1Micro},
		{MetricF1Macro, batch.F1Macro},
		{MetricMCC, batch.MCC},
	} {
		stats, err := posterior.Summarize(mv.samples, a.alpha)
		if err != nil {
			return err
		}
		setStats(overall.Metric(mv.name), stats)
	}

	for c := 0; c < a.Matrix.Classes(); c++ {
		group := a.Summary.Group(GroupClass(c))
		for _, mv := range []struct {
			name    string
			samples []float64
		}{
			{MetricPrecision, metrics.Column(batch.Precision, c)},
			{MetricRecall, metrics.Column(batch.Recall, c)},
			{MetricF1, metrics.Column(batch.F1, c)},
		} {
			stats, err := posterior.Summarize(mv.samples, a.alpha)
			if err != nil {
				return err
			}
			setStats(group.Metric(mv.name), stats)
		}
	}

	a.log.Debugw("posterior estimated", "groups", len(a.Summary.Groups))
	return nil
}

// instanceSummary builds the construction-time summary from a single
// observed matrix: one Instance statistic per metric, groups ordered
// Overall first, then one group per class.
func instanceSummary(batch *metrics.Batch, k int) *Summary {
	s := &Summary{}

	overall := s.Group(GroupOverall)
	overall.Metric(MetricAccuracy).Set(StatInstance, batch.Accuracy[0])
	overall.Metric(MetricF1Micro).Set(StatInstance, batch.F1Micro[0])
	overall.Metric(MetricF1Macro).Set(StatInstance, batch.F1Macro[0])
	overall.Metric(MetricMCC).Set(StatInstance, batch.MCC[0])

	for c := 0; c < k; c++ {
		group := s.Group(GroupClass(c))
		group.Metric(MetricPrecision).Set(StatInstance, batch.Precision[0][c])
		group.Metric(MetricRecall).Set(StatInstance, batch.Recall[0][c])
		group.Metric(MetricF1).Set(StatInstance, batch.F1[0][c])
	}
	return s
}

func setStats(m *Metric, stats posterior.Stats) {
	m.Set(StatMean, stats.Mean)
	m.Set(StatLower, stats.Lower)
	m.Set(StatUpper, stats.Upper)
}
