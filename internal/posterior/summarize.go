package posterior

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrInvalidConfidence indicates a confidence level outside (0, 1).
var ErrInvalidConfidence = errors.New("invalid confidence level")

// Stats is the posterior summary of one metric: the sample mean and an
// equal-tailed credible interval.
type Stats struct {
	Mean  float64
	Lower float64
	Upper float64
}

// ValidateConfidence rejects confidence levels outside the open interval
// (0, 1). Called at configuration time so sampling never starts with an
// unusable tail mass.
func ValidateConfidence(level float64) error {
	if level <= 0 || level >= 1 {
		return fmt.Errorf("%w: %v is not in (0, 1)", ErrInvalidConfidence, level)
	}
	return nil
}

// Summarize reduces posterior samples of one metric to a mean and an
// equal-tailed (1-alpha) credible interval. Bounds are the alpha/2 and
// 1-alpha/2 empirical quantiles with linear interpolation between order
// statistics, so intervals are comparable across metrics.
func Summarize(samples []float64, alpha float64) (Stats, error) {
	if alpha <= 0 || alpha >= 1 {
		return Stats{}, fmt.Errorf("%w: tail mass %v is not in (0, 1)", ErrInvalidConfidence, alpha)
	}
	if len(samples) == 0 {
		return Stats{}, fmt.Errorf("%w: no samples to summarize", ErrInvalidSampleCount)
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	return Stats{
		Mean:  stat.Mean(sorted, nil),
		Lower: stat.Quantile(alpha/2, stat.LinInterp, sorted, nil),
		Upper: stat.Quantile(1-alpha/2, stat.LinInterp, sorted, nil),
	}, nil
}
