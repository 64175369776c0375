// Package posterior draws and summarizes posterior predictive samples of
// a confusion matrix under a Dirichlet-multinomial conjugate model.
package posterior

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kmorrow/bayescm/internal/matrix"
)

// ErrInvalidSampleCount indicates a non-positive sample count.
var ErrInvalidSampleCount = errors.New("invalid sample count")

// Sampler draws simulated confusion matrices from the posterior implied
// by an observed matrix and a prior pseudocount vector. Each draw samples
// cell probabilities from Dirichlet(observed + prior), then one
// multinomial of the observed total from those probabilities.
type Sampler struct {
	k     int
	n     int
	alpha []float64
	src   rand.Source
}

// NewSampler builds a sampler for the observed matrix m and a prior of
// length K². A nil src means a time-seeded source; pass a fixed-seed
// source for reproducible draws.
func NewSampler(m matrix.ConfusionMatrix, priorVec []float64, src rand.Source) (*Sampler, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	flat := m.Flatten()
	if len(priorVec) != len(flat) {
		return nil, fmt.Errorf("prior has %d entries, matrix has %d cells", len(priorVec), len(flat))
	}

	alpha := make([]float64, len(flat))
	for i := range alpha {
		alpha[i] = flat[i] + priorVec[i]
	}

	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	return &Sampler{
		k:     m.Classes(),
		n:     m.Total(),
		alpha: alpha,
		src:   src,
	}, nil
}

// Sample draws count posterior predictive confusion matrices. Every
// returned matrix is K x K with non-negative entries summing exactly to
// the observed total N.
func (s *Sampler) Sample(count int) ([]matrix.ConfusionMatrix, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d, want at least 1", ErrInvalidSampleCount, count)
	}

	// Cells with zero concentration (empty cell and zero prior) are
	// degenerate: the posterior puts no mass on them. Sample the Dirichlet
	// over the positive-concentration cells only and pin the rest to 0.
	pos := make([]int, 0, len(s.alpha))
	for i, a := range s.alpha {
		if a > 0 {
			pos = append(pos, i)
		}
	}
	posAlpha := make([]float64, len(pos))
	for i, idx := range pos {
		posAlpha[i] = s.alpha[idx]
	}
	dir := distmv.NewDirichlet(posAlpha, s.src)

	out := make([]matrix.ConfusionMatrix, count)
	probs := make([]float64, len(pos))
	full := make([]float64, len(s.alpha))
	for i := range out {
		dir.Rand(probs)
		for j := range full {
			full[j] = 0
		}
		for j, idx := range pos {
			full[idx] = probs[j]
		}

		counts := multinomial(s.n, full, s.src)
		m, err := matrix.FromFlat(s.k, counts)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

// multinomial draws one multinomial(n, probs) sample by the conditional
// binomial method: cell i receives Binomial(remaining, p_i / mass of the
// cells not yet drawn). The final positive-probability cell absorbs
// whatever remains, so totals are exact regardless of float drift.
func multinomial(n int, probs []float64, src rand.Source) []int {
	counts := make([]int, len(probs))
	last := -1
	for i, p := range probs {
		if p > 0 {
			last = i
		}
	}
	if last < 0 {
		return counts
	}

	remaining := n
	rest := 1.0
	for i := 0; i < last && remaining > 0; i++ {
		if probs[i] <= 0 {
			continue
		}
		p := probs[i] / rest
		if p >= 1 {
			counts[i] = remaining
			remaining = 0
			break
		}
		b := distuv.Binomial{N: float64(remaining), P: p, Src: src}
		k := int(b.Rand())
		counts[i] = k
		remaining -= k
		rest -= probs[i]
	}
	counts[last] += remaining
	return counts
}
