package posterior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/kmorrow/bayescm/internal/matrix"
	"github.com/kmorrow/bayescm/internal/metrics"
	"github.com/kmorrow/bayescm/internal/prior"
)

func mustMatrix(t *testing.T, cells [][]int) matrix.ConfusionMatrix {
	t.Helper()
	m, err := matrix.New(cells)
	require.NoError(t, err)
	return m
}

func mustPrior(t *testing.T, c float64, dim int) []float64 {
	t.Helper()
	vec, err := prior.Resolve(prior.Scalar(c), dim)
	require.NoError(t, err)
	return vec
}

func TestSample_TotalsMatchObserved(t *testing.T) {
	m := mustMatrix(t, [][]int{{6, 2, 0}, {1, 3, 1}, {0, 2, 4}})
	s, err := NewSampler(m, mustPrior(t, 1, 9), rand.NewSource(1))
	require.NoError(t, err)

	draws, err := s.Sample(500)
	require.NoError(t, err)
	require.Len(t, draws, 500)

	for _, d := range draws {
		assert.Equal(t, 3, d.Classes())
		assert.Equal(t, m.Total(), d.Total())
		for _, row := range d.Cells {
			for _, c := range row {
				assert.GreaterOrEqual(t, c, 0)
			}
		}
	}
}

func TestSample_InvalidCount(t *testing.T) {
	m := mustMatrix(t, [][]int{{6, 2}, {1, 3}})
	s, err := NewSampler(m, mustPrior(t, 1, 4), rand.NewSource(1))
	require.NoError(t, err)

	for _, count := range []int{0, -5} {
		_, err := s.Sample(count)
		assert.ErrorIs(t, err, ErrInvalidSampleCount)
	}
}

func TestSample_ZeroConcentrationCellsStayEmpty(t *testing.T) {
	// With a zero prior, a cell that was never observed has zero
	// posterior mass and must stay empty in every draw.
	m := mustMatrix(t, [][]int{{6, 0}, {1, 3}})
	s, err := NewSampler(m, mustPrior(t, 0, 4), rand.NewSource(7))
	require.NoError(t, err)

	draws, err := s.Sample(200)
	require.NoError(t, err)

	for _, d := range draws {
		assert.Zero(t, d.Cells[0][1])
		assert.Equal(t, m.Total(), d.Total())
	}
}

func TestSample_Reproducible(t *testing.T) {
	m := mustMatrix(t, [][]int{{6, 2}, {1, 3}})

	s1, err := NewSampler(m, mustPrior(t, 0.5, 4), rand.NewSource(42))
	require.NoError(t, err)
	s2, err := NewSampler(m, mustPrior(t, 0.5, 4), rand.NewSource(42))
	require.NoError(t, err)

	d1, err := s1.Sample(50)
	require.NoError(t, err)
	d2, err := s2.Sample(50)
	require.NoError(t, err)

	for i := range d1 {
		assert.Equal(t, d1[i].Cells, d2[i].Cells)
	}
}

func TestSample_PriorDimensionMismatch(t *testing.T) {
	m := mustMatrix(t, [][]int{{6, 2}, {1, 3}})
	_, err := NewSampler(m, mustPrior(t, 1, 9), rand.NewSource(1))
	assert.Error(t, err)
}

// With the prior pseudocounts near zero the posterior concentrates on the
// observed cell frequencies, so the mean of a metric across many samples
// converges to the observed-data point value.
func TestSample_MeanConvergesToObserved(t *testing.T) {
	if testing.Short() {
		t.Skip("large-sample convergence check")
	}

	m := mustMatrix(t, [][]int{{6, 2}, {1, 3}})
	s, err := NewSampler(m, mustPrior(t, 1e-9, 4), rand.NewSource(1234))
	require.NoError(t, err)

	draws, err := s.Sample(50000)
	require.NoError(t, err)

	batch, err := metrics.Compute(draws)
	require.NoError(t, err)

	var sum float64
	for _, a := range batch.Accuracy {
		sum += a
	}
	mean := sum / float64(len(batch.Accuracy))

	assert.InDelta(t, 0.75, mean, 0.01)
}
