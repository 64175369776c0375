package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmorrow/bayescm/internal/matrix"
)

const tol = 1e-9

func mustMatrix(t *testing.T, cells [][]int) matrix.ConfusionMatrix {
	t.Helper()
	m, err := matrix.New(cells)
	require.NoError(t, err)
	return m
}

func TestCompute_KnownScenario(t *testing.T) {
	// [[6,2],[1,3]]: t = [8,4], p = [7,5], c = 9, s = 12.
	m := mustMatrix(t, [][]int{{6, 2}, {1, 3}})

	b, err := Compute([]matrix.ConfusionMatrix{m})
	require.NoError(t, err)

	assert.InDelta(t, 0.75, b.Accuracy[0], tol)
	assert.InDelta(t, 0.75, b.F1Micro[0], tol)

	assert.InDelta(t, 6.0/7.0, b.Precision[0][0], tol)
	assert.InDelta(t, 0.75, b.Recall[0][0], tol)
	assert.InDelta(t, 0.8, b.F1[0][0], tol)

	assert.InDelta(t, 0.6, b.Precision[0][1], tol)
	assert.InDelta(t, 0.75, b.Recall[0][1], tol)
	assert.InDelta(t, 2.0/3.0, b.F1[0][1], tol)

	assert.InDelta(t, (0.8+2.0/3.0)/2, b.F1Macro[0], tol)

	// (9*12 - 76) / sqrt((144-74)*(144-80)) = 32 / sqrt(70*64)
	assert.InDelta(t, 0.478091443734, b.MCC[0], 1e-9)
}

func TestCompute_ZeroDenominators(t *testing.T) {
	// Class 0 has no true members and no correct predictions: every
	// ratio with a zero denominator is defined as 0.
	m := mustMatrix(t, [][]int{{0, 0}, {5, 5}})

	b, err := Compute([]matrix.ConfusionMatrix{m})
	require.NoError(t, err)

	assert.Zero(t, b.Precision[0][0])
	assert.Zero(t, b.Recall[0][0])
	assert.Zero(t, b.F1[0][0])

	// t = [0,10] makes one variance factor vanish.
	assert.Zero(t, b.MCC[0])
}

func TestCompute_PerfectClassifier(t *testing.T) {
	m := mustMatrix(t, [][]int{{4, 0, 0}, {0, 3, 0}, {0, 0, 5}})

	b, err := Compute([]matrix.ConfusionMatrix{m})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, b.Accuracy[0], tol)
	assert.InDelta(t, 1.0, b.F1Micro[0], tol)
	assert.InDelta(t, 1.0, b.F1Macro[0], tol)
	assert.InDelta(t, 1.0, b.MCC[0], tol)
	for c := 0; c < 3; c++ {
		assert.InDelta(t, 1.0, b.Precision[0][c], tol)
		assert.InDelta(t, 1.0, b.Recall[0][c], tol)
		assert.InDelta(t, 1.0, b.F1[0][c], tol)
	}
}

func TestCompute_BatchIsPerMatrix(t *testing.T) {
	batch := []matrix.ConfusionMatrix{
		mustMatrix(t, [][]int{{6, 2}, {1, 3}}),
		mustMatrix(t, [][]int{{1, 0}, {0, 1}}),
	}

	b, err := Compute(batch)
	require.NoError(t, err)
	require.Len(t, b.Accuracy, 2)

	assert.InDelta(t, 0.75, b.Accuracy[0], tol)
	assert.InDelta(t, 1.0, b.Accuracy[1], tol)
}

func TestCompute_MetricRanges(t *testing.T) {
	batch := []matrix.ConfusionMatrix{
		mustMatrix(t, [][]int{{6, 2}, {1, 3}}),
		mustMatrix(t, [][]int{{0, 7}, {9, 0}}),
		mustMatrix(t, [][]int{{1, 1, 1}, {2, 0, 2}, {3, 3, 3}}),
		mustMatrix(t, [][]int{{0, 0}, {5, 5}}),
	}

	b, err := Compute(batch)
	require.NoError(t, err)

	for i := range batch {
		assert.GreaterOrEqual(t, b.Accuracy[i], 0.0)
		assert.LessOrEqual(t, b.Accuracy[i], 1.0)
		assert.GreaterOrEqual(t, b.MCC[i], -1.0)
		assert.LessOrEqual(t, b.MCC[i], 1.0)
		for c := 0; c < batch[i].Classes(); c++ {
			for _, v := range []float64{b.Precision[i][c], b.Recall[i][c], b.F1[i][c]} {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		}
	}
}

func TestCompute_InvalidMatrix(t *testing.T) {
	_, err := Compute([]matrix.ConfusionMatrix{{Cells: [][]int{{1, 2}}}})
	assert.ErrorIs(t, err, matrix.ErrInvalidMatrix)
}

func TestColumn(t *testing.T) {
	perClass := [][]float64{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}}
	assert.Equal(t, []float64{0.2, 0.4, 0.6}, Column(perClass, 1))
}
