package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Valid(t *testing.T) {
	m, err := New([][]int{{6, 2}, {1, 3}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Classes())
	assert.Equal(t, 12, m.Total())
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		cells [][]int
	}{
		{"empty", nil},
		{"non-square", [][]int{{1, 2}}},
		{"ragged", [][]int{{1, 2}, {3}}},
		{"negative entry", [][]int{{1, -2}, {3, 4}}},
		{"zero total", [][]int{{0, 0}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cells)
			assert.ErrorIs(t, err, ErrInvalidMatrix)
		})
	}
}

func TestTally(t *testing.T) {
	labels := []int{0, 0, 0, 1, 1, 0, 1}
	preds := []int{0, 0, 1, 1, 0, 0, 1}

	m, err := Tally(preds, labels, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{3, 1}, {1, 2}}, m.Cells)
	assert.Equal(t, 7, m.Total())
}

func TestTally_Errors(t *testing.T) {
	tests := []struct {
		name   string
		preds  []int
		labels []int
		k      int
	}{
		{"length mismatch", []int{0, 1}, []int{0}, 2},
		{"prediction out of range", []int{2}, []int{0}, 2},
		{"negative label", []int{0}, []int{-1}, 2},
		{"no classes", []int{}, []int{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tally(tt.preds, tt.labels, tt.k)
			assert.ErrorIs(t, err, ErrInvalidMatrix)
		})
	}
}

func TestFlattenAndFromFlat_RoundTrip(t *testing.T) {
	m, err := New([][]int{{6, 2}, {1, 3}})
	require.NoError(t, err)

	flat := m.Flatten()
	assert.Equal(t, []float64{6, 2, 1, 3}, flat)

	back, err := FromFlat(2, []int{6, 2, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, m.Cells, back.Cells)
}

func TestRowAndColSums(t *testing.T) {
	m, err := New([][]int{{6, 2}, {1, 3}})
	require.NoError(t, err)

	assert.Equal(t, []int{8, 4}, m.RowSums())
	assert.Equal(t, []int{7, 5}, m.ColSums())
}
