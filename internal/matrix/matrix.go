package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidMatrix indicates a malformed or empty confusion matrix.
var ErrInvalidMatrix = errors.New("invalid confusion matrix")

// ConfusionMatrix is a square table of true-class-by-predicted-class counts.
// Cells[i][j] holds the number of items whose true class is i and whose
// predicted class is j.
type ConfusionMatrix struct {
	Cells [][]int `json:"cells"`
}

// New validates cells and wraps them in a ConfusionMatrix.
func New(cells [][]int) (ConfusionMatrix, error) {
	m := ConfusionMatrix{Cells: cells}
	if err := m.Validate(); err != nil {
		return ConfusionMatrix{}, err
	}
	return m, nil
}

// FromFlat reshapes a flat sequence of k*k counts into a k x k matrix.
func FromFlat(k int, counts []int) (ConfusionMatrix, error) {
	if k < 1 || len(counts) != k*k {
		return ConfusionMatrix{}, fmt.Errorf("%w: cannot reshape %d counts into %dx%d", ErrInvalidMatrix, len(counts), k, k)
	}
	cells := make([][]int, k)
	for i := range cells {
		cells[i] = counts[i*k : (i+1)*k]
	}
	return New(cells)
}

// Tally counts paired (true, predicted) observations into a k x k matrix.
// Every class index must fall in [0, k).
func Tally(preds, labels []int, k int) (ConfusionMatrix, error) {
	if k < 1 {
		return ConfusionMatrix{}, fmt.Errorf("%w: need at least one class, got %d", ErrInvalidMatrix, k)
	}
	if len(preds) != len(labels) {
		return ConfusionMatrix{}, fmt.Errorf("%w: %d predictions but %d labels", ErrInvalidMatrix, len(preds), len(labels))
	}
	cells := make([][]int, k)
	for i := range cells {
		cells[i] = make([]int, k)
	}
	for i := range preds {
		if labels[i] < 0 || labels[i] >= k {
			return ConfusionMatrix{}, fmt.Errorf("%w: label %d out of range [0, %d)", ErrInvalidMatrix, labels[i], k)
		}
		if preds[i] < 0 || preds[i] >= k {
			return ConfusionMatrix{}, fmt.Errorf("%w: prediction %d out of range [0, %d)", ErrInvalidMatrix, preds[i], k)
		}
		cells[labels[i]][preds[i]]++
	}
	return New(cells)
}

// Validate checks that the matrix is square, non-negative and non-empty.
func (m ConfusionMatrix) Validate() error {
	k := len(m.Cells)
	if k == 0 {
		return fmt.Errorf("%w: no cells", ErrInvalidMatrix)
	}
	total := 0
	for i, row := range m.Cells {
		if len(row) != k {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidMatrix, i, len(row), k)
		}
		for j, c := range row {
			if c < 0 {
				return fmt.Errorf("%w: negative count %d at [%d,%d]", ErrInvalidMatrix, c, i, j)
			}
			total += c
		}
	}
	if total == 0 {
		return fmt.Errorf("%w: all counts are zero", ErrInvalidMatrix)
	}
	return nil
}

// Classes returns K, the number of classes.
func (m ConfusionMatrix) Classes() int {
	return len(m.Cells)
}

// Total returns the sum of all counts.
func (m ConfusionMatrix) Total() int {
	n := 0
	for _, row := range m.Cells {
		for _, c := range row {
			n += c
		}
	}
	return n
}

// Flatten returns the counts in row-major order as floats, the form the
// sampler uses for Dirichlet concentrations.
func (m ConfusionMatrix) Flatten() []float64 {
	k := m.Classes()
	flat := make([]float64, 0, k*k)
	for _, row := range m.Cells {
		for _, c := range row {
			flat = append(flat, float64(c))
		}
	}
	return flat
}

// RowSums returns per-class true-label totals.
func (m ConfusionMatrix) RowSums() []int {
	sums := make([]int, m.Classes())
	for i, row := range m.Cells {
		for _, c := range row {
			sums[i] += c
		}
	}
	return sums
}

// ColSums returns per-class predicted-label totals.
func (m ConfusionMatrix) ColSums() []int {
	sums := make([]int, m.Classes())
	for _, row := range m.Cells {
		for j, c := range row {
			sums[j] += c
		}
	}
	return sums
}
