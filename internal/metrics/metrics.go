// Package metrics computes classification metrics from confusion matrices.
//
// All computations are per-matrix and independent across a batch, so a
// batch of posterior samples yields one value sequence per metric.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/kmorrow/bayescm/internal/matrix"
)

// Batch holds metric values for a batch of B confusion matrices. Scalar
// metrics are length-B sequences; per-class metrics are B x K.
type Batch struct {
	Accuracy []float64
	F1Micro  []float64
	F1Macro  []float64
	MCC      []float64

	Precision [][]float64
	Recall    [][]float64
	F1        [][]float64
}

// Column extracts one class's values from a per-class metric as a flat
// sequence, for summarizing a single class across the batch.
func Column(perClass [][]float64, class int) []float64 {
	col := make([]float64, len(perClass))
	for i, row := range perClass {
		col[i] = row[class]
	}
	return col
}

// Compute evaluates every tracked metric for each matrix in the batch.
// Each matrix must be square, non-negative and have a positive total.
func Compute(batch []matrix.ConfusionMatrix) (*Batch, error) {
	b := &Batch{
		Accuracy:  make([]float64, len(batch)),
		F1Micro:   make([]float64, len(batch)),
		F1Macro:   make([]float64, len(batch)),
		MCC:       make([]float64, len(batch)),
		Precision: make([][]float64, len(batch)),
		Recall:    make([][]float64, len(batch)),
		F1:        make([][]float64, len(batch)),
	}

	for i, m := range batch {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		one := computeOne(m)
		b.Accuracy[i] = one.accuracy
		b.F1Micro[i] = one.f1Micro
		b.F1Macro[i] = one.f1Macro
		b.MCC[i] = one.mcc
		b.Precision[i] = one.precision
		b.Recall[i] = one.recall
		b.F1[i] = one.f1
	}
	return b, nil
}

type single struct {
	accuracy float64
	f1Micro  float64
	f1Macro  float64
	mcc      float64

	precision []float64
	recall    []float64
	f1        []float64
}

func computeOne(m matrix.ConfusionMatrix) single {
	k := m.Classes()
	n := float64(m.Total())
	rows := m.RowSums()
	cols := m.ColSums()

	var s single
	s.precision = make([]float64, k)
	s.recall = make([]float64, k)
	s.f1 = make([]float64, k)

	correct := 0
	var tpSum, fpSum, fnSum float64
	for c := 0; c < k; c++ {
		tp := float64(m.Cells[c][c])
		fn := float64(rows[c]) - tp
		fp := float64(cols[c]) - tp
		correct += m.Cells[c][c]

		tpSum += tp
		fpSum += fp
		fnSum += fn

		s.precision[c] = ratio(tp, tp+fp)
		s.recall[c] = ratio(tp, tp+fn)
		s.f1[c] = ratio(2*s.precision[c]*s.recall[c], s.precision[c]+s.recall[c])
	}

	s.accuracy = float64(correct) / n
	s.f1Macro = floats.Sum(s.f1) / float64(k)

	// Micro F1 from aggregated TP/FP/FN. For single-label matrices this
	// equals accuracy, but the aggregated form stays correct if class
	// weighting is ever introduced.
	microP := ratio(tpSum, tpSum+fpSum)
	microR := ratio(tpSum, tpSum+fnSum)
	s.f1Micro = ratio(2*microP*microR, microP+microR)

	s.mcc = gorodkinMCC(n, float64(correct), rows, cols)
	return s
}

// gorodkinMCC computes the multiclass Matthews correlation coefficient
// (Gorodkin form) from the matrix total, correct count, and per-class
// true (t) and predicted (p) totals:
//
//	mcc = (c*s - Σ p_k*t_k) / sqrt((s² - Σ p_k²) * (s² - Σ t_k²))
//
// defined as 0 when either factor under the square root vanishes.
func gorodkinMCC(s, c float64, trueTotals, predTotals []int) float64 {
	var pt, pp, tt float64
	for k := range trueTotals {
		t := float64(trueTotals[k])
		p := float64(predTotals[k])
		pt += p * t
		pp += p * p
		tt += t * t
	}
	cov := c*s - pt
	varP := s*s - pp
	varT := s*s - tt
	if varP == 0 || varT == 0 {
		return 0
	}
	return cov / math.Sqrt(varP*varT)
}

// ratio divides, treating a zero denominator as zero. Precision, recall
// and F1 are all defined as 0 for classes with no support.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
