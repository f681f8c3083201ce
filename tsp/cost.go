package tsp

import (
	"math"

	"github.com/katalvlaran/sumseq/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums dist(tour[i], tour[i+1]) along the tour.
//
// Contract:
//   - dist is non-nil, len(tour) ≥ 2 and every index lies in
//     [0, n) of a square n×n dist (ErrDimensionMismatch).
//   - every traversed edge is finite (ErrIncompleteGraph).
//
// The tour is not required to be closed or Hamiltonian; callers that need a
// cycle pass Tour from a TSResult.
//
// Complexity: O(len(tour)).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 || dist.Rows() != dist.Cols() {
		return 0, ErrDimensionMismatch
	}

	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		w, err := dist.At(tour[i], tour[i+1])
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrIncompleteGraph
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
