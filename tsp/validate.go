package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sumseq/matrix"
)

// validateDist checks shape and entries of dist and returns them as rows.
//
// Contract:
//   - dist is non-nil, non-empty and square (ErrEmptyMatrix, ErrNonSquare).
//   - diagonal entries are exactly 0 (ErrNonZeroDiagonal).
//   - no entry is NaN or −Inf (ErrInvalidWeight); +Inf means "no edge".
//
// Every cell is read through At once, so solvers index the snapshot directly.
//
// Complexity: O(n²).
func validateDist(dist matrix.Matrix) ([][]float64, error) {
	// Stage 1: shape checks.
	if dist == nil || dist.Rows() == 0 {
		return nil, ErrEmptyMatrix
	}
	n := dist.Rows()
	if dist.Cols() != n {
		return nil, fmt.Errorf("%w: %d×%d", ErrNonSquare, n, dist.Cols())
	}

	// Stage 2: diagonal and weights, row by row.
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			w, err := dist.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
			}
			if math.IsNaN(w) || math.IsInf(w, -1) {
				return nil, fmt.Errorf("%w: dist[%d][%d]=%v", ErrInvalidWeight, i, j, w)
			}
			if i == j && w != 0 {
				return nil, fmt.Errorf("%w: dist[%d][%d]=%v", ErrNonZeroDiagonal, i, i, w)
			}
			rows[i][j] = w
		}
	}

	return rows, nil
}
