package tsp

import (
	"fmt"

	"github.com/katalvlaran/sumseq/matrix"
)

// Solve validates dist and routes to the algorithm chosen by opts.
//
//	res, err := tsp.Solve(dist, tsp.WithAlgorithm(tsp.NearestNeighborHeuristic))
//
// Errors: those of the selected solver, or ErrUnsupportedAlgorithm.
func Solve(dist matrix.Matrix, opts ...Option) (TSResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Algorithm {
	case BruteForceSearch:
		return bruteForce(dist, cfg.MaxBruteForceN)
	case NearestNeighborHeuristic:
		return NearestNeighbor(dist)
	default:
		return TSResult{}, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, cfg.Algorithm)
	}
}

// NamedTour maps tour indices to names. A nil names slice yields the decimal
// indices themselves.
func NamedTour(tour []int, names []string) ([]string, error) {
	out := make([]string, len(tour))
	for i, v := range tour {
		switch {
		case names == nil:
			out[i] = fmt.Sprint(v)
		case v < 0 || v >= len(names):
			return nil, fmt.Errorf("%w: city %d, %d names", ErrDimensionMismatch, v, len(names))
		default:
			out[i] = names[v]
		}
	}

	return out, nil
}
