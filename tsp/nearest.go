package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sumseq/matrix"
)

// NearestNeighbor builds a tour greedily: starting at city 0 it repeatedly
// moves to the unvisited city with the smallest strictly positive, finite
// distance (ties go to the lowest index), then returns to 0.
//
// Non-positive edges are never chosen as a step, though the closing edge back
// to 0 is taken whatever its sign.
//
// Errors: validation sentinels, or ErrIncompleteGraph when the walk gets stuck
// or cannot close.
//
// Complexity: O(n²) time, O(n) memory.
func NearestNeighbor(m matrix.Matrix) (TSResult, error) {
	dist, err := validateDist(m)
	if err != nil {
		return TSResult{}, err
	}
	n := len(dist)

	visited := make([]bool, n)
	tour := make([]int, 0, n+1)
	tour = append(tour, 0)
	visited[0] = true
	total := 0.0

	for step := 1; step < n; step++ {
		last := tour[len(tour)-1]
		next := -1
		best := math.Inf(1)
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if w := dist[last][j]; w > 0 && w < best {
				next, best = j, w
			}
		}
		if next < 0 {
			return TSResult{}, fmt.Errorf("%w: no positive edge out of city %d", ErrIncompleteGraph, last)
		}
		tour = append(tour, next)
		visited[next] = true
		total += best
	}

	closing := dist[tour[len(tour)-1]][0]
	if math.IsInf(closing, 1) {
		return TSResult{}, fmt.Errorf("%w: no edge back to city 0", ErrIncompleteGraph)
	}
	tour = append(tour, 0)

	return TSResult{Tour: tour, Cost: round1e9(total + closing)}, nil
}
