package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sumseq/matrix"
)

// BruteForce solves the TSP exactly by trying every tour that starts at city 0,
// with the default city limit MaxBruteForceN.
//
// Tours are visited in lexicographic order of the cities after 0 and only a
// strictly cheaper tour replaces the incumbent, so among equal-cost optima the
// lexicographically smallest is returned.
//
// Errors: validation sentinels, ErrTooLarge, or ErrIncompleteGraph when every
// tour needs a missing (+Inf) edge.
//
// Time complexity:  O(n · (n−1)!)
// Memory complexity: O(n)
func BruteForce(dist matrix.Matrix) (TSResult, error) {
	return bruteForce(dist, MaxBruteForceN)
}

func bruteForce(m matrix.Matrix, limit int) (TSResult, error) {
	dist, err := validateDist(m)
	if err != nil {
		return TSResult{}, err
	}
	n := len(dist)
	if n > limit {
		return TSResult{}, fmt.Errorf("%w: n=%d, limit %d", ErrTooLarge, n, limit)
	}
	if n == 1 {
		return TSResult{Tour: []int{0, 0}, Cost: 0}, nil
	}

	// perm holds the cities visited after 0, starting from the identity order.
	perm := make([]int, n-1)
	for i := range perm {
		perm[i] = i + 1
	}

	best := math.Inf(1)
	bestPerm := make([]int, n-1)
	found := false
	for {
		if c := cycleCost(dist, perm); c < best {
			best = c
			copy(bestPerm, perm)
			found = true
		}
		if !nextPermutation(perm) {
			break
		}
	}
	if !found {
		return TSResult{}, ErrIncompleteGraph
	}

	tour := make([]int, 0, n+1)
	tour = append(tour, 0)
	tour = append(tour, bestPerm...)
	tour = append(tour, 0)

	return TSResult{Tour: tour, Cost: round1e9(best)}, nil
}

// cycleCost returns the cost of 0 → perm... → 0, or +Inf if an edge is missing.
func cycleCost(dist [][]float64, perm []int) float64 {
	sum := 0.0
	prev := 0
	for _, v := range perm {
		sum += dist[prev][v]
		prev = v
	}

	return sum + dist[prev][0]
}

// nextPermutation rearranges p into the next lexicographic permutation and
// reports false once p was the last one.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
