// Package tsp provides small Travelling Salesman Problem solvers over a dense
// distance matrix (matrix.Matrix, usually a *matrix.Dense).
//
// It includes two algorithms:
//
//   - BruteForce: exhaustive search over every tour that starts at city 0.
//     O(n·(n−1)!) time, O(n) memory. Refuses n > MaxBruteForceN unless
//     raised via WithMaxBruteForceN.
//   - NearestNeighbor: greedy, from the current city always move to the
//     closest unvisited one, then return to city 0. O(n²) time.
//
// Matrix conventions:
//   - dist.At(i, j) is the cost of travelling from i to j; the matrix may be asymmetric.
//   - the diagonal must be 0.
//   - math.Inf(1) marks a missing edge; NaN and −Inf are rejected.
//   - Negative finite distances are accepted. BruteForce sums them like any
//     other cost; NearestNeighbor only ever steps along strictly positive edges.
//
// Every tour starts and ends at city 0: for n cities len(Tour) == n+1.
// Costs are rounded to 1e−9 to keep results stable across platforms.
//
// Use Solve to pick the algorithm with options, NamedTour to map indices to
// city names.
package tsp
