// Package sumseq is a small toolkit for lazily enumerating ordered
// combinatorial results, built around a heap-driven subset-sum stream.
//
// What is inside?
//
//	subsetsum/     ascending subset sums of non-negative values, produced
//	               one at a time from a min-heap frontier (iterator, pull
//	               and iter.Seq APIs, Take/TakeWhile/Enumerate adapters)
//	matrix/        dense float64 matrix used as the tsp distance table
//	tsp/           exact (brute-force) and nearest-neighbour tours over a
//	               small distance matrix
//	cmd/sumseq/    the command-line front end (sums, tsp, config)
//	internal/      YAML configuration and zap logger construction
//	examples/      runnable demo programs
//
// Quick example:
//
//	e, _ := subsetsum.New([]int{1, 2, 4})
//	for s := range subsetsum.Take(e.All(), 5) {
//		fmt.Print(s, " ") // 0 1 2 3 4
//	}
//
// The first k sums cost O(k·n·log(k·n)) no matter how large 2^n is, so a
// prefix of the sums of a hundred values is as cheap as one of ten.
//
//	go install github.com/katalvlaran/sumseq/cmd/sumseq@latest
package sumseq
