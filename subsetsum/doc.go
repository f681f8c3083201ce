// Package subsetsum enumerates every subset sum of a multiset of non-negative
// numbers in non-decreasing order, lazily and without materializing the 2ⁿ
// subsets up front.
//
// Overview:
//
//   - The input is copied and sorted ascending once. Equal values at different
//     positions are distinct elements, so [1, 2, 2] yields the sum 2 twice.
//   - A min-heap frontier holds (sum, signature) candidates, where a signature is
//     the strictly increasing list of positions chosen from the sorted copy.
//   - Each pop emits the smallest pending sum and pushes its successors: the
//     signature extended by every position greater than its last one. Every
//     subset is therefore reached by exactly one expansion path.
//   - Successors are never cheaper than their parent, and the parent is emitted
//     before they are pushed, so the heap minimum is always the global minimum
//     of everything not yet emitted (the same argument as Dijkstra).
//
// When to use:
//
//   - "Give me the k smallest subset sums" or "all sums up to a budget" over
//     inputs far too large for brute force (n = 100 is fine if you stop early).
//   - As a reference stream when testing knapsack / partition heuristics.
//
// API:
//
//	e, err := subsetsum.New([]int{1, 2, 4})
//	for v := range e.All() { ... }            // resumable
//
//	seq, err := subsetsum.SortedSubsetSums(xs) // one-shot iter.Seq
//	first := slices.Collect(subsetsum.Take(seq, 5))
//
// Options:
//
//   - WithTieBreak(TieBreakSignature | TieBreakInsertion): secondary heap key
//     for equal sums. Both are deterministic; only value order is guaranteed.
//   - WithoutSeenSet(): skip the defensive duplicate-signature set.
//   - WithOnEmit(fn): hook called with every emitted Subset.
//
// Error handling (sentinel errors):
//
//   - ErrNegativeValue: an input value is negative.
//   - ErrInvalidValue:  an input value is NaN or ±Inf.
//   - ErrSumOverflow:   the total of all inputs does not fit the element type.
//
// Exhaustion is not an error: Next reports false, ranges simply end.
//
// Complexity:
//
//   - Time:  O(2ⁿ · n · log(2ⁿ · n)) to drain completely.
//   - Space: O(2ⁿ · n) peak frontier in the worst case.
//   - Taking the first k values costs O(k · n · log(k · n)).
//
// Thread safety:
//
//   - An Enumerator is a single-consumer, forward-only state machine. It starts
//     no goroutines. Independent instances share nothing.
package subsetsum
