package subsetsum_test

import (
	"testing"

	"github.com/katalvlaran/sumseq/subsetsum"
)

// benchmarkDrain fully drains an Enumerator over n values 1..n using opts.
func benchmarkDrain(b *testing.B, n int, opts ...subsetsum.Option) {
	in := make([]int, n)
	for i := range in {
		in[i] = i + 1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := subsetsum.New(in, opts...)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for range e.All() {
		}
	}
}

// benchmarkPrefix takes the first k sums over n values.
func benchmarkPrefix(b *testing.B, n, k int) {
	in := make([]int, n)
	for i := range in {
		in[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, err := subsetsum.SortedSubsetSums(in)
		if err != nil {
			b.Fatalf("SortedSubsetSums failed: %v", err)
		}
		for range subsetsum.Take(seq, k) {
		}
	}
}

// BenchmarkDrain_N12 drains 4096 sums with the default options.
func BenchmarkDrain_N12(b *testing.B) { benchmarkDrain(b, 12) }

// BenchmarkDrain_N12_NoSeenSet drains 4096 sums without the seen-set.
func BenchmarkDrain_N12_NoSeenSet(b *testing.B) { benchmarkDrain(b, 12, subsetsum.WithoutSeenSet()) }

// BenchmarkDrain_N12_Insertion drains 4096 sums with FIFO tie-breaking.
func BenchmarkDrain_N12_Insertion(b *testing.B) {
	benchmarkDrain(b, 12, subsetsum.WithTieBreak(subsetsum.TieBreakInsertion))
}

// BenchmarkPrefix_N100_K1000 takes 1000 sums from a 100-element input.
func BenchmarkPrefix_N100_K1000(b *testing.B) { benchmarkPrefix(b, 100, 1000) }
