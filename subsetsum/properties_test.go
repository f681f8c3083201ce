package subsetsum_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/sumseq/subsetsum"
)

// randomMultiset returns n values in [0, max) drawn from r; small max forces duplicates.
func randomMultiset(r *rand.Rand, n, max int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(max)
	}
	return out
}

// TestEnumerator_Properties cross-checks count, order, first element and
// completeness against brute-force enumeration for n ≤ 15.
func TestEnumerator_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for trial := 0; trial < 60; trial++ {
		n := trial % 16
		in := randomMultiset(r, n, 1+r.Intn(40))
		tb := subsetsum.TieBreak(trial % 2)

		e, err := subsetsum.New(in, subsetsum.WithTieBreak(tb))
		if err != nil {
			t.Fatalf("New(%v): %v", in, err)
		}
		got := slices.Collect(e.All())

		if len(got) != 1<<n {
			t.Fatalf("n=%d: got %d sums; want %d", n, len(got), 1<<n)
		}
		if got[0] != 0 {
			t.Errorf("input %v: first sum = %d; want 0", in, got[0])
		}
		if !slices.IsSorted(got) {
			t.Errorf("input %v: output not non-decreasing: %v", in, got)
		}

		want := subsetsum.BruteForceSums(in)
		if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b int) bool { return a < b })); diff != "" {
			t.Errorf("input %v: multiset mismatch (-want +got):\n%s", in, diff)
		}
	}
}

// TestEnumerator_SignaturesUnique checks that no index-subset is emitted twice
// and that every emitted signature is strictly increasing.
func TestEnumerator_SignaturesUnique(t *testing.T) {
	e, err := subsetsum.New([]int{3, 3, 3, 1, 1, 2, 0, 5, 5, 4})
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for s := range e.Subsets() {
		if !slices.IsSorted(s.Indices) || len(slices.Compact(slices.Clone(s.Indices))) != len(s.Indices) {
			t.Fatalf("signature %v is not strictly increasing", s.Indices)
		}
		key := fmt.Sprint(s.Indices)
		if seen[key] {
			t.Fatalf("signature %v emitted twice", s.Indices)
		}
		seen[key] = true
	}
	if len(seen) != 1<<10 {
		t.Errorf("got %d distinct signatures; want %d", len(seen), 1<<10)
	}
}

// TestEnumerator_PrefixMatchesBruteForce checks that a long input can be
// consumed partially: the first k sums equal the k smallest brute-force sums.
func TestEnumerator_PrefixMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	in := randomMultiset(r, 18, 1000)
	want := subsetsum.BruteForceSums(in)[:500]

	seq, err := subsetsum.SortedSubsetSums(in)
	if err != nil {
		t.Fatal(err)
	}
	got := slices.Collect(subsetsum.Take(seq, 500))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("first 500 sums mismatch (-want +got):\n%s", diff)
	}
}
