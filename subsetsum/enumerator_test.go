// Package subsetsum_test contains unit tests for the subset-sum enumerator.
// They cover the documented scenarios, option behaviour, input validation and
// the lifecycle of a single Enumerator (resume, exhaustion, Close).
package subsetsum_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sumseq/subsetsum"
)

// drain collects every remaining value of e.
func drain[T subsetsum.Number](e *subsetsum.Enumerator[T]) []T {
	return slices.Collect(e.All())
}

// ------------------------------------------------------------------------
// 1. Concrete scenarios.
// ------------------------------------------------------------------------

func TestEnumerator_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"powers of two", []int{1, 2, 4}, []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{"one to three", []int{1, 2, 3}, []int{0, 1, 2, 3, 3, 4, 5, 6}},
		{"two to four", []int{2, 3, 4}, []int{0, 2, 3, 4, 5, 6, 7, 9}},
		{"duplicate twos", []int{1, 2, 2}, []int{0, 1, 2, 2, 3, 3, 4, 5}},
		{"empty", []int{}, []int{0}},
		{"nil", nil, []int{0}},
		{"multiples of eight", []int{8, 16, 24}, []int{0, 8, 16, 24, 24, 32, 40, 48}},
		{"odd", []int{1, 3, 5, 7}, []int{0, 1, 3, 4, 5, 6, 7, 8, 8, 9, 10, 11, 12, 13, 15, 16}},
		{"multiples of three", []int{3, 6, 9}, []int{0, 3, 6, 9, 9, 12, 15, 18}},
		{"unsorted input", []int{4, 1, 2}, []int{0, 1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := subsetsum.New(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, drain(e))
		})
	}
}

func TestEnumerator_FirstFiveOfHundred(t *testing.T) {
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}
	e, err := subsetsum.New(in)
	require.NoError(t, err)

	got := slices.Collect(subsetsum.Take(e.All(), 5))
	assert.Equal(t, []int{0, 0, 1, 1, 2}, got)
	assert.Equal(t, 5, e.Emitted())
}

func TestEnumerator_Floats(t *testing.T) {
	e, err := subsetsum.New([]float64{0.5, 0.25, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1, 1.25, 1.5, 1.75}, drain(e))
}

func TestEnumerator_ZeroValues(t *testing.T) {
	// Zeros are still distinct elements: 2³ sums, all zero.
	e, err := subsetsum.New([]uint{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []uint{0, 0, 0, 0, 0, 0, 0, 0}, drain(e))
}

// ------------------------------------------------------------------------
// 2. Lifecycle: exhaustion, resume, Close, input isolation.
// ------------------------------------------------------------------------

func TestEnumerator_ExhaustionIsSticky(t *testing.T) {
	e, err := subsetsum.New([]int{1, 2})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, drain(e))
	for i := 0; i < 3; i++ {
		v, ok := e.Next()
		assert.False(t, ok)
		assert.Zero(t, v)
	}
	assert.Equal(t, 4, e.Emitted())
	assert.Zero(t, e.Pending())
}

func TestEnumerator_AllResumes(t *testing.T) {
	e, err := subsetsum.New([]int{1, 2, 4})
	require.NoError(t, err)

	var head []int
	for v := range e.All() {
		head = append(head, v)
		if len(head) == 3 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, head)
	assert.Equal(t, []int{3, 4, 5, 6, 7}, drain(e))
}

func TestEnumerator_Close(t *testing.T) {
	e, err := subsetsum.New([]int{5, 6, 7})
	require.NoError(t, err)

	v, ok := e.Next()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	require.Positive(t, e.Pending())

	e.Close()
	e.Close()
	_, ok = e.Next()
	assert.False(t, ok)
	assert.Zero(t, e.Pending())
	assert.Empty(t, drain(e))
}

func TestEnumerator_InputCopy(t *testing.T) {
	in := []int{3, 1, 2}
	e, err := subsetsum.New(in)
	require.NoError(t, err)

	in[0], in[1], in[2] = 100, 200, 300
	assert.Equal(t, []int{0, 1, 2, 3, 3, 4, 5, 6}, drain(e))
	assert.Equal(t, []int{100, 200, 300}, in, "caller slice must not be reordered")
}

func TestEnumerator_SortedIsCopy(t *testing.T) {
	e, err := subsetsum.New([]int{3, 1, 2})
	require.NoError(t, err)

	s := e.Sorted()
	assert.Equal(t, []int{1, 2, 3}, s)
	s[0] = 99
	assert.Equal(t, []int{1, 2, 3}, e.Sorted())
}

func TestEnumerator_Total(t *testing.T) {
	e, err := subsetsum.New(make([]int, 100))
	require.NoError(t, err)
	assert.Equal(t, "1267650600228229401496703205376", e.Total().String())

	e, err = subsetsum.New([]int{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.Total().Int64())
}

func TestEnumerator_IndependentInstances(t *testing.T) {
	in := []int{1, 2, 3}
	a, err := subsetsum.New(in)
	require.NoError(t, err)
	b, err := subsetsum.New(in)
	require.NoError(t, err)

	_, _ = a.Next()
	_, _ = a.Next()
	assert.Equal(t, []int{0, 1, 2, 3, 3, 4, 5, 6}, drain(b))
	assert.Equal(t, []int{2, 3, 3, 4, 5, 6}, drain(a))
}

// ------------------------------------------------------------------------
// 3. Subsets, tie-breaking and options.
// ------------------------------------------------------------------------

func TestEnumerator_NextSubsetSignatures(t *testing.T) {
	e, err := subsetsum.New([]int{2, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, e.Sorted())

	var sigs [][]int
	for s := range e.Subsets() {
		sum := 0
		for _, i := range s.Indices {
			sum += e.Sorted()[i]
		}
		assert.Equal(t, sum, s.Sum, "sum must match indices %v", s.Indices)
		sigs = append(sigs, s.Indices)
	}

	want := [][]int{{}, {0}, {1}, {2}, {0, 1}, {0, 2}, {1, 2}, {0, 1, 2}}
	assert.Equal(t, want, sigs)
}

func TestEnumerator_TieBreakModes(t *testing.T) {
	// Sorted input [1, 1, 2]: the sum 2 is reached by {0,1} and {2}.
	collect := func(tb subsetsum.TieBreak) [][]int {
		e, err := subsetsum.New([]int{1, 1, 2}, subsetsum.WithTieBreak(tb))
		require.NoError(t, err)
		var out [][]int
		for s := range e.Subsets() {
			out = append(out, s.Indices)
		}
		return out
	}

	bySig := collect(subsetsum.TieBreakSignature)
	byIns := collect(subsetsum.TieBreakInsertion)

	assert.Equal(t, []int{0, 1}, bySig[3])
	assert.Equal(t, []int{2}, bySig[4])
	assert.Equal(t, []int{2}, byIns[3])
	assert.Equal(t, []int{0, 1}, byIns[4])
	assert.Len(t, bySig, 8)
	assert.Len(t, byIns, 8)
}

func TestEnumerator_TieBreakSameValues(t *testing.T) {
	for _, tb := range []subsetsum.TieBreak{subsetsum.TieBreakSignature, subsetsum.TieBreakInsertion} {
		e, err := subsetsum.New([]int{1, 2, 3, 3, 5}, subsetsum.WithTieBreak(tb))
		require.NoError(t, err)
		assert.Equal(t, subsetsum.BruteForceSums([]int{1, 2, 3, 3, 5}), drain(e), tb.String())
	}
}

func TestEnumerator_WithoutSeenSet(t *testing.T) {
	in := []int{4, 4, 1, 7, 3}
	with, err := subsetsum.New(in)
	require.NoError(t, err)
	without, err := subsetsum.New(in, subsetsum.WithoutSeenSet())
	require.NoError(t, err)

	assert.Equal(t, drain(with), drain(without))
}

func TestEnumerator_OnEmitHook(t *testing.T) {
	var sums []float64
	var sizes []int
	hook := func(sum float64, idx []int) {
		sums = append(sums, sum)
		sizes = append(sizes, len(idx))
	}

	e, err := subsetsum.New([]int{1, 2, 4}, subsetsum.WithOnEmit(hook))
	require.NoError(t, err)
	_ = drain(e)

	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7}, sums)
	assert.Equal(t, []int{0, 1, 1, 2, 1, 2, 2, 3}, sizes)
}

func TestWithTieBreak_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { subsetsum.WithTieBreak(subsetsum.TieBreak(42)) })
}

func TestParseTieBreak(t *testing.T) {
	tb, ok := subsetsum.ParseTieBreak("insertion")
	assert.True(t, ok)
	assert.Equal(t, subsetsum.TieBreakInsertion, tb)

	tb, ok = subsetsum.ParseTieBreak("")
	assert.True(t, ok)
	assert.Equal(t, subsetsum.TieBreakSignature, tb)

	_, ok = subsetsum.ParseTieBreak("random")
	assert.False(t, ok)
	assert.Equal(t, "unknown", subsetsum.TieBreak(9).String())
}

// ------------------------------------------------------------------------
// 4. Validation.
// ------------------------------------------------------------------------

func TestNew_RejectsNegative(t *testing.T) {
	_, err := subsetsum.New([]int{1, -2, 3})
	require.ErrorIs(t, err, subsetsum.ErrNegativeValue)
	assert.Contains(t, err.Error(), "values[1]")

	_, err = subsetsum.New([]float64{-0.5})
	assert.ErrorIs(t, err, subsetsum.ErrNegativeValue)
}

func TestNew_RejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := subsetsum.New([]float64{1, v})
		assert.ErrorIs(t, err, subsetsum.ErrInvalidValue, "value %v", v)
	}
}

func TestNew_RejectsOverflow(t *testing.T) {
	_, err := subsetsum.New([]int8{100, 27})
	assert.NoError(t, err, "127 fits in int8")

	_, err = subsetsum.New([]int8{100, 28})
	assert.ErrorIs(t, err, subsetsum.ErrSumOverflow)

	_, err = subsetsum.New([]uint8{200, 100})
	assert.ErrorIs(t, err, subsetsum.ErrSumOverflow)

	_, err = subsetsum.New([]float64{math.MaxFloat64, math.MaxFloat64})
	assert.ErrorIs(t, err, subsetsum.ErrSumOverflow)
}

func TestSortedSubsetSums_Validates(t *testing.T) {
	seq, err := subsetsum.SortedSubsetSums([]int{1, -1})
	assert.Nil(t, seq)
	assert.ErrorIs(t, err, subsetsum.ErrNegativeValue)
}

func TestSortedSubsetSums_Rerangeable(t *testing.T) {
	seq, err := subsetsum.SortedSubsetSums([]int{2, 3, 4})
	require.NoError(t, err)

	want := []int{0, 2, 3, 4, 5, 6, 7, 9}
	assert.Equal(t, want, slices.Collect(seq))
	assert.Equal(t, want, slices.Collect(seq), "second range starts over")
	assert.Equal(t, []int{0, 2}, slices.Collect(subsetsum.Take(seq, 2)))
}
