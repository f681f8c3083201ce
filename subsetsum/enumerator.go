package subsetsum

import (
	"fmt"
	"iter"
	"math"
	"math/big"
	"slices"
)

// Enumerator yields the subset sums of a fixed multiset in non-decreasing order.
// It is forward-only: construct a new Enumerator to start over.
type Enumerator[T Number] struct {
	sorted  []T                 // private ascending copy of the input
	front   frontier[T]         // pending (sum, signature) candidates
	seen    map[string]struct{} // signatures ever scheduled; nil if disabled
	opts    Options
	emitted int
	closed  bool
}

// New validates values, sorts a private copy and seeds the frontier with the
// empty subset. Later changes to values do not affect the Enumerator.
//
// Preconditions (in order, per element):
//  1. value is finite (ErrInvalidValue).
//  2. value ≥ 0 (ErrNegativeValue).
//  3. the running total stays representable (ErrSumOverflow).
//
// Complexity: O(n log n).
func New[T Number](values []T, opts ...Option) (*Enumerator[T], error) {
	sorted, err := prepare(values)
	if err != nil {
		return nil, err
	}

	return newSorted(sorted, opts...), nil
}

// prepare validates values and returns a sorted copy.
func prepare[T Number](values []T) ([]T, error) {
	var total T
	for i, v := range values {
		// NaN/Inf first: comparisons against them are meaningless.
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: values[%d]=%v", ErrInvalidValue, i, v)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: values[%d]=%v", ErrNegativeValue, i, v)
		}
		next := total + v
		// Non-negative addends: integers wrap below the previous total, floats saturate to +Inf.
		if next < total || math.IsInf(float64(next), 1) {
			return nil, fmt.Errorf("%w: at values[%d]", ErrSumOverflow, i)
		}
		total = next
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return sorted, nil
}

// newSorted builds an Enumerator over an already validated, sorted slice it takes ownership of.
func newSorted[T Number](sorted []T, opts ...Option) *Enumerator[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Enumerator[T]{
		sorted: sorted,
		front:  frontier[T]{tie: cfg.TieBreak},
		opts:   cfg,
	}
	if cfg.SeenSet {
		e.seen = make(map[string]struct{})
	}

	root := &entry[T]{sig: []int{}}
	e.markSeen(root.sig)
	e.front.push(root)

	return e
}

// Next returns the next subset sum, or (0, false) once all 2ⁿ sums have been
// produced or the Enumerator was closed.
func (e *Enumerator[T]) Next() (T, bool) {
	s, ok := e.NextSubset()

	return s.Sum, ok
}

// NextSubset is Next that also reports which sorted positions make up the sum.
// The returned Indices slice is owned by the caller.
func (e *Enumerator[T]) NextSubset() (Subset[T], bool) {
	// 1) Closed or drained enumerators stay exhausted.
	if e.closed {
		return Subset[T]{}, false
	}
	if e.front.Len() == 0 {
		e.release()
		return Subset[T]{}, false
	}

	// 2) Pop the smallest pending sum. Every successor is at least as large,
	//    so nothing still unseen can undercut it.
	cur := e.front.pop()

	// 3) Schedule its successors before handing it out.
	e.expand(cur)
	e.emitted++

	// 4) Notify the hook, then emit.
	if e.opts.OnEmit != nil {
		e.opts.OnEmit(float64(cur.sum), cur.sig)
	}

	return Subset[T]{Sum: cur.sum, Indices: cur.sig}, true
}

// expand schedules every successor of cur: its signature extended by one
// position strictly after its last one.
func (e *Enumerator[T]) expand(cur *entry[T]) {
	// 1) Find the last position; the empty signature starts before 0.
	last := -1
	if k := len(cur.sig); k > 0 {
		last = cur.sig[k-1]
	}

	for i := last + 1; i < len(e.sorted); i++ {
		// 2) Extend by i. Each child gets its own backing array since
		//    emitted Indices are handed to the caller.
		sig := make([]int, len(cur.sig)+1)
		copy(sig, cur.sig)
		sig[len(cur.sig)] = i

		// 3) Skip signatures already scheduled, then push.
		if !e.markSeen(sig) {
			continue
		}
		e.front.push(&entry[T]{sum: cur.sum + e.sorted[i], sig: sig})
	}
}

// markSeen records sig and reports whether it was new. Always true when the
// seen-set is disabled.
func (e *Enumerator[T]) markSeen(sig []int) bool {
	if e.seen == nil {
		return true
	}
	key := signatureKey(sig)
	if _, dup := e.seen[key]; dup {
		return false
	}
	e.seen[key] = struct{}{}

	return true
}

// All returns an iterator over the remaining sums. Breaking out of the range
// leaves the Enumerator positioned after the last value yielded, so a later
// range resumes from there.
func (e *Enumerator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := e.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Subsets is All, yielding the full Subset for each step.
func (e *Enumerator[T]) Subsets() iter.Seq[Subset[T]] {
	return func(yield func(Subset[T]) bool) {
		for {
			s, ok := e.NextSubset()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Close drops the frontier and seen-set. Subsequent calls to Next report
// exhaustion. Close is idempotent.
func (e *Enumerator[T]) Close() {
	e.closed = true
	e.release()
}

func (e *Enumerator[T]) release() {
	e.front.reset()
	e.seen = nil
}

// Sorted returns a copy of the ascending input the signatures index into.
func (e *Enumerator[T]) Sorted() []T { return slices.Clone(e.sorted) }

// Emitted reports how many sums have been produced so far.
func (e *Enumerator[T]) Emitted() int { return e.emitted }

// Pending reports the current frontier size.
func (e *Enumerator[T]) Pending() int { return e.front.Len() }

// Total returns 2ⁿ, the number of sums a full drain produces.
func (e *Enumerator[T]) Total() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(len(e.sorted)))
}

// SortedSubsetSums validates values once and returns a sequence of all subset
// sums in non-decreasing order. Every range over the result starts a fresh
// Enumerator and releases it when the loop ends, early or not.
func SortedSubsetSums[T Number](values []T, opts ...Option) (iter.Seq[T], error) {
	sorted, err := prepare(values)
	if err != nil {
		return nil, err
	}

	return func(yield func(T) bool) {
		e := newSorted(slices.Clone(sorted), opts...)
		defer e.Close()
		for v := range e.All() {
			if !yield(v) {
				return
			}
		}
	}, nil
}
