package subsetsum

import "errors"

// Sentinel errors returned by New and SortedSubsetSums.
var (
	// ErrNegativeValue indicates a negative input; ordering is only guaranteed
	// for non-negative values, so such inputs are rejected outright.
	ErrNegativeValue = errors.New("subsetsum: negative value")

	// ErrInvalidValue indicates a NaN or infinite input.
	ErrInvalidValue = errors.New("subsetsum: value is not a finite number")

	// ErrSumOverflow indicates that the sum of all inputs overflows the element type.
	ErrSumOverflow = errors.New("subsetsum: total sum overflows element type")
)

// Number is the set of element types an Enumerator accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Subset is one emitted subset: its sum and the positions it selects in the
// sorted input (see Enumerator.Sorted). Indices is strictly increasing.
type Subset[T Number] struct {
	Sum     T
	Indices []int
}

// TieBreak selects the secondary frontier key used when two pending subsets
// have the same sum.
type TieBreak int

const (
	// TieBreakSignature orders equal sums by lexicographic signature
	// (a proper prefix comes first). This is the default.
	TieBreakSignature TieBreak = iota

	// TieBreakInsertion orders equal sums by the order they entered the frontier.
	TieBreakInsertion
)

// String returns the flag spelling of t.
func (t TieBreak) String() string {
	switch t {
	case TieBreakSignature:
		return "signature"
	case TieBreakInsertion:
		return "insertion"
	default:
		return "unknown"
	}
}

// ParseTieBreak maps "signature" or "insertion" to a TieBreak.
func ParseTieBreak(s string) (TieBreak, bool) {
	switch s {
	case "signature", "":
		return TieBreakSignature, true
	case "insertion":
		return TieBreakInsertion, true
	default:
		return 0, false
	}
}

// Options configures an Enumerator.
//
// TieBreak  – secondary ordering for equal sums.
// SeenSet   – keep the defensive set of scheduled signatures.
// OnEmit    – optional hook receiving every emitted subset (sum as float64).
type Options struct {
	TieBreak TieBreak
	SeenSet  bool
	OnEmit   func(sum float64, indices []int)
}

// Option represents a functional option for configuring an Enumerator.
type Option func(*Options)

// DefaultOptions returns signature tie-breaking with the seen-set enabled.
func DefaultOptions() Options {
	return Options{
		TieBreak: TieBreakSignature,
		SeenSet:  true,
	}
}

// WithTieBreak sets the secondary frontier key. Unknown values panic.
func WithTieBreak(t TieBreak) Option {
	if t != TieBreakSignature && t != TieBreakInsertion {
		panic("subsetsum: unknown TieBreak")
	}
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithoutSeenSet disables the duplicate-signature set. The expansion rule
// already schedules every signature once; this trades the safety net for memory.
func WithoutSeenSet() Option {
	return func(o *Options) {
		o.SeenSet = false
	}
}

// WithOnEmit registers a hook called for each emitted subset, before the value
// is returned to the caller. The indices slice must not be retained or modified.
func WithOnEmit(fn func(sum float64, indices []int)) Option {
	return func(o *Options) {
		o.OnEmit = fn
	}
}
