package tsp

import "errors"

// Sentinel errors returned by the solvers and helpers.
var (
	// ErrEmptyMatrix is returned for a nil or 0×0 distance matrix.
	ErrEmptyMatrix = errors.New("tsp: distance matrix cannot be empty")

	// ErrNonSquare is returned when Cols() differs from Rows().
	ErrNonSquare = errors.New("tsp: distance matrix must be square")

	// ErrNonZeroDiagonal is returned for a non-zero diagonal entry.
	ErrNonZeroDiagonal = errors.New("tsp: self-distance must be 0")

	// ErrInvalidWeight is returned for NaN or −Inf entries.
	ErrInvalidWeight = errors.New("tsp: distance is NaN or -Inf")

	// ErrIncompleteGraph is returned when no Hamiltonian cycle can be built
	// from the finite entries of the matrix.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrDimensionMismatch is returned when a tour or a name list does not fit the matrix.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrTooLarge is returned when BruteForce is asked to search more cities than allowed.
	ErrTooLarge = errors.New("tsp: too many cities for brute-force search")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrInvalidOutput is returned by ParseOutput for anything but "path" or "length".
	ErrInvalidOutput = errors.New("tsp: invalid output type, choose either 'path' or 'length'")
)

// MaxBruteForceN is the default city limit for BruteForce (9! ≈ 3.6e5 tours).
const MaxBruteForceN = 10

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of vertex indices, starting and ending at 0.
	// For n vertices, len(Tour) == n+1 and Tour[0]==Tour[n]==0.
	Tour []int

	// Cost is the total distance of the cycle.
	Cost float64
}

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// BruteForceSearch enumerates every tour (exact).
	BruteForceSearch Algorithm = iota

	// NearestNeighborHeuristic builds one greedy tour.
	NearestNeighborHeuristic
)

// String returns the flag spelling of a.
func (a Algorithm) String() string {
	switch a {
	case BruteForceSearch:
		return "brute"
	case NearestNeighborHeuristic:
		return "nearest"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps "brute" or "nearest" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "brute", "naive":
		return BruteForceSearch, nil
	case "nearest", "nn":
		return NearestNeighborHeuristic, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}

// Output selects what a caller reports from a TSResult.
type Output int

const (
	// OutputPath reports the tour (optionally by city name).
	OutputPath Output = iota

	// OutputLength reports the tour cost.
	OutputLength
)

// ParseOutput maps "path" or "length" to an Output.
func ParseOutput(s string) (Output, error) {
	switch s {
	case "path", "PATH":
		return OutputPath, nil
	case "length", "LENGTH":
		return OutputLength, nil
	default:
		return 0, ErrInvalidOutput
	}
}

// Options configures Solve.
//
// Algorithm      – solver to run (default BruteForceSearch).
// MaxBruteForceN – city limit for BruteForceSearch (default MaxBruteForceN).
type Options struct {
	Algorithm      Algorithm
	MaxBruteForceN int
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns brute-force search with the default city limit.
func DefaultOptions() Options {
	return Options{
		Algorithm:      BruteForceSearch,
		MaxBruteForceN: MaxBruteForceN,
	}
}

// WithAlgorithm selects the solver.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithMaxBruteForceN raises or lowers the brute-force city limit.
// Panics if n < 1.
func WithMaxBruteForceN(n int) Option {
	if n < 1 {
		panic("tsp: MaxBruteForceN must be positive")
	}
	return func(o *Options) {
		o.MaxBruteForceN = n
	}
}
