package matrix

import "errors"

// Every message is prefixed with "matrix: " for easy grepping. Wrap with
// fmt.Errorf("ctx: %w", ErrX) when context is needed; callers use errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At and Set return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when input rows do not form a rectangle.
	ErrBadShape = errors.New("matrix: invalid shape")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange
