// Package matrix provides a small dense float64 matrix used as the
// distance table of the tsp solvers.
//
// What & Why:
//
//	Matrix is a uniform abstraction over two-dimensional mutable arrays of
//	float64 values. Solvers accept the interface, so callers may hand in a
//	Dense built from parsed rows or their own implementation.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error on invalid indices.
//	Clone() and NewFromRows() run in O(rows*cols) time.
package matrix
