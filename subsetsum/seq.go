package subsetsum

import "iter"

// Take yields at most n values from seq, then stops pulling.
// n ≤ 0 yields nothing.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count == n {
				return
			}
		}
	}
}

// TakeWhile yields values from seq while pred holds and stops at the first
// value that fails it. That value is consumed but not yielded.
func TakeWhile[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !pred(v) || !yield(v) {
				return
			}
		}
	}
}

// Enumerate adds 0-indexing to a single value iterator.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var idx int
		for item := range seq {
			if !yield(idx, item) {
				return
			}
			idx++
		}
	}
}
