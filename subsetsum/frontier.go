package subsetsum

import (
	"container/heap"
	"encoding/binary"
)

// entry is one pending subset: its partial sum and signature.
type entry[T Number] struct {
	sum T     // sum of sorted[i] for i in sig
	sig []int // strictly increasing positions in the sorted input
	seq uint64
}

// frontier is a min-heap of *entry ordered by sum, then by the configured
// tie-break. It implements heap.Interface; use push/pop, not the raw methods.
type frontier[T Number] struct {
	items []*entry[T]
	tie   TieBreak
	next  uint64 // insertion counter for TieBreakInsertion
}

// Len returns the number of pending entries.
func (f *frontier[T]) Len() int { return len(f.items) }

// Less orders by sum, then by signature or insertion sequence.
func (f *frontier[T]) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.sum != b.sum {
		return a.sum < b.sum
	}
	if f.tie == TieBreakInsertion {
		return a.seq < b.seq
	}

	return lessSignature(a.sig, b.sig)
}

// Swap swaps two entries.
func (f *frontier[T]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push appends x; called by heap.Push.
func (f *frontier[T]) Push(x interface{}) { f.items = append(f.items, x.(*entry[T])) }

// Pop removes the last element; called by heap.Pop.
func (f *frontier[T]) Pop() interface{} {
	old := f.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // let the GC reclaim the signature
	f.items = old[:n-1]

	return it
}

// push stamps e with the next insertion sequence and restores the heap invariant.
func (f *frontier[T]) push(e *entry[T]) {
	e.seq = f.next
	f.next++
	heap.Push(f, e)
}

// pop removes and returns the minimum entry. The frontier must be non-empty.
func (f *frontier[T]) pop() *entry[T] {
	return heap.Pop(f).(*entry[T])
}

// reset drops every pending entry.
func (f *frontier[T]) reset() {
	f.items = nil
}

// lessSignature compares index sequences lexicographically; a proper prefix
// sorts first.
func lessSignature(a, b []int) bool {
	for k := 0; k < len(a) && k < len(b); k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}

	return len(a) < len(b)
}

// signatureKey encodes sig as a compact map key (uvarint per index).
func signatureKey(sig []int) string {
	buf := make([]byte, 0, len(sig)*2)
	for _, i := range sig {
		buf = binary.AppendUvarint(buf, uint64(i))
	}

	return string(buf)
}
