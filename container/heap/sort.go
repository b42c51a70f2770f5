// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"cmp"

	"github.com/tisannai/alogir/container/sequence"
)

// Heapify arranges the entire contents of the store into heap order for
// the current polarity. Any items previously in the heap are treated as
// part of the store, so that on return Len is equal to the length of the
// store. The store is never grown.
func (h *Heap[T]) Heapify() {
	n := h.store.Len()
	if h.opts.bottomUp {
		h.count = n
		for i := parent(n); i >= root; i-- {
			h.siftDown(i, h.at(i))
		}
		return
	}
	// Insert each item in turn, the item being inserted always occupies
	// the slot immediately following the heap built so far.
	h.count = 0
	for i := root; i <= n; i++ {
		h.count++
		h.siftUp(h.count, h.at(i))
	}
}

// HeapifyForSort arranges the contents of the store as required by Sort,
// that is, as a heap of the inverse polarity.
func (h *Heap[T]) HeapifyForSort() {
	h.InvertPolarity()
	h.Heapify()
	h.InvertPolarity()
}

// Sort sorts the items in the heap in place, in ascending order for an
// ascending heap and descending order for a descending one, leaving the
// heap empty. The heap must have been prepared using HeapifyForSort,
// otherwise the resulting order is undefined. Each item extracted is
// written to the slot vacated by shrinking the heap.
func (h *Heap[T]) Sort() {
	n := h.count
	h.InvertPolarity()
	for range n {
		v, _ := h.Get()
		h.set(h.count+1, v)
	}
	h.InvertPolarity()
}

// SortStore sorts the contents of store in place using the supplied
// compare function and polarity.
func SortStore[T any](store Store[T], compare func(a, b T) int, polarity Polarity) {
	h := New(store, compare, polarity)
	h.HeapifyForSort()
	h.Sort()
}

// SortFunc sorts the slice s in place.
func SortFunc[T any](s []T, compare func(a, b T) int, polarity Polarity) {
	SortStore[T](sequence.Wrap(s), compare, polarity)
}

// SortOrdered sorts the slice s in place using cmp.Compare.
func SortOrdered[T cmp.Ordered](s []T, polarity Polarity) {
	SortFunc(s, cmp.Compare[T], polarity)
}
