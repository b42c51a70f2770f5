// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides a binary heap that operates in place over a
// caller supplied, growable, indexable Store. The heap may be maintained
// in ascending (minimum at the root) or descending (maximum at the root)
// order as determined by its Polarity and may be used both as a priority
// queue, via Put and Get, and to sort the contents of the Store in place.
//
// The heap is folded into the store from top to bottom and left to right
// so that for a min-at-root heap:
//
//	         13
//	       /    \
//	     14      16
//	    /  \    /  \
//	   19  21  19  68
//
// is stored as [13 14 16 19 21 19 68].
//
// The heap does not own the store: it never allocates storage itself
// other than by calling the store's Append method and it is not safe
// for concurrent use.
package heap

import (
	"cmp"
	"fmt"

	"cloudeng.io/errors"
)

// ErrOrder is returned by Verify when the heap ordering invariant does not
// hold.
var ErrOrder = errors.New("heap order violated")

// Store represents the backing sequence that a Heap operates over.
// At and Set use 0-based indices and must be O(1); Append grows the
// sequence by one element and may fail, for example if the store is
// bounded.
type Store[T any] interface {
	Len() int
	At(i int) T
	Set(i int, v T)
	Append(v T) error
}

// Heap represents a binary heap over a Store. The number of items in the
// heap may be less than the length of the store, in particular whilst
// the store is being heapified or sorted.
type Heap[T any] struct {
	store    Store[T]
	cmp      func(a, b T) int
	count    int
	polarity Polarity
	opts     options[T]
}

// New returns a Heap over the supplied store. The store's existing
// contents are left untouched and are not part of the heap until
// Heapify is called. The compare function must return a negative
// number, zero or a positive number when a is less than, equal to or
// greater than b respectively, as per cmp.Compare.
func New[T any](store Store[T], compare func(a, b T) int, polarity Polarity, opts ...Option[T]) *Heap[T] {
	h := &Heap[T]{
		store:    store,
		cmp:      compare,
		polarity: polarity,
	}
	for _, fn := range opts {
		fn(&h.opts)
	}
	return h
}

// NewOrdered is like New but uses cmp.Compare.
func NewOrdered[T cmp.Ordered](store Store[T], polarity Polarity, opts ...Option[T]) *Heap[T] {
	return New(store, cmp.Compare[T], polarity, opts...)
}

// Release drops the heap's references to its store and compare function.
// The store remains valid and owned by the caller. It always returns nil
// to allow for h = h.Release().
func (h *Heap[T]) Release() *Heap[T] {
	h.store = nil
	h.cmp = nil
	h.count = 0
	return nil
}

// Store returns the store that the heap operates over.
func (h *Heap[T]) Store() Store[T] {
	return h.store
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int {
	return h.count
}

// IsEmpty returns true if there are no items in the heap.
func (h *Heap[T]) IsEmpty() bool {
	return h.count == 0
}

// SetPolarity sets the heap's polarity. Changing the polarity of a
// non-empty heap does not reorder it, Heapify must be called to do so.
func (h *Heap[T]) SetPolarity(p Polarity) {
	h.polarity = p
}

// Polarity returns the heap's polarity.
func (h *Heap[T]) Polarity() Polarity {
	return h.polarity
}

// InvertPolarity inverts the heap's polarity, see SetPolarity.
func (h *Heap[T]) InvertPolarity() {
	h.polarity = h.polarity.Invert()
}

// Put adds item to the heap. The store is grown by one if it has no
// room for the new item, any error returned by the store when doing so
// is returned and the heap is left unchanged.
func (h *Heap[T]) Put(item T) error {
	if h.store.Len() <= h.count {
		var zero T
		if err := h.store.Append(zero); err != nil {
			return fmt.Errorf("failed to grow heap store: %w", err)
		}
	}
	h.count++
	h.siftUp(h.count, item)
	return nil
}

// Get removes and returns the item at the root of the heap, ie. the
// smallest item for an ascending heap and the largest for a descending
// one. It returns false, and leaves the heap unchanged, if the heap is
// empty.
func (h *Heap[T]) Get() (T, bool) {
	if h.IsEmpty() {
		var zero T
		return zero, false
	}
	top := h.at(root)
	last := h.at(h.count)
	h.count--
	h.siftDown(root, last)
	return top, true
}

// Peek returns the item at the root of the heap without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if h.IsEmpty() {
		var zero T
		return zero, false
	}
	return h.at(root), true
}

// Verify returns an error wrapping ErrOrder for the first parent/child
// pair that violates the heap ordering for the current polarity.
func (h *Heap[T]) Verify() error {
	for i := root + 1; i <= h.count; i++ {
		p := parent(i)
		if pv, cv := h.at(p), h.at(i); h.compare(pv, cv) > 0 {
			return fmt.Errorf("%w: %v heap: [%v] %v, child [%v] %v", ErrOrder, h.polarity, physical(p), pv, physical(i), cv)
		}
	}
	return nil
}

func (h *Heap[T]) compare(a, b T) int {
	return int(h.polarity) * h.cmp(a, b)
}

func (h *Heap[T]) at(i int) T {
	return h.store.At(physical(i))
}

func (h *Heap[T]) set(i int, v T) {
	p := physical(i)
	h.store.Set(p, v)
	if h.opts.callback != nil {
		h.opts.callback(v, p)
	}
}

// siftUp moves parents down, starting at i, until the place for
// item is found.
func (h *Heap[T]) siftUp(i int, item T) {
	for i > root {
		p := parent(i)
		pv := h.at(p)
		if h.compare(pv, item) <= 0 {
			break
		}
		h.set(i, pv)
		i = p
	}
	h.set(i, item)
}

// siftDown moves the smaller of the children up, starting at i, until
// the place for item is found.
func (h *Heap[T]) siftDown(i int, item T) {
	for {
		c := left(i)
		if c > h.count || c < 0 { // c < 0 after int overflow
			break
		}
		if r := right(i); r <= h.count && h.compare(h.at(r), h.at(c)) < 0 {
			c = r
		}
		cv := h.at(c)
		if h.compare(item, cv) <= 0 {
			break
		}
		h.set(i, cv)
		i = c
	}
	h.set(i, item)
}
