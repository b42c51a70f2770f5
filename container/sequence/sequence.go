// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sequence provides growable, indexable containers suitable for use
// as the store for the algorithms in container/heap.
package sequence

import (
	"fmt"

	"cloudeng.io/errors"
)

// ErrFull is returned by Bounded.Append when the sequence has reached its
// limit.
var ErrFull = errors.New("sequence is full")

type options[T any] struct {
	capacity int
	values   []T
}

// Option represents the options that can be passed to NewSlice and
// NewBounded.
type Option[T any] func(*options[T])

// WithCapacity sets the initial capacity of the underlying slice.
func WithCapacity[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.capacity = n
	}
}

// WithValues sets the initial contents of the sequence, the values are
// copied.
func WithValues[T any](values ...T) Option[T] {
	return func(o *options[T]) {
		o.values = values
	}
}

// Slice is a sequence backed by a slice that grows as needed.
type Slice[T any] struct {
	values []T
}

// NewSlice returns a new, empty unless WithValues is specified, Slice.
func NewSlice[T any](opts ...Option[T]) *Slice[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	return newSlice(o)
}

func newSlice[T any](o options[T]) *Slice[T] {
	s := &Slice[T]{values: make([]T, 0, max(o.capacity, len(o.values)))}
	s.values = append(s.values, o.values...)
	return s
}

// Wrap returns a Slice that uses values as its initial contents without
// copying them, so that Set writes through to values until the Slice is
// grown beyond the capacity of values.
func Wrap[T any](values []T) *Slice[T] {
	return &Slice[T]{values: values}
}

// Len returns the number of elements in the sequence.
func (s *Slice[T]) Len() int {
	return len(s.values)
}

// Cap returns the capacity of the underlying slice.
func (s *Slice[T]) Cap() int {
	return cap(s.values)
}

// At returns the i'th element.
func (s *Slice[T]) At(i int) T {
	return s.values[i]
}

// Set sets the i'th element.
func (s *Slice[T]) Set(i int, v T) {
	s.values[i] = v
}

// Append appends v, it never fails.
func (s *Slice[T]) Append(v T) error {
	s.values = append(s.values, v)
	return nil
}

// Values returns the underlying slice.
func (s *Slice[T]) Values() []T {
	return s.values
}

// Truncate shortens the sequence to n elements, clearing those removed so
// that they may be garbage collected. It is a no-op if n is not less than
// Len.
func (s *Slice[T]) Truncate(n int) {
	if n < 0 || n >= len(s.values) {
		return
	}
	clear(s.values[n:])
	s.values = s.values[:n]
}

// Bounded is a Slice whose length may not exceed a fixed limit.
type Bounded[T any] struct {
	Slice[T]
	limit int
}

// NewBounded returns a new Bounded sequence that may hold at most limit
// elements. It panics if more than limit values are supplied via
// WithValues.
func NewBounded[T any](limit int, opts ...Option[T]) *Bounded[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	if len(o.values) > limit {
		panic(fmt.Sprintf("sequence: %v initial values exceeds limit of %v", len(o.values), limit))
	}
	o.capacity = min(o.capacity, limit)
	return &Bounded[T]{
		Slice: *newSlice(o),
		limit: limit,
	}
}

// Limit returns the maximum length of the sequence.
func (b *Bounded[T]) Limit() int {
	return b.limit
}

// Append appends v, returning an error wrapping ErrFull if the sequence
// is already at its limit.
func (b *Bounded[T]) Append(v T) error {
	if b.Len() >= b.limit {
		return fmt.Errorf("%w: limit of %v elements", ErrFull, b.limit)
	}
	return b.Slice.Append(v)
}
