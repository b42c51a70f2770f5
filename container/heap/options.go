// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options[T any] struct {
	bottomUp bool
	callback func(v T, i int)
}

// Option represents the options that can be passed to New and NewOrdered.
type Option[T any] func(*options[T])

// WithBottomUpHeapify requests that Heapify use Floyd's linear time,
// bottom-up, construction rather than repeated insertion. The order in
// which items are subsequently extracted is the same, but their layout
// in the store may differ.
func WithBottomUpHeapify[T any]() Option[T] {
	return func(o *options[T]) {
		o.bottomUp = true
	}
}

// WithCallback provides a callback function that is called whenever the
// heap writes a value to the store, with the value and the physical
// (0-based) index it was written to. Note that it is not sufficient to
// track removal of items and hence any application that requires such
// tracking should do so explicitly.
func WithCallback[T any](fn func(v T, i int)) Option[T] {
	return func(o *options[T]) {
		o.callback = fn
	}
}
