// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/tisannai/alogir/container/heap"
	"github.com/tisannai/alogir/container/sequence"
)

const defaultTop = 10

type topFlags struct {
	cmdutil.LoggingFlags
	ConfigFile string `subcmd:"config,,'yaml or toml configuration file'"`
	Order      string `subcmd:"order,,'descending selects the largest lines and ascending the smallest, defaults to descending'"`
	N          int    `subcmd:"n,0,'number of lines to select, defaults to 10'"`
	Numeric    bool   `subcmd:"numeric,false,'compare lines as floating point numbers'"`
	Verify     bool   `subcmd:"verify,false,'verify the heap after every update'"`
}

func topCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*topFlags)
	ctx, cfg, closer, err := setup(ctx, fv.LoggingFlags, fv.ConfigFile)
	if err != nil {
		return err
	}
	defer closer()
	order, err := cfg.polarity(fv.Order, heap.Descending)
	if err != nil {
		return err
	}
	n := fv.N
	if n <= 0 {
		n = cfg.Top
	}
	if n <= 0 {
		n = defaultTop
	}
	ctxlog.Logger(ctx).Info("selecting", "n", n, "order", order)
	if fv.Numeric || cfg.Numeric {
		return top(ctx, args, n, order, fv.Verify, compareKeyed, line.keyed)
	}
	return top(ctx, args, n, order, fv.Verify, compareLines,
		func(l line) (line, error) { return l, nil })
}

func top[T fmt.Stringer](ctx context.Context, args []string, n int, order heap.Polarity, verify bool, compare func(a, b T) int, convert func(line) (T, error)) error {
	sel := newSelector(n, compare, order, verify)
	var errs errors.M
	if err := scanLines(ctx, args, func(l line) error {
		v, err := convert(l)
		if err != nil {
			errs.Append(err)
			return nil
		}
		return sel.add(v)
	}); err != nil {
		return err
	}
	if err := errs.Err(); err != nil {
		return err
	}
	return writeLines(stdout, sel.result())
}

// selector retains the n largest, for Descending order, or smallest, for
// Ascending order, of the items added to it. It uses a heap of the
// inverse order so that the item to be displaced by a better candidate
// is always at its root.
type selector[T any] struct {
	h       *heap.Heap[T]
	n       int
	compare func(a, b T) int
	verify  bool
}

func newSelector[T any](n int, compare func(a, b T) int, order heap.Polarity, verify bool) *selector[T] {
	store := sequence.NewBounded[T](n, sequence.WithCapacity[T](n))
	return &selector[T]{
		h:       heap.New[T](store, compare, order.Invert()),
		n:       n,
		compare: compare,
		verify:  verify,
	}
}

func (s *selector[T]) add(v T) error {
	if s.h.Len() == s.n {
		root, _ := s.h.Peek()
		if int(s.h.Polarity())*s.compare(v, root) <= 0 {
			return nil
		}
		s.h.Get()
	}
	if err := s.h.Put(v); err != nil {
		return err
	}
	if s.verify {
		return s.h.Verify()
	}
	return nil
}

// result drains the selector, returning its items in order.
func (s *selector[T]) result() []T {
	out := make([]T, s.h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i], _ = s.h.Get()
	}
	return out
}
