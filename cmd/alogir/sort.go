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

type sortFlags struct {
	cmdutil.LoggingFlags
	ConfigFile string `subcmd:"config,,'yaml or toml configuration file'"`
	Order      string `subcmd:"order,,'ascending or descending, defaults to ascending'"`
	Numeric    bool   `subcmd:"numeric,false,'compare lines as floating point numbers'"`
	Unique     bool   `subcmd:"unique,false,'output only the first of a run of equal lines'"`
	Verify     bool   `subcmd:"verify,false,'verify that the output is correctly ordered'"`
}

func sortCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*sortFlags)
	ctx, cfg, closer, err := setup(ctx, fv.LoggingFlags, fv.ConfigFile)
	if err != nil {
		return err
	}
	defer closer()
	order, err := cfg.polarity(fv.Order, heap.Ascending)
	if err != nil {
		return err
	}
	numeric, unique := fv.Numeric || cfg.Numeric, fv.Unique || cfg.Unique

	var lines []line
	if err := scanLines(ctx, args, func(l line) error {
		lines = append(lines, l)
		return nil
	}); err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	logger.Info("sorting", "lines", len(lines), "order", order, "numeric", numeric)
	if numeric {
		keys, err := parseKeys(lines)
		if err != nil {
			return err
		}
		return output(keys, compareKeyed, order, unique, fv.Verify)
	}
	return output(lines, compareLines, order, unique, fv.Verify)
}

func parseKeys(lines []line) ([]keyed, error) {
	var errs errors.M
	keys := make([]keyed, 0, len(lines))
	for _, l := range lines {
		k, err := l.keyed()
		errs.Append(err)
		keys = append(keys, k)
	}
	return keys, errs.Err()
}

func output[T fmt.Stringer](items []T, compare func(a, b T) int, order heap.Polarity, unique, verify bool) error {
	items = sortItems(items, compare, order, unique)
	if verify {
		if err := verifyOrder(items, compare, order); err != nil {
			return err
		}
	}
	return writeLines(stdout, items)
}

// sortItems sorts items in place, dropping all but the first of each run
// of equal items if unique is set.
func sortItems[T any](items []T, compare func(a, b T) int, order heap.Polarity, unique bool) []T {
	store := sequence.Wrap(items)
	heap.SortStore[T](store, compare, order)
	if !unique || len(items) == 0 {
		return items
	}
	n := 1
	for i := 1; i < len(items); i++ {
		if compare(items[i], items[n-1]) != 0 {
			store.Set(n, items[i])
			n++
		}
	}
	store.Truncate(n)
	return store.Values()
}

func verifyOrder[T any](items []T, compare func(a, b T) int, order heap.Polarity) error {
	for i := 1; i < len(items); i++ {
		if int(order)*compare(items[i-1], items[i]) > 0 {
			return fmt.Errorf("output is not in %v order at line %v: %v, %v", order, i+1, items[i-1], items[i])
		}
	}
	return nil
}
