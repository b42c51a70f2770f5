// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/tisannai/alogir/container/heap"
	"github.com/tisannai/alogir/container/sequence"
)

func ExampleHeap() {
	h := heap.NewOrdered(sequence.NewSlice[int](), heap.Ascending)
	for _, v := range []int{5, 3, 8, 1} {
		if err := h.Put(v); err != nil {
			panic(err)
		}
	}
	for !h.IsEmpty() {
		v, _ := h.Get()
		fmt.Printf("%v ", v)
	}
	fmt.Println()
	// Output:
	// 1 3 5 8
}

func randInts(seed int64, n, limit int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(limit)
	}
	return r
}

func sorted(values []int, polarity heap.Polarity) []int {
	s := slices.Clone(values)
	slices.Sort(s)
	if polarity == heap.Descending {
		slices.Reverse(s)
	}
	return s
}

func TestPutGet(t *testing.T) {
	for _, polarity := range []heap.Polarity{heap.Ascending, heap.Descending} {
		for _, n := range []int{0, 1, 2, 3, 7, 16, 100, 1023} {
			values := randInts(int64(n), n, n+1)
			h := heap.NewOrdered(sequence.NewSlice[int](), polarity)
			for _, v := range values {
				if err := h.Put(v); err != nil {
					t.Fatal(err)
				}
				if err := h.Verify(); err != nil {
					t.Fatalf("%v: %v", polarity, err)
				}
			}
			if got, want := h.Len(), n; got != want {
				t.Errorf("%v: got %v, want %v", polarity, got, want)
			}
			var extracted []int
			for !h.IsEmpty() {
				v, ok := h.Get()
				if !ok {
					t.Fatalf("%v: Get failed on a non-empty heap", polarity)
				}
				if err := h.Verify(); err != nil {
					t.Fatalf("%v: %v", polarity, err)
				}
				extracted = append(extracted, v)
			}
			if got, want := extracted, sorted(values, polarity); !slices.Equal(got, want) {
				t.Errorf("%v: %v: got %v, want %v", polarity, n, got, want)
			}
		}
	}
}

func TestInterleaved(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x1234)) // #nosec: G404
	h := heap.NewOrdered(sequence.NewSlice[int](), heap.Descending)
	live := []int{}
	for range 2000 {
		if rnd.Intn(3) == 0 {
			v, ok := h.Get()
			if got, want := ok, len(live) > 0; got != want {
				t.Fatalf("got %v, want %v", got, want)
			}
			if !ok {
				continue
			}
			largest := slices.Max(live)
			if v != largest {
				t.Fatalf("got %v, want %v", v, largest)
			}
			live = slices.Delete(live, slices.Index(live, v), slices.Index(live, v)+1)
			continue
		}
		v := rnd.Intn(500)
		live = append(live, v)
		if err := h.Put(v); err != nil {
			t.Fatal(err)
		}
		if err := h.Verify(); err != nil {
			t.Fatal(err)
		}
	}
	if got, want := h.Len(), len(live); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func intCmp(a, b *int) int {
	return cmp.Compare(*a, *b)
}

func TestEmpty(t *testing.T) {
	items := randInts(1234, 16, 128)
	h := heap.New(sequence.NewSlice[*int](sequence.WithCapacity[*int](len(items))), intCmp, heap.Ascending)
	if !h.IsEmpty() {
		t.Errorf("new heap is not empty")
	}
	if v, ok := h.Get(); ok || v != nil {
		t.Errorf("got %v, %v, want nil, false", v, ok)
	}
	for i := range items {
		if err := h.Put(&items[i]); err != nil {
			t.Fatal(err)
		}
	}
	for i := range 2 * len(items) {
		v, ok := h.Get()
		if i < len(items) {
			if !ok || v == nil {
				t.Fatalf("%v: got %v, %v", i, v, ok)
			}
			continue
		}
		if ok || v != nil {
			t.Errorf("%v: got %v, %v, want nil, false", i, v, ok)
		}
		if !h.IsEmpty() {
			t.Errorf("%v: heap is not empty", i)
		}
		if got, want := h.Store().Len(), len(items); got != want {
			t.Errorf("%v: store was modified: got %v, want %v", i, got, want)
		}
	}
}

func TestPeek(t *testing.T) {
	h := heap.NewOrdered(sequence.NewSlice[string](), heap.Descending)
	if _, ok := h.Peek(); ok {
		t.Errorf("Peek succeeded on an empty heap")
	}
	for _, v := range []string{"b", "d", "a", "c"} {
		if err := h.Put(v); err != nil {
			t.Fatal(err)
		}
	}
	if v, ok := h.Peek(); !ok || v != "d" {
		t.Errorf("got %v, %v, want d, true", v, ok)
	}
	if got, want := h.Len(), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPolarity(t *testing.T) {
	h := heap.NewOrdered(sequence.NewSlice[int](), heap.Descending)
	if got, want := h.Polarity(), heap.Descending; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	h.SetPolarity(heap.Ascending)
	if got, want := h.Polarity(), heap.Ascending; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	h.InvertPolarity()
	if got, want := h.Polarity(), heap.Descending; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := heap.Polarity(3).String(), "Polarity(3)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, tc := range []struct {
		input string
		want  heap.Polarity
	}{
		{"ascending", heap.Ascending},
		{"ASC", heap.Ascending},
		{"min", heap.Ascending},
		{"+1", heap.Ascending},
		{" descending ", heap.Descending},
		{"desc", heap.Descending},
		{"max", heap.Descending},
		{"-1", heap.Descending},
	} {
		p, err := heap.ParsePolarity(tc.input)
		if err != nil {
			t.Errorf("%q: %v", tc.input, err)
			continue
		}
		if got, want := p, tc.want; got != want {
			t.Errorf("%q: got %v, want %v", tc.input, got, want)
		}
	}
	if _, err := heap.ParsePolarity("sideways"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestPolarityFlipRequiresHeapify(t *testing.T) {
	h := heap.NewOrdered(sequence.NewSlice[int](), heap.Ascending)
	for _, v := range []int{1, 2, 3, 4, 5} {
		if err := h.Put(v); err != nil {
			t.Fatal(err)
		}
	}
	h.InvertPolarity()
	if err := h.Verify(); !errors.Is(err, heap.ErrOrder) {
		t.Errorf("expected ErrOrder, got %v", err)
	}
	h.Heapify()
	if err := h.Verify(); err != nil {
		t.Fatal(err)
	}
	if v, _ := h.Get(); v != 5 {
		t.Errorf("got %v, want 5", v)
	}
}

func TestStoreFull(t *testing.T) {
	store := sequence.NewBounded[int](4)
	h := heap.NewOrdered(store, heap.Ascending)
	for _, v := range []int{7, 3, 9, 1} {
		if err := h.Put(v); err != nil {
			t.Fatal(err)
		}
	}
	before := slices.Clone(store.Values())
	err := h.Put(0)
	if !errors.Is(err, sequence.ErrFull) {
		t.Fatalf("expected ErrFull, got %v", err)
	}
	if got, want := h.Len(), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := store.Values(), before; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := h.Verify(); err != nil {
		t.Fatal(err)
	}

	// Room that has been vacated by Get is reused without growing.
	if v, _ := h.Get(); v != 1 {
		t.Errorf("got %v, want 1", v)
	}
	if err := h.Put(0); err != nil {
		t.Fatal(err)
	}
	if v, _ := h.Get(); v != 0 {
		t.Errorf("got %v, want 0", v)
	}
}

func TestCallback(t *testing.T) {
	positions := map[int]int{}
	store := sequence.NewSlice[int]()
	h := heap.NewOrdered(store, heap.Ascending,
		heap.WithCallback(func(v int, i int) {
			positions[v] = i
		}))
	rnd := rand.New(rand.NewSource(99)) // #nosec: G404
	for _, v := range rnd.Perm(200) {
		if err := h.Put(v); err != nil {
			t.Fatal(err)
		}
	}
	for range 50 {
		v, _ := h.Get()
		delete(positions, v)
	}
	if got, want := len(positions), h.Len(); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range h.Len() {
		v := store.At(i)
		if got, want := positions[v], i; got != want {
			t.Errorf("%v: got %v, want %v", v, got, want)
		}
	}
}

func TestRelease(t *testing.T) {
	store := sequence.NewSlice(sequence.WithValues(3, 2, 1))
	h := heap.NewOrdered(store, heap.Ascending)
	h.Heapify()
	h = h.Release()
	if h != nil {
		t.Errorf("Release returned a non-nil heap")
	}
	if got, want := store.Len(), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
