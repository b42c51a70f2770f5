// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// The heap is addressed using 1-based logical indices so that the parent
// of i is i/2 and its children are 2i and 2i+1. Elements are stored at
// 0-based physical indices in the Store; physical is the only place where
// the two are translated.
const root = 1

func physical(i int) int { return i - 1 }
func parent(i int) int   { return i / 2 }
func left(i int) int     { return i * 2 }
func right(i int) int    { return left(i) + 1 }
