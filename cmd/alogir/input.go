// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const maxLineSize = 1 << 20

type line struct {
	file string
	num  int
	text string
}

// keyed is a line with its numeric value.
type keyed struct {
	key float64
	line
}

func compareKeyed(a, b keyed) int {
	return cmp.Or(cmp.Compare(a.key, b.key), strings.Compare(a.text, b.text))
}

func (l line) String() string {
	return l.text
}

func compareLines(a, b line) int {
	return strings.Compare(a.text, b.text)
}

func (l line) keyed() (keyed, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(l.text), 64)
	if err != nil {
		return keyed{}, fmt.Errorf("%v:%v: %q is not a number", l.file, l.num, l.text)
	}
	return keyed{key: v, line: l}, nil
}

// scanLines calls fn for every line in the named files, or stdin if no
// files are named.
func scanLines(ctx context.Context, files []string, fn func(line) error) error {
	if len(files) == 0 {
		return scan(ctx, "-", stdin, fn)
	}
	for _, file := range files {
		if err := scanFile(ctx, file, fn); err != nil {
			return err
		}
	}
	return nil
}

func scanFile(ctx context.Context, file string, fn func(line) error) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	return scan(ctx, file, f, fn)
}

func scan(ctx context.Context, name string, rd io.Reader, fn func(line) error) error {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		n++
		if err := fn(line{file: name, num: n, text: sc.Text()}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}
	return nil
}

func writeLines[T fmt.Stringer](out io.Writer, items []T) error {
	wr := bufio.NewWriter(out)
	for _, item := range items {
		if _, err := wr.WriteString(item.String()); err != nil {
			return err
		}
		if err := wr.WriteByte('\n'); err != nil {
			return err
		}
	}
	return wr.Flush()
}
