// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"
	"strings"
)

// Polarity determines whether the heap is maintained in ascending
// (minimum at the root) or descending (maximum at the root) order. It is
// multiplied into the result of every comparison made by the heap.
type Polarity int

// Values for Polarity.
const (
	Ascending  Polarity = 1
	Descending Polarity = -1
)

// Invert returns the opposite polarity.
func (p Polarity) Invert() Polarity {
	return -p
}

func (p Polarity) String() string {
	switch p {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}
	return fmt.Sprintf("Polarity(%d)", int(p))
}

// ParsePolarity parses the names used for polarities in flags and
// configuration files: ascending, asc, min or +1 and descending, desc,
// max or -1.
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc", "min", "+1", "1":
		return Ascending, nil
	case "descending", "desc", "max", "-1":
		return Descending, nil
	}
	return 0, fmt.Errorf("unrecognised polarity: %q", s)
}
