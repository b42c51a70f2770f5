// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hash

import (
	"hash"

	"github.com/cespare/xxhash/v2"
)

// Sum64 returns the xxHash64 digest of data using a seed of zero.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64String is like Sum64 but for a string.
func Sum64String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Sum64WithSeed returns the xxHash64 digest of data using seed.
func Sum64WithSeed(data []byte, seed uint64) uint64 {
	if seed == 0 {
		return xxhash.Sum64(data)
	}
	d := xxhash.NewWithSeed(seed)
	_, _ = d.Write(data)
	return d.Sum64()
}

// New64 returns a streaming xxHash64 hash.Hash64 using seed. Its Sum
// method appends the digest in big-endian order.
func New64(seed uint64) hash.Hash64 {
	return xxhash.NewWithSeed(seed)
}
