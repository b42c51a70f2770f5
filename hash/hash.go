// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package hash provides 64-bit non-cryptographic hashing using xxHash64
// as well as a simple interface to create and validate digests using
// "xxh64", "sha1", "md5", "sha256" and "sha512". Digests are exchanged in
// base64 encoded form.
package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"hash"
	"slices"

	"cloudeng.io/errors"
	"github.com/cespare/xxhash/v2"
)

// ErrUnsupported is returned by New for an unrecognised algorithm.
var ErrUnsupported = errors.New("unsupported hash algorithm")

// Algorithms lists the supported algorithms.
var Algorithms = []string{"xxh64", "sha1", "md5", "sha256", "sha512"}

// Hash pairs a hash.Hash with the digest it is expected to produce.
type Hash struct {
	hash.Hash
	Algo   string
	Digest []byte
}

// New creates a new Hash instance based on the specified algorithm and
// base64 encoded digest.
func New(algo, digest string) (Hash, error) {
	db, err := base64.StdEncoding.DecodeString(digest)
	if err != nil {
		return Hash{}, fmt.Errorf("invalid base64 digest: %w", err)
	}
	h := newHashInstance(algo, db)
	if h.Hash == nil {
		return Hash{}, fmt.Errorf("%w: %s", ErrUnsupported, algo)
	}
	h.Algo = algo
	return h, nil
}

// FromBase64 decodes a standard, padded, base64 encoded digest.
func FromBase64(digest string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(digest)
}

// ToBase64 encodes digest using standard, padded, base64 encoding as
// expected by New and FromBase64.
func ToBase64(digest []byte) string {
	return base64.StdEncoding.EncodeToString(digest)
}

func newHashInstance(algo string, digest []byte) Hash {
	var h hash.Hash
	switch algo {
	case "xxh64":
		h = xxhash.New()
	case "sha1":
		h = sha1.New()
	case "md5":
		h = md5.New()
	case "sha256":
		h = sha256.New()
	case "sha512":
		h = sha512.New()
	default:
		return Hash{}
	}
	return Hash{Hash: h, Digest: digest}
}

// Validate returns true if the data written so far produces the
// expected digest.
func (h Hash) Validate() bool {
	return slices.Equal(h.Sum(nil), h.Digest)
}
