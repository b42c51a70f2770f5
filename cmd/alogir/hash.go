// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
	"github.com/go-json-experiment/json"
	"github.com/tisannai/alogir/hash"
)

type hashFlags struct {
	cmdutil.LoggingFlags
	ConfigFile  string `subcmd:"config,,'yaml or toml configuration file'"`
	Seed        uint64 `subcmd:"seed,0,'xxHash64 seed'"`
	Concurrency int    `subcmd:"concurrency,0,'number of files to hash concurrently, defaults to GOMAXPROCS'"`
	Base64      bool   `subcmd:"base64,false,'print big-endian base64 encoded digests rather than hex'"`
	JSON        bool   `subcmd:"json,false,'print each digest as a json object on a line of its own'"`
}

type digest struct {
	file  string
	sum   uint64
	valid bool
}

func (d digest) hex() string {
	return fmt.Sprintf("%016x", d.sum)
}

func (d digest) base64() string {
	return hash.ToBase64(binary.BigEndian.AppendUint64(nil, d.sum))
}

type digestRecord struct {
	File   string `json:"file"`
	Algo   string `json:"algo"`
	Seed   uint64 `json:"seed,omitzero"`
	Digest string `json:"digest"`
}

func hashCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*hashFlags)
	ctx, cfg, closer, err := setup(ctx, fv.LoggingFlags, fv.ConfigFile)
	if err != nil {
		return err
	}
	defer closer()
	seed := fv.Seed
	if seed == 0 {
		seed = cfg.Seed
	}
	digests, err := hashFiles(ctx, args, seed, cfg.concurrency(fv.Concurrency))
	format := digest.hex
	if fv.Base64 {
		format = digest.base64
	}
	if werr := writeDigests(stdout, digests, seed, format, fv.JSON); werr != nil {
		return werr
	}
	return err
}

// writeDigests writes the valid digests either in the format used by
// sha256sum and friends or as json records.
func writeDigests(out io.Writer, digests []digest, seed uint64, format func(digest) string, asJSON bool) error {
	for _, d := range digests {
		if !d.valid {
			continue
		}
		if !asJSON {
			if _, err := fmt.Fprintf(out, "%s  %s\n", format(d), d.file); err != nil {
				return err
			}
			continue
		}
		buf, err := json.Marshal(digestRecord{
			File:   d.file,
			Algo:   "xxh64",
			Seed:   seed,
			Digest: format(d),
		})
		if err != nil {
			return err
		}
		if _, err := out.Write(append(buf, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// hashFiles hashes the named files concurrently, returning their digests
// in the same order. Files that could not be hashed are marked as invalid
// and the errors encountered for all such files are returned.
func hashFiles(ctx context.Context, files []string, seed uint64, concurrency int) ([]digest, error) {
	logger := ctxlog.Logger(ctx)
	digests := make([]digest, len(files))
	g := errgroup.WithConcurrency(&errgroup.T{}, max(concurrency, 1))
	for i, file := range files {
		digests[i].file = file
		g.GoContext(ctx, func() error {
			sum, err := hashFile(ctx, file, seed)
			if err != nil {
				return err
			}
			digests[i].sum, digests[i].valid = sum, true
			logger.Debug("hashed", "file", file, "digest", digests[i].hex())
			return nil
		})
	}
	return digests, errors.Squash(g.Wait(), context.Canceled)
}

func hashFile(ctx context.Context, file string, seed uint64) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	f, err := os.Open(file)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	h := hash.New64(seed)
	if _, err := io.Copy(h, f); err != nil {
		return 0, fmt.Errorf("%v: %w", file, err)
	}
	return h.Sum64(), nil
}
