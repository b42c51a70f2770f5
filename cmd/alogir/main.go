// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command alogir sorts, selects and hashes data using the heap and hash
// packages in this module.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const commands = `name: alogir
summary: sort, select and hash data using heap algorithms over containers
commands:
  - name: sort
    summary: sort the lines read from the named files, or stdin
    arguments:
      - "..."
  - name: top
    summary: print the n largest, or smallest, lines read from the named files, or stdin
    arguments:
      - "..."
  - name: hash
    summary: print the xxHash64 digest of each of the named files
    arguments:
      - <file>
      - "..."
`

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

func cli() *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(commands)
	cmdSet.Set("sort").MustRunnerAndFlags(sortCmd,
		subcmd.MustRegisteredFlagSet(&sortFlags{}))
	cmdSet.Set("top").MustRunnerAndFlags(topCmd,
		subcmd.MustRegisteredFlagSet(&topFlags{}))
	cmdSet.Set("hash").MustRunnerAndFlags(hashCmd,
		subcmd.MustRegisteredFlagSet(&hashFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli())
}
