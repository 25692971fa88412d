// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ubenchstat turns a directory of UnixBench reports into CSV tables
// and summarizes them.
//
// Usage:
//
//	ubenchstat [--config file] [-v] command [flags]
//
// The commands are:
//
//	extract    build the table of one host and thread mode
//	normalize  scale every column of a table to its maximum
//	stats      append summary statistics to a table
//	run        extract and normalize every configured job
//	history    print the runs recorded in the history database
//
// Settings are read from .ubenchstat.yaml in the current or home
// directory, or from the file named by --config. Any setting can be
// overridden with an UBENCHSTAT_ environment variable, for example
// UBENCHSTAT_STATS_RELATIVE=0.1.
package main

import (
	"fmt"
	"os"

	"github.com/perfci/ubenchstat/cmd/ubenchstat/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ubenchstat: %v\n", err)
		os.Exit(1)
	}
}
