// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands implements the ubenchstat subcommands.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/perfci/ubenchstat/internal/config"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	configPath string
	verbose    bool
}

// NewRootCommand returns the ubenchstat command tree.
func NewRootCommand() *cobra.Command {
	g := new(globals)
	root := &cobra.Command{
		Use:   "ubenchstat",
		Short: "Collect and summarize UnixBench results",
		Long: `Ubenchstat turns a directory of UnixBench reports into CSV tables,
normalizes them, and flags runs that deviate from the rest.

Commands:
  extract    build the table of one host and thread mode
  normalize  scale every column of a table to its maximum
  stats      append summary statistics to a table
  run        extract and normalize every configured job
  history    print the runs recorded in the history database`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "configuration file (default .ubenchstat.yaml)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newExtractCommand(g))
	root.AddCommand(newNormalizeCommand(g))
	root.AddCommand(newStatsCommand(g))
	root.AddCommand(newRunCommand(g))
	root.AddCommand(newHistoryCommand(g))
	return root
}

// setup loads the configuration and builds the logger for cmd.
func (g *globals) setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	log := newLogger(cmd.ErrOrStderr(), g.verbose)
	cfg, err := config.LoadConfig(g.configPath)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("loaded configuration", "root", cfg.Root, "fields", len(cfg.Fields), "jobs", len(cfg.Jobs))
	return cfg, log, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
