// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/perfci/ubenchstat/benchfmt"
	"github.com/perfci/ubenchstat/internal/config"
)

type extractFlags struct {
	host     string
	mode     string
	output   string
	root     string
	platform string
	noNorm   bool
}

func newExtractCommand(g *globals) *cobra.Command {
	var fl extractFlags
	cmd := &cobra.Command{
		Use:   "extract --host host [--mode single|multi]",
		Short: "Build the table of one host and thread mode",
		Long: `Extract reads every report of a host under the root directory and
writes one CSV row per report, followed by the normalized table.

Reports whose name has no run identifier, or that cannot be read, are
skipped. Results that cannot be found are left empty. Both are listed
after the tables are written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := g.setup(cmd)
			if err != nil {
				return err
			}
			if fl.host == "" {
				return errors.New("--host is required")
			}
			mode, err := benchfmt.ParseMode(fl.mode)
			if err != nil {
				return err
			}
			if fl.root != "" {
				cfg.Root = fl.root
			}
			if fl.platform != "" {
				cfg.Platform = fl.platform
			}

			hist, err := openHistory(cfg)
			if err != nil {
				return err
			}
			if hist != nil {
				defer hist.Close()
			}

			job := config.Job{Host: fl.host, Mode: mode, Output: fl.output}
			ex, err := extract(cmd.Context(), cfg, job, hist, log)
			if err != nil {
				return err
			}
			if !fl.noNorm {
				if _, err := normalize(ex.Path, cfg.Normalize.Scale, log); err != nil {
					return err
				}
			}
			renderReport(cmd.OutOrStdout(), ex.Path, ex.Report)
			return nil
		},
	}
	cmd.Flags().StringVar(&fl.host, "host", "", "host name the reports are named after")
	cmd.Flags().StringVar(&fl.mode, "mode", string(benchfmt.Single), "thread mode: single or multi")
	cmd.Flags().StringVarP(&fl.output, "output", "o", "", "output file name (default ubench_<host>_<mode>.csv)")
	cmd.Flags().StringVar(&fl.root, "root", "", "report directory (overrides root)")
	cmd.Flags().StringVar(&fl.platform, "platform", "", "platform for multi mode truncation (overrides platform)")
	cmd.Flags().BoolVar(&fl.noNorm, "no-normalize", false, "do not write the normalized table")
	return cmd
}
