// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCommand(g *globals) *cobra.Command {
	var (
		withStats bool
		fl        statsFlags
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Extract and normalize every configured job",
		Long: `Run performs extract for every job in the configuration, in order,
and normalizes each resulting table. With --stats the statistics are
appended to each table as well.

A job that fails does not stop the others; run reports all failures
at the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := g.setup(cmd)
			if err != nil {
				return err
			}
			if err := fl.apply(cmd, cfg); err != nil {
				return err
			}
			if len(cfg.Jobs) == 0 {
				return errors.New("no jobs configured")
			}

			hist, err := openHistory(cfg)
			if err != nil {
				return err
			}
			if hist != nil {
				defer hist.Close()
			}

			th := cfg.Thresholds()
			var errs []error
			for _, job := range cfg.Jobs {
				ex, err := extract(cmd.Context(), cfg, job, hist, log)
				if err == nil {
					_, err = normalize(ex.Path, cfg.Normalize.Scale, log)
				}
				if err == nil && withStats {
					_, sums, serr := summarize(ex.Path, th, log)
					if serr == nil {
						renderSummary(cmd.OutOrStdout(), ex.Path, sums, th)
					}
					err = serr
				}
				if err != nil {
					log.Error("job failed", "host", job.Host, "mode", job.Mode, "err", err)
					errs = append(errs, fmt.Errorf("%s %s: %w", job.Host, job.Mode, err))
					continue
				}
				renderReport(cmd.OutOrStdout(), ex.Path, ex.Report)
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().BoolVar(&withStats, "stats", false, "append statistics to each table")
	fl.register(cmd)
	return cmd
}
