// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/spf13/cobra"

	"github.com/perfci/ubenchstat/benchmath"
	"github.com/perfci/ubenchstat/internal/config"
)

type statsFlags struct {
	sigma    float64
	relative float64
	legacy   bool
}

// apply overrides the thresholds of cfg with the flags set on cmd.
func (fl *statsFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("sigma") {
		cfg.Stats.Sigma = fl.sigma
	}
	if cmd.Flags().Changed("relative") {
		cfg.Stats.Relative = fl.relative
	}
	if cmd.Flags().Changed("legacy-last-row") {
		cfg.Stats.LegacyLastRow = fl.legacy
	}
	return cfg.Validate()
}

func (fl *statsFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&fl.sigma, "sigma", benchmath.DefaultThresholds.Sigma, "deviation in standard deviations counted by max_deviation")
	cmd.Flags().Float64Var(&fl.relative, "relative", benchmath.DefaultThresholds.Relative, "relative distance from the mean that flags the last run")
	cmd.Flags().BoolVar(&fl.legacy, "legacy-last-row", false, "compute the last run deviation as last - mean/std")
}

func newStatsCommand(g *globals) *cobra.Command {
	var fl statsFlags
	cmd := &cobra.Command{
		Use:   "stats table.csv...",
		Short: "Append summary statistics to a table",
		Long: `Stats computes the mean, standard deviation, extremes and
deviation factors of every column of a table, and appends them below
the rows. The table as it was is first saved to raw_<name>. Running
stats again on the same table replaces the appended records.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := g.setup(cmd)
			if err != nil {
				return err
			}
			if err := fl.apply(cmd, cfg); err != nil {
				return err
			}
			th := cfg.Thresholds()
			for _, path := range args {
				_, sums, err := summarize(path, th, log)
				if err != nil {
					return err
				}
				renderSummary(cmd.OutOrStdout(), path, sums, th)
			}
			return nil
		},
	}
	fl.register(cmd)
	return cmd
}
