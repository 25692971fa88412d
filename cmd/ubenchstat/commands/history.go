// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perfci/ubenchstat/benchfmt"
	"github.com/perfci/ubenchstat/benchmath"
)

func newHistoryCommand(g *globals) *cobra.Command {
	var (
		host      string
		mode      string
		fields    []string
		withStats bool
	)
	cmd := &cobra.Command{
		Use:   "history --host host [--mode single|multi]",
		Short: "Print the runs recorded in the history database",
		Long: `History prints every run of a host recorded by extract or run, ordered
by run identifier. It requires db.driver and db.dsn to be configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := g.setup(cmd)
			if err != nil {
				return err
			}
			if host == "" {
				return errors.New("--host is required")
			}
			m, err := benchfmt.ParseMode(mode)
			if err != nil {
				return err
			}
			hist, err := openHistory(cfg)
			if err != nil {
				return err
			}
			if hist == nil {
				return errors.New("no history database configured (set db.driver and db.dsn)")
			}
			defer hist.Close()

			t, err := hist.LoadTable(cmd.Context(), host, m, fields)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if t.Len() == 0 {
				fmt.Fprintf(w, "no runs recorded for %s %s\n", host, m)
				return nil
			}
			if err := t.Fprint(w); err != nil {
				return err
			}
			if withStats {
				th := cfg.Thresholds()
				renderSummary(w, fmt.Sprintf("%s %s", host, m), benchmath.Summarize(t, &th), th)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "host name")
	cmd.Flags().StringVar(&mode, "mode", string(benchfmt.Single), "thread mode: single or multi")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "columns to print (default all recorded)")
	cmd.Flags().BoolVar(&withStats, "stats", false, "summarize the recorded runs")
	return cmd
}
