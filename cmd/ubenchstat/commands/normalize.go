// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNormalizeCommand(g *globals) *cobra.Command {
	var scale float64
	cmd := &cobra.Command{
		Use:   "normalize table.csv...",
		Short: "Scale every column of a table to its maximum",
		Long: `Normalize divides every value by the maximum of its column and
multiplies it by the scale. The result is written to normalized_<name>
next to each table; the table itself is not changed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := g.setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("scale") {
				cfg.Normalize.Scale = scale
			}
			if cfg.Normalize.Scale <= 0 {
				return fmt.Errorf("scale must be positive, got %g", cfg.Normalize.Scale)
			}
			for _, path := range args {
				out, err := normalize(path, cfg.Normalize.Scale, log)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&scale, "scale", 0, "value of each column's maximum (overrides normalize.scale)")
	return cmd
}
