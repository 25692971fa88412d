// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/perfci/ubenchstat/benchmath"
	"github.com/perfci/ubenchstat/benchtab"
)

var (
	flagged   = color.New(color.FgRed, color.Bold)
	undefined = color.New(color.FgYellow)
)

// statDigits is the number of decimals shown for summary statistics.
const statDigits = 2

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return humanize.CommafWithDigits(v, statDigits)
}

func formatFactor(f benchmath.Factor) string {
	switch f.State {
	case benchmath.FactorDefined:
		return flagged.Sprintf("%.2fσ", f.Value)
	case benchmath.FactorUndefined:
		return undefined.Sprint(f.String())
	}
	return f.String()
}

// renderSummary prints one line per field of sums.
func renderSummary(w io.Writer, title string, sums []benchmath.Summary, th benchmath.Thresholds) {
	last := "LAST RUN"
	if th.LegacyLastRow {
		last = "LAST RUN (LEGACY)"
	}
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(title)
	tbl.AppendHeader(table.Row{"Field", "N", "Mean", "Std", "Min", "Max", "Max dev", last})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	nflagged := 0
	for _, s := range sums {
		if s.MaxDeviation.OK() || s.LastRowDeviation.OK() {
			nflagged++
		}
		tbl.AppendRow(table.Row{
			s.Field,
			s.N,
			formatStat(s.Mean),
			formatStat(s.StdDev),
			formatStat(s.Min),
			formatStat(s.Max),
			formatFactor(s.MaxDeviation),
			formatFactor(s.LastRowDeviation),
		})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d of %d fields flagged", nflagged, len(sums))})
	fmt.Fprintln(w, tbl.Render())
}

// renderReport prints the defects found while building a table.
func renderReport(w io.Writer, path string, rep *benchtab.Report) {
	if rep.OK() {
		fmt.Fprintf(w, "%s: %s read, no defects\n", path, humanize.Comma(int64(rep.Files)))
		return
	}
	fmt.Fprintf(w, "%s: %s\n", path, rep)
}
