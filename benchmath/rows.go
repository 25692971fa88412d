// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"math"
	"strconv"
)

// Labels of the summary records produced by Rows. They are written in
// the run_id column.
const (
	LabelMaxDeviation           = "max_deviation"
	LabelLastRowDeviation       = "last_row_deviation"
	LabelLastRowDeviationLegacy = "last_row_deviation_legacy"
	LabelAverage                = "average"
	LabelStdDev                 = "std"
	LabelMax                    = "max"
	LabelMin                    = "min"
)

// empty is the cell written where a column has no summary.
const empty = "-"

// Rows renders sums as records to append below a table with the given
// header. Each value is placed under the column named by its
// Summary.Field. The records are, in order: a blank separator, the
// maximum deviations, the last-run deviations, the averages, the
// standard deviations, another blank, the maxima, and the minima.
//
// If th.LegacyLastRow is set, the last-run record is labelled
// LabelLastRowDeviationLegacy so readers can tell the two formulas
// apart.
func Rows(header []string, sums []Summary, th *Thresholds) [][]string {
	if th == nil {
		th = &DefaultThresholds
	}
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[h] = i
	}
	row := func(label string, cell func(s *Summary) string) []string {
		rec := make([]string, len(header))
		for i := range rec {
			rec[i] = empty
		}
		rec[0] = label
		for i := range sums {
			if p, ok := pos[sums[i].Field]; ok && p > 0 {
				rec[p] = cell(&sums[i])
			}
		}
		return rec
	}

	lastLabel := LabelLastRowDeviation
	if th.LegacyLastRow {
		lastLabel = LabelLastRowDeviationLegacy
	}
	return [][]string{
		{},
		row(LabelMaxDeviation, func(s *Summary) string { return s.MaxDeviation.String() }),
		row(lastLabel, func(s *Summary) string { return s.LastRowDeviation.String() }),
		row(LabelAverage, func(s *Summary) string { return formatStat(s.Mean) }),
		row(LabelStdDev, func(s *Summary) string { return formatStat(s.StdDev) }),
		{},
		row(LabelMax, func(s *Summary) string { return formatStat(s.Max) }),
		row(LabelMin, func(s *Summary) string { return formatStat(s.Min) }),
	}
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return empty
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
