// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath computes summary statistics over the columns of a
// table of benchmark runs.
//
// For every column it reports the mean, the sample standard
// deviation, the bounds, and two deviation factors that flag outliers:
// the largest deviation of any run from the mean, and the deviation of
// the most recent run. Missing values are ignored throughout.
//
// All summaries carry a list of warnings, captured as an []error
// value. These aren't errors that prevent analysis, but should be
// presented to the user along with the results.
package benchmath

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/stats"
	"github.com/perfci/ubenchstat/benchfmt"
	"github.com/perfci/ubenchstat/benchtab"
)

// A Thresholds configures the outlier tests.
//
// This should be initialized to DefaultThresholds because it may be
// extended with other fields in the future.
type Thresholds struct {
	// Sigma is the number of standard deviations a value must be
	// from the mean to count toward MaxDeviation.
	Sigma float64

	// Relative is the distance from the mean, as a fraction of
	// the mean, beyond which the last run is flagged.
	Relative float64

	// LegacyLastRow computes LastRowDeviation as
	// last - mean/std instead of (last - mean)/std. This
	// reproduces the numbers of older reports, which used that
	// (mis-parenthesized) formula.
	LegacyLastRow bool
}

// DefaultThresholds contains a reasonable set of defaults for Thresholds.
var DefaultThresholds = Thresholds{
	Sigma:    1,
	Relative: 0.2,
}

// A FactorState says whether a Factor holds a value.
type FactorState int

const (
	// FactorNone means no value qualified for the factor.
	FactorNone FactorState = iota
	// FactorDefined means Factor.Value is valid.
	FactorDefined
	// FactorUndefined means the factor could not be computed
	// because the standard deviation is zero or unknown.
	FactorUndefined
)

// A Factor is a deviation measured in standard deviations.
type Factor struct {
	State FactorState
	Value float64
}

func defined(v float64) Factor {
	return Factor{FactorDefined, v}
}

// OK reports whether f holds a value.
func (f Factor) OK() bool {
	return f.State == FactorDefined
}

// String returns f's value, "-" if no value qualified, or "undefined".
func (f Factor) String() string {
	switch f.State {
	case FactorDefined:
		return strconv.FormatFloat(f.Value, 'f', -1, 64)
	case FactorUndefined:
		return "undefined"
	}
	return "-"
}

// A Summary summarizes one column of a table.
type Summary struct {
	// Field is the column name.
	Field string

	// N is the number of values in the column, excluding missing
	// values.
	N int

	// Mean, StdDev, Min, and Max summarize the values. StdDev is
	// the sample standard deviation (n-1 denominator), or 0 if N
	// is 1. All are NaN if N is 0.
	Mean, StdDev, Min, Max float64

	// MaxDeviation is the largest |v - Mean| / StdDev over values
	// further than Sigma standard deviations from the mean.
	MaxDeviation Factor

	// LastRowDeviation is the deviation of the last run, set only
	// if that run differs from the mean by more than Relative of
	// the mean.
	LastRowDeviation Factor

	// Warnings is a list of warnings about this summary.
	Warnings []error
}

// Summarize summarizes every field column of t, in column order.
// If th is nil, DefaultThresholds is used.
func Summarize(t *benchtab.Table, th *Thresholds) []Summary {
	var sums []Summary
	for _, f := range t.Fields() {
		col, _ := t.Column(f)
		sums = append(sums, SummarizeColumn(f, col, th))
	}
	return sums
}

// SummarizeColumn summarizes col, whose last element is the most
// recent run. Missing values in col are skipped.
func SummarizeColumn(name string, col []float64, th *Thresholds) Summary {
	if th == nil {
		th = &DefaultThresholds
	}
	s := Summary{Field: name}
	xs := benchtab.Present(col)
	s.N = len(xs)
	if missing := len(col) - len(xs); missing > 0 {
		s.Warnings = append(s.Warnings, fmt.Errorf("%d missing values ignored", missing))
	}
	if s.N == 0 {
		nan := math.NaN()
		s.Mean, s.StdDev, s.Min, s.Max = nan, nan, nan, nan
		s.MaxDeviation = Factor{State: FactorUndefined}
		s.LastRowDeviation = Factor{State: FactorUndefined}
		s.Warnings = append(s.Warnings, fmt.Errorf("no values"))
		return s
	}

	s.Mean = stats.Mean(xs)
	s.Min, s.Max = stats.Bounds(xs)
	if s.N < 2 {
		s.Warnings = append(s.Warnings, fmt.Errorf("need at least 2 values for a standard deviation"))
	} else {
		s.StdDev = stats.StdDev(xs)
	}

	s.MaxDeviation = maxDeviation(xs, s.Mean, s.StdDev, th.Sigma)
	s.LastRowDeviation = lastRowDeviation(col[len(col)-1], s.Mean, s.StdDev, th)
	return s
}

func usableStdDev(std float64) bool {
	return std > 0 && !math.IsInf(std, 0)
}

func maxDeviation(xs []float64, mean, std, sigma float64) Factor {
	if !usableStdDev(std) {
		return Factor{State: FactorUndefined}
	}
	var f Factor
	for _, x := range xs {
		d := math.Abs(x - mean)
		if d <= sigma*std {
			continue
		}
		if k := d / std; !f.OK() || k > f.Value {
			f = defined(k)
		}
	}
	return f
}

func lastRowDeviation(last, mean, std float64, th *Thresholds) Factor {
	if benchfmt.IsMissing(last) || math.Abs(last-mean) <= th.Relative*math.Abs(mean) {
		return Factor{}
	}
	if !usableStdDev(std) {
		return Factor{State: FactorUndefined}
	}
	if th.LegacyLastRow {
		return defined(last - mean/std)
	}
	return defined((last - mean) / std)
}
