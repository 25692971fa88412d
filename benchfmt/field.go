// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt extracts numeric results from the plain-text
// reports written by UnixBench-style system benchmarks.
//
// A report is free-form text. Each result is located by a Field: the
// first line containing the field's anchor is found, a line a fixed
// number of lines below it is selected, and the number between two
// delimiter substrings on that line is parsed. There is exactly one
// parsing strategy; reports that do not follow it yield missing
// values rather than guesses.
//
// This package is designed to be used with the higher-level packages
// benchtab and benchmath.
package benchfmt

import (
	"fmt"
	"math"
)

// A Field describes where one result lives in a report.
//
// The order of a []Field defines the column order of the tables built
// from it.
type Field struct {
	// Name is the column name of this result.
	Name string `mapstructure:"name"`

	// Offset is the number of lines between the anchor line and
	// the line holding the value. It is usually 0.
	Offset int `mapstructure:"offset"`

	// Anchor is the substring identifying the anchor line. If it
	// is empty, Name is used.
	Anchor string `mapstructure:"anchor"`

	// Left and Right delimit the value on the value line. The
	// value is the text strictly between the first occurrence of
	// Left and the first occurrence of Right.
	Left  string `mapstructure:"left"`
	Right string `mapstructure:"right"`
}

// AnchorText returns the substring used to find f's anchor line.
func (f Field) AnchorText() string {
	if f.Anchor == "" {
		return f.Name
	}
	return f.Anchor
}

// Validate reports whether f can be used for extraction.
func (f Field) Validate() error {
	switch {
	case f.Name == "":
		return fmt.Errorf("field has no name")
	case f.Offset < 0:
		return fmt.Errorf("field %q: negative offset %d", f.Name, f.Offset)
	case f.Left == "" || f.Right == "":
		return fmt.Errorf("field %q: left and right delimiters are required", f.Name)
	}
	return nil
}

// Names returns the names of fields, in order.
func Names(fields []Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// Missing returns the value recorded for a result that could not be
// extracted. Missing values are NaN so they travel through []float64
// columns; use IsMissing to test for them.
func Missing() float64 {
	return math.NaN()
}

// IsMissing reports whether v is the missing value.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// A Mode selects which part of a report results are read from.
type Mode string

const (
	// Single reads single-threaded results, which come first in a
	// report.
	Single Mode = "single"

	// Multi reads multi-threaded results. The single-threaded
	// section is skipped by dropping a platform-specific number of
	// leading lines before searching.
	Multi Mode = "multi"
)

// ParseMode parses s as a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Single, Multi:
		return m, nil
	}
	return "", fmt.Errorf("unknown thread mode %q (want %q or %q)", s, Single, Multi)
}
