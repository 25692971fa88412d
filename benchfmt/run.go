// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoDigitInFilename is returned for report files whose names carry
// no run identifier.
var ErrNoDigitInFilename = errors.New("no digit in file name")

// maxLineSize bounds the length of a single report line.
const maxLineSize = 1 << 20

// A Run is the set of results read from one report file.
type Run struct {
	// ID identifies the run. It is taken from the report's file
	// name; see RunID.
	ID string

	// File is the path the run was read from.
	File string

	// Values holds one value per Field, in Field order. Results
	// that could not be extracted are Missing().
	Values []float64

	// Errors holds an *ExtractError for every missing value.
	Errors []*ExtractError
}

// Missing returns the number of values in r that could not be read.
func (r *Run) Missing() int {
	return len(r.Errors)
}

// RunID returns the run identifier of the report at path: the part of
// its base name from the first digit on. Report files are named like
// "ghaf-host-2024-04-15-01", so this is usually a date and build
// number that sorts in chronological order.
func RunID(path string) (string, error) {
	name := filepath.Base(path)
	i := strings.IndexAny(name, "0123456789")
	if i < 0 {
		return "", fmt.Errorf("%s: %w", path, ErrNoDigitInFilename)
	}
	return name[i:], nil
}

// ReadLines reads the whole file at path and returns its lines
// without line terminators.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	s.Buffer(nil, maxLineSize)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// ParseRun reads the report at path and extracts each of fields from
// it using x. The returned error is non-nil only if the run as a whole
// is unusable: the file name has no run identifier or the file cannot
// be read. Per-field failures are recorded in Run.Errors instead.
func ParseRun(path string, fields []Field, x Extractor) (*Run, error) {
	id, err := RunID(path)
	if err != nil {
		return nil, err
	}
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	x.FileName = path
	run := &Run{ID: id, File: path, Values: make([]float64, 0, len(fields))}
	for _, f := range fields {
		v, err := x.Extract(lines, f)
		if err != nil {
			var xerr *ExtractError
			if !errors.As(err, &xerr) {
				xerr = &ExtractError{Field: f.Name, FileName: path, Err: err}
			}
			run.Errors = append(run.Errors, xerr)
		}
		run.Values = append(run.Values, v)
	}
	return run, nil
}
