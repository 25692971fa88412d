// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Extraction failures. These are never fatal: the affected result is
// recorded as missing and the rest of the run is still read.
var (
	ErrAnchorNotFound    = errors.New("anchor not found")
	ErrDelimiterNotFound = errors.New("delimiter not found")
	ErrNotANumber        = errors.New("not a number")
)

// An ExtractError records why a single field could not be read from a
// report.
type ExtractError struct {
	Field    string
	FileName string
	Line     int // 1-based line in the original file, or 0 if unknown
	Err      error
	Msg      string
}

func (e *ExtractError) Error() string {
	var b strings.Builder
	if e.FileName != "" {
		b.WriteString(e.FileName)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%s: %v", e.Field, e.Err)
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// An Extractor reads Field values from the lines of one report.
type Extractor struct {
	// Mode selects the single- or multi-threaded section.
	Mode Mode

	// Skip is the number of leading lines dropped in Multi mode.
	// It depends on the platform that produced the report, since
	// the length of the single-threaded section does. Negative
	// values drop nothing.
	Skip int

	// FileName is used in errors; it is purely diagnostic.
	FileName string
}

// Extract returns the value of f in lines. On failure it returns
// Missing() and an *ExtractError wrapping ErrAnchorNotFound,
// ErrDelimiterNotFound, or ErrNotANumber.
func (x Extractor) Extract(lines []string, f Field) (float64, error) {
	base := 0
	if x.Mode == Multi {
		base = min(max(x.Skip, 0), len(lines))
	}
	lines = lines[base:]

	anchor := f.AnchorText()
	k := -1
	for i, line := range lines {
		if strings.Contains(line, anchor) {
			k = i
			break
		}
	}
	if k < 0 {
		return Missing(), x.errorf(f, 0, ErrAnchorNotFound, "no line contains %q", anchor)
	}

	at := k + f.Offset
	if at >= len(lines) {
		return Missing(), x.errorf(f, base+k+1, ErrDelimiterNotFound, "value line %d is past the end of the file", base+at+1)
	}
	line := lines[at]
	lineNo := base + at + 1

	i := strings.Index(line, f.Left)
	if i < 0 {
		return Missing(), x.errorf(f, lineNo, ErrDelimiterNotFound, "no %q", f.Left)
	}
	j := strings.Index(line, f.Right)
	if j < 0 {
		return Missing(), x.errorf(f, lineNo, ErrDelimiterNotFound, "no %q", f.Right)
	}
	i += len(f.Left)
	if j < i {
		return Missing(), x.errorf(f, lineNo, ErrDelimiterNotFound, "%q precedes end of %q", f.Right, f.Left)
	}

	text := strings.TrimSpace(line[i:j])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || IsMissing(v) {
		return Missing(), x.errorf(f, lineNo, ErrNotANumber, "%q", text)
	}
	return v, nil
}

func (x Extractor) errorf(f Field, line int, err error, format string, args ...interface{}) *ExtractError {
	return &ExtractError{
		Field:    f.Name,
		FileName: x.FileName,
		Line:     line,
		Err:      err,
		Msg:      fmt.Sprintf(format, args...),
	}
}
