// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/perfci/ubenchstat/benchfmt"
)

func formatValue(v float64) string {
	if benchfmt.IsMissing(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes t to w as comma-separated values: the header, then
// one record per row. Missing values are written as empty cells.
// Each of extra is written after the rows as an additional record;
// an empty record produces a blank line.
func WriteCSV(w io.Writer, t *Table, extra ...[]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header()); err != nil {
		return err
	}
	ids := t.RunIDs()
	cols := make([][]float64, len(t.fields))
	for i, f := range t.fields {
		cols[i], _ = t.Column(f)
	}
	rec := make([]string, 1+len(cols))
	for r, id := range ids {
		rec[0] = id
		for c, col := range cols {
			rec[1+c] = formatValue(col[r])
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	for _, rec := range extra {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a table written by WriteCSV.
//
// The data rows end at the end of input or at the first record whose
// run identifier does not begin with a digit. Run identifiers always
// do, so any summary records appended after the rows are ignored.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty table")
	} else if err != nil {
		return nil, err
	}
	if header[0] != RunIDColumn {
		return nil, fmt.Errorf("first column is %q, want %q", header[0], RunIDColumn)
	}
	fields := header[1:]

	var ids []string
	cols := make([][]float64, len(fields))
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if !isRunID(rec[0]) {
			break
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != len(header) {
			return nil, fmt.Errorf("line %d: %d cells, want %d", line, len(rec), len(header))
		}
		ids = append(ids, rec[0])
		for i, cell := range rec[1:] {
			v := benchfmt.Missing()
			if cell != "" {
				v, err = strconv.ParseFloat(cell, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: column %q: %w", line, fields[i], err)
				}
			}
			cols[i] = append(cols[i], v)
		}
	}
	for i := range cols {
		if cols[i] == nil {
			cols[i] = []float64{}
		}
	}
	if ids == nil {
		ids = []string{}
	}
	return New(fields, ids, cols)
}

func isRunID(s string) bool {
	return s != "" && '0' <= s[0] && s[0] <= '9'
}
