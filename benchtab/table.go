// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab assembles benchmark runs into tables.
//
// A Table has one row per run and one column per benchmark field,
// plus a leading "run_id" column. Columns are addressed by name, so
// callers never depend on the position of a field. Tables are
// persisted as CSV.
package benchtab

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/perfci/ubenchstat/benchfmt"
)

// RunIDColumn is the name of the column holding run identifiers.
const RunIDColumn = "run_id"

// A Table is an immutable table of benchmark runs.
type Table struct {
	fields []string
	tab    *table.Table
}

// New returns a table with the given field columns. ids gives the
// run identifier of each row and cols[i] holds the values of
// fields[i], one per row. Missing values are benchfmt.Missing().
func New(fields, ids []string, cols [][]float64) (*Table, error) {
	if len(cols) != len(fields) {
		return nil, fmt.Errorf("%d columns for %d fields", len(cols), len(fields))
	}
	seen := map[string]bool{RunIDColumn: true}
	for _, f := range fields {
		if seen[f] {
			return nil, fmt.Errorf("duplicate column %q", f)
		}
		seen[f] = true
	}

	b := new(table.Builder).Add(RunIDColumn, ids)
	for i, f := range fields {
		if len(cols[i]) != len(ids) {
			return nil, fmt.Errorf("column %q has %d rows, want %d", f, len(cols[i]), len(ids))
		}
		b.Add(f, cols[i])
	}
	return &Table{fields: append([]string(nil), fields...), tab: b.Done()}, nil
}

// FromRuns returns a table with one row per run, in order.
func FromRuns(fields []string, runs []*benchfmt.Run) (*Table, error) {
	ids := make([]string, len(runs))
	cols := make([][]float64, len(fields))
	for i := range cols {
		cols[i] = make([]float64, len(runs))
	}
	for r, run := range runs {
		if len(run.Values) != len(fields) {
			return nil, fmt.Errorf("run %s has %d values, want %d", run.ID, len(run.Values), len(fields))
		}
		ids[r] = run.ID
		for c, v := range run.Values {
			cols[c][r] = v
		}
	}
	return New(fields, ids, cols)
}

// Header returns the column names of t: RunIDColumn followed by the
// fields in order.
func (t *Table) Header() []string {
	return append([]string{RunIDColumn}, t.fields...)
}

// Fields returns the names of the field columns of t.
func (t *Table) Fields() []string {
	return append([]string(nil), t.fields...)
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return t.tab.Len()
}

// RunIDs returns the run identifier column. The caller must not
// modify it.
func (t *Table) RunIDs() []string {
	return t.tab.MustColumn(RunIDColumn).([]string)
}

// Column returns the values of the named field column. The caller
// must not modify them.
func (t *Table) Column(name string) ([]float64, bool) {
	if name == RunIDColumn {
		return nil, false
	}
	col, ok := t.tab.Column(name).([]float64)
	return col, ok
}

// Value returns the value of field name in row i.
func (t *Table) Value(i int, name string) float64 {
	col, ok := t.Column(name)
	if !ok {
		panic(fmt.Sprintf("unknown column %q", name))
	}
	return col[i]
}

// Fprint prints t to w as aligned text. Missing values are printed
// as "-".
func (t *Table) Fprint(w io.Writer) error {
	b := table.NewBuilder(t.tab)
	for _, f := range t.fields {
		col, _ := t.Column(f)
		strs := make([]string, len(col))
		for i, v := range col {
			strs[i] = formatValue(v)
			if strs[i] == "" {
				strs[i] = "-"
			}
		}
		b.Add(f, strs)
	}
	return table.Fprint(w, b.Done())
}

// Present returns the non-missing values of col.
func Present(col []float64) []float64 {
	out := make([]float64, 0, len(col))
	for _, v := range col {
		if !benchfmt.IsMissing(v) {
			out = append(out, v)
		}
	}
	return out
}
