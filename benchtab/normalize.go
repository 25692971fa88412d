// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"errors"
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/perfci/ubenchstat/benchfmt"
)

// ErrDegenerateColumn indicates a column that cannot be normalized.
var ErrDegenerateColumn = errors.New("degenerate column")

// A DegenerateColumnError is returned by Normalize for a column whose
// maximum is not positive, that holds a negative value, or that has no
// values at all. Normalized values must lie in [0, scale].
type DegenerateColumnError struct {
	Column   string
	Min, Max float64 // NaN if the column has no values
}

func (e *DegenerateColumnError) Error() string {
	switch {
	case benchfmt.IsMissing(e.Max):
		return fmt.Sprintf("column %q: %v: no values", e.Column, ErrDegenerateColumn)
	case e.Max <= 0:
		return fmt.Sprintf("column %q: %v: max is %v", e.Column, ErrDegenerateColumn, e.Max)
	}
	return fmt.Sprintf("column %q: %v: min is %v", e.Column, ErrDegenerateColumn, e.Min)
}

func (e *DegenerateColumnError) Is(target error) bool {
	return target == ErrDegenerateColumn
}

// Normalize returns a copy of t in which every value v of a field
// column is replaced by v / max * scale, where max is the largest
// value in that column. The largest value of each column therefore
// becomes scale. The run identifiers and t itself are unchanged.
//
// A degenerate column (see DegenerateColumnError) is left entirely
// missing in the result, and Normalize returns the result together
// with an error joining a *DegenerateColumnError for each such
// column.
func Normalize(t *Table, scale float64) (*Table, error) {
	b := table.NewBuilder(t.tab)
	var errs []error
	for _, f := range t.fields {
		col, _ := t.Column(f)
		out := make([]float64, len(col))

		lo, hi := benchfmt.Missing(), benchfmt.Missing()
		if present := Present(col); len(present) > 0 {
			lo, hi = stats.Bounds(present)
		}
		if benchfmt.IsMissing(hi) || hi <= 0 || lo < 0 {
			errs = append(errs, &DegenerateColumnError{Column: f, Min: lo, Max: hi})
			for i := range out {
				out[i] = benchfmt.Missing()
			}
		} else {
			for i, v := range col {
				// Missing values stay NaN.
				out[i] = v / hi * scale
			}
		}
		b.Add(f, out)
	}
	return &Table{fields: t.fields, tab: b.Done()}, errors.Join(errs...)
}
