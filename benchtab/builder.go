// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/perfci/ubenchstat/benchfmt"
	"github.com/sourcegraph/conc/iter"
)

// A Builder reads benchmark reports into a Table.
type Builder struct {
	// Fields are the results to extract from each report, in
	// column order.
	Fields []benchfmt.Field

	// Extractor is the extraction configuration shared by all
	// reports.
	Extractor benchfmt.Extractor

	// Workers is the number of reports parsed concurrently. Values
	// below 2 parse reports one at a time. Rows are in input order
	// either way.
	Workers int

	// Logger receives a record for every skipped report and every
	// missing value. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// A Report describes the defects found while building a table.
type Report struct {
	// Files is the number of reports read.
	Files int

	// Skipped lists reports that contributed no row.
	Skipped []Skipped

	// Missing lists every value that could not be extracted from
	// a report that did contribute a row.
	Missing []*benchfmt.ExtractError
}

// A Skipped is a report that could not be turned into a row.
type Skipped struct {
	File string
	Err  error
}

// OK reports whether every report was read completely.
func (r *Report) OK() bool {
	return len(r.Skipped) == 0 && len(r.Missing) == 0
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d reports, %d skipped, %d missing values", r.Files, len(r.Skipped), len(r.Missing))
	for _, s := range r.Skipped {
		fmt.Fprintf(&b, "\nskipped %s: %v", s.File, s.Err)
	}
	for _, m := range r.Missing {
		fmt.Fprintf(&b, "\nmissing %v", m)
	}
	return b.String()
}

type parsed struct {
	run *benchfmt.Run
	err error
}

// Build parses each of files and returns a table with one row per
// successfully parsed report, in the order of files.
//
// A report whose run identifier cannot be determined, or which
// cannot be read, is skipped; the rest of the batch is still built.
// Values that cannot be extracted are left missing. Build fails only
// if the field configuration itself is invalid.
func (b *Builder) Build(files []string) (*Table, *Report, error) {
	log := b.Logger
	if log == nil {
		log = slog.Default()
	}
	for _, f := range b.Fields {
		if err := f.Validate(); err != nil {
			return nil, nil, err
		}
	}

	parse := func(path *string) parsed {
		run, err := benchfmt.ParseRun(*path, b.Fields, b.Extractor)
		return parsed{run, err}
	}
	var results []parsed
	if b.Workers > 1 {
		results = iter.Mapper[string, parsed]{MaxGoroutines: b.Workers}.Map(files, parse)
	} else {
		results = make([]parsed, len(files))
		for i := range files {
			results[i] = parse(&files[i])
		}
	}

	rep := &Report{Files: len(files)}
	var runs []*benchfmt.Run
	for i, res := range results {
		if res.err != nil {
			log.Error("skipping report", "file", files[i], "err", res.err)
			rep.Skipped = append(rep.Skipped, Skipped{files[i], res.err})
			continue
		}
		for _, xerr := range res.run.Errors {
			log.Warn("missing value", "run", res.run.ID, "field", xerr.Field, "err", xerr)
		}
		rep.Missing = append(rep.Missing, res.run.Errors...)
		runs = append(runs, res.run)
	}
	log.Debug("built table", "reports", len(files), "rows", len(runs))

	t, err := FromRuns(benchfmt.Names(b.Fields), runs)
	if err != nil {
		return nil, nil, err
	}
	return t, rep, nil
}
