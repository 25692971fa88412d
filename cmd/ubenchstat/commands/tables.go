// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/perfci/ubenchstat/benchfmt"
	"github.com/perfci/ubenchstat/benchmath"
	"github.com/perfci/ubenchstat/benchtab"
	"github.com/perfci/ubenchstat/internal/config"
	"github.com/perfci/ubenchstat/storage/db"
)

// Prefixes of the files derived from a table.
const (
	rawPrefix        = "raw_"
	normalizedPrefix = "normalized_"
)

// derivedPath returns the path of the file derived from path by
// prefixing its base name.
func derivedPath(path, prefix string) string {
	dir, name := filepath.Split(path)
	return filepath.Join(dir, prefix+name)
}

func readTable(path string) (*benchtab.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := benchtab.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func writeTable(path string, t *benchtab.Table, extra ...[]string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := benchtab.WriteCSV(f, t, extra...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// An extraction is the outcome of one job.
type extraction struct {
	Path   string
	Table  *benchtab.Table
	Report *benchtab.Report
}

// extract builds the table of job from the reports under cfg.Root and
// writes it to the job's output path. If hist is non-nil the table is
// also recorded there.
func extract(ctx context.Context, cfg *config.Config, job config.Job, hist *db.DB, log *slog.Logger) (*extraction, error) {
	log = log.With("host", job.Host, "mode", job.Mode)
	files, err := benchfmt.Discover(cfg.Root, job.Host)
	if err != nil {
		return nil, err
	}
	log.Debug("discovered reports", "root", cfg.Root, "count", len(files))

	x, err := cfg.Extractor(job.Mode)
	if err != nil {
		return nil, err
	}
	b := &benchtab.Builder{
		Fields:    cfg.Fields,
		Extractor: x,
		Workers:   cfg.Workers,
		Logger:    log,
	}
	t, rep, err := b.Build(files)
	if err != nil {
		return nil, err
	}

	path := cfg.OutputPath(job)
	if err := writeTable(path, t); err != nil {
		return nil, err
	}
	log.Info("wrote table", "path", path, "rows", t.Len())

	if hist != nil {
		if err := hist.InsertTable(ctx, job.Host, job.Mode, t, rowFiles(files, rep)); err != nil {
			return nil, fmt.Errorf("record history: %w", err)
		}
	}
	return &extraction{Path: path, Table: t, Report: rep}, nil
}

// rowFiles returns the reports that contributed a row, in row order.
func rowFiles(files []string, rep *benchtab.Report) []string {
	skipped := make(map[string]bool, len(rep.Skipped))
	for _, s := range rep.Skipped {
		skipped[s.File] = true
	}
	rows := make([]string, 0, len(files))
	for _, f := range files {
		if !skipped[f] {
			rows = append(rows, f)
		}
	}
	return rows
}

// normalize writes the normalized form of the table at path next to
// it and returns the new path. Degenerate columns are logged and left
// empty.
func normalize(path string, scale float64, log *slog.Logger) (string, error) {
	t, err := readTable(path)
	if err != nil {
		return "", err
	}
	n, err := benchtab.Normalize(t, scale)
	if err != nil {
		if !errors.Is(err, benchtab.ErrDegenerateColumn) {
			return "", err
		}
		log.Warn("cannot normalize", "table", path, "err", err)
	}
	out := derivedPath(path, normalizedPrefix)
	if err := writeTable(out, n); err != nil {
		return "", err
	}
	log.Info("wrote normalized table", "path", out)
	return out, nil
}

// summarize backs up the table at path, then rewrites it with summary
// records appended, and returns the summaries.
func summarize(path string, th benchmath.Thresholds, log *slog.Logger) (*benchtab.Table, []benchmath.Summary, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, nil, err
	}
	raw := derivedPath(path, rawPrefix)
	if err := writeTable(raw, t); err != nil {
		return nil, nil, err
	}
	log.Debug("backed up table", "path", raw)

	sums := benchmath.Summarize(t, &th)
	for _, s := range sums {
		for _, w := range s.Warnings {
			log.Warn("summary", "table", path, "field", s.Field, "warning", w)
		}
	}
	if err := writeTable(path, t, benchmath.Rows(t.Header(), sums, &th)...); err != nil {
		return nil, nil, err
	}
	log.Info("wrote statistics", "path", path)
	return t, sums, nil
}

// openHistory opens the configured history database, or returns nil
// if none is configured.
func openHistory(cfg *config.Config) (*db.DB, error) {
	if cfg.DB.Driver == "" {
		return nil, nil
	}
	d, err := db.OpenSQL(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	return d, nil
}
