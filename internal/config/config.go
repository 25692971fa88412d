// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads ubenchstat settings from a YAML file, the
// environment and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/perfci/ubenchstat/benchfmt"
	"github.com/perfci/ubenchstat/benchmath"
)

// Config is the top-level configuration struct for ubenchstat.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Root       string           `mapstructure:"root"`
	OutputDir  string           `mapstructure:"output_dir"`
	Platform   string           `mapstructure:"platform"`
	Truncation map[string]int   `mapstructure:"truncation"`
	Workers    int              `mapstructure:"workers"`
	Fields     []benchfmt.Field `mapstructure:"fields"`
	Jobs       []Job            `mapstructure:"jobs"`
	Normalize  NormalizeConfig  `mapstructure:"normalize"`
	Stats      StatsConfig      `mapstructure:"stats"`
	DB         DBConfig         `mapstructure:"db"`
}

// A Job is one table to build: the reports of one host read in one
// mode.
type Job struct {
	Host   string        `mapstructure:"host"`
	Mode   benchfmt.Mode `mapstructure:"mode"`
	Output string        `mapstructure:"output"`
}

// NormalizeConfig holds normalizer settings.
type NormalizeConfig struct {
	Scale float64 `mapstructure:"scale"`
}

// StatsConfig holds statistics thresholds.
type StatsConfig struct {
	Sigma         float64 `mapstructure:"sigma"`
	Relative      float64 `mapstructure:"relative"`
	LegacyLastRow bool    `mapstructure:"legacy_last_row"`
}

// DBConfig selects the run history database. An empty driver disables
// it.
type DBConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// Sentinel errors for configuration validation.
var (
	ErrNoFields          = errors.New("no fields configured")
	ErrInvalidWorkers    = errors.New("workers must be non-negative")
	ErrInvalidScale      = errors.New("normalize.scale must be positive")
	ErrInvalidSigma      = errors.New("stats.sigma must be non-negative")
	ErrInvalidRelative   = errors.New("stats.relative must be non-negative")
	ErrInvalidTruncation = errors.New("truncation must be non-negative")
	ErrUnknownPlatform   = errors.New("unknown platform")
	ErrNoDSN             = errors.New("db.dsn is required when db.driver is set")
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if len(c.Fields) == 0 {
		return ErrNoFields
	}
	seen := make(map[string]bool)
	for _, f := range c.Fields {
		if err := f.Validate(); err != nil {
			return err
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate field %q", f.Name)
		}
		seen[f.Name] = true
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	if c.Normalize.Scale <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidScale, c.Normalize.Scale)
	}
	if c.Stats.Sigma < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidSigma, c.Stats.Sigma)
	}
	if c.Stats.Relative < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidRelative, c.Stats.Relative)
	}

	for i, j := range c.Jobs {
		if j.Host == "" {
			return fmt.Errorf("job %d: host is required", i)
		}
		if _, err := benchfmt.ParseMode(string(j.Mode)); err != nil {
			return fmt.Errorf("job %d: %w", i, err)
		}
	}

	for _, p := range c.Platforms() {
		if n := c.Truncation[p]; n < 0 {
			return fmt.Errorf("%w: %s: %d", ErrInvalidTruncation, p, n)
		}
	}

	if c.Platform != "" {
		if _, ok := c.truncation(c.Platform); !ok {
			return fmt.Errorf("%w %q (known: %s)", ErrUnknownPlatform, c.Platform, strings.Join(c.Platforms(), ", "))
		}
	}

	if c.DB.Driver != "" && c.DB.DSN == "" {
		return ErrNoDSN
	}
	return nil
}

func (c *Config) truncation(platform string) (int, bool) {
	for k, n := range c.Truncation {
		if strings.EqualFold(k, platform) {
			return n, true
		}
	}
	return 0, false
}

// Platforms returns the platforms with a truncation length, sorted.
func (c *Config) Platforms() []string {
	names := make([]string, 0, len(c.Truncation))
	for k := range c.Truncation {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DetectPlatform returns the configured platform. If none is set, it
// returns the first known platform whose name occurs in the root
// path, ignoring case, or "" if there is none.
func (c *Config) DetectPlatform() string {
	if c.Platform != "" {
		return c.Platform
	}
	root := strings.ToLower(filepath.ToSlash(c.Root))
	for _, p := range c.Platforms() {
		if strings.Contains(root, strings.ToLower(p)) {
			return p
		}
	}
	return ""
}

// Extractor returns the extraction settings for reports read in mode.
// Multi-threaded extraction needs the truncation length of the
// platform.
func (c *Config) Extractor(mode benchfmt.Mode) (benchfmt.Extractor, error) {
	x := benchfmt.Extractor{Mode: mode}
	if mode != benchfmt.Multi {
		return x, nil
	}
	p := c.DetectPlatform()
	if p == "" {
		return x, fmt.Errorf("%w: multi mode needs a platform (known: %s)", ErrUnknownPlatform, strings.Join(c.Platforms(), ", "))
	}
	n, ok := c.truncation(p)
	if !ok {
		return x, fmt.Errorf("%w %q", ErrUnknownPlatform, p)
	}
	x.Skip = n
	return x, nil
}

// Thresholds returns the statistics thresholds.
func (c *Config) Thresholds() benchmath.Thresholds {
	return benchmath.Thresholds{
		Sigma:         c.Stats.Sigma,
		Relative:      c.Stats.Relative,
		LegacyLastRow: c.Stats.LegacyLastRow,
	}
}

// OutputDirectory returns the directory tables are written to. It defaults
// to the parent of the report root.
func (c *Config) OutputDirectory() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return filepath.Dir(filepath.Clean(c.Root))
}

// FileName returns the base name of j's table.
func (j Job) FileName() string {
	if j.Output != "" {
		return j.Output
	}
	return fmt.Sprintf("ubench_%s_%s.csv", j.Host, j.Mode)
}

// OutputPath returns the path of j's table.
func (c *Config) OutputPath(j Job) string {
	return filepath.Join(c.OutputDirectory(), j.FileName())
}
