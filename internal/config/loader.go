// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/perfci/ubenchstat/benchfmt"
	"github.com/spf13/viper"
)

const (
	configName      = ".ubenchstat"
	configType      = "yaml"
	envPrefix       = "UBENCHSTAT"
	envKeySeparator = "_"
)

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("output_dir", "")
	v.SetDefault("platform", "")
	truncation := make(map[string]any)
	for p, n := range DefaultTruncation() {
		truncation[p] = n
	}
	v.SetDefault("truncation", truncation)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("fields", benchfmt.UnixBenchFields)
	v.SetDefault("jobs", DefaultJobs())

	v.SetDefault("normalize.scale", DefaultNormalizeScale)

	v.SetDefault("stats.sigma", DefaultStatsSigma)
	v.SetDefault("stats.relative", DefaultStatsRelative)
	v.SetDefault("stats.legacy_last_row", false)

	v.SetDefault("db.driver", "")
	v.SetDefault("db.dsn", "")
}
