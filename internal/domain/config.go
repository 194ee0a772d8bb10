// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package domain

import (
	"time"
)

// Config represents the application configuration
type Config struct {
	Version       string
	LogLevel      string `toml:"logLevel" mapstructure:"logLevel"`
	LogPath       string `toml:"logPath" mapstructure:"logPath"`
	LogMaxSize    int    `toml:"logMaxSize" mapstructure:"logMaxSize"`
	LogMaxBackups int    `toml:"logMaxBackups" mapstructure:"logMaxBackups"`

	// SortMethod is one of "Quality First", "Size First" or "Date First".
	SortMethod string `toml:"sortMethod" mapstructure:"sortMethod"`
	// PreferredLanguage enables language grouping. Empty or "No Preference" disables it.
	PreferredLanguage string `toml:"preferredLanguage" mapstructure:"preferredLanguage"`
	QualityFilter     string `toml:"qualityFilter" mapstructure:"qualityFilter"`

	// Retention filtering only runs when RetentionEnabled is set.
	RetentionEnabled     bool `toml:"retentionEnabled" mapstructure:"retentionEnabled"`
	RetentionFreshDays   int  `toml:"retentionFreshDays" mapstructure:"retentionFreshDays"`
	RetentionAgingDays   int  `toml:"retentionAgingDays" mapstructure:"retentionAgingDays"`
	RetentionWarningDays int  `toml:"retentionWarningDays" mapstructure:"retentionWarningDays"`
	RetentionFilterDays  int  `toml:"retentionFilterDays" mapstructure:"retentionFilterDays"`

	ParserCacheTTL time.Duration `toml:"parserCacheTtl" mapstructure:"parserCacheTtl"`
	// MetricsTextfile, when set, receives pipeline metrics in node exporter textfile format after each rank run.
	MetricsTextfile string `toml:"metricsTextfile" mapstructure:"metricsTextfile"`
}
