// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"
	"unicode"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/autobrr/releaserank/internal/domain"
	"github.com/autobrr/releaserank/internal/pipeline"
	"github.com/autobrr/releaserank/internal/ranking"
	"github.com/autobrr/releaserank/internal/retention"
	"github.com/autobrr/releaserank/pkg/releases"
)

const (
	envPrefix      = "RELEASERANK__"
	configFileName = "config.toml"
	appDirName     = "releaserank"
)

// keys lists every setting read from file and environment.
var keys = []string{
	"logLevel",
	"logPath",
	"logMaxSize",
	"logMaxBackups",
	"sortMethod",
	"preferredLanguage",
	"qualityFilter",
	"retentionEnabled",
	"retentionFreshDays",
	"retentionAgingDays",
	"retentionWarningDays",
	"retentionFilterDays",
	"parserCacheTtl",
	"metricsTextfile",
}

type AppConfig struct {
	Config *domain.Config
	// Path is the config file that was read, empty when running on defaults.
	Path  string
	viper *viper.Viper
}

// New loads the configuration. An explicit configPath (file or directory) must
// exist; without one the default location is used when present. Environment
// variables (RELEASERANK__LOG_LEVEL, RELEASERANK__SORT_METHOD, ...) override
// the file.
func New(configPath string) (*AppConfig, error) {
	c := &AppConfig{
		Config: &domain.Config{},
		viper:  viper.New(),
	}

	c.defaults()

	if err := c.load(configPath); err != nil {
		return nil, err
	}

	for _, key := range keys {
		if err := c.viper.BindEnv(key, envKey(key)); err != nil {
			return nil, errors.Wrapf(err, "could not bind env for %s", key)
		}
	}

	if err := c.viper.Unmarshal(c.Config); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal config")
	}

	c.warnUnknownValues()

	return c, nil
}

func (c *AppConfig) defaults() {
	c.viper.SetDefault("logLevel", "INFO")
	c.viper.SetDefault("logPath", "")
	c.viper.SetDefault("logMaxSize", 50)
	c.viper.SetDefault("logMaxBackups", 3)
	c.viper.SetDefault("sortMethod", string(ranking.SortQualityFirst))
	c.viper.SetDefault("preferredLanguage", "")
	c.viper.SetDefault("qualityFilter", string(pipeline.QualityAll))

	d := retention.DefaultThresholds()
	c.viper.SetDefault("retentionEnabled", false)
	c.viper.SetDefault("retentionFreshDays", d.FreshDays)
	c.viper.SetDefault("retentionAgingDays", d.AgingDays)
	c.viper.SetDefault("retentionWarningDays", d.WarningDays)
	c.viper.SetDefault("retentionFilterDays", d.FilterDays)

	c.viper.SetDefault("parserCacheTtl", 5*time.Minute)
	c.viper.SetDefault("metricsTextfile", "")
}

func (c *AppConfig) load(configPath string) error {
	explicit := configPath != ""
	if !explicit {
		configPath = filepath.Join(getDefaultConfigDir(), configFileName)
	}

	info, err := os.Stat(configPath)
	switch {
	case err == nil && info.IsDir():
		configPath = filepath.Join(configPath, configFileName)
		if _, err := os.Stat(configPath); err != nil {
			if !explicit && os.IsNotExist(err) {
				return nil
			}
			return errors.Wrapf(err, "could not find config file in %s", filepath.Dir(configPath))
		}
	case os.IsNotExist(err) && !explicit:
		return nil
	case err != nil:
		return errors.Wrapf(err, "could not read config file %s", configPath)
	}

	c.viper.SetConfigFile(configPath)
	c.viper.SetConfigType("toml")
	if err := c.viper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "could not parse config file %s", configPath)
	}

	c.Path = configPath
	log.Debug().Str("path", configPath).Msg("loaded config file")
	return nil
}

func (c *AppConfig) warnUnknownValues() {
	if _, ok := ranking.ParseSortMethod(c.Config.SortMethod); !ok && c.Config.SortMethod != "" {
		log.Warn().Str("sortMethod", c.Config.SortMethod).Msgf("unknown sort method, using %q", ranking.SortQualityFirst)
	}
	if _, ok := pipeline.ParseQualityFilter(c.Config.QualityFilter); !ok {
		log.Warn().Str("qualityFilter", c.Config.QualityFilter).Msgf("unknown quality filter, using %q", pipeline.QualityAll)
	}
	if c.Config.RetentionEnabled {
		t := c.Thresholds()
		if !(t.FreshDays <= t.AgingDays && t.AgingDays <= t.WarningDays && t.WarningDays <= t.FilterDays) {
			log.Warn().
				Int("fresh", t.FreshDays).
				Int("aging", t.AgingDays).
				Int("warning", t.WarningDays).
				Int("filter", t.FilterDays).
				Msg("retention thresholds are not in ascending order, statuses may be surprising")
		}
	}
}

// Thresholds returns the configured retention thresholds, nil when retention
// filtering is disabled.
func (c *AppConfig) Thresholds() *retention.Thresholds {
	if !c.Config.RetentionEnabled {
		return nil
	}
	return &retention.Thresholds{
		FreshDays:   c.Config.RetentionFreshDays,
		AgingDays:   c.Config.RetentionAgingDays,
		WarningDays: c.Config.RetentionWarningDays,
		FilterDays:  c.Config.RetentionFilterDays,
	}
}

// PipelineOptions builds run options from the configuration. A nil parser
// falls back to a parser using the configured cache TTL.
func (c *AppConfig) PipelineOptions(parser releases.ReleaseParser, observer pipeline.Observer) pipeline.Options {
	if parser == nil {
		parser = releases.NewParser(c.Config.ParserCacheTTL)
	}
	sortMethod, _ := ranking.ParseSortMethod(c.Config.SortMethod)
	qualityFilter, _ := pipeline.ParseQualityFilter(c.Config.QualityFilter)

	return pipeline.Options{
		SortMethod:        sortMethod,
		PreferredLanguage: c.Config.PreferredLanguage,
		QualityFilter:     qualityFilter,
		Retention:         c.Thresholds(),
		Parser:            parser,
		Observer:          observer,
	}
}

// envKey maps a config key to its environment variable, logMaxSize -> RELEASERANK__LOG_MAX_SIZE.
func envKey(key string) string {
	var b strings.Builder
	b.WriteString(envPrefix)
	for i, r := range key {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// getDefaultConfigDir returns the directory holding config.toml by default.
// XDG_CONFIG_HOME=/config, as set in containers, is used directly.
func getDefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		if xdg == "/config" {
			return xdg
		}
		return filepath.Join(xdg, appDirName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return "."
}

var configTemplate = template.Must(template.New("config").Parse(`# config.toml - Auto-generated by releaserank

# Log level
# Default: "INFO"
# Options: "ERROR", "DEBUG", "INFO", "WARN", "TRACE"
logLevel = "{{ .LogLevel }}"

# Log file path
# If not defined, logs to stderr
# Optional
#logPath = "log/releaserank.log"

# Maximum log file size in megabytes before rotation
# Default: 50
#logMaxSize = 50

# Number of rotated log files to retain (0 keeps all)
# Default: 3
#logMaxBackups = 3

# Sort method within each language group
# Options: "Quality First", "Size First", "Date First"
sortMethod = "{{ .SortMethod }}"

# Preferred audio language, groups results into preferred, fallback and other
# Leave empty or set to "No Preference" to disable grouping
preferredLanguage = "{{ .PreferredLanguage }}"

# Options: "All", "4K/2160p", "1080p", "720p", "480p", "4K + 1080p", "1080p + 720p", "720p + 480p"
qualityFilter = "{{ .QualityFilter }}"

# Retention filtering, releases older than retentionFilterDays are dropped
retentionEnabled = {{ .RetentionEnabled }}
retentionFreshDays = {{ .RetentionFreshDays }}
retentionAgingDays = {{ .RetentionAgingDays }}
retentionWarningDays = {{ .RetentionWarningDays }}
retentionFilterDays = {{ .RetentionFilterDays }}

# Write pipeline metrics in node exporter textfile format after each run
# Optional
#metricsTextfile = "/var/lib/node_exporter/releaserank.prom"
`))

// WriteDefaultConfig writes a commented config file with the default
// settings to path, creating parent directories. Existing files are left alone.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Errorf("config file %s already exists", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "could not create config dir for %s", path)
	}

	c := &AppConfig{Config: &domain.Config{}, viper: viper.New()}
	c.defaults()
	if err := c.viper.Unmarshal(c.Config); err != nil {
		return errors.Wrap(err, "could not build default config")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "could not create config file %s", path)
	}
	defer f.Close()

	if err := configTemplate.Execute(f, c.Config); err != nil {
		return errors.Wrapf(err, "could not write config file %s", path)
	}
	return nil
}

// DefaultConfigPath is where New looks for a config file when none is given.
func DefaultConfigPath() string {
	return filepath.Join(getDefaultConfigDir(), configFileName)
}
