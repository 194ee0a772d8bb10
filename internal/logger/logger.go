// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Package logger configures zerolog from the application config.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/autobrr/releaserank/internal/domain"
)

// ParseLevel maps config level names (TRACE, DEBUG, INFO, WARN, ERROR) to a
// zerolog level. Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a logger writing to w, pretty printed when w is a terminal and
// JSON otherwise. When cfg.LogPath is set, JSON lines are also written to a
// rotated log file.
func New(cfg *domain.Config, w io.Writer) zerolog.Logger {
	var out io.Writer = w
	if isTerminal(w) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	}

	writers := []io.Writer{out}
	if cfg != nil && cfg.LogPath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogPath,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
		})
	}

	level := zerolog.InfoLevel
	if cfg != nil {
		level = ParseLevel(cfg.LogLevel)
	}

	var writer io.Writer = writers[0]
	if len(writers) > 1 {
		writer = zerolog.MultiLevelWriter(writers...)
	}

	// rank logs from several goroutines and w may be a plain buffer.
	return zerolog.New(zerolog.SyncWriter(writer)).Level(level).With().Timestamp().Logger()
}

// Setup installs the logger built by New as the global logger.
func Setup(cfg *domain.Config, w io.Writer) zerolog.Logger {
	logger := New(cfg, w)
	log.Logger = logger
	zerolog.SetGlobalLevel(logger.GetLevel())
	return logger
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok || file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
