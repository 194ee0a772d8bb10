// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/autobrr/releaserank/internal/language"
)

// Stage names an admission filter.
type Stage string

const (
	StageRetention Stage = "retention"
	StageQuality   Stage = "quality"
)

// Observer is notified at the pipeline checkpoints. Implementations must not
// modify the slices they are given.
type Observer interface {
	// Filtered is called after each active admission filter.
	Filtered(stage Stage, kept, dropped []Item)
	// Classified is called once the surviving items are split into tiers.
	// It is not called in single-group mode.
	Classified(preferred, fallback, other []Item)
	// Sorted is called for every sorted tier. Single-group mode reports the
	// whole result as TierFallback.
	Sorted(tier language.Tier, items []Item)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) Filtered(Stage, []Item, []Item)    {}
func (NopObserver) Classified([]Item, []Item, []Item) {}
func (NopObserver) Sorted(language.Tier, []Item)      {}

// MultiObserver fans notifications out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) Filtered(stage Stage, kept, dropped []Item) {
	for _, o := range m {
		o.Filtered(stage, kept, dropped)
	}
}

func (m MultiObserver) Classified(preferred, fallback, other []Item) {
	for _, o := range m {
		o.Classified(preferred, fallback, other)
	}
}

func (m MultiObserver) Sorted(tier language.Tier, items []Item) {
	for _, o := range m {
		o.Sorted(tier, items)
	}
}

// LogObserver narrates pipeline decisions: counts at debug level, individual
// items at trace level.
type LogObserver struct {
	log zerolog.Logger
}

// NewLogObserver returns an observer writing to logger.
func NewLogObserver(logger zerolog.Logger) *LogObserver {
	return &LogObserver{log: logger.With().Str("component", "pipeline").Logger()}
}

// traceEnabled reports whether per-item events would be written, honouring
// both the logger's own level and the global level.
func (o *LogObserver) traceEnabled() bool {
	return o.log.GetLevel() <= zerolog.TraceLevel && zerolog.GlobalLevel() <= zerolog.TraceLevel
}

func (o *LogObserver) Filtered(stage Stage, kept, dropped []Item) {
	o.log.Debug().
		Str("stage", string(stage)).
		Int("kept", len(kept)).
		Int("dropped", len(dropped)).
		Msg("admission filter applied")

	if !o.traceEnabled() {
		return
	}
	for _, item := range dropped {
		o.log.Trace().
			Str("stage", string(stage)).
			Str("title", item.Release.Title).
			Str("resolution", item.Descriptor.Resolution.String()).
			Int("age", item.Release.AgeOrZero()).
			Msg("dropped release")
	}
}

func (o *LogObserver) Classified(preferred, fallback, other []Item) {
	o.log.Debug().
		Int("preferred", len(preferred)).
		Int("fallback", len(fallback)).
		Int("other", len(other)).
		Msg("releases grouped by language")
}

func (o *LogObserver) Sorted(tier language.Tier, items []Item) {
	o.log.Debug().
		Str("tier", tier.String()).
		Int("count", len(items)).
		Msg("tier sorted")

	if !o.traceEnabled() {
		return
	}
	for i, item := range items {
		keys := item.Keys()
		o.log.Trace().
			Str("tier", tier.String()).
			Int("position", i).
			Str("title", item.Release.Title).
			Int("video", keys.Video).
			Int("audio", keys.Audio).
			Int64("size", keys.Size).
			Msg("sorted release")
	}
}
