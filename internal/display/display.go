// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Package display renders ranked releases as short human readable labels.
package display

import (
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/autobrr/releaserank/internal/domain"
	"github.com/autobrr/releaserank/internal/retention"
	"github.com/autobrr/releaserank/pkg/releases"
)

const separator = " · "

// Label is the three line description of a release.
type Label struct {
	Quality string `json:"quality"`
	Audio   string `json:"audio"`
	Meta    string `json:"meta"`
}

// Lines returns the non-empty lines in display order.
func (l Label) Lines() []string {
	lines := make([]string, 0, 3)
	for _, line := range []string{l.Quality, l.Audio, l.Meta} {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func (l Label) String() string {
	return strings.Join(l.Lines(), "\n")
}

// Format builds the label for a release. The quality line is always present;
// the audio and meta lines are empty when there is nothing to show.
func Format(d releases.Descriptor, r domain.Release, status retention.Status) Label {
	return Label{
		Quality: qualityLine(d),
		Audio:   audioLine(d),
		Meta:    metaLine(r, status),
	}
}

func qualityLine(d releases.Descriptor) string {
	parts := []string{"🎬 " + d.Resolution.String()}
	parts = append(parts, d.Sources...)
	if d.Edition.Remux {
		parts = append(parts, "REMUX")
	}
	if d.Edition.HDR != "" {
		parts = append(parts, d.Edition.HDR)
	}
	if d.Edition.DolbyVision {
		parts = append(parts, "DV")
	}
	return strings.Join(parts, separator)
}

func audioLine(d releases.Descriptor) string {
	var parts []string

	audio := strings.TrimSpace(strings.Join([]string{d.AudioCodec, d.AudioChannels}, " "))
	if audio != "" {
		parts = append(parts, "🔊 "+audio)
	}

	var langs []string
	if d.Multi {
		langs = append(langs, "MULTi")
	}
	// Casers are stateful and cannot be shared between goroutines.
	caser := cases.Title(language.English)
	for _, lang := range d.Languages {
		langs = append(langs, caser.String(lang))
	}
	if len(langs) > 0 {
		parts = append(parts, "🌐 "+strings.Join(langs, ", "))
	}

	if d.Group != "" {
		parts = append(parts, "👥 "+d.Group)
	}
	return strings.Join(parts, separator)
}

func metaLine(r domain.Release, status retention.Status) string {
	var parts []string
	if size := r.SizeOrZero(); size > 0 {
		parts = append(parts, "💾 "+humanize.IBytes(uint64(size)))
	}
	if r.Indexer != "" {
		parts = append(parts, "🔎 "+r.Indexer)
	}
	if age := retention.Label(status, r.Age); age != "" {
		parts = append(parts, age)
	}
	return strings.Join(parts, separator)
}
