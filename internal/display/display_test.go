// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autobrr/releaserank/internal/domain"
	"github.com/autobrr/releaserank/internal/retention"
	"github.com/autobrr/releaserank/pkg/releases"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	age := 2

	tests := []struct {
		name       string
		descriptor releases.Descriptor
		release    domain.Release
		status     retention.Status
		expected   Label
	}{
		{
			name: "full descriptor",
			descriptor: releases.Descriptor{
				Resolution:    releases.Resolution4K,
				AudioCodec:    "TrueHD Atmos",
				AudioChannels: "7.1",
				Languages:     []string{"english", "german"},
				Sources:       []string{"UHD BluRay"},
				Edition:       releases.Edition{Remux: true, HDR: "HDR10", DolbyVision: true},
				Group:         "FraMeSToR",
			},
			release: domain.Release{Size: 8e9, Indexer: "nzbgeek", Age: &age},
			status:  retention.StatusFresh,
			expected: Label{
				Quality: "🎬 4K · UHD BluRay · REMUX · HDR10 · DV",
				Audio:   "🔊 TrueHD Atmos 7.1 · 🌐 English, German · 👥 FraMeSToR",
				Meta:    "💾 7.5 GiB · 🔎 nzbgeek · 🟢 2d",
			},
		},
		{
			name:       "multi without codec",
			descriptor: releases.Descriptor{Resolution: releases.Resolution720p, Multi: true, Languages: []string{"french"}},
			release:    domain.Release{Indexer: "drunkenslug"},
			expected: Label{
				Quality: "🎬 720p",
				Audio:   "🌐 MULTi, French",
				Meta:    "🔎 drunkenslug",
			},
		},
		{
			name:     "empty descriptor",
			expected: Label{Quality: "🎬 Unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Format(tt.descriptor, tt.release, tt.status))
		})
	}
}

func TestLabel_String(t *testing.T) {
	t.Parallel()

	label := Label{Quality: "🎬 1080p", Meta: "🔎 nzbgeek"}
	assert.Equal(t, []string{"🎬 1080p", "🔎 nzbgeek"}, label.Lines())
	assert.Equal(t, "🎬 1080p\n🔎 nzbgeek", label.String())
}
