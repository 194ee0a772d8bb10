// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package language

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autobrr/releaserank/pkg/releases"
)

func TestNormalizePreference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"  ", ""},
		{"none", ""},
		{"No Preference", ""},
		{"German", "german"},
		{"de", "german"},
		{"GER", "german"},
		{"Français", "french"},
		{"Klingon", "klingon"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NormalizePreference(tt.input))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		descriptor releases.Descriptor
		preferred  string
		title      string
		expected   Tier
	}{
		{
			name:       "no preference is always fallback",
			descriptor: releases.Descriptor{Languages: []string{"german"}},
			preferred:  "No Preference",
			title:      "Movie.German.1080p",
			expected:   TierFallback,
		},
		{
			name:       "explicit preferred language",
			descriptor: releases.Descriptor{Languages: []string{"german"}},
			preferred:  "German",
			expected:   TierPreferred,
		},
		{
			name:       "preferred among several",
			descriptor: releases.Descriptor{Languages: []string{"english", "german"}},
			preferred:  "ger",
			expected:   TierPreferred,
		},
		{
			name:       "english is fallback",
			descriptor: releases.Descriptor{Languages: []string{"english"}},
			preferred:  "German",
			expected:   TierFallback,
		},
		{
			name:       "other single language",
			descriptor: releases.Descriptor{Languages: []string{"french"}},
			preferred:  "German",
			title:      "Movie.German.Dubbed.French.1080p",
			expected:   TierOther,
		},
		{
			name:       "multi with preferred track",
			descriptor: releases.Descriptor{Languages: []string{"french", "german"}, Multi: true},
			preferred:  "German",
			expected:   TierPreferred,
		},
		{
			name:       "multi with english track",
			descriptor: releases.Descriptor{Languages: []string{"english", "french"}, Multi: true},
			preferred:  "German",
			expected:   TierFallback,
		},
		{
			name:       "multi alone is not enough",
			descriptor: releases.Descriptor{Multi: true},
			preferred:  "German",
			title:      "Movie.2020.MULTi.German.720p",
			expected:   TierOther,
		},
		{
			name:      "title dictionary hit on preferred",
			preferred: "German",
			title:     "Movie.2020.GERMAN.DL.1080p",
			expected:  TierPreferred,
		},
		{
			name:      "title dictionary hit on other language",
			preferred: "German",
			title:     "Movie 2020 Spanish 1080p",
			expected:  TierOther,
		},
		{
			name:      "title without language signal is neutral",
			preferred: "German",
			title:     "Movie.2020.1080p.WEB-DL.AC3",
			expected:  TierFallback,
		},
		{
			name:      "substring does not count",
			preferred: "German",
			title:     "Germany.Documentary.2020.1080p",
			expected:  TierFallback,
		},
		{
			name:      "empty title",
			preferred: "German",
			expected:  TierFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Classify(tt.descriptor, tt.preferred, tt.title))
		})
	}
}

func TestDetectFromTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title    string
		expected string
		ok       bool
	}{
		{"Movie.2020.GERMAN.1080p", "german", true},
		{"Movie_2020_french_720p", "french", true},
		{"Movie 2020 Spanish 1080p", "spanish", true},
		{"Movie.2020.Italian.ENG.1080p", "italian", true},
		{"Anime.S01E01.Japanese.Chinese", "japanese", true},
		{"Movie.2020.Dutch", "dutch", true},
		{"Movie.2020.VOSTFR.1080p", "", false},
		{"Movie.2020.iTA.1080p", "", false},
		{"Movie.2020.Deutsch.1080p", "", false},
		{"Movie.2020.GERMANY.Documentary", "", false},
		{"Movie.2020.ENGLISH.1080p", "", false},
		{"Movie.2020.1080p", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()

			language, ok := DetectFromTitle(tt.title)
			assert.Equal(t, tt.expected, language)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestTier_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "preferred", TierPreferred.String())
	assert.Equal(t, "fallback", TierFallback.String())
	assert.Equal(t, "other", TierOther.String())
	assert.Equal(t, "unknown", Tier(9).String())
}
