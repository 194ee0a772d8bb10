// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autobrr/releaserank/pkg/releases"
)

func TestParseQualityFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   QualityFilter
		wantOK bool
	}{
		{"", QualityAll, true},
		{"All", QualityAll, true},
		{"all", QualityAll, true},
		{"4k/2160P", Quality4K, true},
		{" 1080p ", Quality1080p, true},
		{"4K + 1080p", Quality4KAnd1080p, true},
		{"1080P + 720P", Quality1080pAnd720p, true},
		{"720p + 480p", Quality720pAnd480p, true},
		{"576p", QualityAll, false},
		{"best", QualityAll, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseQualityFilter(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestQualityFilterAllows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter QualityFilter
		res    releases.Resolution
		want   bool
	}{
		{"all admits unknown", QualityAll, releases.ResolutionUnknown, true},
		{"all admits 4k", QualityAll, releases.Resolution4K, true},
		{"4k only", Quality4K, releases.Resolution4K, true},
		{"4k rejects 1080p", Quality4K, releases.Resolution1080p, false},
		{"4k rejects unknown", Quality4K, releases.ResolutionUnknown, false},
		{"pair first", Quality4KAnd1080p, releases.Resolution4K, true},
		{"pair second", Quality4KAnd1080p, releases.Resolution1080p, true},
		{"pair rejects 720p", Quality4KAnd1080p, releases.Resolution720p, false},
		{"low pair", Quality720pAnd480p, releases.Resolution480p, true},
		{"480p rejects 720p", Quality480p, releases.Resolution720p, false},
		{"unrecognized behaves as all", QualityFilter("bogus"), releases.Resolution720p, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.filter.Allows(tt.res))
		})
	}
}
