// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package pipeline

import (
	"slices"
	"strings"

	"github.com/autobrr/releaserank/pkg/releases"
)

// QualityFilter restricts which resolutions are admitted.
type QualityFilter string

const (
	QualityAll          QualityFilter = "All"
	Quality4K           QualityFilter = "4K/2160p"
	Quality1080p        QualityFilter = "1080p"
	Quality720p         QualityFilter = "720p"
	Quality480p         QualityFilter = "480p"
	Quality4KAnd1080p   QualityFilter = "4K + 1080p"
	Quality1080pAnd720p QualityFilter = "1080p + 720p"
	Quality720pAnd480p  QualityFilter = "720p + 480p"
)

var allowedResolutions = map[QualityFilter][]releases.Resolution{
	Quality4K:           {releases.Resolution4K},
	Quality1080p:        {releases.Resolution1080p},
	Quality720p:         {releases.Resolution720p},
	Quality480p:         {releases.Resolution480p},
	Quality4KAnd1080p:   {releases.Resolution4K, releases.Resolution1080p},
	Quality1080pAnd720p: {releases.Resolution1080p, releases.Resolution720p},
	Quality720pAnd480p:  {releases.Resolution720p, releases.Resolution480p},
}

var qualityFilters = func() map[string]QualityFilter {
	m := map[string]QualityFilter{strings.ToLower(string(QualityAll)): QualityAll}
	for filter := range allowedResolutions {
		m[strings.ToLower(string(filter))] = filter
	}
	return m
}()

// ParseQualityFilter returns the filter named by s, case-insensitively.
// ok is false when s is not recognized, in which case QualityAll is returned.
// An empty string is QualityAll and counts as recognized.
func ParseQualityFilter(s string) (filter QualityFilter, ok bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return QualityAll, true
	}
	if f, found := qualityFilters[key]; found {
		return f, true
	}
	return QualityAll, false
}

// Allows reports whether a release with resolution res passes the filter.
// Unknown resolutions only pass QualityAll; unrecognized filters behave as QualityAll.
func (f QualityFilter) Allows(res releases.Resolution) bool {
	allowed, restricted := allowedResolutions[f]
	if !restricted {
		return true
	}
	return slices.Contains(allowed, releases.ParseResolution(string(res)))
}
