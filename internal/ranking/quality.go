// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Package ranking maps release quality signals to ordinal ranks and sorts
// releases by a configurable key cascade.
package ranking

import (
	"strings"

	"github.com/autobrr/releaserank/pkg/releases"
)

var videoRanks = map[releases.Resolution]int{
	releases.Resolution480p:  1,
	releases.Resolution720p:  2,
	releases.Resolution1080p: 3,
	releases.Resolution4K:    4,
}

// VideoQualityRank returns 0 for unknown resolutions and 1 (480p) to 4 (4K).
// Non canonical spellings such as "2160p" or "uhd" are accepted.
func VideoQualityRank(res releases.Resolution) int {
	return videoRanks[releases.ParseResolution(string(res))]
}

// audioRule matches when the uppercased codec contains every token of at
// least one of its alternatives.
type audioRule struct {
	anyOf [][]string
	rank  int
}

// audioRules are evaluated in order, first match wins. Plain DTS only reaches
// the rank 3 rule because DTS-HD matched earlier. Only the hyphenated DTS-HD
// spelling counts as DTS-HD, "DTSHD" ranks as plain DTS.
var audioRules = []audioRule{
	{anyOf: [][]string{{"TRUEHD", "ATMOS"}, {"DTS-HD", "MA"}}, rank: 6},
	{anyOf: [][]string{{"TRUEHD"}}, rank: 6},
	{anyOf: [][]string{{"DTS-HD"}}, rank: 5},
	{anyOf: [][]string{{"EAC3"}, {"E-AC-3"}, {"DD+"}, {"DDP"}}, rank: 4},
	{anyOf: [][]string{{"AC3"}, {"DD"}, {"DTS"}}, rank: 3},
	{anyOf: [][]string{{"AAC"}}, rank: 2},
}

func (r audioRule) matches(codec string) bool {
	for _, tokens := range r.anyOf {
		if containsAll(codec, tokens) {
			return true
		}
	}
	return false
}

func containsAll(s string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(s, token) {
			return false
		}
	}
	return true
}

// AudioQualityRank ranks an audio codec string from 0 (unknown) to 6
// (lossless object based). Any non-empty codec that matches no rule ranks 1.
func AudioQualityRank(codec string) int {
	upper := strings.ToUpper(strings.TrimSpace(codec))
	if upper == "" {
		return 0
	}
	for _, rule := range audioRules {
		if rule.matches(upper) {
			return rule.rank
		}
	}
	return 1
}
