// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package releases

import (
	"strings"

	"github.com/autobrr/releaserank/pkg/stringutils"
)

// Resolution is the canonical video resolution of a release.
type Resolution string

const (
	ResolutionUnknown Resolution = ""
	Resolution480p    Resolution = "480p"
	Resolution720p    Resolution = "720p"
	Resolution1080p   Resolution = "1080p"
	// Resolution4K also covers 2160p and UHD.
	Resolution4K Resolution = "4K"
)

// resolutionAliases maps lowercase resolution spellings to their canonical value.
var resolutionAliases = map[string]Resolution{
	"480p":  Resolution480p,
	"480i":  Resolution480p,
	"480":   Resolution480p,
	"720p":  Resolution720p,
	"720":   Resolution720p,
	"1080p": Resolution1080p,
	"1080i": Resolution1080p,
	"1080":  Resolution1080p,
	"2160p": Resolution4K,
	"2160":  Resolution4K,
	"4k":    Resolution4K,
	"uhd":   Resolution4K,
}

// titleResolutionOrder is the order resolution tokens are looked for in a title
// when the parser found none. Highest first, so "2160p.UHD" and "1080p.4K.Upscale"
// are not downgraded by a later token.
var titleResolutionOrder = []Resolution{Resolution4K, Resolution1080p, Resolution720p, Resolution480p}

// ParseResolution canonicalizes a resolution string. Matching is
// case-insensitive and 2160p, UHD and 4K all map to Resolution4K.
// Anything unrecognized (576p, 540p, garbage) is ResolutionUnknown.
func ParseResolution(s string) Resolution {
	return resolutionAliases[strings.ToLower(strings.TrimSpace(s))]
}

// String returns the display form; unknown resolutions render as "Unknown".
func (r Resolution) String() string {
	if r == ResolutionUnknown {
		return "Unknown"
	}
	return string(r)
}

// resolutionFromTitle looks for whole resolution tokens in the title. Whole
// tokens keep names like "wolfmax4k" from reading as 4K.
func resolutionFromTitle(title string) Resolution {
	found := make(map[Resolution]bool)
	for _, token := range stringutils.Tokens(title) {
		if res, ok := resolutionAliases[token]; ok && strings.IndexFunc(token, isLetter) >= 0 {
			found[res] = true
		}
	}
	for _, res := range titleResolutionOrder {
		if found[res] {
			return res
		}
	}
	return ResolutionUnknown
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}
