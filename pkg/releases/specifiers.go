// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package releases

import (
	"strings"

	"github.com/autobrr/releaserank/pkg/stringutils"
)

// sourceAliases maps source names to a canonical form for display.
// WEB-DL variants normalize to WEB-DL, WEBRip variants to WEBRip.
var sourceAliases = map[string]string{
	"WEB-DL":     "WEB-DL",
	"WEBDL":      "WEB-DL",
	"WEBRIP":     "WEBRip",
	"WEB":        "WEB",
	"BLURAY":     "BluRay",
	"BLU-RAY":    "BluRay",
	"UHD.BLURAY": "UHD BluRay",
	"BDRIP":      "BDRip",
	"BRRIP":      "BRRip",
	"HDTV":       "HDTV",
	"DVDRIP":     "DVDRip",
}

// NormalizeSource converts a source string to its canonical form.
// Returns the trimmed original if no alias mapping exists.
func NormalizeSource(source string) string {
	trimmed := strings.TrimSpace(source)
	if canonical, ok := sourceAliases[strings.ToUpper(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// joinAudio flattens parser audio tags into the codec string the audio rank
// rules are evaluated against, keeping parser order and dropping duplicates.
func joinAudio(tags []string) string {
	seen := make(map[string]struct{}, len(tags))
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		key := stringutils.InternNormalizedUpper(trimmed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, " ")
}

// hasDolbyVision checks if the HDR formats include Dolby Vision.
func hasDolbyVision(hdrFormats []string) bool {
	for _, format := range hdrFormats {
		lower := strings.ToLower(format)
		if lower == "dv" || strings.Contains(lower, "dovi") || strings.Contains(lower, "dolby") {
			return true
		}
	}
	return false
}

// hdrFlavour returns the non Dolby Vision HDR formats joined for display
// ("HDR10+", "HDR"), or "" for SDR.
func hdrFlavour(hdrFormats []string) string {
	var flavours []string
	for _, format := range hdrFormats {
		lower := strings.ToLower(format)
		if lower == "dv" || strings.Contains(lower, "dovi") || strings.Contains(lower, "dolby") {
			continue
		}
		if strings.Contains(lower, "hdr") || lower == "hlg" {
			flavours = append(flavours, strings.ToUpper(strings.TrimSpace(format)))
		}
	}
	return strings.Join(flavours, " ")
}

func isRemuxTag(tag string) bool {
	return strings.Contains(strings.ToUpper(tag), "REMUX")
}
