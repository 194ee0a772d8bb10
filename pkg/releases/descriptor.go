// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package releases

import (
	"slices"
	"strings"

	"github.com/moistari/rls"
	"github.com/rs/zerolog/log"

	"github.com/autobrr/releaserank/pkg/stringutils"
)

// Edition carries the edition flags of a release.
type Edition struct {
	Remux bool `json:"remux,omitempty"`
	// HDR holds the non Dolby Vision HDR formats ("HDR10", "HDR10+ HDR"), empty for SDR.
	HDR         string `json:"hdr,omitempty"`
	DolbyVision bool   `json:"dolbyVision,omitempty"`
}

// Descriptor is the structured view of a release name used for ranking.
// The zero value is the "nothing could be extracted" descriptor.
type Descriptor struct {
	Resolution    Resolution `json:"resolution,omitempty"`
	AudioCodec    string     `json:"audioCodec,omitempty"`
	AudioChannels string     `json:"audioChannels,omitempty"`
	// Languages are canonical lowercase English names, sorted and unique.
	Languages []string `json:"languages,omitempty"`
	Multi     bool     `json:"multi,omitempty"`
	Sources   []string `json:"sources,omitempty"`
	Edition   Edition  `json:"edition"`
	Group     string   `json:"group,omitempty"`
}

// IsEmpty reports whether nothing was extracted.
func (d Descriptor) IsEmpty() bool {
	return d.Resolution == ResolutionUnknown &&
		d.AudioCodec == "" &&
		d.AudioChannels == "" &&
		len(d.Languages) == 0 &&
		!d.Multi &&
		len(d.Sources) == 0 &&
		d.Edition == (Edition{}) &&
		d.Group == ""
}

// HasLanguage reports whether the descriptor declares the language,
// compared case-insensitively after alias normalization.
func (d Descriptor) HasLanguage(language string) bool {
	name, _ := NormalizeLanguage(language)
	if name == "" {
		return false
	}
	_, found := slices.BinarySearch(d.Languages, name)
	return found
}

// Extract parses title with p and converts the result into a Descriptor.
//
// Extract never panics: a nil parser, a blank title, a nil release or a
// panicking parser all yield the empty descriptor so one bad title cannot
// abort a whole batch.
func Extract(p ReleaseParser, title string) (d Descriptor) {
	if p == nil || strings.TrimSpace(title) == "" {
		return Descriptor{}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Debug().
				Str("title", title).
				Interface("panic", r).
				Msg("release parser failed, using empty descriptor")
			d = Descriptor{}
		}
	}()

	release := p.Parse(title)
	if release == nil {
		return Descriptor{}
	}

	return describe(release, title)
}

// describe builds the descriptor from parser output, falling back to title
// tokens for the fields the parser commonly misses.
func describe(release *rls.Release, title string) Descriptor {
	d := Descriptor{
		Resolution:    ParseResolution(release.Resolution),
		AudioCodec:    joinAudio(release.Audio),
		AudioChannels: strings.TrimSpace(release.Channels),
		Group:         strings.TrimSpace(release.Group),
	}

	if d.Resolution == ResolutionUnknown {
		d.Resolution = resolutionFromTitle(title)
	}

	d.Languages, d.Multi = normalizeLanguages(release.Language)
	if !d.Multi {
		d.Multi = slices.ContainsFunc(release.Other, IsMultiTag) ||
			slices.ContainsFunc(stringutils.Tokens(title), IsMultiTag)
	}

	if source := NormalizeSource(release.Source); source != "" {
		d.Sources = append(d.Sources, source)
	}

	d.Edition = Edition{
		Remux: isRemuxTag(release.Source) ||
			slices.ContainsFunc(release.Other, isRemuxTag) ||
			slices.ContainsFunc(release.Edition, isRemuxTag) ||
			stringutils.ContainsToken(title, "remux"),
		HDR:         hdrFlavour(release.HDR),
		DolbyVision: hasDolbyVision(release.HDR),
	}

	return d
}
