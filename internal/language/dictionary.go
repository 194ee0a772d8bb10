// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package language

import (
	"github.com/autobrr/releaserank/pkg/stringutils"
)

type dictionaryEntry struct {
	language string
	tokens   []string
}

// fallbackDictionary is scanned in order when a release has no structured
// language data. Only full language names are listed: abbreviations and
// subtitle markers (VOSTFR, ITA) say nothing reliable about the audio track.
// English is not listed, an untagged title counts as neutral.
var fallbackDictionary = []dictionaryEntry{
	{language: "german", tokens: []string{"german"}},
	{language: "french", tokens: []string{"french"}},
	{language: "spanish", tokens: []string{"spanish"}},
	{language: "italian", tokens: []string{"italian"}},
	{language: "portuguese", tokens: []string{"portuguese"}},
	{language: "russian", tokens: []string{"russian"}},
	{language: "japanese", tokens: []string{"japanese"}},
	{language: "korean", tokens: []string{"korean"}},
	{language: "chinese", tokens: []string{"chinese"}},
	{language: "arabic", tokens: []string{"arabic"}},
	{language: "hindi", tokens: []string{"hindi"}},
	{language: "dutch", tokens: []string{"dutch"}},
	{language: "polish", tokens: []string{"polish"}},
	{language: "turkish", tokens: []string{"turkish"}},
}

// DetectFromTitle returns the first dictionary language whose tokens appear as
// whole words in title. Matching ignores case.
func DetectFromTitle(title string) (string, bool) {
	tokens := stringutils.Tokens(title)
	if len(tokens) == 0 {
		return "", false
	}

	present := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		present[token] = struct{}{}
	}

	for _, entry := range fallbackDictionary {
		for _, token := range entry.tokens {
			if _, ok := present[token]; ok {
				return entry.language, true
			}
		}
	}
	return "", false
}
