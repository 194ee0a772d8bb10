// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package releases

import (
	"slices"

	"github.com/autobrr/releaserank/pkg/stringutils"
)

// LanguageEnglish is the canonical name of the neutral fallback language.
const LanguageEnglish = "english"

// languageAliases maps lowercase language tags, ISO codes and scene spellings
// to a canonical lowercase English language name.
var languageAliases = map[string]string{
	"english": LanguageEnglish, "eng": LanguageEnglish, "en": LanguageEnglish,

	"german": "german", "ger": "german", "deu": "german", "de": "german", "deutsch": "german",
	"french": "french", "fre": "french", "fra": "french", "fr": "french",
	"francais": "french", "truefrench": "french", "vff": "french", "vfq": "french", "vf2": "french",
	"spanish": "spanish", "spa": "spanish", "es": "spanish", "esp": "spanish",
	"castellano": "spanish", "espanol": "spanish", "latino": "spanish",
	"italian": "italian", "ita": "italian", "it": "italian", "italiano": "italian",
	"portuguese": "portuguese", "por": "portuguese", "pt": "portuguese", "portugues": "portuguese",
	"russian": "russian", "rus": "russian", "ru": "russian",
	"japanese": "japanese", "jpn": "japanese", "jap": "japanese", "ja": "japanese",
	"korean": "korean", "kor": "korean", "ko": "korean",
	"chinese": "chinese", "chi": "chinese", "zho": "chinese", "zh": "chinese",
	"mandarin": "chinese", "cantonese": "chinese",
	"arabic": "arabic", "ara": "arabic", "ar": "arabic",
	"hindi": "hindi", "hin": "hindi", "hi": "hindi",
	"dutch": "dutch", "nld": "dutch", "dut": "dutch", "nl": "dutch", "flemish": "dutch", "nederlands": "dutch",
	"polish": "polish", "pol": "polish", "pl": "polish", "polski": "polish",
	"turkish": "turkish", "tur": "turkish", "tr": "turkish", "turkce": "turkish",
	"swedish": "swedish", "swe": "swedish", "sv": "swedish",
	"danish": "danish", "dan": "danish", "da": "danish",
	"norwegian": "norwegian", "nor": "norwegian", "no": "norwegian",
	"finnish": "finnish", "fin": "finnish", "fi": "finnish",
	"czech": "czech", "cze": "czech", "ces": "czech", "cs": "czech",
	"hungarian": "hungarian", "hun": "hungarian", "hu": "hungarian",
	"greek": "greek", "gre": "greek", "ell": "greek", "el": "greek",
	"hebrew": "hebrew", "heb": "hebrew", "he": "hebrew",
	"ukrainian": "ukrainian", "ukr": "ukrainian", "uk": "ukrainian",
	"thai": "thai", "tha": "thai", "th": "thai",
	"vietnamese": "vietnamese", "vie": "vietnamese", "vi": "vietnamese",
}

// multiTags mark a release carrying several audio language tracks.
var multiTags = map[string]bool{
	"multi":     true,
	"multi2":    true,
	"multi3":    true,
	"multilang": true,
}

// NormalizeLanguage maps a language tag, code or name to its canonical
// lowercase English name. Unknown tags are returned lowercased with ok=false.
func NormalizeLanguage(tag string) (name string, ok bool) {
	key := stringutils.InternNormalized(stringutils.NormalizeUnicode(tag))
	if canonical, found := languageAliases[key]; found {
		return canonical, true
	}
	return key, false
}

// IsMultiTag reports whether tag is a MULTi marker.
func IsMultiTag(tag string) bool {
	return multiTags[stringutils.InternNormalized(tag)]
}

// normalizeLanguages canonicalizes parser language tags into a sorted, unique
// set and reports whether any of them was a MULTi marker. rls files subtitle
// and dub markers (HC, SUBBED, DL, MULTiSUB) under languages too; only tags
// that resolve to a known language are kept.
func normalizeLanguages(tags []string) (languages []string, multi bool) {
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if IsMultiTag(tag) {
			multi = true
			continue
		}
		name, ok := NormalizeLanguage(tag)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		languages = append(languages, name)
	}
	slices.Sort(languages)
	return languages, multi
}
