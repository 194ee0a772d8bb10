// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package stringutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// unicodeNormalizer caches NFKD folding; release titles repeat across indexers.
	unicodeNormalizer = NewNormalizer(defaultNormalizerTTL, normalizeUnicodeInner)

	tokenNormalizer = NewNormalizer(defaultNormalizerTTL, tokenize)
)

// ligatures NFKD does not decompose to ASCII.
var foldReplacer = strings.NewReplacer(
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ß", "ss",
)

func normalizeUnicodeInner(s string) string {
	s = foldReplacer.Replace(s)

	// transform.Chain is not safe for concurrent use, build one per call.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// NormalizeUnicode removes diacritics and decomposes ligatures with caching.
// Examples:
//   - "Français" → "Francais"
//   - "Español" → "Espanol"
//   - "Türkçe" → "Turkce"
func NormalizeUnicode(s string) string {
	return unicodeNormalizer.Normalize(s)
}

// Tokens splits a release name into lowercase ASCII-folded tokens. Any rune
// that is not a letter or digit separates tokens, so "Movie.2020.GERMAN_DL",
// "Movie 2020 German DL" and "Movie-2020-[German]-DL" all yield the same tokens.
//
// The returned slice is shared with the cache and must not be modified.
func Tokens(s string) []string {
	return tokenNormalizer.Normalize(s)
}

func tokenize(s string) []string {
	folded := strings.ToLower(NormalizeUnicode(s))
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, f := range fields {
		fields[i] = Intern(f)
	}
	return fields
}

// ContainsToken reports whether token appears as a whole token of s.
func ContainsToken(s, token string) bool {
	token = strings.ToLower(token)
	for _, t := range Tokens(s) {
		if t == token {
			return true
		}
	}
	return false
}
