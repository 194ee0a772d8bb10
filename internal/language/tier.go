// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Package language sorts releases into Preferred, Fallback and Other tiers
// based on their audio languages and the user's preferred language.
package language

import (
	"strings"

	"github.com/autobrr/releaserank/pkg/releases"
)

// Tier is the language priority bucket of a release. Lower tiers are listed first.
type Tier int

const (
	TierPreferred Tier = iota
	TierFallback
	TierOther
)

func (t Tier) String() string {
	switch t {
	case TierPreferred:
		return "preferred"
	case TierFallback:
		return "fallback"
	case TierOther:
		return "other"
	default:
		return "unknown"
	}
}

var noPreference = map[string]bool{
	"":              true,
	"none":          true,
	"no preference": true,
	"any":           true,
}

// NormalizePreference canonicalizes a configured preferred language. It returns
// "" when no preference is set ("", "none", "No Preference").
func NormalizePreference(preferred string) string {
	key := strings.ToLower(strings.TrimSpace(preferred))
	if noPreference[key] {
		return ""
	}
	name, _ := releases.NormalizeLanguage(key)
	return name
}

// Classify returns the tier of a release. Without a preferred language every
// release is TierFallback. preferred may be raw user input; it is normalized
// the same way as descriptor languages.
//
// Structured language data from the descriptor always wins. Only when the
// descriptor has no languages and is not MULTi is title scanned against the
// fallback dictionary, and a title with no language signal at all counts as
// neutral (TierFallback).
func Classify(d releases.Descriptor, preferred, title string) Tier {
	preferred = NormalizePreference(preferred)
	if preferred == "" {
		return TierFallback
	}

	switch {
	case d.HasLanguage(preferred):
		return TierPreferred
	case d.HasLanguage(releases.LanguageEnglish):
		return TierFallback
	case d.Multi || len(d.Languages) > 0:
		return TierOther
	}

	detected, ok := DetectFromTitle(title)
	switch {
	case !ok:
		return TierFallback
	case detected == preferred:
		return TierPreferred
	default:
		return TierOther
	}
}
