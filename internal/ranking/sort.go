// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package ranking

import (
	"cmp"
	"slices"
	"strings"
)

// SortMethod selects the primary sort key.
type SortMethod string

const (
	SortQualityFirst SortMethod = "Quality First"
	SortSizeFirst    SortMethod = "Size First"
	SortDateFirst    SortMethod = "Date First"
)

var sortMethods = map[string]SortMethod{
	"quality first": SortQualityFirst,
	"size first":    SortSizeFirst,
	"date first":    SortDateFirst,
}

// ParseSortMethod returns the method named by s, case-insensitively.
// ok is false when s is not recognized, in which case Quality First is returned.
func ParseSortMethod(s string) (method SortMethod, ok bool) {
	if m, found := sortMethods[strings.ToLower(strings.TrimSpace(s))]; found {
		return m, true
	}
	return SortQualityFirst, false
}

// Keys are the precomputed comparison keys of one release.
type Keys struct {
	Video int
	Audio int
	// Size in bytes, 0 when unknown.
	Size int64
	// Age in days, 0 when unknown.
	Age int
}

// Compare orders a before b when it returns a negative number. The primary
// key depends on method, then video rank, audio rank and size break ties, all
// descending. Unknown methods behave as Quality First.
func Compare(a, b Keys, method SortMethod) int {
	primaryIsVideo := false

	switch method {
	case SortSizeFirst:
		if c := cmp.Compare(b.Size, a.Size); c != 0 {
			return c
		}
	case SortDateFirst:
		if c := cmp.Compare(a.Age, b.Age); c != 0 {
			return c
		}
	default:
		primaryIsVideo = true
		if c := cmp.Compare(b.Video, a.Video); c != 0 {
			return c
		}
	}

	if !primaryIsVideo {
		if c := cmp.Compare(b.Video, a.Video); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(b.Audio, a.Audio); c != 0 {
		return c
	}
	return cmp.Compare(b.Size, a.Size)
}

// SortGroup returns a stably sorted copy of items. keyFn is called once per
// item; items is left untouched.
func SortGroup[T any](items []T, method SortMethod, keyFn func(T) Keys) []T {
	type keyed struct {
		item T
		keys Keys
	}

	entries := make([]keyed, len(items))
	for i, item := range items {
		entries[i] = keyed{item: item, keys: keyFn(item)}
	}

	slices.SortStableFunc(entries, func(a, b keyed) int {
		return Compare(a.keys, b.keys, method)
	})

	sorted := make([]T, len(entries))
	for i, e := range entries {
		sorted[i] = e.item
	}
	return sorted
}
