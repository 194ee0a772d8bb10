// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Package pipeline ranks indexer search results: it extracts descriptors,
// applies the retention and quality admission filters, groups the survivors
// by language tier and sorts every tier.
//
// Run is synchronous and keeps no state between calls, so independent batches
// may be ranked concurrently.
package pipeline

import (
	"github.com/autobrr/releaserank/internal/domain"
	"github.com/autobrr/releaserank/internal/language"
	"github.com/autobrr/releaserank/internal/ranking"
	"github.com/autobrr/releaserank/internal/retention"
	"github.com/autobrr/releaserank/pkg/releases"
)

// Options configure a single Run. The zero value ranks by quality with no
// filtering and no language grouping.
type Options struct {
	SortMethod ranking.SortMethod
	// PreferredLanguage enables three-tier grouping. "" or "No Preference" disables it.
	PreferredLanguage string
	QualityFilter     QualityFilter
	// Retention is nil when retention filtering is disabled.
	Retention *retention.Thresholds
	// Parser defaults to releases.DefaultParser.
	Parser   releases.ReleaseParser
	Observer Observer
}

// Item is a release paired with what was extracted from its title.
type Item struct {
	Release    domain.Release      `json:"release"`
	Descriptor releases.Descriptor `json:"descriptor"`
	Retention  retention.Status    `json:"retention,omitempty"`
}

// Keys returns the sort keys of the item.
func (i Item) Keys() ranking.Keys {
	return ranking.Keys{
		Video: ranking.VideoQualityRank(i.Descriptor.Resolution),
		Audio: ranking.AudioQualityRank(i.Descriptor.AudioCodec),
		Size:  i.Release.SizeOrZero(),
		Age:   i.Release.AgeOrZero(),
	}
}

// GroupInfo describes the tier layout of a grouped result. Tier one always
// starts at offset 0, tier two at Group1End and tier three at Group2End.
type GroupInfo struct {
	PreferredCount int `json:"preferredCount"`
	FallbackCount  int `json:"fallbackCount"`
	OtherCount     int `json:"otherCount"`
	Group1End      int `json:"group1End"`
	Group2End      int `json:"group2End"`
}

// TierAt returns the tier of the item at index in the flattened result.
func (g GroupInfo) TierAt(index int) language.Tier {
	switch {
	case index < g.Group1End:
		return language.TierPreferred
	case index < g.Group2End:
		return language.TierFallback
	default:
		return language.TierOther
	}
}

// Stats counts items through the admission filters.
type Stats struct {
	Input              int `json:"input"`
	DroppedByRetention int `json:"droppedByRetention"`
	DroppedByQuality   int `json:"droppedByQuality"`
	Output             int `json:"output"`
}

// Result is the outcome of Run. Groups is nil in single-group mode, when no
// preferred language was configured.
type Result struct {
	Items  []Item     `json:"items"`
	Groups *GroupInfo `json:"groups"`
	Stats  Stats      `json:"stats"`
}

// Run ranks results according to opts. It never fails and never modifies
// results: a title the parser cannot handle keeps an empty descriptor and
// stays in the output, unranked on quality and audio.
func Run(results []domain.Release, opts Options) Result {
	parser := opts.Parser
	if parser == nil {
		parser = releases.DefaultParser()
	}
	observer := opts.Observer
	if observer == nil {
		observer = NopObserver{}
	}

	items := make([]Item, 0, len(results))
	for _, r := range results {
		items = append(items, Item{
			Release:    r,
			Descriptor: releases.Extract(parser, r.Title),
			Retention:  retention.Classify(r.Age, opts.Retention),
		})
	}

	stats := Stats{Input: len(items)}

	if opts.Retention != nil {
		var dropped []Item
		items, dropped = partition(items, func(it Item) bool {
			return !retention.IsPastRetention(it.Release.Age, opts.Retention)
		})
		stats.DroppedByRetention = len(dropped)
		observer.Filtered(StageRetention, items, dropped)
	}

	if filter, _ := ParseQualityFilter(string(opts.QualityFilter)); filter != QualityAll {
		var dropped []Item
		items, dropped = partition(items, func(it Item) bool {
			return filter.Allows(it.Descriptor.Resolution)
		})
		stats.DroppedByQuality = len(dropped)
		observer.Filtered(StageQuality, items, dropped)
	}

	stats.Output = len(items)

	method, _ := ranking.ParseSortMethod(string(opts.SortMethod))

	preferred := language.NormalizePreference(opts.PreferredLanguage)
	if preferred == "" {
		sorted := sortItems(items, method)
		observer.Sorted(language.TierFallback, sorted)
		return Result{Items: sorted, Stats: stats}
	}

	var tiers [3][]Item
	for _, it := range items {
		tier := language.Classify(it.Descriptor, preferred, it.Release.Title)
		tiers[tier] = append(tiers[tier], it)
	}
	observer.Classified(tiers[language.TierPreferred], tiers[language.TierFallback], tiers[language.TierOther])

	flattened := make([]Item, 0, len(items))
	for _, tier := range []language.Tier{language.TierPreferred, language.TierFallback, language.TierOther} {
		sorted := sortItems(tiers[tier], method)
		observer.Sorted(tier, sorted)
		flattened = append(flattened, sorted...)
	}

	groups := &GroupInfo{
		PreferredCount: len(tiers[language.TierPreferred]),
		FallbackCount:  len(tiers[language.TierFallback]),
		OtherCount:     len(tiers[language.TierOther]),
	}
	groups.Group1End = groups.PreferredCount
	groups.Group2End = groups.PreferredCount + groups.FallbackCount

	return Result{Items: flattened, Groups: groups, Stats: stats}
}

func sortItems(items []Item, method ranking.SortMethod) []Item {
	return ranking.SortGroup(items, method, Item.Keys)
}

// partition splits items into those keep accepts and the rest, preserving order.
func partition(items []Item, keep func(Item) bool) (kept, dropped []Item) {
	kept = make([]Item, 0, len(items))
	for _, it := range items {
		if keep(it) {
			kept = append(kept, it)
		} else {
			dropped = append(dropped, it)
		}
	}
	return kept, dropped
}
