// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package domain

// Release is a single search result as handed over by an indexer client.
type Release struct {
	Title       string `json:"title"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	// Size in bytes, 0 when the indexer did not report one.
	Size int64 `json:"size,omitempty"`
	// Age in days since posting, nil when unknown.
	Age     *int   `json:"age,omitempty"`
	Indexer string `json:"indexer,omitempty"`
}

// SizeOrZero returns the size, treating negative values as unknown.
func (r Release) SizeOrZero() int64 {
	if r.Size < 0 {
		return 0
	}
	return r.Size
}

// AgeOrZero returns the age in days, 0 when unknown.
func (r Release) AgeOrZero() int {
	if r.Age == nil {
		return 0
	}
	return *r.Age
}
