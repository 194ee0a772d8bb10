// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Package retention classifies release age against Usenet retention thresholds.
package retention

import "fmt"

// Thresholds are the retention boundaries in days. Callers are expected to
// keep FreshDays <= AgingDays <= WarningDays <= FilterDays; the ordering is
// not validated and the classification rules run in a fixed order regardless.
type Thresholds struct {
	FreshDays   int `json:"freshDays" toml:"freshDays" mapstructure:"freshDays"`
	AgingDays   int `json:"agingDays" toml:"agingDays" mapstructure:"agingDays"`
	WarningDays int `json:"warningDays" toml:"warningDays" mapstructure:"warningDays"`
	FilterDays  int `json:"filterDays" toml:"filterDays" mapstructure:"filterDays"`
}

// DefaultThresholds returns 7/30/60/90 days.
func DefaultThresholds() Thresholds {
	return Thresholds{FreshDays: 7, AgingDays: 30, WarningDays: 60, FilterDays: 90}
}

// Status is the health tier of a release age.
type Status string

const (
	// StatusNone means no classification was made: retention is disabled or the age is unknown.
	StatusNone     Status = ""
	StatusFresh    Status = "fresh"
	StatusStandard Status = "standard"
	StatusAging    Status = "aging"
	StatusWarning  Status = "warning"
	StatusFiltered Status = "filtered"
)

// Classify maps age to a Status. Rules are evaluated in order and the first
// match wins, so misordered thresholds produce whatever the cascade yields.
func Classify(age *int, t *Thresholds) Status {
	switch {
	case t == nil || age == nil:
		return StatusNone
	case *age > t.FilterDays:
		return StatusFiltered
	case *age >= t.WarningDays:
		return StatusWarning
	case *age >= t.AgingDays:
		return StatusAging
	case *age <= t.FreshDays:
		return StatusFresh
	default:
		return StatusStandard
	}
}

// IsPastRetention reports whether the release should be excluded. It is the
// filtered rule of Classify on its own.
func IsPastRetention(age *int, t *Thresholds) bool {
	return t != nil && age != nil && *age > t.FilterDays
}

var statusIcons = map[Status]string{
	StatusFresh:    "🟢",
	StatusStandard: "🔵",
	StatusAging:    "🟡",
	StatusWarning:  "🟠",
	StatusFiltered: "🔴",
}

// Label renders the status and age for display, e.g. "🟢 3d".
// An unknown age renders as "", an unclassified known age as just "12d".
func Label(status Status, age *int) string {
	if age == nil {
		return ""
	}
	if icon, ok := statusIcons[status]; ok {
		return fmt.Sprintf("%s %dd", icon, *age)
	}
	return fmt.Sprintf("%dd", *age)
}
