// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package retention

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func days(n int) *int { return &n }

func TestClassify(t *testing.T) {
	t.Parallel()

	thresholds := DefaultThresholds()

	tests := []struct {
		name     string
		age      *int
		t        *Thresholds
		expected Status
	}{
		{name: "nil thresholds", age: days(500), t: nil, expected: StatusNone},
		{name: "unknown age", age: nil, t: &thresholds, expected: StatusNone},
		{name: "brand new", age: days(0), t: &thresholds, expected: StatusFresh},
		{name: "fresh boundary", age: days(7), t: &thresholds, expected: StatusFresh},
		{name: "standard", age: days(8), t: &thresholds, expected: StatusStandard},
		{name: "aging boundary", age: days(30), t: &thresholds, expected: StatusAging},
		{name: "warning boundary", age: days(60), t: &thresholds, expected: StatusWarning},
		{name: "filter boundary is still warning", age: days(90), t: &thresholds, expected: StatusWarning},
		{name: "past filter", age: days(100), t: &thresholds, expected: StatusFiltered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Classify(tt.age, tt.t))
		})
	}
}

func TestClassify_MisorderedThresholdsKeepRuleOrder(t *testing.T) {
	t.Parallel()

	// Warning is checked before aging and fresh, so it wins here.
	misordered := &Thresholds{FreshDays: 50, AgingDays: 40, WarningDays: 10, FilterDays: 90}
	assert.Equal(t, StatusWarning, Classify(days(20), misordered))
	assert.Equal(t, StatusFresh, Classify(days(5), misordered))

	// A filter limit below the fresh limit filters before anything else.
	inverted := &Thresholds{FreshDays: 30, AgingDays: 60, WarningDays: 70, FilterDays: 10}
	assert.Equal(t, StatusFiltered, Classify(days(20), inverted))
}

func TestIsPastRetention(t *testing.T) {
	t.Parallel()

	thresholds := &Thresholds{FreshDays: 7, AgingDays: 30, WarningDays: 60, FilterDays: 90}

	assert.True(t, IsPastRetention(days(100), thresholds))
	assert.Equal(t, StatusFiltered, Classify(days(100), thresholds))

	assert.False(t, IsPastRetention(days(90), thresholds))
	assert.False(t, IsPastRetention(nil, thresholds))
	assert.False(t, IsPastRetention(days(100), nil))

	for age := 0; age <= 120; age++ {
		assert.Equal(t, Classify(days(age), thresholds) == StatusFiltered, IsPastRetention(days(age), thresholds),
			fmt.Sprintf("age %d", age))
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "🟢 3d", Label(StatusFresh, days(3)))
	assert.Equal(t, "🟠 61d", Label(StatusWarning, days(61)))
	assert.Equal(t, "12d", Label(StatusNone, days(12)))
	assert.Empty(t, Label(StatusFresh, nil))
}
