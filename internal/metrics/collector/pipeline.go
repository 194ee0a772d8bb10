// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package collector

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/autobrr/releaserank/internal/language"
	"github.com/autobrr/releaserank/internal/pipeline"
)

// PipelineCollector counts releases at every pipeline checkpoint. It is a
// pipeline.Observer and is safe to share between concurrent runs.
type PipelineCollector struct {
	KeptTotal       *prometheus.CounterVec
	DroppedTotal    *prometheus.CounterVec
	SortedTotal     *prometheus.CounterVec
	ResolutionTotal *prometheus.CounterVec
	GroupedTotal    prometheus.Counter
}

var _ pipeline.Observer = (*PipelineCollector)(nil)

func NewPipelineCollector(r *prometheus.Registry) *PipelineCollector {
	m := &PipelineCollector{
		KeptTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "releaserank",
			Subsystem: "pipeline",
			Name:      "releases_kept_total",
			Help:      "Total number of releases admitted by a filter stage",
		}, []string{"stage"}),
		DroppedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "releaserank",
			Subsystem: "pipeline",
			Name:      "releases_dropped_total",
			Help:      "Total number of releases dropped by a filter stage",
		}, []string{"stage"}),
		SortedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "releaserank",
			Subsystem: "pipeline",
			Name:      "releases_sorted_total",
			Help:      "Total number of releases sorted into a language tier",
		}, []string{"tier"}),
		ResolutionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "releaserank",
			Subsystem: "pipeline",
			Name:      "releases_resolution_total",
			Help:      "Total number of ranked releases by extracted resolution",
		}, []string{"resolution"}),
		GroupedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "releaserank",
			Subsystem: "pipeline",
			Name:      "grouped_runs_total",
			Help:      "Total number of pipeline runs that grouped releases by language",
		}),
	}

	r.MustRegister(m.KeptTotal)
	r.MustRegister(m.DroppedTotal)
	r.MustRegister(m.SortedTotal)
	r.MustRegister(m.ResolutionTotal)
	r.MustRegister(m.GroupedTotal)
	return m
}

func (m *PipelineCollector) Filtered(stage pipeline.Stage, kept, dropped []pipeline.Item) {
	m.KeptTotal.WithLabelValues(string(stage)).Add(float64(len(kept)))
	m.DroppedTotal.WithLabelValues(string(stage)).Add(float64(len(dropped)))
}

func (m *PipelineCollector) Classified(_, _, _ []pipeline.Item) {
	m.GroupedTotal.Inc()
}

func (m *PipelineCollector) Sorted(tier language.Tier, items []pipeline.Item) {
	m.SortedTotal.WithLabelValues(tier.String()).Add(float64(len(items)))
	for _, item := range items {
		m.ResolutionTotal.WithLabelValues(item.Descriptor.Resolution.String()).Inc()
	}
}

