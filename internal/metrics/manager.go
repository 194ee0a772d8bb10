// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/autobrr/releaserank/internal/metrics/collector"
)

type Manager struct {
	registry          *prometheus.Registry
	pipelineCollector *collector.PipelineCollector
}

func NewManager() *Manager {
	registry := prometheus.NewRegistry()

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	pipelineCollector := collector.NewPipelineCollector(registry)

	log.Debug().Msg("Metrics manager initialized with pipeline collector")

	return &Manager{
		registry:          registry,
		pipelineCollector: pipelineCollector,
	}
}

func (m *Manager) GetRegistry() *prometheus.Registry {
	return m.registry
}

// Pipeline returns the collector to pass as pipeline observer.
func (m *Manager) Pipeline() *collector.PipelineCollector {
	return m.pipelineCollector
}

// WriteTextfile writes all gathered metrics to path in the node exporter
// textfile collector format.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.Wrapf(err, "could not write metrics to %s", path)
	}
	return nil
}
