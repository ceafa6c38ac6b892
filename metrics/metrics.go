// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics has the Prometheus collectors of the frame loop.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes all metric names.
const Namespace = "orrery"

// Collector records frame loop activity.
type Collector struct {
	Registry *prometheus.Registry

	frames          prometheus.Counter
	frameDuration   prometheus.Histogram
	simulatedDays   prometheus.Counter
	selections      *prometheus.CounterVec
	assetFailures   *prometheus.CounterVec
	activeSatellite prometheus.Gauge
	timeScale       prometheus.Gauge
}

// NewCollector returns a collector with its own registry.
func NewCollector() *Collector {
	m := &Collector{
		Registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "frames_total",
			Help:      "Total number of frames run",
		}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "frame_duration_seconds",
			Help:      "Time spent running a frame",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		simulatedDays: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "simulated_days_total",
			Help:      "Total simulated time in days",
		}),
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "selections_total",
			Help:      "Total number of body selections",
		}, []string{"body"}),
		assetFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "asset_failures_total",
			Help:      "Total number of failed asset loads",
		}, []string{"kind"}),
		activeSatellite: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "active_satellites",
			Help:      "Number of satellites with a visual",
		}),
		timeScale: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "time_scale_days_per_second",
			Help:      "Current simulated days per wall second",
		}),
	}
	m.Registry.MustRegister(m.frames, m.frameDuration, m.simulatedDays, m.selections,
		m.assetFailures, m.activeSatellite, m.timeScale)
	return m
}

// RecordFrame records one frame that simulated the given days.
func (m *Collector) RecordFrame(duration time.Duration, days, timeScale float32, activeSatellites int) {
	m.frames.Inc()
	m.frameDuration.Observe(duration.Seconds())
	if days > 0 {
		m.simulatedDays.Add(float64(days))
	}
	m.timeScale.Set(float64(timeScale))
	m.activeSatellite.Set(float64(activeSatellites))
}

// RecordSelection records the selection of the named body.
func (m *Collector) RecordSelection(body string) {
	m.selections.WithLabelValues(body).Inc()
}

// RecordAssetFailure records a failed load of the given kind of asset.
func (m *Collector) RecordAssetFailure(kind string) {
	m.assetFailures.WithLabelValues(kind).Inc()
}

// Handler returns the HTTP handler serving the metrics.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
