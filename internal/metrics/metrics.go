// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics defines the Prometheus collectors of the consoles: outbound
// calls to the QA backend and inbound requests to the web console.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes recorded for backend calls.
const (
	OutcomeSuccess  = "success"
	OutcomeAPIError = "api_error"
	OutcomeFailure  = "failure"
)

// ClientMetrics holds the collectors of outbound backend calls.
// A nil *ClientMetrics is valid and records nothing.
type ClientMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewClientMetrics creates the backend call collectors and registers them
// on reg.
func NewClientMetrics(reg prometheus.Registerer) (*ClientMetrics, error) {
	m := &ClientMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qa_client_requests_total",
				Help: "Total number of requests sent to the QA backend.",
			},
			[]string{"method", "route", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qa_client_request_duration_seconds",
				Help:    "Latency of requests sent to the QA backend.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	if err := registerAll(reg, m.requests, m.duration); err != nil {
		return nil, err
	}

	return m, nil
}

// Observe records one finished call. route is the request path template,
// e.g. "/knowledge/{id}".
func (m *ClientMetrics) Observe(method, route, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(method, route, outcome).Inc()
	if elapsed > 0 {
		m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
	}
}

func registerAll(reg prometheus.Registerer, collectors ...prometheus.Collector) error {
	var errs []error
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
