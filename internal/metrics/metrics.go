// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus instruments of the service and the
// registry they are exposed from.
//
// All Observe* methods are safe to call on a nil *Metrics, which turns them
// into no-ops.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "link_txt"

// Provisioning outcomes used as the "outcome" label.
const (
	OutcomeSuccess      = "success"
	OutcomeValidation   = "validation_failed"
	OutcomeUnauthorized = "unauthorized"
	OutcomeStepFailed   = "step_failed"
	OutcomeRemoteFailed = "remote_failed"
)

// statusTransportError labels remote calls that never got an HTTP response.
const statusTransportError = "transport_error"

type Metrics struct {
	registry *prometheus.Registry

	remoteCalls          *prometheus.CounterVec
	remoteCallDuration   *prometheus.HistogramVec
	provisionings        *prometheus.CounterVec
	provisioningDuration prometheus.Histogram
	httpRequests         *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
}

// New creates the instruments on a fresh registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		remoteCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "platform_calls_total",
			Help:      "Calls made to the ad platform API",
		}, []string{"operation", "status"}),

		remoteCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "platform_call_duration_seconds",
			Help:      "Duration of ad platform API calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),

		provisionings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provisionings_total",
			Help:      "Finished provisioning runs by outcome",
		}, []string{"outcome"}),

		provisioningDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provisioning_duration_seconds",
			Help:      "Duration of whole provisioning runs",
			Buckets:   prometheus.DefBuckets,
		}),

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Inbound HTTP requests",
		}, []string{"route", "method", "status"}),

		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of inbound HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.remoteCalls,
		m.remoteCallDuration,
		m.provisionings,
		m.provisioningDuration,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRemoteCall records one platform call. status 0 means the call
// failed before a response was received.
func (m *Metrics) ObserveRemoteCall(operation string, status int, d time.Duration) {
	if m == nil {
		return
	}

	label := statusTransportError
	if status > 0 {
		label = strconv.Itoa(status)
	}

	m.remoteCalls.WithLabelValues(operation, label).Inc()
	m.remoteCallDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObserveProvisioning records one finished provisioning run.
func (m *Metrics) ObserveProvisioning(outcome string, d time.Duration) {
	if m == nil {
		return
	}

	m.provisionings.WithLabelValues(outcome).Inc()
	m.provisioningDuration.Observe(d.Seconds())
}

// ObserveHTTPRequest records one inbound request.
func (m *Metrics) ObserveHTTPRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}

	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(d.Seconds())
}
