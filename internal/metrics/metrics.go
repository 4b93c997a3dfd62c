package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	registry           *prometheus.Registry
	stepOutcomesTotal  *prometheus.CounterVec
	balanceFailures    *prometheus.CounterVec
	requestsTotal      *prometheus.CounterVec
	requestDurationsMS *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	steps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainflow",
		Name:      "flow_step_outcomes_total",
		Help:      "Outcomes of flow writes by kind, step and outcome",
	}, []string{"kind", "step", "outcome"})

	balances := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainflow",
		Name:      "balance_read_failures_total",
		Help:      "Balance reads that failed and were reported as unknown",
	}, []string{"token"})

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainflow",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"route", "status"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainflow",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"route"})

	r := prometheus.NewRegistry()
	r.MustRegister(steps, balances, requests, latency)

	return &Registry{
		registry:           r,
		stepOutcomesTotal:  steps,
		balanceFailures:    balances,
		requestsTotal:      requests,
		requestDurationsMS: latency,
	}
}

func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Registry) StepOutcome(kind string, step int, outcome string) {
	m.stepOutcomesTotal.WithLabelValues(kind, strconv.Itoa(step), outcome).Inc()
}

func (m *Registry) BalanceReadFailed(token string) {
	m.balanceFailures.WithLabelValues(token).Inc()
}

func (m *Registry) ObserveRequest(route string, status int, took time.Duration) {
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDurationsMS.WithLabelValues(route).Observe(float64(took.Milliseconds()))
}
