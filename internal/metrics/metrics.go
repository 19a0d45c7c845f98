// Package metrics defines the Prometheus collectors of the service.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "printshop"

// Metrics holds the application collectors.
type Metrics struct {
	registry        *prometheus.Registry
	ordersCreated   *prometheus.CounterVec
	statusUpdates   *prometheus.CounterVec
	expensesCreated prometheus.Counter
	exports         *prometheus.CounterVec
	assistantParses *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry that also carries the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders created, by payment method and VAT flag.",
		}, []string{"payment_method", "vat"}),
		statusUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_updates_total",
			Help:      "Order status mutations, by field and whether an order was found.",
		}, []string{"field", "applied"}),
		expensesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expenses_created_total",
			Help:      "Expenses recorded.",
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_exports_total",
			Help:      "Invoice exports, by trigger and result.",
		}, []string{"trigger", "result"}),
		assistantParses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assistant_parses_total",
			Help:      "Natural-language order parses, by result.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ordersCreated,
		m.statusUpdates,
		m.expensesCreated,
		m.exports,
		m.assistantParses,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) OrderCreated(paymentMethod string, hasVAT bool) {
	if m == nil {
		return
	}
	vat := "false"
	if hasVAT {
		vat = "true"
	}
	m.ordersCreated.WithLabelValues(paymentMethod, vat).Inc()
}

func (m *Metrics) StatusUpdated(field string, applied bool) {
	if m == nil {
		return
	}
	a := "false"
	if applied {
		a = "true"
	}
	m.statusUpdates.WithLabelValues(field, a).Inc()
}

func (m *Metrics) ExpenseCreated() {
	if m == nil {
		return
	}
	m.expensesCreated.Inc()
}

// Export records an export outcome. trigger is "manual" or "scheduled"; result is "ok", "busy" or "error".
func (m *Metrics) Export(trigger, result string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(trigger, result).Inc()
}

// AssistantParse records a parse outcome: "ok", "empty" or "error".
func (m *Metrics) AssistantParse(result string) {
	if m == nil {
		return
	}
	m.assistantParses.WithLabelValues(result).Inc()
}

// ObserveHTTP records one finished request.
func (m *Metrics) ObserveHTTP(route, method, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(seconds)
}
