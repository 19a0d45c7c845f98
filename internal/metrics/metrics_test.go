package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/printshop_pos/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.OrderCreated("CASH", false)
		m.StatusUpdated("paymentStatus", true)
		m.ExpenseCreated()
		m.Export("manual", "ok")
		m.AssistantParse("error")
		m.ObserveHTTP("/orders", "GET", "200", 0.01)
	})
}

func TestHandlerExposesCounters(t *testing.T) {
	m := metrics.New()
	m.OrderCreated("TRANSFER", true)
	m.Export("scheduled", "error")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `printshop_orders_created_total{payment_method="TRANSFER",vat="true"} 1`)
	assert.Contains(t, body, `printshop_invoice_exports_total{result="error",trigger="scheduled"} 1`)
}
