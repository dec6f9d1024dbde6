package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest(http.MethodGet, "/invoice/purchase", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/invoice/purchase", http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/invoice/purchase", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestObserveRepositoryCall(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRepositoryCall("list_purchase_invoices", time.Now(), nil)
	m.ObserveRepositoryCall("list_purchase_invoices", time.Now(), errors.New("connection timeout"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RepositoryCalls.WithLabelValues("list_purchase_invoices", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RepositoryCalls.WithLabelValues("list_purchase_invoices", "error")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/health", 200, time.Millisecond)
		m.ObserveRepositoryCall("op", time.Now(), nil)
		m.ObserveErrorResponse("sales invoices", "domain")
	})
}
