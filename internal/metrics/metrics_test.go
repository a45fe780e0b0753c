package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObservePurchase(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObservePurchase("success", 3)
	m.ObservePurchase("success", 2)
	m.ObservePurchase("insufficient_stock", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.purchases.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.purchases.WithLabelValues("insufficient_stock")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.unitsSold))
}

func TestMetrics_Middleware(t *testing.T) {
	m := New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/part_history/{partID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/home", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/api/part_history/1", "/api/part_history/2", "/home"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/part_history/{partID}", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/home", "200")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObservePurchase("success", 1)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `parts_store_purchases_total{result="success"} 1`))
}
