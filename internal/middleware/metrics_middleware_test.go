package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bunk-backend/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsLabelsUseRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Metrics)
	r.HandleFunc("/api/reports/{date}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	counter := metrics.HTTPRequestsTotal.WithLabelValues(
		http.MethodGet, "/api/reports/{date}", "200")
	before := testutil.ToFloat64(counter)

	for _, date := range []string{"2026-09-01", "2026-09-02"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/reports/"+date, nil)
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// Both dates land on one template series, not one series per path.
	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestMetricsRecordsStatus(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Metrics)
	r.HandleFunc("/api/ledger", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}).Methods(http.MethodGet)

	counter := metrics.HTTPRequestsTotal.WithLabelValues(
		http.MethodGet, "/api/ledger", "500")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ledger", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
