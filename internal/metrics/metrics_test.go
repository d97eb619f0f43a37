package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getGaugeValue(g prometheus.Gauge) float64 {
	var m dto.Metric
	if err := g.(prometheus.Metric).Write(&m); err != nil {
		return 0
	}
	return m.GetGauge().GetValue()
}

func getCounterVecValue(cv *prometheus.CounterVec, labels ...string) float64 {
	c, err := cv.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func TestMetrics_CatalogRequestsTotal(t *testing.T) {
	before := getCounterVecValue(CatalogRequestsTotal, "search", "200")
	CatalogRequestsTotal.WithLabelValues("search", "200").Inc()
	after := getCounterVecValue(CatalogRequestsTotal, "search", "200")

	if after != before+1 {
		t.Errorf("Expected counter to increment by 1, got diff %.0f", after-before)
	}
}

func TestMetrics_WidgetActionsTotal_Independent(t *testing.T) {
	beforeRendered := getCounterVecValue(WidgetActionsTotal, "episodes", "rendered")
	beforeStale := getCounterVecValue(WidgetActionsTotal, "episodes", "stale")

	WidgetActionsTotal.WithLabelValues("episodes", "stale").Inc()

	if got := getCounterVecValue(WidgetActionsTotal, "episodes", "rendered"); got != beforeRendered {
		t.Errorf("Expected rendered counter to be unchanged, got diff %.0f", got-beforeRendered)
	}
	if got := getCounterVecValue(WidgetActionsTotal, "episodes", "stale"); got != beforeStale+1 {
		t.Errorf("Expected stale counter to increment by 1, got diff %.0f", got-beforeStale)
	}
}

func TestMetrics_LiveSessions(t *testing.T) {
	before := getGaugeValue(LiveSessions)
	LiveSessions.Inc()
	LiveSessions.Inc()
	LiveSessions.Dec()
	if got := getGaugeValue(LiveSessions); got != before+1 {
		t.Errorf("Expected gauge to move by 1, got diff %.0f", got-before)
	}
	LiveSessions.Dec()
}

func TestMetrics_CatalogRequestDuration(t *testing.T) {
	CatalogRequestDuration.WithLabelValues("episodes").Observe(0.25)

	h, err := CatalogRequestDuration.GetMetricWithLabelValues("episodes")
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues: %v", err)
	}
	var m dto.Metric
	if err := h.(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if m.GetHistogram().GetSampleCount() == 0 {
		t.Error("Expected at least one observation")
	}
}

func TestNewHTTPServer_ServesMetrics(t *testing.T) {
	srv := NewHTTPServer("localhost", 0)
	if srv.Addr != "localhost:9090" {
		t.Errorf("Expected default port 9090, got %s", srv.Addr)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "widget_live_sessions") {
		t.Error("Expected widget metrics in the exposition output")
	}
}
