package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestHTTPMetricsExportsCounterAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	m.ObserveRequest("GET", "/api/warehouses", "200", 120*time.Millisecond)
	m.ObserveRequest("GET", "/api/warehouses", "200", 80*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "http_requests_total"); err != nil {
		t.Fatalf("fetch requests: %v", err)
	} else if got != 2 {
		t.Fatalf("expected requests=2, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "http_request_duration_seconds"); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestHTTPMetricsNilSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest("GET", "/", "200", time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.ObserveRequest("GET", "/", "200", time.Millisecond)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	var total float64
	for _, metric := range mf.GetMetric() {
		total += metric.GetCounter().GetValue()
	}
	return total, nil
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	var total float64
	for _, metric := range mf.GetMetric() {
		total += metric.GetHistogram().GetSampleSum()
	}
	return total, nil
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}
