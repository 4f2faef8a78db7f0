package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/sanjithdevineni/AoA-Project-1/core/metrics"
)

func TestInfluxSink_RecordPlan(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()
	now := time.Now()
	ev := coremetrics.PlanEvent{
		RequestID:   "req1",
		Source:      "mqtt",
		Destination: 400,
		Capacity:    200,
		Stations:    3,
		Feasible:    true,
		Stops:       1,
		Duration:    1500 * time.Microsecond,
		Time:        now,
	}
	if err := sink.RecordPlan(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}
	p := write.NewPointWithMeasurement("plan_event").
		AddTag("source", "mqtt").
		AddTag("feasible", "true").
		AddTag("request_id", "req1").
		AddField("destination", 400.0).
		AddField("capacity", 200.0).
		AddField("stations", 3).
		AddField("stops", 1).
		AddField("duration_ms", 1.5).
		SetTime(now)
	expected := strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond))
	if strings.TrimSpace(body) != expected {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestInfluxSink_RecordBenchSamples(t *testing.T) {
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		bodies = append(bodies, strings.TrimSpace(string(data)))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()
	now := time.Now()
	samples := []coremetrics.BenchSample{
		{Suite: "sorted", Size: 1000, Trial: 2, Duration: 250 * time.Microsecond, Stops: 57, Time: now},
	}
	if err := sink.RecordBenchSamples(samples); err != nil {
		t.Fatalf("record error: %v", err)
	}
	p := write.NewPointWithMeasurement("bench_sample").
		AddTag("suite", "sorted").
		AddField("size", 1000).
		AddField("trial", 2).
		AddField("duration_ms", 0.25).
		AddField("stops", 57).
		SetTime(now)
	expected := strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond))
	if len(bodies) != 1 || bodies[0] != expected {
		t.Errorf("unexpected bodies: %#v", bodies)
	}
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			called = true
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}))
	defer srv.Close()

	cfg := coremetrics.Config{
		InfluxURL:    srv.URL + "/api/v2/write",
		InfluxToken:  "tok",
		InfluxOrg:    "org",
		InfluxBucket: "bucket",
	}
	sink := NewInfluxSinkWithFallback(cfg)
	if _, ok := sink.(*InfluxSink); ok {
		t.Fatalf("expected NopSink on failing health check")
	}
	if !called {
		t.Fatalf("health endpoint not called")
	}
}
