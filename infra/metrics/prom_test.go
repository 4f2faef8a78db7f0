package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/sanjithdevineni/AoA-Project-1/core/metrics"
)

func TestPromSink_RecordPlan(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink, ok := sinkIf.(*PromSink)
	if !ok {
		t.Fatalf("expected PromSink")
	}
	ev := coremetrics.PlanEvent{
		RequestID:   "req1",
		Source:      "mqtt",
		Destination: 400,
		Capacity:    200,
		Stations:    3,
		Feasible:    true,
		Stops:       1,
		Duration:    150 * time.Microsecond,
		Time:        time.Now(),
	}
	if err := sink.RecordPlan(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}
	ev.Feasible = false
	if err := sink.RecordPlan(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP plans_total Total number of planning requests
# TYPE plans_total counter
plans_total{outcome="feasible",source="mqtt"} 1
plans_total{outcome="infeasible",source="mqtt"} 1
`
	if err := testutil.CollectAndCompare(sink.plans, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if c := testutil.CollectAndCount(sink.duration); c == 0 {
		t.Errorf("duration not recorded")
	}
	if c := testutil.CollectAndCount(sink.stations); c == 0 {
		t.Errorf("stations not recorded")
	}
}

func TestPromSink_RecordBenchSamples(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink := sinkIf.(*PromSink)
	samples := []coremetrics.BenchSample{
		{Suite: "sorted", Size: 100, Trial: 0, Duration: time.Millisecond},
		{Suite: "sorted", Size: 100, Trial: 1, Duration: time.Millisecond},
		{Suite: "unsorted", Size: 100, Trial: 0, Duration: 2 * time.Millisecond},
	}
	if err := sink.RecordBenchSamples(samples); err != nil {
		t.Fatalf("record error: %v", err)
	}
	expected := `
# HELP bench_samples_total Total number of benchmark samples recorded
# TYPE bench_samples_total counter
bench_samples_total{suite="sorted"} 2
bench_samples_total{suite="unsorted"} 1
`
	if err := testutil.CollectAndCompare(sink.bench, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestPromSink_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("second registration should reuse collectors: %v", err)
	}
}
