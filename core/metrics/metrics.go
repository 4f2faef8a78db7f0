package metrics

import "time"

// PlanEvent represents a completed planning request to be recorded.
type PlanEvent struct {
	RequestID   string
	Source      string // "cli", "mqtt" or "bench"
	Destination float64
	Capacity    float64
	Stations    int
	Feasible    bool
	Stops       int
	Duration    time.Duration
	Time        time.Time
}

// MetricsSink records planning events for observability purposes.
type MetricsSink interface {
	RecordPlan(ev PlanEvent) error
}

// BenchSample is a single timed benchmark measurement.
type BenchSample struct {
	Suite    string
	Size     int
	Trial    int
	Duration time.Duration
	Stops    int
	Time     time.Time
}

// BenchRecorder is implemented by sinks able to record benchmark samples.
type BenchRecorder interface {
	RecordBenchSamples(samples []BenchSample) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlan(PlanEvent) error { return nil }

func (NopSink) RecordBenchSamples([]BenchSample) error { return nil }
