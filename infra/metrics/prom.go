package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/sanjithdevineni/AoA-Project-1/core/metrics"
)

// PromSink records planning events in Prometheus metrics.
type PromSink struct {
	plans    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	stations prometheus.Histogram
	bench    *prometheus.CounterVec
}

// NewPromSink registers planning metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	plans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plans_total",
		Help: "Total number of planning requests",
	}, []string{"source", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "plan_duration_seconds",
		Help:    "Time spent computing a plan",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})
	stations := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "plan_stations",
		Help:    "Number of stations in the planned catalog",
		Buckets: prometheus.ExponentialBuckets(1, 4, 9),
	})
	bench := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bench_samples_total",
		Help: "Total number of benchmark samples recorded",
	}, []string{"suite"})

	if err := reg.Register(plans); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			plans = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(stations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			stations = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(bench); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			bench = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{plans: plans, duration: duration, stations: stations, bench: bench}, nil
}

// RecordPlan increments the plan counter and observes timing histograms.
func (s *PromSink) RecordPlan(ev coremetrics.PlanEvent) error {
	outcome := "infeasible"
	if ev.Feasible {
		outcome = "feasible"
	}
	s.plans.WithLabelValues(ev.Source, outcome).Inc()
	s.duration.WithLabelValues(ev.Source).Observe(ev.Duration.Seconds())
	s.stations.Observe(float64(ev.Stations))
	return nil
}

// RecordBenchSamples counts benchmark samples per suite.
func (s *PromSink) RecordBenchSamples(samples []coremetrics.BenchSample) error {
	for _, sample := range samples {
		s.bench.WithLabelValues(sample.Suite).Inc()
	}
	return nil
}
