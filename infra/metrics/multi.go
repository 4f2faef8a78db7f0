package metrics

import coremetrics "github.com/sanjithdevineni/AoA-Project-1/core/metrics"

// MultiSink fans planning events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPlan forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordPlan(ev coremetrics.PlanEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordPlan(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordBenchSamples forwards benchmark samples when supported by the sink.
func (m *MultiSink) RecordBenchSamples(samples []coremetrics.BenchSample) error {
	for _, s := range m.Sinks {
		if br, ok := s.(coremetrics.BenchRecorder); ok {
			if err := br.RecordBenchSamples(samples); err != nil {
				return err
			}
		}
	}
	return nil
}
