package metrics

// Package metrics defines interfaces and implementations for collecting
// planning metrics. Sinks like PromSink and InfluxSink record completed
// plan computations and benchmark samples and can be combined with
// NewMultiSink. NopSink discards everything and backs tests and fallback
// paths.
