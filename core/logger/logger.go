package logger

// Logger exposes the logging methods used across the planner: formatted
// messages at the usual severity levels. Adapters live in infra/logger.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
