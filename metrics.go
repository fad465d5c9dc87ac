package topicfilter

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordResolve is called after each resolution. duration is the total
	// time taken, err is nil if successful.
	RecordResolve(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordResolve(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ResolveCount      atomic.Int64
	ResolveErrors     atomic.Int64
	ResolveTotalNanos atomic.Int64
}

func (c *BasicMetricsCollector) RecordResolve(d time.Duration, err error) {
	c.ResolveCount.Add(1)
	c.ResolveTotalNanos.Add(int64(d))
	if err != nil {
		c.ResolveErrors.Add(1)
	}
}

// AverageResolveTime returns the mean resolution duration so far.
func (c *BasicMetricsCollector) AverageResolveTime() time.Duration {
	n := c.ResolveCount.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(c.ResolveTotalNanos.Load() / n)
}
