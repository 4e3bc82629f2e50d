package fastrsqrt

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBatch is called after each batch normalization.
	// count is the number of input vectors, rejected the number skipped as
	// invalid, err is nil if the batch completed.
	RecordBatch(count, rejected int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBatch(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BatchCount      atomic.Int64
	BatchErrors     atomic.Int64
	BatchTotalNanos atomic.Int64
	VectorCount     atomic.Int64
	RejectedCount   atomic.Int64
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, rejected int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	b.VectorCount.Add(int64(count))
	b.RejectedCount.Add(int64(rejected))
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	Batches       int64
	BatchErrors   int64
	Vectors       int64
	Rejected      int64
	AvgBatchNanos int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		Batches:     b.BatchCount.Load(),
		BatchErrors: b.BatchErrors.Load(),
		Vectors:     b.VectorCount.Load(),
		Rejected:    b.RejectedCount.Load(),
	}
	if s.Batches > 0 {
		s.AvgBatchNanos = b.BatchTotalNanos.Load() / s.Batches
	}
	return s
}
