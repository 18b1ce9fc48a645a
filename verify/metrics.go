package verify

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting verifier metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSweep is called after all cases of one operator have run.
	// cases is the number of operand sets checked, mismatches the number
	// that disagreed with the oracle.
	RecordSweep(typ string, op Op, cases, mismatches uint64, duration time.Duration)

	// RecordRun is called after each representation has been verified.
	// err is nil if the run completed, even when mismatches were found.
	RecordRun(typ string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSweep(string, Op, uint64, uint64, time.Duration) {}
func (NoopMetricsCollector) RecordRun(string, time.Duration, error)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SweepCount      atomic.Int64
	CaseCount       atomic.Int64
	MismatchCount   atomic.Int64
	SweepTotalNanos atomic.Int64
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
}

// RecordSweep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSweep(_ string, _ Op, cases, mismatches uint64, duration time.Duration) {
	b.SweepCount.Add(1)
	b.CaseCount.Add(int64(cases))
	b.MismatchCount.Add(int64(mismatches))
	b.SweepTotalNanos.Add(duration.Nanoseconds())
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_ string, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SweepCount:    b.SweepCount.Load(),
		CaseCount:     b.CaseCount.Load(),
		MismatchCount: b.MismatchCount.Load(),
		SweepAvgNanos: avg(b.SweepTotalNanos.Load(), b.SweepCount.Load()),
		RunCount:      b.RunCount.Load(),
		RunErrors:     b.RunErrors.Load(),
		RunAvgNanos:   avg(b.RunTotalNanos.Load(), b.RunCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SweepCount    int64
	CaseCount     int64
	MismatchCount int64
	SweepAvgNanos int64
	RunCount      int64
	RunErrors     int64
	RunAvgNanos   int64
}
