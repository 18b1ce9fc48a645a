package verify

import (
	"log/slog"
	"runtime"
	"time"
)

type options struct {
	workers          int
	samples          int
	seed             int64
	ops              []Op
	maxMismatches    int
	progressInterval time.Duration
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Verifier.
type Option func(*options)

// WithWorkers sets the number of goroutines that evaluate cases concurrently.
// Values below 1 use runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSamples sets the number of random operand sets checked per operator for
// representations too wide to sweep exhaustively. Boundary operands are
// always checked in addition to the samples.
func WithSamples(n int) Option {
	return func(o *options) {
		o.samples = n
	}
}

// WithSeed sets the seed for sampled operands. Runs with the same seed check
// the same cases.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithOps restricts verification to the given operators.
func WithOps(ops ...Op) Option {
	return func(o *options) {
		o.ops = ops
	}
}

// WithMaxMismatches caps the mismatches recorded per operator. Mismatches
// beyond the cap are still counted.
func WithMaxMismatches(n int) Option {
	return func(o *options) {
		o.maxMismatches = n
	}
}

// WithProgressInterval sets how often a running sweep logs its progress at
// debug level. Zero disables progress logging.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &verify.BasicMetricsCollector{}
//	v := verify.New(verify.WithMetricsCollector(metrics))
//	// ... run ...
//	stats := metrics.GetStats()
//	fmt.Printf("Cases: %d, Mismatches: %d\n", stats.CaseCount, stats.MismatchCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := verify.NewJSONLogger(slog.LevelInfo)
//	v := verify.New(verify.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers:          runtime.GOMAXPROCS(0),
		samples:          100_000,
		seed:             1,
		ops:              AllOps,
		maxMismatches:    32,
		progressInterval: 5 * time.Second,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.samples < 0 {
		o.samples = 0
	}
	return o
}
