package fastrsqrt

import (
	"runtime"
)

// DefaultChunkSize is the number of vectors a Normalizer processes per task.
const DefaultChunkSize = 1024

type options struct {
	iterations       int
	concurrency      int
	chunkSize        int
	rateLimit        float64
	skipInvalid      bool
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		iterations:       1,
		concurrency:      runtime.GOMAXPROCS(0),
		chunkSize:        DefaultChunkSize,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a Normalizer.
type Option func(*options)

// WithIterations sets the number of Newton-Raphson iterations per vector.
//
// Values below 1 still run one iteration. Default: 1.
func WithIterations(iterations int) Option {
	return func(o *options) {
		o.iterations = iterations
	}
}

// WithConcurrency limits the number of chunks normalized in parallel.
//
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.concurrency = n
	}
}

// WithChunkSize sets the number of vectors per parallel task.
//
// If n <= 0, DefaultChunkSize is used.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultChunkSize
		}
		o.chunkSize = n
	}
}

// WithRateLimit caps throughput at vectorsPerSecond.
//
// If vectorsPerSecond <= 0, throughput is unlimited (default).
func WithRateLimit(vectorsPerSecond float64) Option {
	return func(o *options) {
		o.rateLimit = vectorsPerSecond
	}
}

// WithSkipInvalid controls how invalid vectors are handled.
//
// When false (default), the first invalid vector aborts the batch with an
// *ErrInvalidVector. When true, invalid vectors are left as the zero vector
// in the output and reported in BatchResult.Rejected.
func WithSkipInvalid(skip bool) Option {
	return func(o *options) {
		o.skipInvalid = skip
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
