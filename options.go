package simclust

import (
	"log/slog"

	"github.com/hupe1980/simclust/kmeans"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	modelOptions     []kmeans.Option
}

// Option configures Clusterer construction.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring steps and fits.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &simclust.BasicMetricsCollector{}
//	c, _ := simclust.New(data, 3, simclust.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Steps: %d, Avg latency: %dns\n", stats.StepCount, stats.StepAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := simclust.NewJSONLogger(slog.LevelDebug)
//	c, _ := simclust.New(data, 3, simclust.WithLogger(logger))
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

// WithSeed seeds centroid initialization deterministically.
func WithSeed(seed uint64) Option {
	return WithRandomSource(kmeans.NewSource(seed))
}

// WithRandomSource sets the source used to seed centroids.
func WithRandomSource(src kmeans.RandomSource) Option {
	return func(o *options) {
		o.modelOptions = append(o.modelOptions, kmeans.WithRandomSource(src))
	}
}

// WithMinEntries sets how many entries a row needs to take part in assignment.
func WithMinEntries(n int) Option {
	return func(o *options) {
		o.modelOptions = append(o.modelOptions, kmeans.WithMinEntries(n))
	}
}

// WithStarvationPolicy sets what happens to centroid cells without contributions.
func WithStarvationPolicy(p kmeans.StarvationPolicy) Option {
	return func(o *options) {
		o.modelOptions = append(o.modelOptions, kmeans.WithStarvationPolicy(p))
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
