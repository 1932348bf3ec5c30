package strbuild

import (
	"context"
	"time"
)

// BuildMetrics contains the metrics recorded for one builder lifetime,
// from construction (or first use) to disposal.
type BuildMetrics struct {
	// Grows is the number of times the backing buffer was replaced with
	// a larger one.
	Grows int

	// PeakCapacity is the largest buffer capacity held during the build.
	PeakCapacity int

	// FinalLength is the number of bytes written when the builder was
	// disposed.
	FinalLength int

	// Duration is the wall time between construction and disposal.
	Duration time.Duration
}

// MetricsCollector is the interface for collecting builder metrics.
// Implementations should be thread-safe: independent builders on different
// goroutines may share one collector.
//
// RecordBuild should be fast and non-blocking; it runs inline on the
// disposal path.
type MetricsCollector interface {
	RecordBuild(ctx context.Context, metrics BuildMetrics)
}

type Config struct {
	// InitialCapacity is the minimum capacity of the first rented
	// buffer. Defaults to 128.
	InitialCapacity int

	// Pool supplies the backing buffers. Defaults to SharedPool().
	Pool Pool

	// Logger receives lifecycle events (rent, grow, dispose) at debug
	// level. Defaults to a no-op logger.
	Logger Logger

	MetricsCollector MetricsCollector
}
