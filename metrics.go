package strbuild

import (
	"context"
	"time"
)

func (b *Builder) recordBuild() {
	if b.metrics == nil {
		return
	}

	metrics := BuildMetrics{
		Grows:        b.grows,
		PeakCapacity: b.peakCap,
		FinalLength:  b.length,
		Duration:     time.Since(b.started),
	}

	b.metrics.RecordBuild(context.Background(), metrics)
}
