// Package otelstats exports stats.Tracker metrics to OpenTelemetry.
package otelstats

import (
	"context"

	"github.com/bool64/stats"
	"github.com/puzpuzpuz/xsync"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var _ stats.Tracker = &Tracker{}

// Tracker records Add as counter increments and Set as gauge values.
//
// Instruments are created lazily per metric name.
type Tracker struct {
	meter    metric.Meter
	counters *xsync.MapOf[string, metric.Float64Counter]
	gauges   *xsync.MapOf[string, metric.Float64Gauge]
}

// NewTracker creates a tracker that uses meter to create instruments.
func NewTracker(meter metric.Meter) *Tracker {
	return &Tracker{
		meter:    meter,
		counters: xsync.NewMapOf[metric.Float64Counter](),
		gauges:   xsync.NewMapOf[metric.Float64Gauge](),
	}
}

// Add increments counter.
func (t *Tracker) Add(ctx context.Context, name string, increment float64, labelsAndValues ...string) {
	c, ok := t.counters.Load(name)
	if !ok {
		// Meter returns a no-op instrument along with error, so the error is not fatal.
		c, _ = t.meter.Float64Counter(name)
		c, _ = t.counters.LoadOrStore(name, c)
	}

	c.Add(ctx, increment, metric.WithAttributes(attributes(labelsAndValues)...))
}

// Set records gauge value.
func (t *Tracker) Set(ctx context.Context, name string, absolute float64, labelsAndValues ...string) {
	g, ok := t.gauges.Load(name)
	if !ok {
		g, _ = t.meter.Float64Gauge(name)
		g, _ = t.gauges.LoadOrStore(name, g)
	}

	g.Record(ctx, absolute, metric.WithAttributes(attributes(labelsAndValues)...))
}

func attributes(labelsAndValues []string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labelsAndValues)/2)

	for i := 0; i+1 < len(labelsAndValues); i += 2 {
		attrs = append(attrs, attribute.String(labelsAndValues[i], labelsAndValues[i+1]))
	}

	return attrs
}
