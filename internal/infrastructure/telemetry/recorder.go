// Package telemetry records OpenTelemetry metrics for crypto operations.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "crypto-services.cryptography"

// Metric names.
const (
	MetricOperations = "crypto.operations"
	MetricFailures   = "crypto.failures"
	MetricDuration   = "crypto.operation.duration"
)

// Attribute keys.
const (
	AttrOperation = attribute.Key("operation")
	AttrAlgorithm = attribute.Key("algorithm")
)

// Recorder counts operations and failures. A nil *Recorder records nothing.
type Recorder struct {
	operations metric.Int64Counter
	failures   metric.Int64Counter
	duration   metric.Float64Histogram
}

// NewRecorder creates the instruments on provider, falling back to the global provider when nil.
func NewRecorder(provider metric.MeterProvider) (*Recorder, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}

	meter := provider.Meter(meterName)

	var (
		r   Recorder
		err error
	)

	r.operations, err = meter.Int64Counter(
		MetricOperations,
		metric.WithDescription("Number of crypto operations performed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", MetricOperations, err)
	}

	r.failures, err = meter.Int64Counter(
		MetricFailures,
		metric.WithDescription("Number of crypto operations that returned an error"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", MetricFailures, err)
	}

	r.duration, err = meter.Float64Histogram(
		MetricDuration,
		metric.WithDescription("Time taken per crypto operation"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s histogram: %w", MetricDuration, err)
	}

	return &r, nil
}

// Record adds one operation since start, and one failure when err is non-nil.
func (r *Recorder) Record(operation, algorithm string, start time.Time, err error) {
	if r == nil {
		return
	}

	ctx := context.Background()
	attrs := metric.WithAttributes(AttrOperation.String(operation), AttrAlgorithm.String(algorithm))

	r.operations.Add(ctx, 1, attrs)
	r.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil {
		r.failures.Add(ctx, 1, attrs)
	}
}
