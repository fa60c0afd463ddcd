//go:build unit
// +build unit

package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type failingMeterProvider struct {
	metric.MeterProvider
	failOnName string
}

func (p failingMeterProvider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	return failingMeter{Meter: p.MeterProvider.Meter(name, opts...), failOnName: p.failOnName}
}

type failingMeter struct {
	metric.Meter
	failOnName string
}

func (m failingMeter) Int64Counter(name string, options ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	if name == m.failOnName {
		return nil, errors.New("boom")
	}
	return m.Meter.Int64Counter(name, options...)
}

func (m failingMeter) Float64Histogram(name string, options ...metric.Float64HistogramOption) (metric.Float64Histogram, error) {
	if name == m.failOnName {
		return nil, errors.New("boom")
	}
	return m.Meter.Float64Histogram(name, options...)
}

func sumFor(t *testing.T, rm metricdata.ResourceMetrics, name string, attrs ...attribute.KeyValue) int64 {
	t.Helper()

	want := attribute.NewSet(attrs...)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s has data %T", name, m.Data)
			for _, dp := range sum.DataPoints {
				if dp.Attributes.Equals(&want) {
					return dp.Value
				}
			}
		}
	}
	return 0
}

func TestRecorder_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	r, err := NewRecorder(provider)
	require.NoError(t, err)

	start := time.Now()
	r.Record("encrypt", "aes-256-gcm", start, nil)
	r.Record("encrypt", "aes-256-gcm", start, nil)
	r.Record("decrypt", "aes-256-gcm", start, errors.New("tampered"))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	encrypt := []attribute.KeyValue{AttrOperation.String("encrypt"), AttrAlgorithm.String("aes-256-gcm")}
	decrypt := []attribute.KeyValue{AttrOperation.String("decrypt"), AttrAlgorithm.String("aes-256-gcm")}

	assert.Equal(t, int64(2), sumFor(t, rm, MetricOperations, encrypt...))
	assert.Equal(t, int64(1), sumFor(t, rm, MetricOperations, decrypt...))
	assert.Equal(t, int64(0), sumFor(t, rm, MetricFailures, encrypt...))
	assert.Equal(t, int64(1), sumFor(t, rm, MetricFailures, decrypt...))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() { r.Record("hash", "sha256", time.Now(), nil) })
}

func TestNewRecorder_DefaultProvider(t *testing.T) {
	r, err := NewRecorder(nil)
	require.NoError(t, err)
	require.NotNil(t, r)
}

func TestNewRecorder_ErrorPaths(t *testing.T) {
	for _, name := range []string{MetricOperations, MetricFailures, MetricDuration} {
		t.Run(name, func(t *testing.T) {
			_, err := NewRecorder(failingMeterProvider{MeterProvider: noop.NewMeterProvider(), failOnName: name})
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}
