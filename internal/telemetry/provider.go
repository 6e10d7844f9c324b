package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// ShutdownFunc flushes and stops the metric pipeline.
type ShutdownFunc func(context.Context) error

// MetricsConfig controls metric export.
type MetricsConfig struct {
	Enabled  bool
	Interval time.Duration
}

// InitMetrics installs a global meter provider exporting to stdout every
// Interval. When disabled the otel default no-op provider stays in place.
func InitMetrics(cfg MetricsConfig) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	exporter, err := stdoutmetric.New()
	if err != nil {
		return nil, fmt.Errorf("create metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.Interval))),
	)
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}
