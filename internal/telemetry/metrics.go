package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "vecerka/sim"

// Metrics holds the simulation's instruments. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	// interactions counts attempted interactions by kind and result
	interactions metric.Int64Counter

	// ticks counts simulation ticks that advanced the world
	ticks metric.Int64Counter

	// inventoryItems tracks the held-item count per session
	inventoryItems metric.Int64Gauge

	// sessions tracks connected sessions
	sessions metric.Int64UpDownCounter
}

// NewMetrics creates instruments on the global meter provider.
func NewMetrics() (*Metrics, error) {
	return NewMetricsFromMeter(otel.Meter(meterName))
}

// NewMetricsFromMeter creates instruments on meter.
func NewMetricsFromMeter(meter metric.Meter) (*Metrics, error) {
	interactions, err := meter.Int64Counter(
		"vecerka.interactions.total",
		metric.WithDescription("Interactions attempted, by interactable kind and result"),
	)
	if err != nil {
		return nil, fmt.Errorf("interactions counter: %w", err)
	}
	ticks, err := meter.Int64Counter(
		"vecerka.ticks.total",
		metric.WithDescription("Simulation ticks that advanced the world"),
	)
	if err != nil {
		return nil, fmt.Errorf("ticks counter: %w", err)
	}
	inventoryItems, err := meter.Int64Gauge(
		"vecerka.inventory.items",
		metric.WithDescription("Items currently held, per session"),
	)
	if err != nil {
		return nil, fmt.Errorf("inventory gauge: %w", err)
	}
	sessions, err := meter.Int64UpDownCounter(
		"vecerka.sessions.active",
		metric.WithDescription("Sessions currently running"),
	)
	if err != nil {
		return nil, fmt.Errorf("sessions counter: %w", err)
	}
	return &Metrics{
		interactions:   interactions,
		ticks:          ticks,
		inventoryItems: inventoryItems,
		sessions:       sessions,
	}, nil
}

// RecordInteraction counts one interaction attempt.
func (m *Metrics) RecordInteraction(ctx context.Context, kind string, ok bool) {
	if m == nil {
		return
	}
	result := "rejected"
	if ok {
		result = "ok"
	}
	m.interactions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("result", result),
	))
}

// RecordTick counts one advancing tick.
func (m *Metrics) RecordTick(ctx context.Context) {
	if m == nil {
		return
	}
	m.ticks.Add(ctx, 1)
}

// RecordInventory reports the held-item count for session.
func (m *Metrics) RecordInventory(ctx context.Context, session string, n int) {
	if m == nil {
		return
	}
	m.inventoryItems.Record(ctx, int64(n), metric.WithAttributes(attribute.String("session", session)))
}

// SessionStarted and SessionEnded track active sessions.
func (m *Metrics) SessionStarted(ctx context.Context) {
	if m == nil {
		return
	}
	m.sessions.Add(ctx, 1)
}

func (m *Metrics) SessionEnded(ctx context.Context) {
	if m == nil {
		return
	}
	m.sessions.Add(ctx, -1)
}
