package metrics

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/marcelsud/webhook-relay/relay"
	"github.com/marcelsud/webhook-relay/routes"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter records relay metrics with OpenTelemetry and exposes them in Prometheus format
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *prom.Registry
	table         *routes.Table

	// OTel meters and instruments
	meter            metric.Meter
	dispatchCounter  metric.Int64Counter
	dispatchDuration metric.Float64Histogram
	auditCounter     metric.Int64Counter
	routesGauge      metric.Int64ObservableGauge
}

var _ relay.Recorder = (*OTelExporter)(nil)

// NewOTelExporter creates an exporter backed by its own Prometheus registry
func NewOTelExporter(table *routes.Table) (*OTelExporter, error) {
	registry := prom.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		"webhook-relay",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		table:         table,
		meter:         meter,
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.dispatchCounter, err = oe.meter.Int64Counter(
		"relay.dispatches",
		metric.WithDescription("Inbound requests handled, by route and outcome"),
		metric.WithUnit("{requests}"),
	)
	if err != nil {
		return fmt.Errorf("creating dispatch counter: %w", err)
	}

	oe.dispatchDuration, err = oe.meter.Float64Histogram(
		"relay.dispatch.duration",
		metric.WithDescription("Time from route lookup to the final status, including the forward"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("creating dispatch duration histogram: %w", err)
	}

	oe.auditCounter, err = oe.meter.Int64Counter(
		"relay.audit.records",
		metric.WithDescription("Audit record writes, by route and result"),
		metric.WithUnit("{records}"),
	)
	if err != nil {
		return fmt.Errorf("creating audit counter: %w", err)
	}

	oe.routesGauge, err = oe.meter.Int64ObservableGauge(
		"relay.routes.configured",
		metric.WithDescription("Number of routes in the route table"),
		metric.WithUnit("{routes}"),
		metric.WithInt64Callback(oe.observeRoutes),
	)
	if err != nil {
		return fmt.Errorf("creating routes gauge: %w", err)
	}

	return nil
}

// RecordDispatch implements relay.Recorder
func (oe *OTelExporter) RecordDispatch(ctx context.Context, route routes.Route, outcome relay.Outcome, status int, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("route.name", route.Name),
		attribute.String("route.path", route.Path),
		attribute.String("relay.outcome", outcome.String()),
		attribute.String("http.status_code", strconv.Itoa(status)),
	)
	oe.dispatchCounter.Add(ctx, 1, attrs)
	oe.dispatchDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("route.name", route.Name),
		attribute.String("relay.outcome", outcome.String()),
	))
}

// RecordAudit implements relay.Recorder
func (oe *OTelExporter) RecordAudit(ctx context.Context, route routes.Route, err error) {
	result := "written"
	if err != nil {
		result = "failed"
	}
	oe.auditCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("route.name", route.Name),
		attribute.String("audit.result", result),
	))
}

// observeRoutes is a callback that reports the route table size
func (oe *OTelExporter) observeRoutes(_ context.Context, observer metric.Int64Observer) error {
	if oe.table == nil {
		return nil
	}
	observer.Observe(int64(oe.table.Len()))
	return nil
}

// ServeHTTP returns a handler serving Prometheus-formatted metrics
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
