// Package telemetry exports user-intent events (CTA clicks, variant
// switches) as OTLP spans. The landing experience only ever emits an
// intent; the checkout and sign-up collaborators consume it downstream.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Exporter exports intent spans to an OTLP endpoint.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	enabled  bool
}

// NewExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (telemetry disabled); all
// Exporter methods are nil-safe.
func NewExporter(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "fraudlens"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer("fraudlens/intent"),
		enabled:  true,
	}, nil
}

// EmitIntent records one intent event as a zero-duration span named after
// the intent kind, with fraudlens.* attributes.
func (e *Exporter) EmitIntent(ctx context.Context, kind string, attrs ...attribute.KeyValue) {
	if e == nil || !e.enabled {
		return
	}
	prefixed := make([]attribute.KeyValue, 0, len(attrs))
	for _, a := range attrs {
		prefixed = append(prefixed, attribute.KeyValue{
			Key:   attribute.Key("fraudlens." + string(a.Key)),
			Value: a.Value,
		})
	}
	_, span := e.tracer.Start(ctx, kind)
	span.SetAttributes(prefixed...)
	span.End()
}

// Shutdown flushes and closes the exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
