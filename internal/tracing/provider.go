// Package tracing sets up the OpenTelemetry pipeline: a
// TracerProvider backed by a JSONL file exporter under logs/otel/.
// Session commands open one span per operation; the host reads the
// JSONL trail offline.
package tracing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "hackcore"

// Setup initializes the tracing pipeline: creates logs/otel/, opens a
// JSONL file named after the session timestamp, and installs a
// batching TracerProvider as the global provider.
//
// Returns a shutdown function that flushes and closes the exporter.
func Setup(sessionTS string, ownerID int) (shutdown func(context.Context), err error) {
	dir := filepath.Join("logs", "otel")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create otel log dir: %w", err)
	}

	path := filepath.Join(dir, sessionTS+".jsonl")
	exporter, err := NewJSONLExporter(path)
	if err != nil {
		return nil, err
	}

	bsp := sdktrace.NewBatchSpanProcessor(exporter,
		sdktrace.WithBatchTimeout(2*time.Second),
	)

	res := resource.NewSchemaless(
		attribute.String("service.name", "hackcore"),
		attribute.Int("hackcore.owner", ownerID),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bsp),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)

	return func(ctx context.Context) {
		_ = tp.Shutdown(ctx)
	}, nil
}

// Tracer returns the package tracer for manual span creation.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
