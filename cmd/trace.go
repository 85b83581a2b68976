package cmd

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// shutdownTracing flushes and stops the tracer provider installed by
// configureTracing. It is a no-op while tracing is disabled.
var shutdownTracing = func(context.Context) error { return nil }

// configureTracing installs a global tracer provider that exports every span
// as JSON to w.
func configureTracing(w io.Writer) (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}
