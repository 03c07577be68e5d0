// Package telemetry provides OpenTelemetry instrumentation.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/firstrl/internal/logger"
)

const (
	serviceName    = "firstrl"
	serviceVersion = "0.1.0"
)

// Setup initializes OpenTelemetry with an OTLP HTTP exporter.
// It reads configuration from standard OTEL_* environment variables:
//   - OTEL_EXPORTER_OTLP_ENDPOINT: collector endpoint
//   - OTEL_EXPORTER_OTLP_HEADERS: extra headers such as API keys
//
// Exporter errors are sent to the log file, never to the terminal the game
// is drawing on. Returns a shutdown function that should be called on exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		logger.Log.WithError(err).Warn("OpenTelemetry error.")
	}))

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithTelemetrySDK(),
		resource.WithHost(),
		resource.WithOS(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Enabled reports whether tracing should be exported, either because it was
// requested explicitly or because an OTLP endpoint is configured.
func Enabled(requested bool) bool {
	return requested || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
}

// MapHoneycombEnv translates FIRSTRL_HONEYCOMB_* variables into the OTEL_*
// variables read by the exporter. It does nothing without an API key.
func MapHoneycombEnv() {
	apiKey := os.Getenv("FIRSTRL_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("FIRSTRL_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = serviceName
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}

// Tracer returns a named tracer for the given component.
// Until Setup runs, the global provider is a no-op.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}
