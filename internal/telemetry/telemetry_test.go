package telemetry

import (
	"context"
	"os"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestEnabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	if Enabled(false) {
		t.Error("Enabled(false) without endpoint should be false")
	}
	if !Enabled(true) {
		t.Error("Enabled(true) should be true")
	}

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	if !Enabled(false) {
		t.Error("Enabled(false) with endpoint should be true")
	}
}

func TestMapHoneycombEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	t.Setenv("FIRSTRL_HONEYCOMB_API_KEY", "")
	t.Setenv("FIRSTRL_HONEYCOMB_DATASET", "")

	MapHoneycombEnv()
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "" {
		t.Errorf("headers set without API key: %q", got)
	}

	t.Setenv("FIRSTRL_HONEYCOMB_API_KEY", "abc")
	MapHoneycombEnv()
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "https://api.honeycomb.io" {
		t.Errorf("endpoint = %q", got)
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "x-honeycomb-team=abc,x-honeycomb-dataset=firstrl" {
		t.Errorf("headers = %q", got)
	}
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	prev := otel.GetTracerProvider()
	defer otel.SetTracerProvider(prev)

	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	// Tracers are resolved on each call, so a provider installed after
	// startup still receives spans.
	_, span := Tracer("world").Start(context.Background(), "x")
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if got := spans[0].InstrumentationScope().Name; got != "firstrl/world" {
		t.Errorf("tracer name = %q, want firstrl/world", got)
	}
}
