package tracing

import (
	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
)

// HoneycombSetup configures the global otel provider to export to Honeycomb.
// Exporter settings come from the OTEL_* and HONEYCOMB_* env vars.
func HoneycombSetup(serviceName string) (func(), error) {
	return otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
		otelconfig.WithSpanProcessor(honeycomb.NewBaggageSpanProcessor()),
	)
}
