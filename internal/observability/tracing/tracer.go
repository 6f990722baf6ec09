// Package tracing provides OpenTelemetry tracing for the service: a shared
// tracer plus HTTP middleware that opens a server span per request.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the process-wide tracer for textstats spans.
var tracer = otel.Tracer("textstats")

// GetTracer returns the shared tracer.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "analyze")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
