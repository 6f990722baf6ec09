// Package observability groups the service's observability infrastructure:
// structured logging, Prometheus metrics, and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: slog-based structured logging with context propagation
//   - metrics: Prometheus metric registry and recording helpers
//   - tracing: OpenTelemetry tracer and HTTP middleware
package observability
