/*
Package observability provides the metrics and tracing used by the step engine.

Metrics are Prometheus collectors registered on a caller-supplied registerer,
so tests and embedders can use an isolated registry. Tracing uses the
OpenTelemetry API; without a configured provider the global no-op tracer is
used and spans cost nothing.
*/
package observability
