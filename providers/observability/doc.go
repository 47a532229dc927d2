// Package observability defines a minimal vendor-neutral abstraction for
// tracing, metrics and structured logging used across the module.
//
// The interfaces are intentionally tiny: components receive a Provider (or
// extract a Span from the context) and emit events without knowing which
// backend is configured. The slogobs subpackage supplies a log/slog backed
// implementation suitable for development and simple production setups.
package observability
