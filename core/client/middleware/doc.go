// Package middleware provides ready-made client middlewares: structured
// request/response logging via log/slog and per-call timeouts.
//
// Retry/backoff against the remote API is intentionally not provided; callers
// that need it own that policy themselves.
package middleware
