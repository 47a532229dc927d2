// Package slogobs implements observability.Provider on top of the standard
// library's log/slog. Spans become paired start/end log records, metrics are
// kept in memory and logged on update. It has no external dependencies and is
// the default choice for development and single-process deployments.
package slogobs
