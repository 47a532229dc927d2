// Package utils contains small internal helpers shared across the module:
// the JSON-over-HTTP POST plumbing used by providers, string/JSON formatting
// helpers for log output, and a generic pointer constructor.
package utils
