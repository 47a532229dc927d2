// Package parse converts raw model output text into Go values.
//
// Unlike core/normalize, which applies a fixed set of byte-faithful bracket
// corrections, this package is allowed to rewrite the text aggressively:
// markdown code fences are stripped and malformed JSON is repaired with
// jsonrepair before unmarshaling is retried. Use it at the point where the
// caller wants a typed value and no longer cares about the original bytes.
package parse
