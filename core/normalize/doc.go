// Package normalize repairs malformed JSON-mode output returned by a
// chat-completion endpoint when the caller's schema hint expects a top-level
// array.
//
// DeepSeek's JSON Mode is best-effort: the model sometimes returns a single
// object where an array was requested, or a comma-joined list of objects with
// one or both enclosing brackets missing. Normalize applies a fixed set of
// bracket-level corrections so downstream consumers can parse the result as
// an array. It never fails and never mutates content unless the schema hint
// clearly declares an array expectation.
//
// The package is a pure text transformation: no state, no I/O, safe for
// concurrent use without synchronization.
package normalize
