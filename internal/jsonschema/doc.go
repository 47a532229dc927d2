// Package jsonschema provides a minimal JSON Schema representation and a
// reflection-based generator used by the structured client to describe the
// expected response shape of a Go type.
//
// The generated schema is never enforced server-side: DeepSeek's JSON Mode
// accepts no schema parameter, so the document is serialized into the prompt
// as guidance and consumed by core/normalize for array-shape detection.
package jsonschema
