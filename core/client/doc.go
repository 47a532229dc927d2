// Package client provides the high-level chat-completion client.
//
// The client owns everything around the provider exchange: system prompt and
// JSON-mode request shaping, the middleware chain, observability, and the
// response-normalization step that repairs array-shaped JSON Mode output
// (see core/normalize). The assistant text it returns on
// ChatResponse.Content may therefore differ from the wire payload; the
// untouched envelope is always available on ChatResponse.Raw.
//
// For type-safe structured output use StructuredClient, which layers schema
// generation and repair-assisted parsing on top of the base client.
package client
