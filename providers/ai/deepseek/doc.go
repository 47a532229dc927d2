// Package deepseek implements ai.Provider for the DeepSeek chat-completions
// API (https://api.deepseek.com/v1), which is wire-compatible with the OpenAI
// chat completions format.
//
// JSON Mode is requested by setting response_format to {"type":"json_object"}.
// DeepSeek does not accept a server-enforced JSON Schema: any schema the
// caller supplies travels as prompt guidance only, and compliance is
// best-effort on the server side. The client layer compensates with
// core/normalize.
package deepseek
