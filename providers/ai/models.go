package ai

import (
	"encoding/json"

	"github.com/leofalp/deepchat/internal/jsonschema"
)

/*
	##### PROVIDER INPUT #####
*/

// ChatRequest represents a request to send a chat message
type ChatRequest struct {
	Model            string            `json:"model,omitempty"`             // Model name or identifier
	Messages         []Message         `json:"messages"`                    // Contains all messages in the conversation except system prompt
	SystemPrompt     string            `json:"system_prompt,omitempty"`     // Optional system prompt
	ResponseFormat   *ResponseFormat   `json:"response_format,omitempty"`   // Optional response format
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"` // Optional generation configuration
}

// Message represents a single message in a conversation
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"`
}

type GenerationConfig struct {
	MaxTokens        int     `json:"max_tokens,omitempty"`        // Optional max tokens for the response
	Temperature      float32 `json:"temperature,omitempty"`       // Sampling temperature [0..2]. Higher => more random; lower => more deterministic.
	TopP             float32 `json:"top_p,omitempty"`             // Nucleus (top-p) sampling [0..1]. Alternative to temperature.
	FrequencyPenalty float32 `json:"frequency_penalty,omitempty"` // Penalty [-2..2]. Positive values reduce repetition by penalizing frequent tokens.
	PresencePenalty  float32 `json:"presence_penalty,omitempty"`  // Penalty [-2..2]. Positive values encourage new topics.
}

// ResponseFormat asks the provider to constrain its output shape.
//
// SchemaHint carries the caller-supplied JSON Schema as raw text. It is never
// validated or enforced server-side: DeepSeek's JSON Mode only guarantees
// best-effort JSON output, so the hint is injected into the prompt as
// guidance and later consumed by core/normalize to detect an expected-array
// shape. The hint may itself be malformed text; that is legal.
//
// OutputSchema is the generated schema used by the structured client; when
// set and SchemaHint is empty, its JSON serialization is used as the hint.
type ResponseFormat struct {
	Type         string             `json:"type,omitempty"`          // Wire-level format hint, e.g. "json_object"
	SchemaHint   string             `json:"schema_hint,omitempty"`   // Raw JSON Schema text from the caller
	OutputSchema *jsonschema.Schema `json:"output_schema,omitempty"` // Generated schema for structured responses
}

// EffectiveSchemaHint returns the schema text to use for prompt guidance and
// array-shape detection: the raw caller hint when present, otherwise the
// serialized generated schema, otherwise empty.
func (rf *ResponseFormat) EffectiveSchemaHint() string {
	if rf == nil {
		return ""
	}
	if rf.SchemaHint != "" {
		return rf.SchemaHint
	}
	if rf.OutputSchema != nil {
		if encoded, err := json.Marshal(rf.OutputSchema); err == nil {
			return string(encoded)
		}
	}
	return ""
}

/*
	##### PROVIDER OUTPUT #####
*/

type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`

	// Extended token metrics
	ReasoningTokens int `json:"reasoning_tokens,omitempty"` // Tokens used for reasoning models
	CachedTokens    int `json:"cached_tokens,omitempty"`    // Cached prompt tokens
}

// ChatResponse represents the response from a chat completion.
//
// Content is the assistant message text, possibly rewritten by the client's
// normalization step. Raw always carries the untouched response envelope
// exactly as received from the provider, so callers can recover the original
// bytes when normalization or extraction lost something they care about.
type ChatResponse struct {
	Id           string          `json:"id"`
	Model        string          `json:"model"`
	Object       string          `json:"object"`
	Created      int64           `json:"created"`
	Content      string          `json:"content"`
	FinishReason string          `json:"finish_reason,omitempty"`
	Usage        *Usage          `json:"usage,omitempty"`
	Raw          json.RawMessage `json:"raw,omitempty"`
}

// StructuredChatResponse pairs the raw chat response with the payload parsed
// into the caller's target type.
type StructuredChatResponse[T any] struct {
	ChatResponse
	Data *T `json:"data,omitempty"`
}

/*
	##### ENUMS #####
*/

// MessageRole represents the role of a message; compatible with string
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
)
