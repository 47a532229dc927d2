package client

import (
	"context"
	"fmt"

	"github.com/leofalp/deepchat/core/parse"
	"github.com/leofalp/deepchat/internal/jsonschema"
	"github.com/leofalp/deepchat/providers/ai"
)

// StructuredClient wraps a base Client and provides type-safe structured
// output methods. The generic parameter T defines the expected response
// structure for all operations.
//
// StructuredClient automatically:
//   - Generates a JSON schema from type T (once, at creation time)
//   - Sends it as JSON-Mode guidance on every request
//   - Runs the usual array-shape normalization on the assistant text
//   - Parses responses into type T, repairing malformed JSON when needed
//
// Example usage:
//
//	type Task struct {
//	    Title string `json:"title" jsonschema:"required"`
//	}
//
//	tasksClient, err := client.NewStructured[[]Task](provider)
//	resp, err := tasksClient.SendMessage(ctx, "Plan my morning as a task list.")
//	fmt.Println((*resp.Data)[0].Title)
type StructuredClient[T any] struct {
	Client
	schema *jsonschema.Schema
}

// FromBaseClient creates a structured client wrapper around an existing base
// client. The base client should be configured with any necessary options
// (observer, middlewares, model) before wrapping.
func FromBaseClient[T any](base *Client) *StructuredClient[T] {
	if base == nil {
		return nil
	}
	return &StructuredClient[T]{
		Client: *base,
		schema: jsonschema.GenerateJSONSchema[T](),
	}
}

// NewStructured creates a StructuredClient[T] by first creating a base Client
// with the provided provider and options, then wrapping it.
func NewStructured[T any](llmProvider ai.Provider, opts ...func(*ClientOptions)) (*StructuredClient[T], error) {
	base, err := New(llmProvider, opts...)
	if err != nil {
		return nil, err
	}
	return FromBaseClient[T](base), nil
}

// Schema returns the JSON schema used for structured output. Useful for
// debugging or introspection.
func (sc *StructuredClient[T]) Schema() *jsonschema.Schema {
	return sc.schema
}

// SendMessage sends a user message and returns the parsed structured
// response. The generated schema is applied unless the caller overrides the
// response format through opts.
func (sc *StructuredClient[T]) SendMessage(ctx context.Context, prompt string, opts ...SendMessageOption) (*ai.StructuredChatResponse[T], error) {
	// Prepend the schema option so caller-supplied opts can override it
	opts = append([]SendMessageOption{WithOutputSchema(sc.schema)}, opts...)

	resp, err := sc.Client.SendMessage(ctx, prompt, opts...)
	if err != nil {
		return nil, err
	}

	return sc.parseResponse(resp)
}

// parseResponse parses a ChatResponse into a StructuredChatResponse[T].
func (sc *StructuredClient[T]) parseResponse(resp *ai.ChatResponse) (*ai.StructuredChatResponse[T], error) {
	if resp == nil {
		return nil, fmt.Errorf("response is nil")
	}
	data, err := parse.ParseStringAs[T](resp.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse structured output: %w", err)
	}

	return &ai.StructuredChatResponse[T]{
		ChatResponse: *resp,
		Data:         &data,
	}, nil
}
