package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/leofalp/deepchat/core/normalize"
	"github.com/leofalp/deepchat/internal/jsonschema"
	"github.com/leofalp/deepchat/providers/ai"
	"github.com/leofalp/deepchat/providers/observability"
)

// jsonModeInstruction is the system message prepended when a JSON response
// schema is configured. DeepSeek's API has no server-enforced schema
// parameter, so the schema travels as prompt guidance while JSON Mode itself
// is enabled via response_format.
const jsonModeInstruction = "You must output valid JSON only (no extra text). " +
	"Follow this JSON Schema strictly when formatting your response. " +
	"If a field is unknown, output a sensible empty value of the correct type. " +
	"JSON Schema:\n"

// ClientOptions holds the configuration of a Client. Use the With* functional
// options to populate it through [New].
type ClientOptions struct {
	// SystemPrompt is sent as the leading system message on every request.
	SystemPrompt string

	// Model is the default model identifier for requests.
	Model string

	// GenerationConfig holds default sampling parameters.
	GenerationConfig *ai.GenerationConfig

	// JSONResponseSchema is a JSON Schema, as raw text, describing the
	// expected model output. When set (non-blank), requests run in JSON Mode
	// and responses pass through array-shape normalization. The text is
	// never validated: a malformed schema is legal and simply degrades the
	// array detection to a substring heuristic.
	JSONResponseSchema string

	// Observer receives spans, metrics and logs for every request. Nil
	// disables instrumentation.
	Observer observability.Provider

	// Middlewares are applied around the provider call, first entry
	// outermost.
	Middlewares []MiddlewareConfig
}

// WithSystemPrompt sets the system prompt sent with every request.
func WithSystemPrompt(prompt string) func(*ClientOptions) {
	return func(o *ClientOptions) { o.SystemPrompt = prompt }
}

// WithModel sets the default model for requests.
func WithModel(model string) func(*ClientOptions) {
	return func(o *ClientOptions) { o.Model = model }
}

// WithGenerationConfig sets default sampling parameters.
func WithGenerationConfig(config *ai.GenerationConfig) func(*ClientOptions) {
	return func(o *ClientOptions) { o.GenerationConfig = config }
}

// WithJSONResponseSchema enables JSON Mode with the given schema text as
// guidance. See [ClientOptions.JSONResponseSchema].
func WithJSONResponseSchema(schema string) func(*ClientOptions) {
	return func(o *ClientOptions) { o.JSONResponseSchema = schema }
}

// WithObserver attaches an observability provider to the client.
func WithObserver(observer observability.Provider) func(*ClientOptions) {
	return func(o *ClientOptions) { o.Observer = observer }
}

// WithMiddlewares installs the middleware chain, first entry outermost.
func WithMiddlewares(middlewares ...MiddlewareConfig) func(*ClientOptions) {
	return func(o *ClientOptions) { o.Middlewares = append(o.Middlewares, middlewares...) }
}

// Client is the high-level chat-completion client. It is safe for concurrent
// use once constructed; all per-call state lives on the stack.
type Client struct {
	provider  ai.Provider
	options   ClientOptions
	sendChain SendFunc
}

// New creates a Client for the given provider. Returns an error when the
// provider is nil or a middleware entry has no Send function.
func New(provider ai.Provider, opts ...func(*ClientOptions)) (*Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider must not be nil")
	}

	var options ClientOptions
	for _, opt := range opts {
		opt(&options)
	}

	for i, middleware := range options.Middlewares {
		if middleware.Send == nil {
			return nil, fmt.Errorf("middleware at index %d has a nil Send function", i)
		}
	}

	return &Client{
		provider:  provider,
		options:   options,
		sendChain: buildSendChain(provider, options.Middlewares),
	}, nil
}

// Provider returns the underlying ai.Provider.
func (c *Client) Provider() ai.Provider {
	return c.provider
}

// sendMessageOptions holds per-call overrides.
type sendMessageOptions struct {
	model          string
	responseFormat *ai.ResponseFormat
}

// SendMessageOption customizes a single SendMessage call.
type SendMessageOption func(*sendMessageOptions)

// WithRequestModel overrides the model for this call only.
func WithRequestModel(model string) SendMessageOption {
	return func(o *sendMessageOptions) { o.model = model }
}

// WithResponseSchema overrides the JSON response schema for this call only.
func WithResponseSchema(schema string) SendMessageOption {
	return func(o *sendMessageOptions) {
		o.responseFormat = &ai.ResponseFormat{Type: "json_object", SchemaHint: schema}
	}
}

// WithOutputSchema sets a generated schema for this call, used by the
// structured client.
func WithOutputSchema(schema *jsonschema.Schema) SendMessageOption {
	return func(o *sendMessageOptions) {
		o.responseFormat = &ai.ResponseFormat{Type: "json_object", OutputSchema: schema}
	}
}

// SendMessage sends a single user message and returns the completed response.
//
// When a JSON response schema is configured (client-level or per-call), the
// request runs in JSON Mode: a guidance system message carrying the schema is
// prepended, response_format is set, and the assistant text is routed through
// array-shape normalization before being returned on ChatResponse.Content.
// ChatResponse.Raw always carries the untouched envelope.
func (c *Client) SendMessage(ctx context.Context, prompt string, opts ...SendMessageOption) (*ai.ChatResponse, error) {
	if prompt == "" {
		return nil, fmt.Errorf("prompt must not be empty")
	}

	var callOptions sendMessageOptions
	for _, opt := range opts {
		opt(&callOptions)
	}

	request := c.buildRequest(prompt, callOptions)
	schemaHint := request.ResponseFormat.EffectiveSchemaHint()

	if c.options.Observer != nil {
		var span observability.Span
		ctx, span = c.options.Observer.StartSpan(ctx, "client.send_message",
			observability.String(observability.AttrLLMModel, request.Model),
			observability.Bool(observability.AttrLLMJSONMode, request.ResponseFormat != nil),
		)
		defer span.End()
	}

	start := time.Now()
	response, err := c.sendChain(ctx, request)
	elapsed := time.Since(start)

	if c.options.Observer != nil {
		c.options.Observer.Counter("client.requests").Add(ctx, 1,
			observability.String(observability.AttrLLMModel, request.Model),
			observability.Bool("success", err == nil),
		)
		c.options.Observer.Histogram("client.request.duration_ms").Record(ctx, float64(elapsed.Milliseconds()))
	}

	if err != nil {
		if span := observability.SpanFromContext(ctx); span != nil {
			span.RecordError(err)
			span.SetStatus(observability.StatusError, "send failed")
		}
		return nil, err
	}

	c.normalizeResponse(ctx, response, schemaHint)

	if span := observability.SpanFromContext(ctx); span != nil {
		span.SetAttributes(
			observability.String(observability.AttrLLMResponseID, response.Id),
			observability.String(observability.AttrLLMFinishReason, response.FinishReason),
		)
		span.SetStatus(observability.StatusOK, "")
	}

	return response, nil
}

// buildRequest assembles the provider request from client defaults and
// per-call overrides. Per-call values win.
func (c *Client) buildRequest(prompt string, callOptions sendMessageOptions) ai.ChatRequest {
	request := ai.ChatRequest{
		Model:            c.options.Model,
		SystemPrompt:     c.options.SystemPrompt,
		GenerationConfig: c.options.GenerationConfig,
	}

	if callOptions.model != "" {
		request.Model = callOptions.model
	}

	switch {
	case callOptions.responseFormat != nil:
		request.ResponseFormat = callOptions.responseFormat
	case strings.TrimSpace(c.options.JSONResponseSchema) != "":
		request.ResponseFormat = &ai.ResponseFormat{Type: "json_object", SchemaHint: c.options.JSONResponseSchema}
	}

	if hint := request.ResponseFormat.EffectiveSchemaHint(); strings.TrimSpace(hint) != "" {
		request.Messages = append(request.Messages, ai.Message{
			Role:    ai.RoleSystem,
			Content: jsonModeInstruction + hint,
		})
	}

	request.Messages = append(request.Messages, ai.Message{
		Role:    ai.RoleUser,
		Content: prompt,
	})

	return request
}

// normalizeResponse applies array-shape normalization to the assistant text
// when a schema hint is present. Raw is left untouched.
func (c *Client) normalizeResponse(ctx context.Context, response *ai.ChatResponse, schemaHint string) {
	if schemaHint == "" || response == nil {
		return
	}

	normalized := normalize.Normalize(response.Content, schemaHint)

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent("response.normalized",
			observability.Bool(observability.AttrNormalizeExpectArray, normalize.ExpectsArray(schemaHint)),
			observability.Bool(observability.AttrNormalizeApplied, normalized != response.Content),
		)
	}

	response.Content = normalized
}
