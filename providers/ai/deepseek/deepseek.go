package deepseek

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/leofalp/deepchat/internal/utils"
	"github.com/leofalp/deepchat/providers/ai"
	"github.com/leofalp/deepchat/providers/observability"
)

const (
	defaultBaseURL          = "https://api.deepseek.com/v1"
	chatCompletionsEndpoint = "/chat/completions"
)

// Published model identifiers.
const (
	ModelChat  = "deepseek-chat"
	ModelCoder = "deepseek-coder"
)

// DeepSeekProvider implements the ai.Provider interface for the DeepSeek API
type DeepSeekProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewDeepSeekProvider creates a new DeepSeek provider. The API key is read
// from DEEPSEEK_API_KEY and the base URL from DEEPSEEK_API_BASE_URL; both can
// be overridden with the With* builders.
func NewDeepSeekProvider() *DeepSeekProvider {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	baseURL := os.Getenv("DEEPSEEK_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &DeepSeekProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider
func (p *DeepSeekProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API
func (p *DeepSeekProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client
func (p *DeepSeekProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements the Provider interface. It posts the converted
// request to /chat/completions, decodes the envelope and returns the generic
// response with the raw envelope bytes preserved.
func (p *DeepSeekProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}

	if span := observability.SpanFromContext(ctx); span != nil {
		span.SetAttributes(
			observability.String(observability.AttrLLMProvider, "deepseek"),
			observability.String(observability.AttrLLMModel, request.Model),
			observability.String(observability.AttrLLMEndpoint, p.baseURL+chatCompletionsEndpoint),
			observability.Bool(observability.AttrLLMJSONMode, request.ResponseFormat != nil),
		)
	}

	httpResponse, result, err := utils.DoPostSync[chatCompletionResponse](ctx, p.client, p.baseURL+chatCompletionsEndpoint, p.apiKey, requestFromGeneric(request))
	if err != nil {
		return nil, err
	}

	if result == nil || result.Body == nil {
		return nil, fmt.Errorf("empty response from DeepSeek API: %s", httpResponse.Status)
	}

	if len(result.Body.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return responseToGeneric(*result.Body, result.Raw), nil
}

// IsStopMessage reports whether the given chat response should be treated as
// a terminal completion.
func (p *DeepSeekProvider) IsStopMessage(message *ai.ChatResponse) bool {
	if message == nil {
		return true
	}
	if message.FinishReason == "stop" || message.FinishReason == "length" || message.FinishReason == "content_filter" {
		return true
	}
	return message.Content == ""
}
