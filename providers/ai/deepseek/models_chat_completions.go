package deepseek

import (
	"encoding/json"

	"github.com/leofalp/deepchat/internal/utils"
	"github.com/leofalp/deepchat/providers/ai"
)

/*
	CHAT COMPLETIONS API - INPUT
*/

// chatCompletionRequest represents the /v1/chat/completions request format
type chatCompletionRequest struct {
	Model            string        `json:"model"`
	Messages         []chatMessage `json:"messages"`
	Temperature      *float64      `json:"temperature,omitempty"`
	TopP             *float64      `json:"top_p,omitempty"`
	MaxTokens        *int          `json:"max_tokens,omitempty"`
	FrequencyPenalty *float64      `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float64      `json:"presence_penalty,omitempty"`
	Stop             interface{}   `json:"stop,omitempty"` // string or []string

	// Response format
	ResponseFormat *chatResponseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

type chatResponseFormat struct {
	Type string `json:"type"` // "text" or "json_object"
}

/*
	CHAT COMPLETIONS API - OUTPUT
*/

type chatCompletionResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"` // "chat.completion"
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   *chatUsage   `json:"usage,omitempty"`
}

type chatChoice struct {
	Index        int                 `json:"index"`
	Message      chatResponseMessage `json:"message"`
	FinishReason string              `json:"finish_reason,omitempty"`
}

type chatResponseMessage struct {
	Role             string `json:"role"`
	Content          string `json:"content"`
	ReasoningContent string `json:"reasoning_content,omitempty"` // deepseek-reasoner only
}

type chatUsage struct {
	PromptTokens            int `json:"prompt_tokens"`
	CompletionTokens        int `json:"completion_tokens"`
	TotalTokens             int `json:"total_tokens"`
	PromptCacheHitTokens    int `json:"prompt_cache_hit_tokens,omitempty"`
	CompletionTokensDetails *struct {
		ReasoningTokens int `json:"reasoning_tokens,omitempty"`
	} `json:"completion_tokens_details,omitempty"`
}

/*
	CONVERSIONS
*/

// requestFromGeneric converts the provider-neutral ChatRequest to the
// DeepSeek wire format. The system prompt becomes the first message; a
// configured response format is always sent as json_object since DeepSeek
// supports no schema-bearing variant.
func requestFromGeneric(request ai.ChatRequest) chatCompletionRequest {
	messages := make([]chatMessage, 0, len(request.Messages)+1)

	if request.SystemPrompt != "" {
		messages = append(messages, chatMessage{
			Role:    string(ai.RoleSystem),
			Content: request.SystemPrompt,
		})
	}

	for _, message := range request.Messages {
		messages = append(messages, chatMessage{
			Role:    string(message.Role),
			Content: message.Content,
		})
	}

	out := chatCompletionRequest{
		Model:    request.Model,
		Messages: messages,
	}

	if config := request.GenerationConfig; config != nil {
		if config.Temperature != 0 {
			out.Temperature = utils.Ptr(float64(config.Temperature))
		}
		if config.TopP != 0 {
			out.TopP = utils.Ptr(float64(config.TopP))
		}
		if config.MaxTokens != 0 {
			out.MaxTokens = utils.Ptr(config.MaxTokens)
		}
		if config.FrequencyPenalty != 0 {
			out.FrequencyPenalty = utils.Ptr(float64(config.FrequencyPenalty))
		}
		if config.PresencePenalty != 0 {
			out.PresencePenalty = utils.Ptr(float64(config.PresencePenalty))
		}
	}

	if request.ResponseFormat != nil {
		// JSON Mode: the only structured format DeepSeek accepts
		out.ResponseFormat = &chatResponseFormat{Type: "json_object"}
	}

	return out
}

// responseToGeneric converts the DeepSeek envelope to the provider-neutral
// ChatResponse. Content comes from choices[0].message.content; raw carries
// the untouched envelope bytes.
func responseToGeneric(response chatCompletionResponse, raw []byte) *ai.ChatResponse {
	choice := response.Choices[0]

	out := &ai.ChatResponse{
		Id:           response.ID,
		Model:        response.Model,
		Object:       response.Object,
		Created:      response.Created,
		Content:      choice.Message.Content,
		FinishReason: choice.FinishReason,
		Raw:          json.RawMessage(raw),
	}

	if response.Usage != nil {
		out.Usage = &ai.Usage{
			PromptTokens:     response.Usage.PromptTokens,
			CompletionTokens: response.Usage.CompletionTokens,
			TotalTokens:      response.Usage.TotalTokens,
			CachedTokens:     response.Usage.PromptCacheHitTokens,
		}
		if details := response.Usage.CompletionTokensDetails; details != nil {
			out.Usage.ReasoningTokens = details.ReasoningTokens
		}
	}

	return out
}
