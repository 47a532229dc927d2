package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/leofalp/deepchat/core/client"
	"github.com/leofalp/deepchat/internal/utils"
	"github.com/leofalp/deepchat/providers/ai"
)

// LogLevel controls how much detail the logging middleware emits per request.
type LogLevel int

const (
	// LogLevelMinimal logs only the model name, total duration, and token
	// counts. Use this when you want lightweight audit trails without noise.
	LogLevelMinimal LogLevel = iota

	// LogLevelStandard logs everything in Minimal plus the message count and
	// finish reason. This is the recommended default for most applications.
	LogLevelStandard

	// LogLevelVerbose logs everything in Standard plus the first message
	// content and the full response content, each truncated to 500
	// characters.
	//
	// WARNING: DO NOT use LogLevelVerbose in production. It will log raw
	// prompt and response text, which may contain sensitive user data,
	// secrets, or PII. It is intended solely for local debugging.
	LogLevelVerbose
)

// truncateLen is the maximum content length included in verbose log output.
const truncateLen = 500

// NewLoggingMiddleware creates a MiddlewareConfig that emits structured slog
// entries before and after every provider call.
//
// A nil logger falls back to slog.Default().
func NewLoggingMiddleware(logger *slog.Logger, level LogLevel) client.MiddlewareConfig {
	if logger == nil {
		logger = slog.Default()
	}
	return client.MiddlewareConfig{
		Send: buildSendLogging(logger, level),
	}
}

// buildSendLogging constructs the middleware that logs request/response pairs.
func buildSendLogging(logger *slog.Logger, level LogLevel) client.Middleware {
	return func(next client.SendFunc) client.SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			logger.InfoContext(ctx, "llm send",
				buildRequestAttrs(request, level)...,
			)

			start := time.Now()
			response, err := next(ctx, request)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "llm send failed",
					slog.String("model", request.Model),
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return nil, err
			}

			logger.InfoContext(ctx, "llm send completed",
				buildResponseAttrs(response, elapsed, level)...,
			)

			return response, nil
		}
	}
}

// buildRequestAttrs assembles the slog attributes for the request-side entry.
func buildRequestAttrs(request ai.ChatRequest, level LogLevel) []any {
	attrs := []any{
		slog.String("model", request.Model),
		slog.Bool("json_mode", request.ResponseFormat != nil),
	}

	if level >= LogLevelStandard {
		attrs = append(attrs, slog.Int("messages", len(request.Messages)))
	}

	if level >= LogLevelVerbose && len(request.Messages) > 0 {
		attrs = append(attrs, slog.String("first_message",
			utils.TruncateString(request.Messages[0].Content, truncateLen)))
	}

	return attrs
}

// buildResponseAttrs assembles the slog attributes for the completion entry.
func buildResponseAttrs(response *ai.ChatResponse, elapsed time.Duration, level LogLevel) []any {
	attrs := []any{
		slog.String("model", response.Model),
		slog.Duration("duration", elapsed),
	}

	if response.Usage != nil {
		attrs = append(attrs,
			slog.Int("prompt_tokens", response.Usage.PromptTokens),
			slog.Int("completion_tokens", response.Usage.CompletionTokens),
			slog.Int("total_tokens", response.Usage.TotalTokens),
		)
	}

	if level >= LogLevelStandard {
		attrs = append(attrs, slog.String("finish_reason", response.FinishReason))
	}

	if level >= LogLevelVerbose {
		attrs = append(attrs, slog.String("content",
			utils.TruncateString(response.Content, truncateLen)))
	}

	return attrs
}
