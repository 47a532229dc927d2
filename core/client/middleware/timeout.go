package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/leofalp/deepchat/core/client"
	"github.com/leofalp/deepchat/providers/ai"
)

// NewTimeoutMiddleware creates a MiddlewareConfig that bounds every provider
// call with the given timeout. The deadline is applied through the request
// context, so the HTTP layer cancels the in-flight call when it expires.
//
// A non-positive timeout disables the bound (the middleware becomes a
// pass-through).
func NewTimeoutMiddleware(timeout time.Duration) client.MiddlewareConfig {
	return client.MiddlewareConfig{
		Send: func(next client.SendFunc) client.SendFunc {
			return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
				if timeout <= 0 {
					return next(ctx, request)
				}

				ctx, cancel := context.WithTimeout(ctx, timeout)
				defer cancel()

				response, err := next(ctx, request)
				if err != nil && ctx.Err() == context.DeadlineExceeded {
					return nil, fmt.Errorf("llm call exceeded timeout of %s: %w", timeout, err)
				}
				return response, err
			}
		},
	}
}
