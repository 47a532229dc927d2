package middleware

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/leofalp/deepchat/providers/ai"
)

func TestTimeoutMiddlewarePassesFastCalls(t *testing.T) {
	mw := NewTimeoutMiddleware(time.Second)

	wrapped := mw.Send(func(ctx context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("expected a deadline on the call context")
		}
		return &ai.ChatResponse{Content: "fast"}, nil
	})

	resp, err := wrapped(context.Background(), ai.ChatRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "fast" {
		t.Errorf("content = %q", resp.Content)
	}
}

func TestTimeoutMiddlewareCancelsSlowCalls(t *testing.T) {
	mw := NewTimeoutMiddleware(10 * time.Millisecond)

	wrapped := mw.Send(func(ctx context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return &ai.ChatResponse{Content: "too late"}, nil
		}
	})

	_, err := wrapped(context.Background(), ai.ChatRequest{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !strings.Contains(err.Error(), "exceeded timeout") {
		t.Errorf("error = %v, want timeout wrapping", err)
	}
}

func TestTimeoutMiddlewareZeroIsPassthrough(t *testing.T) {
	mw := NewTimeoutMiddleware(0)

	wrapped := mw.Send(func(ctx context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
		if _, ok := ctx.Deadline(); ok {
			t.Error("expected no deadline for zero timeout")
		}
		return &ai.ChatResponse{}, nil
	})

	if _, err := wrapped(context.Background(), ai.ChatRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
