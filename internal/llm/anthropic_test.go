package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicStub points the SDK client at a local server returning a fixed
// status and body.
func anthropicStub(t *testing.T, status int, body map[string]any) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-sonnet-4-20250514"}
}

func anthropicAPIError(kind, msg string) map[string]any {
	return map[string]any{
		"type":  "error",
		"error": map[string]any{"type": kind, "message": msg},
	}
}

func TestAnthropicProvider_Generate(t *testing.T) {
	p := anthropicStub(t, http.StatusOK, map[string]any{
		"id":   "msg_test",
		"type": "message",
		"role": "assistant",
		"content": []map[string]any{
			{"type": "text", "text": `{"statement":"Solve: 3x + 5 = 17","solution":"x = 4"}`},
		},
		"model":       "claude-sonnet-4-20250514",
		"stop_reason": "end_turn",
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a math coach.",
		Messages:  []Message{{Role: RoleUser, Content: "Generate an exercise."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := resp.Usage, (Usage{InputTokens: 50, OutputTokens: 30, TotalTokens: 80}); got != want {
		t.Errorf("usage = %+v, want %+v", got, want)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want %q", resp.StopReason, "end")
	}
	if string(resp.Content) != `{"statement":"Solve: 3x + 5 = 17","solution":"x = 4"}` {
		t.Errorf("unexpected content: %s", resp.Content)
	}
}

func TestAnthropicProvider_ErrorMapping(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		p := anthropicStub(t, http.StatusTooManyRequests, anthropicAPIError("rate_limit_error", "Rate limit exceeded"))

		_, err := p.Generate(context.Background(), Request{MaxTokens: 100})
		var rl *ErrRateLimit
		if !errors.As(err, &rl) {
			t.Fatalf("got %T (%v), want ErrRateLimit", err, err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		p := anthropicStub(t, http.StatusInternalServerError, anthropicAPIError("api_error", "Internal server error"))

		_, err := p.Generate(context.Background(), Request{MaxTokens: 100})
		var unavail *ErrProviderUnavailable
		if !errors.As(err, &unavail) {
			t.Fatalf("got %T (%v), want ErrProviderUnavailable", err, err)
		}
	})
}

func TestAnthropicModelMapping(t *testing.T) {
	p := &AnthropicProvider{model: "claude-sonnet-4-20250514"}
	if p.ModelID() != "claude-sonnet-4-20250514" {
		t.Errorf("ModelID() = %q", p.ModelID())
	}

	for in, want := range map[string]string{
		"claude-sonnet":            "claude-sonnet-4-20250514",
		"claude-haiku":             "claude-haiku-4-5-20251001",
		"claude-sonnet-4-20250514": "claude-sonnet-4-20250514", // direct IDs pass through
	} {
		if got := resolveModel(in, anthropicModels); got != want {
			t.Errorf("resolveModel(%q) = %q, want %q", in, got, want)
		}
	}
}
