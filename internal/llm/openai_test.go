package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// openaiStub points the SDK client at a local server returning a fixed
// status and body.
func openaiStub(t *testing.T, status int, body map[string]any) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(config), model: "gpt-4o-mini"}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	p := openaiStub(t, http.StatusOK, map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index": 0,
			"message": map[string]any{
				"role":    "assistant",
				"content": `{"statement":"Solve: 3x + 5 = 17","solution":"x = 4"}`,
			},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{
			"prompt_tokens":     40,
			"completion_tokens": 25,
			"total_tokens":      65,
		},
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a math coach.",
		Messages:  []Message{{Role: RoleUser, Content: "Generate an exercise."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := resp.Usage, (Usage{InputTokens: 40, OutputTokens: 25, TotalTokens: 65}); got != want {
		t.Errorf("usage = %+v, want %+v", got, want)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want %q", resp.StopReason, "end")
	}
	if string(resp.Content) != `{"statement":"Solve: 3x + 5 = 17","solution":"x = 4"}` {
		t.Errorf("unexpected content: %s", resp.Content)
	}
}

func TestOpenAIProvider_ErrorMapping(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		p := openaiStub(t, http.StatusTooManyRequests, map[string]any{
			"error": map[string]any{"type": "tokens", "message": "Rate limit exceeded", "code": "rate_limit_exceeded"},
		})

		_, err := p.Generate(context.Background(), Request{MaxTokens: 100})
		var rl *ErrRateLimit
		if !errors.As(err, &rl) {
			t.Fatalf("got %T (%v), want ErrRateLimit", err, err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		p := openaiStub(t, http.StatusInternalServerError, map[string]any{
			"error": map[string]any{"type": "server_error", "message": "Internal server error"},
		})

		_, err := p.Generate(context.Background(), Request{MaxTokens: 100})
		var unavail *ErrProviderUnavailable
		if !errors.As(err, &unavail) {
			t.Fatalf("got %T (%v), want ErrProviderUnavailable", err, err)
		}
	})
}

func TestOpenAIProvider_Config(t *testing.T) {
	// A BaseURL override routes the same provider through any
	// OpenAI-compatible endpoint.
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://openrouter.ai/api/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4o" {
		t.Errorf("ModelID() = %q, want %q", p.ModelID(), "gpt-4o")
	}

	if _, err := NewOpenAIProvider(OpenAIConfig{}); err == nil {
		t.Error("expected error for missing API key")
	}
}
