package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestRetry(t *testing.T) {
	ok := MockResponse{Content: json.RawMessage(`{"ok":true}`)}
	down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	invalid := MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}}

	tests := []struct {
		name      string
		responses []MockResponse
		wantCalls int
		wantOK    bool
		wantErrAs func(error) bool
	}{
		{
			name:      "first attempt succeeds",
			responses: []MockResponse{ok},
			wantCalls: 1,
			wantOK:    true,
		},
		{
			name:      "transient then success",
			responses: []MockResponse{down, ok},
			wantCalls: 2,
			wantOK:    true,
		},
		{
			name:      "budget exhausted",
			responses: []MockResponse{down, down, down},
			wantCalls: 3,
		},
		{
			name:      "truncation fails fast",
			responses: []MockResponse{{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)}}},
			wantCalls: 1,
			wantErrAs: func(err error) bool {
				var e *ErrMaxTokensExceeded
				return errors.As(err, &e)
			},
		},
		{
			// Two invalid responses in a row stop the loop even though
			// a third attempt would have succeeded.
			name:      "invalid output retried once only",
			responses: []MockResponse{invalid, invalid, ok},
			wantCalls: 2,
		},
		{
			name: "rate limit honors Retry-After",
			responses: []MockResponse{
				{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
				ok,
			},
			wantCalls: 2,
			wantOK:    true,
		},
		{
			name:      "context canceled fails fast",
			responses: []MockResponse{{Err: context.Canceled}},
			wantCalls: 1,
			wantErrAs: func(err error) bool { return errors.Is(err, context.Canceled) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, RetryConfig{
				MaxAttempts: 3,
				InitialWait: time.Millisecond,
				MaxWait:     10 * time.Millisecond,
				Multiplier:  2.0,
			})

			resp, err := p.Generate(context.Background(), Request{})

			if tt.wantOK {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if string(resp.Content) != `{"ok":true}` {
					t.Fatalf("unexpected content: %s", resp.Content)
				}
			} else if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErrAs != nil && !tt.wantErrAs(err) {
				t.Fatalf("error has wrong type: %v", err)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}
