package coaching

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mathcoach-dev/mathcoach/internal/evaluation"
	"github.com/mathcoach-dev/mathcoach/internal/exercise"
	"github.com/mathcoach-dev/mathcoach/internal/llm"
)

func wrongAttempt() (*evaluation.Result, *exercise.Exercise) {
	eval := &evaluation.Result{
		IsCorrect: false,
		ErrorType: "calculation",
		Feedback:  "You subtracted 5 incorrectly.",
	}
	ex := &exercise.Exercise{
		Statement: "Solve 3x + 5 = 17",
		Concept:   "algebra",
	}
	return eval, ex
}

func TestCoach_UsesModelResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"motivation": "Close one, the method was right!",
		"strategy": "Redo the subtraction slowly before dividing",
		"tip": "Write each arithmetic step on its own line",
		"encouragement": ["You clearly know how to isolate x"]
	}`)})
	svc := NewService(mock, DefaultConfig())

	eval, ex := wrongAttempt()
	msg := svc.Coach(t.Context(), eval, ex)
	if msg.Motivation != "Close one, the method was right!" {
		t.Errorf("motivation = %q", msg.Motivation)
	}
	if len(msg.Encouragement) != 1 {
		t.Errorf("encouragement = %v", msg.Encouragement)
	}
}

func TestCoach_PromptCarriesOutcome(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"motivation": "m", "strategy": "s", "tip": "t", "encouragement": []
	}`)})
	svc := NewService(mock, DefaultConfig())

	eval, ex := wrongAttempt()
	svc.Coach(t.Context(), eval, ex)

	msg := mock.LastRequest().Messages[0].Content
	if !strings.Contains(msg, "Outcome: incorrect") {
		t.Errorf("prompt missing outcome:\n%s", msg)
	}
	if !strings.Contains(msg, "calculation") {
		t.Errorf("prompt missing error type:\n%s", msg)
	}
}

func TestCoach_ModelErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("down")})
	svc := NewService(mock, DefaultConfig())

	eval, ex := wrongAttempt()
	msg := svc.Coach(t.Context(), eval, ex)
	if msg.Motivation != "Keep up the effort!" {
		t.Errorf("fallback motivation = %q", msg.Motivation)
	}
	if len(msg.Encouragement) == 0 {
		t.Error("fallback must still encourage")
	}
}

func TestCoach_NilProviderFallsBack(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	eval, ex := wrongAttempt()
	msg := svc.Coach(t.Context(), eval, ex)
	if msg == nil || msg.Motivation == "" {
		t.Fatal("expected displayable fallback message")
	}
}
