package evaluation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mathcoach-dev/mathcoach/internal/exercise"
	"github.com/mathcoach-dev/mathcoach/internal/llm"
)

func linearExercise() *exercise.Exercise {
	return &exercise.Exercise{
		Statement:  "Solve 3x + 5 = 17",
		Solution:   "3x = 12, so x = 4",
		Hints:      []string{"Move the constant first"},
		Difficulty: "Linear equations",
		Concept:    "algebra",
	}
}

func TestEvaluate_CorrectAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"is_correct": true,
		"error_type": "",
		"feedback": "Well done, clean isolation of x.",
		"detailed_explanation": "Subtracting 5 gives 3x = 12, dividing by 3 gives x = 4.",
		"step_by_step_correction": "3x + 5 = 17 -> 3x = 12 -> x = 4",
		"recommendations": ["Try a system of equations next"]
	}`)})
	svc := NewService(mock, DefaultConfig())

	res := svc.Evaluate(t.Context(), linearExercise(), "x = 4")
	if !res.IsCorrect {
		t.Error("expected correct verdict")
	}
	if res.SystemError() {
		t.Error("unexpected system error verdict")
	}
	if len(res.Recommendations) != 1 {
		t.Errorf("recommendations = %v", res.Recommendations)
	}
}

func TestEvaluate_IncorrectAnswerClassified(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"is_correct": false,
		"error_type": "calculation",
		"feedback": "You subtracted 5 incorrectly.",
		"detailed_explanation": "17 - 5 is 12, not 13.",
		"step_by_step_correction": "3x + 5 = 17 -> 3x = 12 -> x = 4",
		"recommendations": ["Recheck arithmetic before dividing"]
	}`)})
	svc := NewService(mock, DefaultConfig())

	res := svc.Evaluate(t.Context(), linearExercise(), "x = 13/3")
	if res.IsCorrect {
		t.Error("expected incorrect verdict")
	}
	if res.ErrorType != "calculation" {
		t.Errorf("error type = %q", res.ErrorType)
	}
}

func TestEvaluate_PromptCarriesExerciseAndAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"is_correct": true, "error_type": "", "feedback": "ok",
		"detailed_explanation": "ok", "step_by_step_correction": "ok",
		"recommendations": []
	}`)})
	svc := NewService(mock, DefaultConfig())

	svc.Evaluate(t.Context(), linearExercise(), "x = 4")

	msg := mock.LastRequest().Messages[0].Content
	if !strings.Contains(msg, "Solve 3x + 5 = 17") {
		t.Errorf("prompt missing exercise statement:\n%s", msg)
	}
	if !strings.Contains(msg, "x = 4") {
		t.Errorf("prompt missing student answer:\n%s", msg)
	}
	if !strings.Contains(msg, "3x = 12, so x = 4") {
		t.Errorf("prompt missing reference solution:\n%s", msg)
	}
}

func TestEvaluate_ModelErrorYieldsSystemError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("down")})
	svc := NewService(mock, DefaultConfig())

	res := svc.Evaluate(t.Context(), linearExercise(), "x = 4")
	if res.IsCorrect {
		t.Error("fallback verdict must never be correct")
	}
	if !res.SystemError() {
		t.Errorf("error type = %q, want system_error", res.ErrorType)
	}
	if res.StepByStepCorrection != "3x = 12, so x = 4" {
		t.Errorf("fallback must carry the reference solution, got %q", res.StepByStepCorrection)
	}
	if len(res.Recommendations) == 0 {
		t.Error("fallback must direct the student to self-check")
	}
}

func TestEvaluate_MalformedResponseYieldsSystemError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultConfig())

	res := svc.Evaluate(t.Context(), linearExercise(), "x = 4")
	if !res.SystemError() {
		t.Errorf("error type = %q, want system_error", res.ErrorType)
	}
}

func TestEvaluate_NilProviderYieldsSystemError(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	res := svc.Evaluate(t.Context(), linearExercise(), "x = 4")
	if !res.SystemError() {
		t.Errorf("error type = %q, want system_error", res.ErrorType)
	}
}
