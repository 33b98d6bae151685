// Package evaluation judges submitted answers against the exercise's
// reference solution. Evaluate never fails: when the model is unavailable
// or returns garbage, the student gets a fixed system-error verdict that
// directs them to self-check against the solution.
package evaluation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mathcoach-dev/mathcoach/internal/exercise"
	"github.com/mathcoach-dev/mathcoach/internal/llm"
)

// Config holds evaluation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for evaluation. Temperature is
// kept low: grading should be consistent, not creative.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.2,
	}
}

// Service evaluates answers through a model provider.
type Service struct {
	provider llm.Provider // nil means offline, fallback verdicts only
	cfg      Config
}

// NewService creates an evaluation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Evaluate judges the answer. It never fails; on any internal error the
// returned Result carries error_type "system_error" and is never correct.
func (s *Service) Evaluate(ctx context.Context, ex *exercise.Exercise, answer string) *Result {
	if s.provider == nil {
		return Fallback(ex)
	}

	res, err := s.evaluate(ctx, ex, answer)
	if err != nil {
		return Fallback(ex)
	}
	return res
}

// Fallback is the fixed verdict used when evaluation itself failed.
func Fallback(ex *exercise.Exercise) *Result {
	return &Result{
		IsCorrect:            false,
		ErrorType:            "system_error",
		Feedback:             "The evaluation could not be completed",
		DetailedExplanation:  fmt.Sprintf("Concept: %s", ex.Concept),
		StepByStepCorrection: ex.Solution,
		Recommendations: []string{
			"Check your answer against the solution yourself",
			"Review the reference solution",
			"Ask your teacher if unsure",
		},
	}
}

type evaluationOutput struct {
	IsCorrect            bool     `json:"is_correct"`
	ErrorType            string   `json:"error_type"`
	Feedback             string   `json:"feedback"`
	DetailedExplanation  string   `json:"detailed_explanation"`
	StepByStepCorrection string   `json:"step_by_step_correction"`
	Recommendations      []string `json:"recommendations"`
}

func (s *Service) evaluate(ctx context.Context, ex *exercise.Exercise, answer string) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "evaluation")

	req := llm.Request{
		System: evaluationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluationUserMessage(ex, answer)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("answer evaluation: %w", err)
	}

	var out evaluationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse evaluation response: %w", err)
	}

	return &Result{
		IsCorrect:            out.IsCorrect,
		ErrorType:            out.ErrorType,
		Feedback:             out.Feedback,
		DetailedExplanation:  out.DetailedExplanation,
		StepByStepCorrection: out.StepByStepCorrection,
		Recommendations:      out.Recommendations,
	}, nil
}
