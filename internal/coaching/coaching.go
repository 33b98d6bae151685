// Package coaching turns an evaluation into a short motivational message.
// It is purely additive display material: coaching failure never blocks
// the attempt loop, it just degrades to a fixed encouragement.
package coaching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mathcoach-dev/mathcoach/internal/evaluation"
	"github.com/mathcoach-dev/mathcoach/internal/exercise"
	"github.com/mathcoach-dev/mathcoach/internal/llm"
)

// Message is the personal coach's reaction to an attempt.
type Message struct {
	// Motivation is a short motivating statement.
	Motivation string

	// Strategy is one concrete strategy for the next attempt.
	Strategy string

	// Tip is a practical tip.
	Tip string

	// Encouragement holds 1-2 positive phrases.
	Encouragement []string
}

// Config holds coaching settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for coaching.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   384,
		Temperature: 0.8,
	}
}

// CoachingSchema defines the JSON schema for coaching messages.
var CoachingSchema = &llm.Schema{
	Name:        "coaching-message",
	Description: "Personalized motivational coaching after an attempt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"motivation": map[string]any{
				"type":        "string",
				"description": "Short motivating statement",
			},
			"strategy": map[string]any{
				"type":        "string",
				"description": "One concrete strategy for the next attempt",
			},
			"tip": map[string]any{
				"type":        "string",
				"description": "One practical tip",
			},
			"encouragement": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-2 positive phrases",
			},
		},
		"required":             []any{"motivation", "strategy", "tip", "encouragement"},
		"additionalProperties": false,
	},
}

// Service produces coaching messages through a model provider.
type Service struct {
	provider llm.Provider // nil means offline, fallback messages only
	cfg      Config
}

// NewService creates a coaching service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Coach produces a message reacting to the evaluation. It never fails;
// any internal error degrades to the fixed fallback message.
func (s *Service) Coach(ctx context.Context, eval *evaluation.Result, ex *exercise.Exercise) *Message {
	if s.provider == nil {
		return Fallback()
	}

	msg, err := s.coach(ctx, eval, ex)
	if err != nil {
		return Fallback()
	}
	return msg
}

// Fallback is the fixed coaching message used when generation failed.
func Fallback() *Message {
	return &Message{
		Motivation:    "Keep up the effort!",
		Strategy:      "Review the provided solution",
		Tip:           "Reread the steps carefully",
		Encouragement: []string{"You make progress with every try!"},
	}
}

const coachingSystemPrompt = `You are a supportive personal coach for a math student. You specialize in motivation and unblocking students. React to how the last attempt went. Be warm, specific and brief.`

func buildCoachingUserMessage(eval *evaluation.Result, ex *exercise.Exercise) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Exercise: %s\n", ex.Statement))
	if eval.IsCorrect {
		b.WriteString("Outcome: correct\n")
	} else {
		b.WriteString("Outcome: incorrect\n")
	}
	if eval.ErrorType != "" {
		b.WriteString(fmt.Sprintf("Error type: %s\n", eval.ErrorType))
	}
	if eval.Feedback != "" {
		b.WriteString(fmt.Sprintf("Teacher feedback: %s\n", eval.Feedback))
	}

	b.WriteString(`
Instructions:
Write a short coaching message:
1. One motivating statement reacting to this outcome.
2. One concrete strategy for the next attempt.
3. One practical tip.
4. 1-2 positive phrases of encouragement.`)

	return b.String()
}

type coachingOutput struct {
	Motivation    string   `json:"motivation"`
	Strategy      string   `json:"strategy"`
	Tip           string   `json:"tip"`
	Encouragement []string `json:"encouragement"`
}

func (s *Service) coach(ctx context.Context, eval *evaluation.Result, ex *exercise.Exercise) (*Message, error) {
	ctx = llm.WithPurpose(ctx, "coaching")

	req := llm.Request{
		System: coachingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCoachingUserMessage(eval, ex)},
		},
		Schema:      CoachingSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("coaching generation: %w", err)
	}

	var out coachingOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse coaching response: %w", err)
	}

	return &Message{
		Motivation:    out.Motivation,
		Strategy:      out.Strategy,
		Tip:           out.Tip,
		Encouragement: out.Encouragement,
	}, nil
}
