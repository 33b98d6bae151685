// Package exercise generates math problems for the active objective and
// level. Generation always yields something displayable: when no model is
// configured or the call fails, a deterministic fallback is built straight
// from the catalog data.
package exercise

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mathcoach-dev/mathcoach/internal/llm"
)

// Service generates exercises through a model provider.
type Service struct {
	provider llm.Provider // nil means offline, fallbacks only
	cfg      Config
}

// NewService creates an exercise generation service. A nil provider is
// valid and makes every call return the deterministic fallback.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces an exercise for the given objective and level. It never
// fails: model errors fall back to an exercise built from the catalog's
// example problems.
func (s *Service) Generate(ctx context.Context, input Input) *Exercise {
	fallback := Fallback(input)
	if s.provider == nil {
		return fallback
	}

	ex, err := s.generate(ctx, input)
	if err != nil {
		return fallback
	}
	return ex
}

// GenerateSimilar produces a new exercise testing the same concept at the
// same difficulty with different values. On failure it falls back to a
// syntactic variation of the original.
func (s *Service) GenerateSimilar(ctx context.Context, original *Exercise) *Exercise {
	fallback := similarFallback(original)
	if s.provider == nil {
		return fallback
	}

	ex, err := s.generateSimilar(ctx, original)
	if err != nil {
		return fallback
	}
	return ex
}

// Fallback builds a deterministic exercise from catalog data alone.
func Fallback(input Input) *Exercise {
	statement := "Practice the skills for this level."
	if len(input.ExampleFunctions) > 0 {
		statement = fmt.Sprintf("Solve: %s", input.ExampleFunctions[0])
	}
	solution := "Work through the problem step by step."
	if len(input.LevelObjectives) > 0 {
		solution = fmt.Sprintf("Solution approach: %s", input.LevelObjectives[0])
	}

	return &Exercise{
		Statement:  statement,
		Solution:   solution,
		Hints:      []string{"Apply the methods for this level"},
		Difficulty: input.LevelName,
		Concept:    input.ObjectiveKey,
	}
}

// similarFallback rewrites the original statement with a small variation so
// the student still gets a fresh-looking problem.
func similarFallback(original *Exercise) *Exercise {
	statement := original.Statement + " (variation)"
	if strings.Contains(original.Statement, "=") {
		statement = strings.Replace(original.Statement, "=", "+ 1 =", 1)
	}

	return &Exercise{
		Statement:  statement,
		Solution:   fmt.Sprintf("Similar to: %s", original.Solution),
		Hints:      original.Hints,
		Difficulty: original.Difficulty,
		Concept:    original.Concept,
	}
}

type exerciseOutput struct {
	Statement  string   `json:"statement"`
	Solution   string   `json:"solution"`
	Hints      []string `json:"hints"`
	Difficulty string   `json:"difficulty"`
	Concept    string   `json:"concept"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Exercise, error) {
	ctx = llm.WithPurpose(ctx, "exercise-gen")

	req := llm.Request{
		System: exerciseSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExerciseUserMessage(input)},
		},
		Schema:      ExerciseSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("exercise generation: %w", err)
	}

	ex, err := parseExercise(resp.Content)
	if err != nil {
		return nil, err
	}
	// The model sometimes echoes its own labels; the catalog values are
	// authoritative.
	ex.Difficulty = input.LevelName
	ex.Concept = input.ObjectiveKey
	return ex, nil
}

func (s *Service) generateSimilar(ctx context.Context, original *Exercise) (*Exercise, error) {
	ctx = llm.WithPurpose(ctx, "exercise-gen")

	req := llm.Request{
		System: exerciseSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSimilarUserMessage(original)},
		},
		Schema:      ExerciseSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("similar exercise generation: %w", err)
	}

	ex, err := parseExercise(resp.Content)
	if err != nil {
		return nil, err
	}
	ex.Difficulty = original.Difficulty
	ex.Concept = original.Concept
	return ex, nil
}

func parseExercise(raw json.RawMessage) (*Exercise, error) {
	var out exerciseOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse exercise response: %w", err)
	}
	if out.Statement == "" {
		return nil, fmt.Errorf("exercise response has empty statement")
	}

	return &Exercise{
		Statement:  out.Statement,
		Solution:   out.Solution,
		Hints:      out.Hints,
		Difficulty: out.Difficulty,
		Concept:    out.Concept,
	}, nil
}
