package exercise

import "github.com/mathcoach-dev/mathcoach/internal/llm"

// ExerciseSchema defines the JSON schema for exercise generation.
var ExerciseSchema = &llm.Schema{
	Name:        "math-exercise",
	Description: "A single math exercise with reference solution and hints",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"statement": map[string]any{
				"type":        "string",
				"description": "One precise question matching the objective and level",
			},
			"solution": map[string]any{
				"type":        "string",
				"description": "Detailed, rigorous reference solution",
			},
			"hints": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-3 pedagogical hints that guide without revealing the answer",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"description": "Level name the exercise was written for",
			},
			"concept": map[string]any{
				"type":        "string",
				"description": "Objective key the exercise belongs to",
			},
		},
		"required":             []any{"statement", "solution", "hints", "difficulty", "concept"},
		"additionalProperties": false,
	},
}
