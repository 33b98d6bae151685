package evaluation

import "github.com/mathcoach-dev/mathcoach/internal/llm"

// EvaluationSchema defines the JSON schema for answer evaluation.
var EvaluationSchema = &llm.Schema{
	Name:        "evaluation-result",
	Description: "Structured verdict on a student's answer with feedback and correction",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer is correct",
			},
			"error_type": map[string]any{
				"type":        "string",
				"description": "Error classification when incorrect, empty when correct",
				"enum":        []any{"", "conceptual", "calculation", "notation", "method", "logic"},
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Pedagogical feedback on the answer",
			},
			"detailed_explanation": map[string]any{
				"type":        "string",
				"description": "Complete mathematical explanation",
			},
			"step_by_step_correction": map[string]any{
				"type":        "string",
				"description": "The correct solution, step by step",
			},
			"recommendations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 personalized recommendations",
			},
		},
		"required":             []any{"is_correct", "feedback", "detailed_explanation", "step_by_step_correction", "recommendations"},
		"additionalProperties": false,
	},
}
