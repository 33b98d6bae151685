package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func evaluationSchema() *Schema {
	return &Schema{
		Name:        "evaluation-result",
		Description: "Graded answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"is_correct":  map[string]any{"type": "boolean"},
				"explanation": map[string]any{"type": "string"},
				"score":       map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			},
			"required": []any{"is_correct", "explanation"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"is_correct":true,"explanation":"x = 4 is right","score":100}`, false},
		{"optional field omitted", `{"is_correct":false,"explanation":"sign error on the second step"}`, false},
		{"missing required field", `{"is_correct":true}`, true},
		{"wrong type", `{"is_correct":"yes","explanation":"ok"}`, true},
		{"score out of range", `{"is_correct":true,"explanation":"ok","score":250}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty response", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(evaluationSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			// Every validation failure must surface as ErrInvalidResponse
			// so the retry layer can grant the single re-ask.
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("got %T (%v), want ErrInvalidResponse", err, err)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("nil schema must skip validation, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "exercise-batch",
		Description: "Generated exercises",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"exercise": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"statement": map[string]any{"type": "string"},
					},
					"required": []any{"statement"},
				},
				"hints": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"exercise", "hints"},
		},
	}

	valid := json.RawMessage(`{"exercise":{"statement":"Solve 2x + 3 = 11"},"hints":["isolate x","divide by 2"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := json.RawMessage(`{"exercise":{"statement":"Solve 2x + 3 = 11"},"hints":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
