package exercise

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mathcoach-dev/mathcoach/internal/llm"
)

func algebraInput() Input {
	return Input{
		ObjectiveKey:         "algebra",
		ObjectiveDescription: "Solve first and second degree equations",
		Level:                1,
		LevelName:            "Linear equations",
		LevelObjectives:      []string{"Isolate the unknown in a first degree equation"},
		ExampleFunctions:     []string{"3x + 5 = 17", "2(x - 4) = 10"},
	}
}

func validExerciseJSON() json.RawMessage {
	return json.RawMessage(`{
		"statement": "Solve 4x - 7 = 13",
		"solution": "Add 7 to both sides: 4x = 20. Divide by 4: x = 5.",
		"hints": ["Move the constant first", "Then divide by the coefficient"],
		"difficulty": "Linear equations",
		"concept": "algebra"
	}`)
}

func TestGenerate_UsesModelResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExerciseJSON()})
	svc := NewService(mock, DefaultConfig())

	ex := svc.Generate(t.Context(), algebraInput())
	if ex.Statement != "Solve 4x - 7 = 13" {
		t.Errorf("statement = %q", ex.Statement)
	}
	if len(ex.Hints) != 2 {
		t.Errorf("expected 2 hints, got %d", len(ex.Hints))
	}
	if ex.Concept != "algebra" || ex.Difficulty != "Linear equations" {
		t.Errorf("concept/difficulty = %q/%q", ex.Concept, ex.Difficulty)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 model call, got %d", mock.CallCount())
	}
}

func TestGenerate_PromptCarriesCatalogContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExerciseJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.Generate(t.Context(), algebraInput())

	req := mock.LastRequest()
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Linear equations") {
		t.Errorf("prompt missing level name:\n%s", msg)
	}
	if !strings.Contains(msg, "3x + 5 = 17") {
		t.Errorf("prompt missing example problem:\n%s", msg)
	}
	if req.Schema != ExerciseSchema {
		t.Error("expected exercise schema on request")
	}
}

func TestGenerate_PromptCarriesRecalledMemories(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExerciseJSON()})
	svc := NewService(mock, DefaultConfig())

	input := algebraInput()
	input.RecentMemories = []string{`Answered "x = 3" incorrectly on "algebra" (level 1)`}
	svc.Generate(t.Context(), input)

	msg := mock.LastRequest().Messages[0].Content
	if !strings.Contains(msg, "Recent history with this student:") {
		t.Errorf("prompt missing memory section:\n%s", msg)
	}
	if !strings.Contains(msg, `Answered "x = 3" incorrectly`) {
		t.Errorf("prompt missing recalled memory:\n%s", msg)
	}
}

func TestGenerate_FallbackOnModelError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("down")})
	svc := NewService(mock, DefaultConfig())

	ex := svc.Generate(t.Context(), algebraInput())
	if ex == nil {
		t.Fatal("expected fallback exercise, got nil")
	}
	if ex.Statement != "Solve: 3x + 5 = 17" {
		t.Errorf("fallback statement = %q", ex.Statement)
	}
	if ex.Solution != "Solution approach: Isolate the unknown in a first degree equation" {
		t.Errorf("fallback solution = %q", ex.Solution)
	}
	if ex.Difficulty != "Linear equations" || ex.Concept != "algebra" {
		t.Errorf("fallback concept/difficulty = %q/%q", ex.Concept, ex.Difficulty)
	}
}

func TestGenerate_NilProviderUsesFallback(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	ex := svc.Generate(t.Context(), algebraInput())
	if ex == nil || ex.Statement == "" {
		t.Fatal("expected displayable fallback exercise")
	}
}

func TestGenerate_MalformedResponseFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"statement": ""}`)})
	svc := NewService(mock, DefaultConfig())

	ex := svc.Generate(t.Context(), algebraInput())
	if ex.Statement != "Solve: 3x + 5 = 17" {
		t.Errorf("expected catalog fallback, got %q", ex.Statement)
	}
}

func TestGenerateSimilar_UsesModelResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"statement": "Solve 5x + 2 = 17",
		"solution": "5x = 15, x = 3",
		"hints": ["Subtract 2 first"],
		"difficulty": "Linear equations",
		"concept": "algebra"
	}`)})
	svc := NewService(mock, DefaultConfig())

	original := &Exercise{
		Statement:  "Solve 3x + 5 = 17",
		Solution:   "3x = 12, x = 4",
		Hints:      []string{"Move the constant"},
		Difficulty: "Linear equations",
		Concept:    "algebra",
	}
	ex := svc.GenerateSimilar(t.Context(), original)
	if ex.Statement != "Solve 5x + 2 = 17" {
		t.Errorf("statement = %q", ex.Statement)
	}
	if ex.Statement == original.Statement {
		t.Error("similar exercise must differ from the original")
	}
}

func TestGenerateSimilar_FallbackVariesEquation(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	original := &Exercise{
		Statement:  "Solve 3x + 5 = 17",
		Solution:   "x = 4",
		Hints:      []string{"Move the constant"},
		Difficulty: "Linear equations",
		Concept:    "algebra",
	}
	ex := svc.GenerateSimilar(t.Context(), original)
	if ex.Statement != "Solve 3x + 5 + 1 = 17" {
		t.Errorf("fallback statement = %q", ex.Statement)
	}
	if len(ex.Hints) != 1 || ex.Hints[0] != "Move the constant" {
		t.Errorf("fallback hints = %v", ex.Hints)
	}
}

func TestGenerateSimilar_FallbackWithoutEquals(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	original := &Exercise{Statement: "Sketch the graph of f(x)", Concept: "functions"}
	ex := svc.GenerateSimilar(t.Context(), original)
	if ex.Statement != "Sketch the graph of f(x) (variation)" {
		t.Errorf("fallback statement = %q", ex.Statement)
	}
}

func TestFallback_EmptyCatalogDataStillDisplayable(t *testing.T) {
	ex := Fallback(Input{ObjectiveKey: "algebra", LevelName: "Linear equations"})
	if ex.Statement == "" || ex.Solution == "" {
		t.Fatalf("fallback must be displayable: %+v", ex)
	}
}
