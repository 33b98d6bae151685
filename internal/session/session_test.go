package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mathcoach-dev/mathcoach/internal/catalog"
	"github.com/mathcoach-dev/mathcoach/internal/coaching"
	"github.com/mathcoach-dev/mathcoach/internal/evaluation"
	"github.com/mathcoach-dev/mathcoach/internal/exercise"
	"github.com/mathcoach-dev/mathcoach/internal/extract"
	"github.com/mathcoach-dev/mathcoach/internal/llm"
	"github.com/mathcoach-dev/mathcoach/internal/profile"
	"github.com/mathcoach-dev/mathcoach/internal/progression"
)

const testCatalogJSON = `{
	"algebra": {
		"description": "Equations",
		"niveaux": {
			"1": {"name": "Linear", "objectives": ["Isolate x"], "example_functions": ["3x + 5 = 17"]},
			"2": {"name": "Quadratic", "objectives": ["Use the discriminant"], "example_functions": ["x^2 - 4 = 0"]}
		}
	},
	"geometry": {
		"description": "Plane geometry",
		"niveaux": {
			"1": {"name": "Areas", "objectives": ["Compute areas"], "example_functions": ["area of a 3x4 rectangle"]}
		}
	}
}`

func writeAnswerFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answer.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write answer file: %v", err)
	}
	return path
}

func correctEvalJSON() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{
		"is_correct": true, "error_type": "", "feedback": "right",
		"detailed_explanation": "ok", "step_by_step_correction": "ok",
		"recommendations": []
	}`)}
}

func wrongEvalJSON() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{
		"is_correct": false, "error_type": "calculation", "feedback": "wrong",
		"detailed_explanation": "ok", "step_by_step_correction": "ok",
		"recommendations": []
	}`)}
}

// newTestState builds a session over the fallback exercise path and a mock
// evaluator; coaching runs offline.
func newTestState(t *testing.T, evalResponses ...llm.MockResponse) (*State, *profile.Store) {
	t.Helper()

	cat, err := catalog.Parse([]byte(testCatalogJSON))
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	profiles, err := profile.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	p, err := profiles.Create("Ada")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	deps := Deps{
		Profiles:  profiles,
		Engine:    progression.NewEngine(cat),
		Exercises: exercise.NewService(nil, exercise.DefaultConfig()),
		Evaluator: evaluation.NewService(llm.NewMockProvider(evalResponses...), evaluation.DefaultConfig()),
		Coach:     coaching.NewService(nil, coaching.DefaultConfig()),
		Extractor: extract.New(),
	}

	s, err := New(t.Context(), p, deps)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s, profiles
}

func TestNew_InitializesObjective(t *testing.T) {
	s, _ := newTestState(t)
	if s.Profile.CurrentObjective != "algebra" {
		t.Errorf("current objective = %q", s.Profile.CurrentObjective)
	}
	if s.Profile.Level != 1 {
		t.Errorf("level = %d", s.Profile.Level)
	}
	if s.Phase != PhaseObjective {
		t.Errorf("phase = %v", s.Phase)
	}
}

func TestBeginExercise_FallbackFromCatalog(t *testing.T) {
	s, _ := newTestState(t)

	if err := s.BeginExercise(t.Context()); err != nil {
		t.Fatalf("begin exercise: %v", err)
	}
	if s.CurrentExercise.Statement != "Solve: 3x + 5 = 17" {
		t.Errorf("statement = %q", s.CurrentExercise.Statement)
	}
	if s.Phase != PhaseAnswering {
		t.Errorf("phase = %v", s.Phase)
	}
	if s.Loop.Attempts() != 0 {
		t.Errorf("fresh loop has %d attempts", s.Loop.Attempts())
	}
}

func TestSubmit_CorrectFirstTryAdvancesLevel(t *testing.T) {
	s, profiles := newTestState(t, correctEvalJSON())
	if err := s.BeginExercise(t.Context()); err != nil {
		t.Fatalf("begin exercise: %v", err)
	}

	res, err := s.SubmitAnswer(t.Context(), "x = 4")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Outcome != progression.OutcomeCompleted {
		t.Errorf("outcome = %v", res.Outcome)
	}
	if res.Advancement == nil || !res.Advancement.LevelUp {
		t.Fatalf("advancement = %+v", res.Advancement)
	}
	if s.Profile.Level != 2 {
		t.Errorf("level = %d", s.Profile.Level)
	}
	if len(s.Profile.LearningHistory) != 1 {
		t.Errorf("history length = %d", len(s.Profile.LearningHistory))
	}

	// Advancement was persisted before returning.
	saved, err := profiles.Load(s.Profile.StudentID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if saved.Level != 2 {
		t.Errorf("persisted level = %d", saved.Level)
	}
}

func TestSubmit_TwoWrongExhaustsWithoutAdvancing(t *testing.T) {
	s, _ := newTestState(t, wrongEvalJSON(), wrongEvalJSON())
	if err := s.BeginExercise(t.Context()); err != nil {
		t.Fatalf("begin exercise: %v", err)
	}

	res, err := s.SubmitAnswer(t.Context(), "x = 1")
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if res.Outcome != progression.OutcomeContinue {
		t.Errorf("first outcome = %v", res.Outcome)
	}

	res, err = s.SubmitAnswer(t.Context(), "x = 2")
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if res.Outcome != progression.OutcomeExhausted {
		t.Errorf("second outcome = %v", res.Outcome)
	}
	if s.Profile.Level != 1 || s.Profile.CurrentObjective != "algebra" {
		t.Errorf("state changed on exhausted loop: %s/%d", s.Profile.CurrentObjective, s.Profile.Level)
	}
	if len(s.Profile.LearningHistory) != 2 {
		t.Errorf("history length = %d", len(s.Profile.LearningHistory))
	}
	if !s.OfferSimilar {
		t.Error("expected similar-exercise offer after exhausted loop")
	}
}

func TestSubmit_WrongThenCorrect(t *testing.T) {
	s, _ := newTestState(t, wrongEvalJSON(), correctEvalJSON())
	if err := s.BeginExercise(t.Context()); err != nil {
		t.Fatalf("begin exercise: %v", err)
	}

	if _, err := s.SubmitAnswer(t.Context(), "x = 1"); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	res, err := s.SubmitAnswer(t.Context(), "x = 4")
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if res.Outcome != progression.OutcomeCompleted {
		t.Errorf("outcome = %v", res.Outcome)
	}
	if s.Profile.Level != 2 {
		t.Errorf("level = %d", s.Profile.Level)
	}
}

func TestExerciseInput_CarriesRecalledMemories(t *testing.T) {
	s, _ := newTestState(t, correctEvalJSON())
	s.MemoryNotes = []string{`Answered "x = 3" incorrectly on "algebra" (level 1)`}

	input, err := s.ExerciseInput()
	if err != nil {
		t.Fatalf("exercise input: %v", err)
	}
	if len(input.RecentMemories) != 1 || input.RecentMemories[0] != s.MemoryNotes[0] {
		t.Errorf("recalled memories not forwarded: %v", input.RecentMemories)
	}
}

func TestNew_NoMemoryStoreLeavesNotesEmpty(t *testing.T) {
	s, _ := newTestState(t, correctEvalJSON())
	if s.MemoryNotes != nil {
		t.Errorf("expected no recalled notes without a memory store, got %v", s.MemoryNotes)
	}
}

func TestRequestHint_DoesNotConsumeAttempt(t *testing.T) {
	s, _ := newTestState(t, correctEvalJSON())
	if err := s.BeginExercise(t.Context()); err != nil {
		t.Fatalf("begin exercise: %v", err)
	}

	hint, ok := s.RequestHint()
	if !ok || hint == "" {
		t.Fatalf("hint = %q, ok = %v", hint, ok)
	}
	if s.Loop.Attempts() != 0 {
		t.Errorf("hint consumed an attempt: %d", s.Loop.Attempts())
	}

	res, err := s.SubmitAnswer(t.Context(), "x = 4")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Outcome != progression.OutcomeCompleted {
		t.Errorf("outcome = %v", res.Outcome)
	}
}

func TestSubmit_MasteryTerminalState(t *testing.T) {
	s, _ := newTestState(t, correctEvalJSON())
	// Place the student at the last level of the last objective.
	s.Profile.CurrentObjective = "geometry"
	s.Profile.Level = 1
	s.Profile.ObjectivesCompleted = []string{"algebra"}

	if err := s.BeginExercise(t.Context()); err != nil {
		t.Fatalf("begin exercise: %v", err)
	}
	res, err := s.SubmitAnswer(t.Context(), "12")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Advancement == nil || !res.Advancement.Mastery {
		t.Fatalf("advancement = %+v", res.Advancement)
	}
	if s.Phase != PhaseMastery {
		t.Errorf("phase = %v", s.Phase)
	}
	if s.Profile.CurrentObjective != "geometry" || s.Profile.Level != 1 {
		t.Errorf("mastery must leave the profile unchanged: %s/%d",
			s.Profile.CurrentObjective, s.Profile.Level)
	}
}

func TestSubmit_ObjectiveCrossing(t *testing.T) {
	s, _ := newTestState(t, correctEvalJSON())
	s.Profile.Level = 2 // top level of algebra

	if err := s.BeginExercise(t.Context()); err != nil {
		t.Fatalf("begin exercise: %v", err)
	}
	res, err := s.SubmitAnswer(t.Context(), "x = 2")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Advancement == nil || res.Advancement.ObjectiveCompleted != "algebra" {
		t.Fatalf("advancement = %+v", res.Advancement)
	}
	if s.Profile.CurrentObjective != "geometry" || s.Profile.Level != 1 {
		t.Errorf("profile = %s/%d", s.Profile.CurrentObjective, s.Profile.Level)
	}
	if s.ObjectivesCompleted != 1 {
		t.Errorf("session objective count = %d", s.ObjectivesCompleted)
	}
}

func TestBeginSimilarExercise_ReopensLoop(t *testing.T) {
	s, _ := newTestState(t, wrongEvalJSON(), wrongEvalJSON())
	if err := s.BeginExercise(t.Context()); err != nil {
		t.Fatalf("begin exercise: %v", err)
	}
	s.SubmitAnswer(t.Context(), "x = 1")
	s.SubmitAnswer(t.Context(), "x = 2")

	first := s.CurrentExercise.Statement
	s.BeginSimilarExercise(t.Context())
	if s.CurrentExercise.Statement == first {
		t.Error("similar exercise should differ from the original")
	}
	if s.Loop.Attempts() != 0 || s.Loop.Done() {
		t.Error("expected a fresh attempt loop")
	}
	if s.OfferSimilar {
		t.Error("similar offer should be cleared")
	}
}

func TestSubmitFile_ExtractedAnswerCounts(t *testing.T) {
	s, _ := newTestState(t, correctEvalJSON())
	if err := s.BeginExercise(t.Context()); err != nil {
		t.Fatalf("begin exercise: %v", err)
	}

	path := writeAnswerFile(t, "x = 4\n")
	res, ok, err := s.SubmitFile(t.Context(), path)
	if err != nil {
		t.Fatalf("submit file: %v", err)
	}
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if res.Outcome != progression.OutcomeCompleted {
		t.Errorf("outcome = %v", res.Outcome)
	}
}

func TestSubmitFile_NoTextDoesNotConsumeAttempt(t *testing.T) {
	s, _ := newTestState(t, correctEvalJSON())
	if err := s.BeginExercise(t.Context()); err != nil {
		t.Fatalf("begin exercise: %v", err)
	}

	_, ok, err := s.SubmitFile(t.Context(), "/nonexistent/answer.txt")
	if err != nil {
		t.Fatalf("submit file: %v", err)
	}
	if ok {
		t.Fatal("expected extraction to fail")
	}
	if s.Loop.Attempts() != 0 {
		t.Errorf("failed extraction consumed an attempt: %d", s.Loop.Attempts())
	}
}

func TestEnd_Idempotent(t *testing.T) {
	s, _ := newTestState(t)
	s.End(t.Context())
	s.End(t.Context())
	if s.Phase != PhaseEnded {
		t.Errorf("phase = %v", s.Phase)
	}
}

func TestHistoryGrowsByOnePerSubmission(t *testing.T) {
	s, _ := newTestState(t,
		wrongEvalJSON(), wrongEvalJSON(), // loop 1: exhausted
		wrongEvalJSON(), correctEvalJSON(), // loop 2: wrong then correct
	)
	if err := s.BeginExercise(t.Context()); err != nil {
		t.Fatalf("begin exercise: %v", err)
	}
	s.SubmitAnswer(t.Context(), "a")
	s.SubmitAnswer(t.Context(), "b")
	s.BeginSimilarExercise(t.Context())
	s.SubmitAnswer(t.Context(), "c")
	s.SubmitAnswer(t.Context(), "x = 4")

	if len(s.Profile.LearningHistory) != 4 {
		t.Errorf("history length = %d, want 4", len(s.Profile.LearningHistory))
	}
	if s.AttemptsMade != 4 || s.CorrectAnswers != 1 {
		t.Errorf("attempts/correct = %d/%d", s.AttemptsMade, s.CorrectAnswers)
	}
}
