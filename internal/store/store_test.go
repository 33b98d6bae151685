package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAttemptAndAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// No attempts yet.
	acc, err := repo.StudentAccuracy(ctx, "s1")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy = %v, want 0", acc)
	}

	attempts := []AttemptEventData{
		{StudentID: "s1", SessionID: "sess1", ObjectiveKey: "algebra", Level: 1, ExerciseText: "Solve x + 3 = 7", StudentAnswer: "4", Correct: true, AttemptNumber: 1, InputMode: "text"},
		{StudentID: "s1", SessionID: "sess1", ObjectiveKey: "algebra", Level: 2, ExerciseText: "Solve 2x = 10", StudentAnswer: "4", Correct: false, AttemptNumber: 1, InputMode: "text"},
		{StudentID: "s1", SessionID: "sess1", ObjectiveKey: "geometry", Level: 1, ExerciseText: "Area of a 3x4 rectangle", StudentAnswer: "12", Correct: true, AttemptNumber: 2, InputMode: "text"},
		{StudentID: "s2", SessionID: "sess2", ObjectiveKey: "algebra", Level: 1, ExerciseText: "Solve x - 1 = 1", StudentAnswer: "3", Correct: false, AttemptNumber: 1, InputMode: "text"},
	}
	for i, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	acc, err = repo.StudentAccuracy(ctx, "s1")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc < 0.66 || acc > 0.67 {
		t.Errorf("accuracy = %v, want 2/3", acc)
	}
}

func TestAttemptsByObjective(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []AttemptEventData{
		{StudentID: "s1", SessionID: "sess1", ObjectiveKey: "geometry", Level: 1, ExerciseText: "q", StudentAnswer: "a", Correct: true, AttemptNumber: 1, InputMode: "text"},
		{StudentID: "s1", SessionID: "sess1", ObjectiveKey: "algebra", Level: 1, ExerciseText: "q", StudentAnswer: "a", Correct: false, AttemptNumber: 1, InputMode: "text"},
		{StudentID: "s1", SessionID: "sess1", ObjectiveKey: "algebra", Level: 1, ExerciseText: "q", StudentAnswer: "a", Correct: true, AttemptNumber: 2, InputMode: "text"},
	}
	for i, a := range data {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	stats, err := repo.AttemptsByObjective(ctx, "s1")
	if err != nil {
		t.Fatalf("attempts by objective: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 objectives, got %d", len(stats))
	}
	if stats[0].ObjectiveKey != "algebra" || stats[0].Attempts != 2 || stats[0].Correct != 1 {
		t.Errorf("algebra stats = %+v", stats[0])
	}
	if stats[1].ObjectiveKey != "geometry" || stats[1].Attempts != 1 || stats[1].Correct != 1 {
		t.Errorf("geometry stats = %+v", stats[1])
	}
}

func TestAppendSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSession(ctx, SessionEventData{
		SessionID:    "sess1",
		StudentID:    "s1",
		Action:       "start",
		ObjectiveKey: "algebra",
		Level:        1,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendSession(ctx, SessionEventData{
		SessionID:           "sess1",
		StudentID:           "s1",
		Action:              "end",
		ObjectiveKey:        "algebra",
		Level:               2,
		AttemptsMade:        5,
		CorrectAnswers:      4,
		LevelsGained:        1,
		ObjectivesCompleted: 0,
		DurationSecs:        420,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}
}

func TestLLMEventsQueryAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "exercise-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 300, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "evaluation", InputTokens: 200, OutputTokens: 20, LatencyMs: 250, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "evaluation", InputTokens: 180, OutputTokens: 0, LatencyMs: 900, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append llm event %d: %v", i, err)
		}
	}

	// Newest first.
	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", got[0].Sequence, got[1].Sequence)
	}
	if got[0].Purpose != "evaluation" || !got[1].Success {
		t.Errorf("unexpected events: %+v, %+v", got[0], got[1])
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(usage))
	}
	if usage[0].Key != "evaluation" || usage[0].Requests != 2 || usage[0].Failures != 1 {
		t.Errorf("evaluation usage = %+v", usage[0])
	}
	if usage[1].Key != "exercise-gen" || usage[1].InputTokens != 100 {
		t.Errorf("exercise-gen usage = %+v", usage[1])
	}
}

func TestSequenceMonotonicAcrossTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seqs := make([]int64, 0, 4)
	for i := 0; i < 4; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		seqs = append(seqs, n)
	}
	for i := 1; i < len(seqs); i++ {
		if seqs[i] != seqs[i-1]+1 {
			t.Fatalf("sequence not monotonic: %v", seqs)
		}
	}
}
