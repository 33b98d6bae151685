package profile

import (
	"errors"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	return s
}

func TestCreate_Defaults(t *testing.T) {
	s := newTestStore(t)

	p, err := s.Create("Lina")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if p.StudentID == "" {
		t.Error("StudentID is empty")
	}
	if p.Level != 1 {
		t.Errorf("Level = %d, want 1", p.Level)
	}
	if p.Name != "Lina" {
		t.Errorf("Name = %q, want Lina", p.Name)
	}
	if len(p.LearningHistory) != 0 || len(p.ObjectivesCompleted) != 0 {
		t.Error("new profile should have empty history and completed lists")
	}
	if p.CreatedAt.IsZero() || p.LastSession.IsZero() {
		t.Error("timestamps should be set at creation")
	}
}

func TestCreate_UniqueIDsSameTick(t *testing.T) {
	s := newTestStore(t)
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 530000000, time.UTC)
	s.now = func() time.Time { return fixed }

	a, err := s.Create("")
	if err != nil {
		t.Fatalf("first Create() error: %v", err)
	}
	b, err := s.Create("")
	if err != nil {
		t.Fatalf("second Create() error: %v", err)
	}
	if a.StudentID == b.StudentID {
		t.Errorf("ids collide: %s", a.StudentID)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	p, err := s.Create("Omar")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	p.CurrentObjective = "algebra"
	p.Level = 2
	p.ObjectivesCompleted = append(p.ObjectivesCompleted, "arithmetic")
	p.AppendAttempt(AttemptRecord{
		Exercise:  "3x + 5 = 17",
		Answer:    "x = 4",
		Correct:   true,
		Timestamp: time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC),
		Attempt:   1,
	})
	if err := s.Save(p); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := s.Load(p.StudentID)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got.StudentID != p.StudentID || got.Name != p.Name {
		t.Errorf("identity mismatch: got %s/%s", got.StudentID, got.Name)
	}
	if got.Level != 2 || got.CurrentObjective != "algebra" {
		t.Errorf("progression mismatch: level=%d objective=%q", got.Level, got.CurrentObjective)
	}
	if len(got.ObjectivesCompleted) != 1 || got.ObjectivesCompleted[0] != "arithmetic" {
		t.Errorf("ObjectivesCompleted = %v", got.ObjectivesCompleted)
	}
	if len(got.LearningHistory) != 1 {
		t.Fatalf("history length = %d, want 1", len(got.LearningHistory))
	}
	rec := got.LearningHistory[0]
	if rec.Exercise != "3x + 5 = 17" || rec.Answer != "x = 4" || !rec.Correct || rec.Attempt != 1 {
		t.Errorf("attempt record mismatch: %+v", rec)
	}
	if !rec.Timestamp.Equal(time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC)) {
		t.Errorf("timestamp mismatch: %v", rec.Timestamp)
	}
}

func TestLoad_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load("20990101000000xx")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoad_BumpsLastSession(t *testing.T) {
	s := newTestStore(t)

	created := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return created }
	p, err := s.Create("")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	later := created.Add(48 * time.Hour)
	s.now = func() time.Time { return later }
	got, err := s.Load(p.StudentID)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !got.LastSession.Equal(later) {
		t.Errorf("LastSession = %v, want %v", got.LastSession, later)
	}
}

func TestList_MostRecentFirst(t *testing.T) {
	s := newTestStore(t)

	t0 := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return t0 }
	older, _ := s.Create("older")

	s.now = func() time.Time { return t0.Add(time.Hour) }
	newer, _ := s.Create("newer")

	list, err := s.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(List()) = %d, want 2", len(list))
	}
	if list[0].StudentID != newer.StudentID || list[1].StudentID != older.StudentID {
		t.Errorf("ordering wrong: %v", []string{list[0].StudentID, list[1].StudentID})
	}
}

func TestSave_NoID(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(&Profile{}); err == nil {
		t.Error("expected error saving profile without id")
	}
}

func TestDelete_Missing(t *testing.T) {
	s := newTestStore(t)
	if err := s.Delete("doesnotexist"); err != nil {
		t.Errorf("Delete() on missing record: %v", err)
	}
}
