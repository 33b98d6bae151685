package progression

import (
	"testing"
	"time"
)

func TestLoop_CorrectFirstTry(t *testing.T) {
	p := newProfile("algebra", 1)
	l := NewLoop()

	out := l.Submit(p, "3x + 5 = 17", "x = 4", true)

	if out != OutcomeCompleted {
		t.Errorf("outcome = %v, want completed", out)
	}
	if !l.Done() {
		t.Error("loop should be done")
	}
	if len(p.LearningHistory) != 1 {
		t.Fatalf("history length = %d, want 1", len(p.LearningHistory))
	}
	rec := p.LearningHistory[0]
	if !rec.Correct || rec.Attempt != 1 {
		t.Errorf("record = %+v", rec)
	}
}

func TestLoop_ExhaustedAfterTwoWrongAnswers(t *testing.T) {
	p := newProfile("algebra", 1)
	l := NewLoop()

	if out := l.Submit(p, "3x + 5 = 17", "x = 3", false); out != OutcomeContinue {
		t.Fatalf("first submit outcome = %v, want continue", out)
	}
	if l.Done() {
		t.Fatal("loop should not be done after first wrong answer")
	}

	out := l.Submit(p, "3x + 5 = 17", "x = 5", false)
	if out != OutcomeExhausted {
		t.Errorf("second submit outcome = %v, want exhausted", out)
	}
	if !l.Done() {
		t.Error("loop should be done")
	}

	// Both submitted answers produce history entries, not just the final.
	if len(p.LearningHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(p.LearningHistory))
	}
	for i, rec := range p.LearningHistory {
		if rec.Correct {
			t.Errorf("record %d marked correct", i)
		}
		if rec.Attempt != i+1 {
			t.Errorf("record %d attempt = %d, want %d", i, rec.Attempt, i+1)
		}
	}

	// Progression state is untouched by an exhausted loop.
	if p.Level != 1 || p.CurrentObjective != "algebra" {
		t.Errorf("profile state changed: level=%d objective=%q", p.Level, p.CurrentObjective)
	}
}

func TestLoop_WrongThenCorrect(t *testing.T) {
	p := newProfile("algebra", 1)
	l := NewLoop()

	l.Submit(p, "3x + 5 = 17", "x = 3", false)
	out := l.Submit(p, "3x + 5 = 17", "x = 4", true)

	if out != OutcomeCompleted {
		t.Errorf("outcome = %v, want completed", out)
	}
	if len(p.LearningHistory) != 2 {
		t.Fatalf("history length = %d, want 2", len(p.LearningHistory))
	}
	if p.LearningHistory[0].Correct || !p.LearningHistory[1].Correct {
		t.Error("correctness flags wrong in history")
	}
}

func TestLoop_HintDoesNotConsumeAttempt(t *testing.T) {
	p := newProfile("algebra", 1)
	l := NewLoop()

	l.Hint()
	l.Hint()
	if l.Attempts() != 0 {
		t.Errorf("attempts = %d after hints, want 0", l.Attempts())
	}

	l.Submit(p, "3x + 5 = 17", "x = 3", false)
	l.Hint()
	if l.Attempts() != 1 {
		t.Errorf("attempts = %d, want 1 (hint must not change the counter)", l.Attempts())
	}
	if l.Remaining() != 1 {
		t.Errorf("remaining = %d, want 1", l.Remaining())
	}
}

func TestLoop_SubmitAfterDoneIsNoop(t *testing.T) {
	p := newProfile("algebra", 1)
	l := NewLoop()

	l.Submit(p, "q", "a", true)
	out := l.Submit(p, "q", "a", false)

	if out != OutcomeCompleted {
		t.Errorf("outcome = %v, want completed preserved", out)
	}
	if len(p.LearningHistory) != 1 {
		t.Errorf("history length = %d, want 1 (no record after terminal state)", len(p.LearningHistory))
	}
}

func TestLoop_HistoryLengthEqualsSubmissions(t *testing.T) {
	p := newProfile("algebra", 1)

	// N submitted answers across several loops yield exactly N entries.
	for i := 0; i < 3; i++ {
		l := NewLoop()
		l.Submit(p, "q", "a", false)
		l.Submit(p, "q", "a", false)
	}
	if len(p.LearningHistory) != 6 {
		t.Errorf("history length = %d, want 6", len(p.LearningHistory))
	}
}

func TestLoop_RecordsTimestamps(t *testing.T) {
	p := newProfile("algebra", 1)
	l := NewLoop()
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	l.Submit(p, "q", "a", true)

	if !p.LearningHistory[0].Timestamp.Equal(fixed) {
		t.Errorf("timestamp = %v, want %v", p.LearningHistory[0].Timestamp, fixed)
	}
}
