// Package session orchestrates one student's tutoring session: resolving
// the active objective, driving the bounded attempt loop through the
// exercise/evaluation/coaching services, advancing the profile and
// persisting it after every progression write.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mathcoach-dev/mathcoach/internal/exercise"
	"github.com/mathcoach-dev/mathcoach/internal/memory"
	"github.com/mathcoach-dev/mathcoach/internal/profile"
	"github.com/mathcoach-dev/mathcoach/internal/progression"
	"github.com/mathcoach-dev/mathcoach/internal/store"
)

// New starts a session for the profile. The profile's objective is
// initialized from the catalog when empty; a profile pointing at an
// unknown objective is a fatal session error.
func New(ctx context.Context, p *profile.Profile, deps Deps) (*State, error) {
	if p.CurrentObjective == "" {
		deps.Engine.InitObjective(p)
	}

	s := &State{
		deps:      deps,
		Profile:   p,
		SessionID: uuid.NewString(),
		Phase:     PhaseObjective,
		StartTime: time.Now(),
	}

	obj, _, err := deps.Engine.Resolve(p)
	if err != nil {
		return nil, fmt.Errorf("resolve objective: %w", err)
	}
	s.recallMemories(ctx, obj.Description)

	s.appendSessionEvent(ctx, "start")
	if deps.Telemetry != nil {
		deps.Telemetry.LogParams(p.StudentID, map[string]string{
			"objective": p.CurrentObjective,
			"level":     fmt.Sprintf("%d", p.Level),
		})
	}
	return s, nil
}

// ExerciseInput builds the catalog context for exercise generation.
func (s *State) ExerciseInput() (exercise.Input, error) {
	obj, info, err := s.deps.Engine.Resolve(s.Profile)
	if err != nil {
		return exercise.Input{}, err
	}
	return exercise.Input{
		ObjectiveKey:         s.Profile.CurrentObjective,
		ObjectiveDescription: obj.Description,
		Level:                s.Profile.Level,
		LevelName:            info.Name,
		LevelObjectives:      info.Objectives,
		ExampleFunctions:     info.ExampleFunctions,
		RecentMemories:       s.MemoryNotes,
	}, nil
}

// BeginExercise generates the next exercise and opens a fresh attempt
// loop. Blocking; the UI wraps it in an async command.
func (s *State) BeginExercise(ctx context.Context) error {
	input, err := s.ExerciseInput()
	if err != nil {
		return err
	}

	s.CurrentExercise = s.deps.Exercises.Generate(ctx, input)
	s.startLoop()
	return nil
}

// BeginSimilarExercise regenerates at the same objective and level after
// an exhausted loop.
func (s *State) BeginSimilarExercise(ctx context.Context) {
	s.CurrentExercise = s.deps.Exercises.GenerateSimilar(ctx, s.CurrentExercise)
	s.startLoop()
}

func (s *State) startLoop() {
	s.Loop = progression.NewLoop()
	s.HintIndex = 0
	s.LastEvaluation = nil
	s.LastCoaching = nil
	s.LastAdvancement = nil
	s.OfferSimilar = false
	s.Phase = PhaseAnswering
}

// AttemptResult is what one submitted answer produced.
type AttemptResult struct {
	Outcome     progression.Outcome
	Advancement *progression.Advancement
}

// SubmitAnswer evaluates the answer, runs the attempt loop, persists the
// profile and, on a completed loop, advances it. Blocking; the UI wraps
// it in an async command. The returned error is fatal for the session
// (catalog inconsistency or persist failure).
func (s *State) SubmitAnswer(ctx context.Context, answer string) (*AttemptResult, error) {
	return s.submit(ctx, answer, "text")
}

// SubmitFile extracts the answer from a file and submits it. When nothing
// can be extracted the attempt is not consumed: the student is re-prompted
// as if no answer was provided, and ok is false.
func (s *State) SubmitFile(ctx context.Context, path string) (*AttemptResult, bool, error) {
	text, ok := s.deps.Extractor.Extract(ctx, path)
	if !ok {
		return nil, false, nil
	}
	res, err := s.submit(ctx, text, "file")
	return res, true, err
}

func (s *State) submit(ctx context.Context, answer, inputMode string) (*AttemptResult, error) {
	if s.Loop == nil || s.Loop.Done() {
		return nil, fmt.Errorf("no attempt loop in progress")
	}
	ex := s.CurrentExercise

	eval := s.deps.Evaluator.Evaluate(ctx, ex, answer)
	s.LastEvaluation = eval

	outcome := s.Loop.Submit(s.Profile, ex.Statement, answer, eval.IsCorrect)
	s.AttemptsMade++
	if eval.IsCorrect {
		s.CorrectAnswers++
	}

	s.appendAttemptEvent(ctx, answer, inputMode, eval.IsCorrect, eval.Feedback)

	result := &AttemptResult{Outcome: outcome}
	if outcome == progression.OutcomeCompleted {
		adv, err := s.deps.Engine.Advance(s.Profile)
		if err != nil {
			return nil, fmt.Errorf("advance profile: %w", err)
		}
		result.Advancement = adv
		s.LastAdvancement = adv
		if adv.LevelUp {
			s.LevelsGained++
		}
		if adv.ObjectiveCompleted != "" {
			s.ObjectivesCompleted++
		}
	}

	// Persist before any best-effort side channels.
	if err := s.deps.Profiles.Save(s.Profile); err != nil {
		return nil, fmt.Errorf("persist profile: %w", err)
	}
	s.logAttemptTelemetry(eval.IsCorrect, result.Advancement)
	s.recordMemory(ctx, answer, eval.IsCorrect)

	// Coaching is display-only and never blocks the outcome.
	s.LastCoaching = s.deps.Coach.Coach(ctx, eval, ex)

	switch outcome {
	case progression.OutcomeContinue:
		s.Phase = PhaseFeedback
	case progression.OutcomeExhausted:
		s.Phase = PhaseFeedback
		s.OfferSimilar = true
	case progression.OutcomeCompleted:
		if result.Advancement != nil && result.Advancement.Mastery {
			s.Phase = PhaseMastery
		} else {
			s.Phase = PhaseFeedback
		}
	}

	return result, nil
}

// RequestHint reveals the next hint without consuming an attempt. The
// second return value is false when the exercise has no more hints.
func (s *State) RequestHint() (string, bool) {
	if s.Loop != nil {
		s.Loop.Hint()
	}
	hints := s.CurrentExercise.Hints
	if s.HintIndex >= len(hints) {
		return "", false
	}
	h := hints[s.HintIndex]
	s.HintIndex++
	return h, true
}

// End closes the session: the end event is recorded and telemetry is
// flushed. Abandoning mid-attempt is safe — nothing past the last Save is
// kept.
func (s *State) End(ctx context.Context) {
	if s.Phase == PhaseEnded {
		return
	}
	s.Phase = PhaseEnded
	s.appendSessionEvent(ctx, "end")
	if s.deps.Telemetry != nil {
		s.deps.Telemetry.LogMetrics(s.Profile.StudentID, map[string]float64{
			"attempts":             float64(s.AttemptsMade),
			"correct":              float64(s.CorrectAnswers),
			"levels_gained":        float64(s.LevelsGained),
			"objectives_completed": float64(s.ObjectivesCompleted),
			"duration_secs":        time.Since(s.StartTime).Seconds(),
		})
	}
}

func (s *State) appendSessionEvent(ctx context.Context, action string) {
	if s.deps.EventRepo == nil {
		return
	}
	data := store.SessionEventData{
		SessionID:    s.SessionID,
		StudentID:    s.Profile.StudentID,
		Action:       action,
		ObjectiveKey: s.Profile.CurrentObjective,
		Level:        s.Profile.Level,
	}
	if action == "end" {
		data.AttemptsMade = s.AttemptsMade
		data.CorrectAnswers = s.CorrectAnswers
		data.LevelsGained = s.LevelsGained
		data.ObjectivesCompleted = s.ObjectivesCompleted
		data.DurationSecs = int(time.Since(s.StartTime).Seconds())
	}
	if err := s.deps.EventRepo.AppendSession(ctx, data); err != nil {
		// Event logging is best-effort; the session carries on.
		_ = err
	}
}

func (s *State) appendAttemptEvent(ctx context.Context, answer, inputMode string, correct bool, feedback string) {
	if s.deps.EventRepo == nil {
		return
	}
	err := s.deps.EventRepo.AppendAttempt(ctx, store.AttemptEventData{
		StudentID:     s.Profile.StudentID,
		SessionID:     s.SessionID,
		ObjectiveKey:  s.Profile.CurrentObjective,
		Level:         s.Profile.Level,
		ExerciseText:  s.CurrentExercise.Statement,
		StudentAnswer: answer,
		Correct:       correct,
		AttemptNumber: s.Loop.Attempts(),
		HintUsed:      s.HintIndex > 0,
		InputMode:     inputMode,
		Evaluation:    feedback,
	})
	_ = err
}

func (s *State) logAttemptTelemetry(correct bool, adv *progression.Advancement) {
	if s.deps.Telemetry == nil {
		return
	}
	fields := map[string]any{"correct": correct}
	if adv != nil {
		fields["level_up"] = adv.LevelUp
		fields["mastery"] = adv.Mastery
		if adv.ObjectiveCompleted != "" {
			fields["objective_completed"] = adv.ObjectiveCompleted
		}
	}
	s.deps.Telemetry.LogEvent(s.Profile.StudentID, "attempt", fields)
}

// recallMemories loads the memories nearest to the current objective so
// prompts can reference the student's past work. Best-effort: recall
// failures leave the session without notes.
func (s *State) recallMemories(ctx context.Context, objectiveDescription string) {
	items, err := s.deps.Memory.Search(ctx,
		memory.Namespace(s.Profile.StudentID), objectiveDescription, 3)
	if err != nil {
		return
	}
	for _, it := range items {
		s.MemoryNotes = append(s.MemoryNotes, it.Content)
	}
}

func (s *State) recordMemory(ctx context.Context, answer string, correct bool) {
	verdict := "incorrectly"
	if correct {
		verdict = "correctly"
	}
	content := fmt.Sprintf("Answered %q %s on %q (level %d): %s",
		answer, verdict, s.Profile.CurrentObjective, s.Profile.Level, s.CurrentExercise.Statement)
	// Best-effort; a nil store no-ops.
	_ = s.deps.Memory.Add(ctx, memory.Namespace(s.Profile.StudentID), "attempt", content)
}
