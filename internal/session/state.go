package session

import (
	"time"

	"github.com/mathcoach-dev/mathcoach/internal/coaching"
	"github.com/mathcoach-dev/mathcoach/internal/evaluation"
	"github.com/mathcoach-dev/mathcoach/internal/exercise"
	"github.com/mathcoach-dev/mathcoach/internal/extract"
	"github.com/mathcoach-dev/mathcoach/internal/memory"
	"github.com/mathcoach-dev/mathcoach/internal/profile"
	"github.com/mathcoach-dev/mathcoach/internal/progression"
	"github.com/mathcoach-dev/mathcoach/internal/store"
	"github.com/mathcoach-dev/mathcoach/internal/telemetry"
)

// Phase is the current phase of an active session.
type Phase int

const (
	PhaseObjective  Phase = iota // showing the objective/level card
	PhaseGenerating              // waiting for exercise generation
	PhaseAnswering               // waiting for the student's answer
	PhaseEvaluating              // waiting for the evaluation
	PhaseFeedback                // showing evaluation + coaching
	PhaseMastery                 // catalog exhausted, terminal congratulations
	PhaseEnded                   // session closed
)

// Deps are the collaborators a session needs. Exercises, Evaluator and
// Coach must be set; the rest degrade gracefully when nil.
type Deps struct {
	Profiles  *profile.Store
	Engine    *progression.Engine
	Exercises *exercise.Service
	Evaluator *evaluation.Service
	Coach     *coaching.Service
	Extractor *extract.Extractor
	EventRepo store.EventRepo
	Telemetry telemetry.Sink
	Memory    *memory.Store
}

// State is the runtime state of one student's tutoring session. One state
// drives one profile; collaborator calls are made one at a time, in
// attempt order.
type State struct {
	deps Deps

	// Profile is the live profile; persisted after every progression write.
	Profile *profile.Profile

	// SessionID groups this session's events.
	SessionID string

	// Phase is the current session phase.
	Phase Phase

	// Loop is the attempt loop for the current exercise.
	Loop *progression.Loop

	// CurrentExercise is the exercise being worked on (nil while
	// generating).
	CurrentExercise *exercise.Exercise

	// HintIndex is the next hint to reveal for the current exercise.
	HintIndex int

	// LastEvaluation and LastCoaching back the feedback phase.
	LastEvaluation *evaluation.Result
	LastCoaching   *coaching.Message

	// LastAdvancement is set when the previous completed loop moved the
	// profile forward.
	LastAdvancement *progression.Advancement

	// OfferSimilar is true while the student decides between a similar
	// exercise and a fresh one after exhausting attempts.
	OfferSimilar bool

	// MemoryNotes are past tutoring moments recalled at session start,
	// fed into exercise generation as student context.
	MemoryNotes []string

	// Session totals for the end event and telemetry.
	StartTime           time.Time
	AttemptsMade        int
	CorrectAnswers      int
	LevelsGained        int
	ObjectivesCompleted int
}
