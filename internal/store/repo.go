package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // filter model request events by purpose label
}

// AttemptEventData captures one exercise attempt.
type AttemptEventData struct {
	StudentID     string
	SessionID     string
	ObjectiveKey  string
	Level         int
	ExerciseText  string
	StudentAnswer string
	Correct       bool
	AttemptNumber int
	HintUsed      bool
	InputMode     string // "text" or "file"
	Evaluation    string
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID           string
	StudentID           string
	Action              string // "start" or "end"
	ObjectiveKey        string
	Level               int
	AttemptsMade        int
	CorrectAnswers      int
	LevelsGained        int
	ObjectivesCompleted int
	DurationSecs        int
}

// LLMRequestEventData captures the data for a single model request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is a stored model request event.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsage aggregates model request events by one dimension (purpose or
// model).
type LLMUsage struct {
	Key          string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// ObjectiveStats aggregates a student's attempts per objective.
type ObjectiveStats struct {
	ObjectiveKey string
	Attempts     int
	Correct      int
}

// EventRepo provides append and query access to the event history.
type EventRepo interface {
	// AppendAttempt records one exercise attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// StudentAccuracy returns the fraction of a student's attempts that
	// were correct, 0 when there are none.
	StudentAccuracy(ctx context.Context, studentID string) (float64, error)

	// AttemptsByObjective aggregates a student's attempts per objective,
	// ordered by objective key.
	AttemptsByObjective(ctx context.Context, studentID string) ([]ObjectiveStats, error)

	// QueryLLMEvents returns model request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// LLMUsageByPurpose aggregates model requests per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates model requests per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
