package progression

import (
	"time"

	"github.com/mathcoach-dev/mathcoach/internal/profile"
)

// MaxAttempts is the bounded retry count for a single exercise.
const MaxAttempts = 2

// Outcome is the state of an attempt loop after a submitted answer.
type Outcome int

const (
	// OutcomeContinue means the answer was wrong and a retry remains.
	OutcomeContinue Outcome = iota
	// OutcomeCompleted means the answer was correct; the loop is done.
	OutcomeCompleted
	// OutcomeExhausted means all attempts were used without a correct
	// answer; the loop is done.
	OutcomeExhausted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeExhausted:
		return "exhausted"
	default:
		return "continue"
	}
}

// Loop tracks the bounded attempt state for one exercise instance.
type Loop struct {
	attempts int
	outcome  Outcome
	done     bool

	now func() time.Time
}

// NewLoop starts a fresh attempt loop.
func NewLoop() *Loop {
	return &Loop{now: time.Now}
}

// Attempts returns the number of answers submitted so far.
func (l *Loop) Attempts() int { return l.attempts }

// Remaining returns the number of attempts left.
func (l *Loop) Remaining() int { return MaxAttempts - l.attempts }

// Done reports whether the loop reached a terminal outcome.
func (l *Loop) Done() bool { return l.done }

// Outcome returns the terminal outcome. Only meaningful when Done.
func (l *Loop) Outcome() Outcome { return l.outcome }

// Submit records one evaluated answer against the profile: every submitted
// answer appends exactly one attempt record to the learning history,
// terminal or not. Returns the loop state after the submission.
func (l *Loop) Submit(p *profile.Profile, exerciseText, answer string, correct bool) Outcome {
	if l.done {
		return l.outcome
	}

	l.attempts++
	p.AppendAttempt(profile.AttemptRecord{
		Exercise:  exerciseText,
		Answer:    answer,
		Correct:   correct,
		Timestamp: l.now(),
		Attempt:   l.attempts,
	})

	switch {
	case correct:
		l.done = true
		l.outcome = OutcomeCompleted
	case l.attempts >= MaxAttempts:
		l.done = true
		l.outcome = OutcomeExhausted
	default:
		l.outcome = OutcomeContinue
	}
	return l.outcome
}

// Hint records a hint request. Hints do not consume an attempt and the
// counter never moves below zero; the student is simply re-prompted.
func (l *Loop) Hint() {
	// Attempt count is left untouched on purpose.
}
