package session

import (
	"time"

	sess "github.com/mathcoach-dev/mathcoach/internal/session"
)

// sessionReadyMsg is sent when session initialization is complete.
type sessionReadyMsg struct {
	State *sess.State
	Err   error
}

// exerciseReadyMsg is sent when an exercise has been generated.
type exerciseReadyMsg struct{}

// attemptMsg is sent when a submitted answer has been evaluated.
type attemptMsg struct {
	Result *sess.AttemptResult
	// Extracted is false when a file submission produced no usable text.
	Extracted bool
	Err       error
}

// spinnerTickMsg animates the waiting indicator during generation and
// evaluation.
type spinnerTickMsg time.Time
