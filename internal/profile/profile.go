package profile

import "time"

// AttemptRecord is one evaluated answer. Records are immutable once
// appended to a profile's learning history.
type AttemptRecord struct {
	Exercise  string    `json:"exercise"`
	Answer    string    `json:"answer"`
	Correct   bool      `json:"is_correct"`
	Timestamp time.Time `json:"timestamp"`
	Attempt   int       `json:"attempt"`
}

// Profile is the persisted state of one student.
type Profile struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name,omitempty"`

	// Level indexes into the current objective's level sequence, starting
	// at 1. It never exceeds the objective's level count.
	Level int `json:"level"`

	// CurrentObjective is a key into the objective catalog. Empty when the
	// catalog is empty. It only ever advances forward in catalog order,
	// except for an explicit reset.
	CurrentObjective string `json:"current_objective,omitempty"`

	// LearningHistory is append-only and chronological.
	LearningHistory []AttemptRecord `json:"learning_history"`

	// ObjectivesCompleted is append-only; keys are never removed.
	ObjectivesCompleted []string `json:"objectives_completed"`

	CreatedAt   time.Time `json:"created_at"`
	LastSession time.Time `json:"last_session"`
}

// AppendAttempt adds one attempt record to the learning history.
func (p *Profile) AppendAttempt(r AttemptRecord) {
	p.LearningHistory = append(p.LearningHistory, r)
}

// CorrectCount returns the number of correct attempts in the history.
func (p *Profile) CorrectCount() int {
	n := 0
	for _, r := range p.LearningHistory {
		if r.Correct {
			n++
		}
	}
	return n
}

// Accuracy returns the fraction of correct attempts, 0 when no history.
func (p *Profile) Accuracy() float64 {
	if len(p.LearningHistory) == 0 {
		return 0
	}
	return float64(p.CorrectCount()) / float64(len(p.LearningHistory))
}

// HasCompleted reports whether the objective key is already recorded as
// completed.
func (p *Profile) HasCompleted(key string) bool {
	for _, k := range p.ObjectivesCompleted {
		if k == key {
			return true
		}
	}
	return false
}
