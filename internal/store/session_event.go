package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentID(data.StudentID).
		SetAction(data.Action).
		SetObjectiveKey(data.ObjectiveKey).
		SetLevel(data.Level).
		SetAttemptsMade(data.AttemptsMade).
		SetCorrectAnswers(data.CorrectAnswers).
		SetLevelsGained(data.LevelsGained).
		SetObjectivesCompleted(data.ObjectivesCompleted).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
