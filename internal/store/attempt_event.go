package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/mathcoach-dev/mathcoach/ent"
	"github.com/mathcoach-dev/mathcoach/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetSessionID(data.SessionID).
		SetObjectiveKey(data.ObjectiveKey).
		SetLevel(data.Level).
		SetExerciseText(data.ExerciseText).
		SetStudentAnswer(data.StudentAnswer).
		SetIsCorrect(data.Correct).
		SetAttemptNumber(data.AttemptNumber).
		SetHintUsed(data.HintUsed).
		SetInputMode(data.InputMode).
		SetEvaluation(data.Evaluation).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) StudentAccuracy(ctx context.Context, studentID string) (float64, error) {
	total, err := r.client.AttemptEvent.Query().
		Where(attemptevent.StudentID(studentID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	correct, err := r.client.AttemptEvent.Query().
		Where(attemptevent.StudentID(studentID), attemptevent.IsCorrect(true)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count correct attempts: %w", err)
	}
	return float64(correct) / float64(total), nil
}

func (r *eventRepo) AttemptsByObjective(ctx context.Context, studentID string) ([]ObjectiveStats, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.StudentID(studentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	byKey := make(map[string]*ObjectiveStats)
	for _, e := range events {
		s, ok := byKey[e.ObjectiveKey]
		if !ok {
			s = &ObjectiveStats{ObjectiveKey: e.ObjectiveKey}
			byKey[e.ObjectiveKey] = s
		}
		s.Attempts++
		if e.IsCorrect {
			s.Correct++
		}
	}

	stats := make([]ObjectiveStats, 0, len(byKey))
	for _, s := range byKey {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].ObjectiveKey < stats[j].ObjectiveKey
	})
	return stats, nil
}
