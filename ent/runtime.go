// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mathcoach-dev/mathcoach/ent/attemptevent"
	"github.com/mathcoach-dev/mathcoach/ent/llmrequestevent"
	"github.com/mathcoach-dev/mathcoach/ent/schema"
	"github.com/mathcoach-dev/mathcoach/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescStudentID is the schema descriptor for student_id field.
	attempteventDescStudentID := attempteventFields[0].Descriptor()
	// attemptevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	attemptevent.StudentIDValidator = attempteventDescStudentID.Validators[0].(func(string) error)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[1].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescObjectiveKey is the schema descriptor for objective_key field.
	attempteventDescObjectiveKey := attempteventFields[2].Descriptor()
	// attemptevent.ObjectiveKeyValidator is a validator for the "objective_key" field. It is called by the builders before save.
	attemptevent.ObjectiveKeyValidator = attempteventDescObjectiveKey.Validators[0].(func(string) error)
	// attempteventDescExerciseText is the schema descriptor for exercise_text field.
	attempteventDescExerciseText := attempteventFields[4].Descriptor()
	// attemptevent.ExerciseTextValidator is a validator for the "exercise_text" field. It is called by the builders before save.
	attemptevent.ExerciseTextValidator = attempteventDescExerciseText.Validators[0].(func(string) error)
	// attempteventDescHintUsed is the schema descriptor for hint_used field.
	attempteventDescHintUsed := attempteventFields[8].Descriptor()
	// attemptevent.DefaultHintUsed holds the default value on creation for the hint_used field.
	attemptevent.DefaultHintUsed = attempteventDescHintUsed.Default.(bool)
	// attempteventDescInputMode is the schema descriptor for input_mode field.
	attempteventDescInputMode := attempteventFields[9].Descriptor()
	// attemptevent.DefaultInputMode holds the default value on creation for the input_mode field.
	attemptevent.DefaultInputMode = attempteventDescInputMode.Default.(string)
	// attempteventDescEvaluation is the schema descriptor for evaluation field.
	attempteventDescEvaluation := attempteventFields[10].Descriptor()
	// attemptevent.DefaultEvaluation holds the default value on creation for the evaluation field.
	attemptevent.DefaultEvaluation = attempteventDescEvaluation.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescStudentID is the schema descriptor for student_id field.
	sessioneventDescStudentID := sessioneventFields[1].Descriptor()
	// sessionevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	sessionevent.StudentIDValidator = sessioneventDescStudentID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescObjectiveKey is the schema descriptor for objective_key field.
	sessioneventDescObjectiveKey := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultObjectiveKey holds the default value on creation for the objective_key field.
	sessionevent.DefaultObjectiveKey = sessioneventDescObjectiveKey.Default.(string)
	// sessioneventDescLevel is the schema descriptor for level field.
	sessioneventDescLevel := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultLevel holds the default value on creation for the level field.
	sessionevent.DefaultLevel = sessioneventDescLevel.Default.(int)
	// sessioneventDescAttemptsMade is the schema descriptor for attempts_made field.
	sessioneventDescAttemptsMade := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultAttemptsMade holds the default value on creation for the attempts_made field.
	sessionevent.DefaultAttemptsMade = sessioneventDescAttemptsMade.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescLevelsGained is the schema descriptor for levels_gained field.
	sessioneventDescLevelsGained := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultLevelsGained holds the default value on creation for the levels_gained field.
	sessionevent.DefaultLevelsGained = sessioneventDescLevelsGained.Default.(int)
	// sessioneventDescObjectivesCompleted is the schema descriptor for objectives_completed field.
	sessioneventDescObjectivesCompleted := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultObjectivesCompleted holds the default value on creation for the objectives_completed field.
	sessionevent.DefaultObjectivesCompleted = sessioneventDescObjectivesCompleted.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
