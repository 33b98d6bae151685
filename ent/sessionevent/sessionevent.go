// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldObjectiveKey holds the string denoting the objective_key field in the database.
	FieldObjectiveKey = "objective_key"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldAttemptsMade holds the string denoting the attempts_made field in the database.
	FieldAttemptsMade = "attempts_made"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldLevelsGained holds the string denoting the levels_gained field in the database.
	FieldLevelsGained = "levels_gained"
	// FieldObjectivesCompleted holds the string denoting the objectives_completed field in the database.
	FieldObjectivesCompleted = "objectives_completed"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldStudentID,
	FieldAction,
	FieldObjectiveKey,
	FieldLevel,
	FieldAttemptsMade,
	FieldCorrectAnswers,
	FieldLevelsGained,
	FieldObjectivesCompleted,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultObjectiveKey holds the default value on creation for the "objective_key" field.
	DefaultObjectiveKey string
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel int
	// DefaultAttemptsMade holds the default value on creation for the "attempts_made" field.
	DefaultAttemptsMade int
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
	// DefaultLevelsGained holds the default value on creation for the "levels_gained" field.
	DefaultLevelsGained int
	// DefaultObjectivesCompleted holds the default value on creation for the "objectives_completed" field.
	DefaultObjectivesCompleted int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByObjectiveKey orders the results by the objective_key field.
func ByObjectiveKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectiveKey, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByAttemptsMade orders the results by the attempts_made field.
func ByAttemptsMade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptsMade, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByLevelsGained orders the results by the levels_gained field.
func ByLevelsGained(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelsGained, opts...).ToFunc()
}

// ByObjectivesCompleted orders the results by the objectives_completed field.
func ByObjectivesCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectivesCompleted, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
