// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldObjectiveKey holds the string denoting the objective_key field in the database.
	FieldObjectiveKey = "objective_key"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldExerciseText holds the string denoting the exercise_text field in the database.
	FieldExerciseText = "exercise_text"
	// FieldStudentAnswer holds the string denoting the student_answer field in the database.
	FieldStudentAnswer = "student_answer"
	// FieldIsCorrect holds the string denoting the is_correct field in the database.
	FieldIsCorrect = "is_correct"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldHintUsed holds the string denoting the hint_used field in the database.
	FieldHintUsed = "hint_used"
	// FieldInputMode holds the string denoting the input_mode field in the database.
	FieldInputMode = "input_mode"
	// FieldEvaluation holds the string denoting the evaluation field in the database.
	FieldEvaluation = "evaluation"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldStudentID,
	FieldSessionID,
	FieldObjectiveKey,
	FieldLevel,
	FieldExerciseText,
	FieldStudentAnswer,
	FieldIsCorrect,
	FieldAttemptNumber,
	FieldHintUsed,
	FieldInputMode,
	FieldEvaluation,
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
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ObjectiveKeyValidator is a validator for the "objective_key" field. It is called by the builders before save.
	ObjectiveKeyValidator func(string) error
	// ExerciseTextValidator is a validator for the "exercise_text" field. It is called by the builders before save.
	ExerciseTextValidator func(string) error
	// DefaultHintUsed holds the default value on creation for the "hint_used" field.
	DefaultHintUsed bool
	// DefaultInputMode holds the default value on creation for the "input_mode" field.
	DefaultInputMode string
	// DefaultEvaluation holds the default value on creation for the "evaluation" field.
	DefaultEvaluation string
)

// OrderOption defines the ordering options for the AttemptEvent queries.
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

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByObjectiveKey orders the results by the objective_key field.
func ByObjectiveKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectiveKey, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByExerciseText orders the results by the exercise_text field.
func ByExerciseText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExerciseText, opts...).ToFunc()
}

// ByStudentAnswer orders the results by the student_answer field.
func ByStudentAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentAnswer, opts...).ToFunc()
}

// ByIsCorrect orders the results by the is_correct field.
func ByIsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCorrect, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// ByHintUsed orders the results by the hint_used field.
func ByHintUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintUsed, opts...).ToFunc()
}

// ByInputMode orders the results by the input_mode field.
func ByInputMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputMode, opts...).ToFunc()
}

// ByEvaluation orders the results by the evaluation field.
func ByEvaluation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluation, opts...).ToFunc()
}
