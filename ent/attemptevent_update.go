// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathcoach-dev/mathcoach/ent/attemptevent"
	"github.com/mathcoach-dev/mathcoach/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AttemptEventUpdate) SetStudentID(v string) *AttemptEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableStudentID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetObjectiveKey sets the "objective_key" field.
func (_u *AttemptEventUpdate) SetObjectiveKey(v string) *AttemptEventUpdate {
	_u.mutation.SetObjectiveKey(v)
	return _u
}

// SetNillableObjectiveKey sets the "objective_key" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableObjectiveKey(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetObjectiveKey(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AttemptEventUpdate) SetLevel(v int) *AttemptEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLevel(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *AttemptEventUpdate) AddLevel(v int) *AttemptEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetExerciseText sets the "exercise_text" field.
func (_u *AttemptEventUpdate) SetExerciseText(v string) *AttemptEventUpdate {
	_u.mutation.SetExerciseText(v)
	return _u
}

// SetNillableExerciseText sets the "exercise_text" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableExerciseText(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetExerciseText(*v)
	}
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *AttemptEventUpdate) SetStudentAnswer(v string) *AttemptEventUpdate {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableStudentAnswer(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AttemptEventUpdate) SetIsCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableIsCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *AttemptEventUpdate) SetAttemptNumber(v int) *AttemptEventUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptNumber(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *AttemptEventUpdate) AddAttemptNumber(v int) *AttemptEventUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetHintUsed sets the "hint_used" field.
func (_u *AttemptEventUpdate) SetHintUsed(v bool) *AttemptEventUpdate {
	_u.mutation.SetHintUsed(v)
	return _u
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableHintUsed(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetHintUsed(*v)
	}
	return _u
}

// SetInputMode sets the "input_mode" field.
func (_u *AttemptEventUpdate) SetInputMode(v string) *AttemptEventUpdate {
	_u.mutation.SetInputMode(v)
	return _u
}

// SetNillableInputMode sets the "input_mode" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableInputMode(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetInputMode(*v)
	}
	return _u
}

// SetEvaluation sets the "evaluation" field.
func (_u *AttemptEventUpdate) SetEvaluation(v string) *AttemptEventUpdate {
	_u.mutation.SetEvaluation(v)
	return _u
}

// SetNillableEvaluation sets the "evaluation" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableEvaluation(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetEvaluation(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := attemptevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectiveKey(); ok {
		if err := attemptevent.ObjectiveKeyValidator(v); err != nil {
			return &ValidationError{Name: "objective_key", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.objective_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseText(); ok {
		if err := attemptevent.ExerciseTextValidator(v); err != nil {
			return &ValidationError{Name: "exercise_text", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.exercise_text": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(attemptevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveKey(); ok {
		_spec.SetField(attemptevent.FieldObjectiveKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExerciseText(); ok {
		_spec.SetField(attemptevent.FieldExerciseText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(attemptevent.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(attemptevent.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(attemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(attemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintUsed(); ok {
		_spec.SetField(attemptevent.FieldHintUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InputMode(); ok {
		_spec.SetField(attemptevent.FieldInputMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evaluation(); ok {
		_spec.SetField(attemptevent.FieldEvaluation, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *AttemptEventUpdateOne) SetStudentID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableStudentID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetObjectiveKey sets the "objective_key" field.
func (_u *AttemptEventUpdateOne) SetObjectiveKey(v string) *AttemptEventUpdateOne {
	_u.mutation.SetObjectiveKey(v)
	return _u
}

// SetNillableObjectiveKey sets the "objective_key" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableObjectiveKey(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetObjectiveKey(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AttemptEventUpdateOne) SetLevel(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLevel(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *AttemptEventUpdateOne) AddLevel(v int) *AttemptEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetExerciseText sets the "exercise_text" field.
func (_u *AttemptEventUpdateOne) SetExerciseText(v string) *AttemptEventUpdateOne {
	_u.mutation.SetExerciseText(v)
	return _u
}

// SetNillableExerciseText sets the "exercise_text" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableExerciseText(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetExerciseText(*v)
	}
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *AttemptEventUpdateOne) SetStudentAnswer(v string) *AttemptEventUpdateOne {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableStudentAnswer(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AttemptEventUpdateOne) SetIsCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableIsCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *AttemptEventUpdateOne) SetAttemptNumber(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptNumber(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *AttemptEventUpdateOne) AddAttemptNumber(v int) *AttemptEventUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetHintUsed sets the "hint_used" field.
func (_u *AttemptEventUpdateOne) SetHintUsed(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetHintUsed(v)
	return _u
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableHintUsed(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetHintUsed(*v)
	}
	return _u
}

// SetInputMode sets the "input_mode" field.
func (_u *AttemptEventUpdateOne) SetInputMode(v string) *AttemptEventUpdateOne {
	_u.mutation.SetInputMode(v)
	return _u
}

// SetNillableInputMode sets the "input_mode" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableInputMode(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetInputMode(*v)
	}
	return _u
}

// SetEvaluation sets the "evaluation" field.
func (_u *AttemptEventUpdateOne) SetEvaluation(v string) *AttemptEventUpdateOne {
	_u.mutation.SetEvaluation(v)
	return _u
}

// SetNillableEvaluation sets the "evaluation" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableEvaluation(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetEvaluation(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := attemptevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectiveKey(); ok {
		if err := attemptevent.ObjectiveKeyValidator(v); err != nil {
			return &ValidationError{Name: "objective_key", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.objective_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseText(); ok {
		if err := attemptevent.ExerciseTextValidator(v); err != nil {
			return &ValidationError{Name: "exercise_text", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.exercise_text": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(attemptevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveKey(); ok {
		_spec.SetField(attemptevent.FieldObjectiveKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(attemptevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExerciseText(); ok {
		_spec.SetField(attemptevent.FieldExerciseText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(attemptevent.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(attemptevent.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(attemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(attemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintUsed(); ok {
		_spec.SetField(attemptevent.FieldHintUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InputMode(); ok {
		_spec.SetField(attemptevent.FieldInputMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evaluation(); ok {
		_spec.SetField(attemptevent.FieldEvaluation, field.TypeString, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
