// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mathcoach-dev/mathcoach/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *AttemptEventCreate) SetStudentID(v string) *AttemptEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptEventCreate) SetSessionID(v string) *AttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetObjectiveKey sets the "objective_key" field.
func (_c *AttemptEventCreate) SetObjectiveKey(v string) *AttemptEventCreate {
	_c.mutation.SetObjectiveKey(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *AttemptEventCreate) SetLevel(v int) *AttemptEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetExerciseText sets the "exercise_text" field.
func (_c *AttemptEventCreate) SetExerciseText(v string) *AttemptEventCreate {
	_c.mutation.SetExerciseText(v)
	return _c
}

// SetStudentAnswer sets the "student_answer" field.
func (_c *AttemptEventCreate) SetStudentAnswer(v string) *AttemptEventCreate {
	_c.mutation.SetStudentAnswer(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *AttemptEventCreate) SetIsCorrect(v bool) *AttemptEventCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *AttemptEventCreate) SetAttemptNumber(v int) *AttemptEventCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetHintUsed sets the "hint_used" field.
func (_c *AttemptEventCreate) SetHintUsed(v bool) *AttemptEventCreate {
	_c.mutation.SetHintUsed(v)
	return _c
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableHintUsed(v *bool) *AttemptEventCreate {
	if v != nil {
		_c.SetHintUsed(*v)
	}
	return _c
}

// SetInputMode sets the "input_mode" field.
func (_c *AttemptEventCreate) SetInputMode(v string) *AttemptEventCreate {
	_c.mutation.SetInputMode(v)
	return _c
}

// SetNillableInputMode sets the "input_mode" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableInputMode(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetInputMode(*v)
	}
	return _c
}

// SetEvaluation sets the "evaluation" field.
func (_c *AttemptEventCreate) SetEvaluation(v string) *AttemptEventCreate {
	_c.mutation.SetEvaluation(v)
	return _c
}

// SetNillableEvaluation sets the "evaluation" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableEvaluation(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetEvaluation(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.HintUsed(); !ok {
		v := attemptevent.DefaultHintUsed
		_c.mutation.SetHintUsed(v)
	}
	if _, ok := _c.mutation.InputMode(); !ok {
		v := attemptevent.DefaultInputMode
		_c.mutation.SetInputMode(v)
	}
	if _, ok := _c.mutation.Evaluation(); !ok {
		v := attemptevent.DefaultEvaluation
		_c.mutation.SetEvaluation(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "AttemptEvent.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := attemptevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AttemptEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectiveKey(); !ok {
		return &ValidationError{Name: "objective_key", err: errors.New(`ent: missing required field "AttemptEvent.objective_key"`)}
	}
	if v, ok := _c.mutation.ObjectiveKey(); ok {
		if err := attemptevent.ObjectiveKeyValidator(v); err != nil {
			return &ValidationError{Name: "objective_key", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.objective_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "AttemptEvent.level"`)}
	}
	if _, ok := _c.mutation.ExerciseText(); !ok {
		return &ValidationError{Name: "exercise_text", err: errors.New(`ent: missing required field "AttemptEvent.exercise_text"`)}
	}
	if v, ok := _c.mutation.ExerciseText(); ok {
		if err := attemptevent.ExerciseTextValidator(v); err != nil {
			return &ValidationError{Name: "exercise_text", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.exercise_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentAnswer(); !ok {
		return &ValidationError{Name: "student_answer", err: errors.New(`ent: missing required field "AttemptEvent.student_answer"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "AttemptEvent.is_correct"`)}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "AttemptEvent.attempt_number"`)}
	}
	if _, ok := _c.mutation.HintUsed(); !ok {
		return &ValidationError{Name: "hint_used", err: errors.New(`ent: missing required field "AttemptEvent.hint_used"`)}
	}
	if _, ok := _c.mutation.InputMode(); !ok {
		return &ValidationError{Name: "input_mode", err: errors.New(`ent: missing required field "AttemptEvent.input_mode"`)}
	}
	if _, ok := _c.mutation.Evaluation(); !ok {
		return &ValidationError{Name: "evaluation", err: errors.New(`ent: missing required field "AttemptEvent.evaluation"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(attemptevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ObjectiveKey(); ok {
		_spec.SetField(attemptevent.FieldObjectiveKey, field.TypeString, value)
		_node.ObjectiveKey = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(attemptevent.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.ExerciseText(); ok {
		_spec.SetField(attemptevent.FieldExerciseText, field.TypeString, value)
		_node.ExerciseText = value
	}
	if value, ok := _c.mutation.StudentAnswer(); ok {
		_spec.SetField(attemptevent.FieldStudentAnswer, field.TypeString, value)
		_node.StudentAnswer = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(attemptevent.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(attemptevent.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.HintUsed(); ok {
		_spec.SetField(attemptevent.FieldHintUsed, field.TypeBool, value)
		_node.HintUsed = value
	}
	if value, ok := _c.mutation.InputMode(); ok {
		_spec.SetField(attemptevent.FieldInputMode, field.TypeString, value)
		_node.InputMode = value
	}
	if value, ok := _c.mutation.Evaluation(); ok {
		_spec.SetField(attemptevent.FieldEvaluation, field.TypeString, value)
		_node.Evaluation = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
