package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("student_id").
			NotEmpty().
			Comment("Profile the session belongs to"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("objective_key").
			Default("").
			Comment("Objective active when the event fired"),
		field.Int("level").
			Default(0).
			Comment("Level active when the event fired"),
		field.Int("attempts_made").
			Default(0).
			Comment("Total attempts (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on end only)"),
		field.Int("levels_gained").
			Default(0).
			Comment("Level-ups during the session (on end only)"),
		field.Int("objectives_completed").
			Default(0).
			Comment("Objectives finished during the session (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("student_id"),
		index.Fields("action"),
	}
}
