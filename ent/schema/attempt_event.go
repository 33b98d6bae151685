package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single exercise attempt within a session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty().
			Comment("Profile this attempt belongs to"),
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("objective_key").
			NotEmpty().
			Comment("Objective the exercise was for"),
		field.Int("level").
			Comment("Difficulty level within the objective"),
		field.String("exercise_text").
			NotEmpty().
			Comment("The exercise statement shown"),
		field.String("student_answer").
			Comment("What the student submitted"),
		field.Bool("is_correct").
			Comment("Whether the evaluation judged the answer correct"),
		field.Int("attempt_number").
			Comment("1 for first try, 2 for retry"),
		field.Bool("hint_used").
			Default(false).
			Comment("Whether a hint was requested before answering"),
		field.String("input_mode").
			Default("text").
			Comment("text or file"),
		field.String("evaluation").
			Default("").
			Comment("Model explanation of the verdict"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("session_id"),
		index.Fields("objective_key"),
		index.Fields("is_correct"),
	}
}
