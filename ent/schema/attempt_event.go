package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single question attempt within a practice session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question_id").
			Default("").
			Comment("Bank question ID, empty for generated questions"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("question_type").
			NotEmpty().
			Comment("multiple_choice, numeric, theory, or reflection"),
		field.String("concept_id").
			NotEmpty().
			Comment("Concept this question exercises"),
		field.String("objective_id").
			NotEmpty().
			Comment("Learning objective the question belongs to"),
		field.String("difficulty").
			Default("").
			Comment("Difficulty the question was served at"),
		field.String("learner_answer").
			Default("").
			Comment("What the learner entered"),
		field.Float("mark").
			Default(0).
			Comment("Score in [0, 1]; partial credit for theory answers"),
		field.Int("hints_used").
			Default(0).
			Comment("Hints requested before answering"),
		field.Bool("evaluated").
			Comment("False for reflection items, which are never graded"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds to answer"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("concept_id"),
		index.Fields("objective_id"),
		index.Fields("question_type"),
	}
}
