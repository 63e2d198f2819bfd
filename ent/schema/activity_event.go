package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent is an append-only audit record of learning activity:
// lesson completions and module completions. The progress document is
// the durability backstop the syncer writes; this log exists for
// history views and analytics.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("kind").NotEmpty().
			Comment("lesson-completed or module-completed"),
		field.String("lesson_id").Optional(),
		field.String("module_id").Optional(),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("kind"),
	}
}
