package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressDoc is the per-user progress record stored as a JSON
// document. One row per user; the sync engine overwrites the document
// on each debounced write.
type ProgressDoc struct {
	ent.Schema
}

func (ProgressDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty().
			Comment("Owning user"),
		field.JSON("data", map[string]any{}).
			Comment("Full progress record as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last successful write"),
	}
}

func (ProgressDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
