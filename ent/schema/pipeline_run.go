package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineRun persists one adaptation run: the submitted material, the
// learner profile used, and the full processing state at completion.
type PipelineRun struct {
	ent.Schema
}

func (PipelineRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Immutable().
			Comment("UUID assigned when the run is submitted"),
		field.String("status").
			Comment("queued, processing, complete, incomplete, failed"),
		field.String("title").
			Default("").
			Comment("Material title, if provided"),
		field.String("language").
			Default("en").
			Comment("Detected content language code"),
		field.JSON("state", map[string]any{}).
			Comment("Full processing state as JSON"),
		field.String("error_message").
			Default("").
			Comment("Terminal error if the run failed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (PipelineRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
