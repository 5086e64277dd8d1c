package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

type Note struct {
	ent.Schema
}

func (Note) Fields() []ent.Field {
	return []ent.Field{
		field.Text("content").Default(""),
		// Unique column backs the one-note-per-consultation invariant and
		// lets the upsert run as a single conditional write.
		field.Int("consultation_id").Unique(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Note) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("consultation", Consultation.Type).
			Ref("note").
			Field("consultation_id").
			Unique().
			Required(),
	}
}
