package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

type Summary struct {
	ent.Schema
}

func (Summary) Fields() []ent.Field {
	return []ent.Field{
		field.Text("content"),
		field.Int("consultation_id").Unique(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Summary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("consultation", Consultation.Type).
			Ref("summary").
			Field("consultation_id").
			Unique().
			Required(),
	}
}
