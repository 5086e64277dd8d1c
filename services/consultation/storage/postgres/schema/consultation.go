package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

type Consultation struct {
	ent.Schema
}

func (Consultation) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").MaxLen(255),
		field.Text("description").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Consultation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("note", Note.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("summary", Summary.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("recordings", Recording.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
