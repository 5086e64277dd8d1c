package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

type Recording struct {
	ent.Schema
}

func (Recording) Fields() []ent.Field {
	return []ent.Field{
		field.String("filename").MaxLen(255),
		field.String("filepath").MaxLen(500),
		field.String("mimetype").MaxLen(100),
		field.Int64("size"),
		field.Int("consultation_id"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Recording) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("consultation", Consultation.Type).
			Ref("recordings").
			Field("consultation_id").
			Unique().
			Required(),
		edge.To("transcription", Transcription.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
