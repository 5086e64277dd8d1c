package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

type Transcription struct {
	ent.Schema
}

func (Transcription) Fields() []ent.Field {
	return []ent.Field{
		field.Text("text"),
		field.Int("recording_id").Unique(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Transcription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recording", Recording.Type).
			Ref("transcription").
			Field("recording_id").
			Unique().
			Required(),
	}
}
