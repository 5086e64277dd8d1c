// Code generated by ent, DO NOT EDIT.

package recording

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldFilename, v))
}

// Filepath applies equality check predicate on the "filepath" field. It's identical to FilepathEQ.
func Filepath(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldFilepath, v))
}

// Mimetype applies equality check predicate on the "mimetype" field. It's identical to MimetypeEQ.
func Mimetype(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMimetype, v))
}

// Size applies equality check predicate on the "size" field. It's identical to SizeEQ.
func Size(v int64) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldSize, v))
}

// ConsultationID applies equality check predicate on the "consultation_id" field. It's identical to ConsultationIDEQ.
func ConsultationID(v int) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldConsultationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldUpdatedAt, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldFilename, v))
}

// FilepathEQ applies the EQ predicate on the "filepath" field.
func FilepathEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldFilepath, v))
}

// FilepathNEQ applies the NEQ predicate on the "filepath" field.
func FilepathNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldFilepath, v))
}

// FilepathIn applies the In predicate on the "filepath" field.
func FilepathIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldFilepath, vs...))
}

// FilepathNotIn applies the NotIn predicate on the "filepath" field.
func FilepathNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldFilepath, vs...))
}

// FilepathGT applies the GT predicate on the "filepath" field.
func FilepathGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldFilepath, v))
}

// FilepathGTE applies the GTE predicate on the "filepath" field.
func FilepathGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldFilepath, v))
}

// FilepathLT applies the LT predicate on the "filepath" field.
func FilepathLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldFilepath, v))
}

// FilepathLTE applies the LTE predicate on the "filepath" field.
func FilepathLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldFilepath, v))
}

// FilepathContains applies the Contains predicate on the "filepath" field.
func FilepathContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldFilepath, v))
}

// FilepathHasPrefix applies the HasPrefix predicate on the "filepath" field.
func FilepathHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldFilepath, v))
}

// FilepathHasSuffix applies the HasSuffix predicate on the "filepath" field.
func FilepathHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldFilepath, v))
}

// FilepathEqualFold applies the EqualFold predicate on the "filepath" field.
func FilepathEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldFilepath, v))
}

// FilepathContainsFold applies the ContainsFold predicate on the "filepath" field.
func FilepathContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldFilepath, v))
}

// MimetypeEQ applies the EQ predicate on the "mimetype" field.
func MimetypeEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldMimetype, v))
}

// MimetypeNEQ applies the NEQ predicate on the "mimetype" field.
func MimetypeNEQ(v string) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldMimetype, v))
}

// MimetypeIn applies the In predicate on the "mimetype" field.
func MimetypeIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldMimetype, vs...))
}

// MimetypeNotIn applies the NotIn predicate on the "mimetype" field.
func MimetypeNotIn(vs ...string) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldMimetype, vs...))
}

// MimetypeGT applies the GT predicate on the "mimetype" field.
func MimetypeGT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldMimetype, v))
}

// MimetypeGTE applies the GTE predicate on the "mimetype" field.
func MimetypeGTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldMimetype, v))
}

// MimetypeLT applies the LT predicate on the "mimetype" field.
func MimetypeLT(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldMimetype, v))
}

// MimetypeLTE applies the LTE predicate on the "mimetype" field.
func MimetypeLTE(v string) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldMimetype, v))
}

// MimetypeContains applies the Contains predicate on the "mimetype" field.
func MimetypeContains(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContains(FieldMimetype, v))
}

// MimetypeHasPrefix applies the HasPrefix predicate on the "mimetype" field.
func MimetypeHasPrefix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasPrefix(FieldMimetype, v))
}

// MimetypeHasSuffix applies the HasSuffix predicate on the "mimetype" field.
func MimetypeHasSuffix(v string) predicate.Recording {
	return predicate.Recording(sql.FieldHasSuffix(FieldMimetype, v))
}

// MimetypeEqualFold applies the EqualFold predicate on the "mimetype" field.
func MimetypeEqualFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldEqualFold(FieldMimetype, v))
}

// MimetypeContainsFold applies the ContainsFold predicate on the "mimetype" field.
func MimetypeContainsFold(v string) predicate.Recording {
	return predicate.Recording(sql.FieldContainsFold(FieldMimetype, v))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v int64) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v int64) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...int64) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...int64) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldSize, vs...))
}

// SizeGT applies the GT predicate on the "size" field.
func SizeGT(v int64) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldSize, v))
}

// SizeGTE applies the GTE predicate on the "size" field.
func SizeGTE(v int64) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldSize, v))
}

// SizeLT applies the LT predicate on the "size" field.
func SizeLT(v int64) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldSize, v))
}

// SizeLTE applies the LTE predicate on the "size" field.
func SizeLTE(v int64) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldSize, v))
}

// ConsultationIDEQ applies the EQ predicate on the "consultation_id" field.
func ConsultationIDEQ(v int) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldConsultationID, v))
}

// ConsultationIDNEQ applies the NEQ predicate on the "consultation_id" field.
func ConsultationIDNEQ(v int) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldConsultationID, v))
}

// ConsultationIDIn applies the In predicate on the "consultation_id" field.
func ConsultationIDIn(vs ...int) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldConsultationID, vs...))
}

// ConsultationIDNotIn applies the NotIn predicate on the "consultation_id" field.
func ConsultationIDNotIn(vs ...int) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldConsultationID, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Recording {
	return predicate.Recording(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasConsultation applies the HasEdge predicate on the "consultation" edge.
func HasConsultation() predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConsultationTable, ConsultationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConsultationWith applies the HasEdge predicate on the "consultation" edge with a given conditions (other predicates).
func HasConsultationWith(preds ...predicate.Consultation) predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := newConsultationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTranscription applies the HasEdge predicate on the "transcription" edge.
func HasTranscription() predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, TranscriptionTable, TranscriptionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTranscriptionWith applies the HasEdge predicate on the "transcription" edge with a given conditions (other predicates).
func HasTranscriptionWith(preds ...predicate.Transcription) predicate.Recording {
	return predicate.Recording(func(s *sql.Selector) {
		step := newTranscriptionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Recording) predicate.Recording {
	return predicate.Recording(sql.NotPredicates(p))
}
