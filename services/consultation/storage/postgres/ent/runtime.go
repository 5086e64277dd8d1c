// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/consultation"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/note"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/recording"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/summary"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/transcription"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	consultationFields := schema.Consultation{}.Fields()
	_ = consultationFields
	// consultationDescTitle is the schema descriptor for title field.
	consultationDescTitle := consultationFields[0].Descriptor()
	// consultation.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	consultation.TitleValidator = consultationDescTitle.Validators[0].(func(string) error)
	// consultationDescCreatedAt is the schema descriptor for created_at field.
	consultationDescCreatedAt := consultationFields[2].Descriptor()
	// consultation.DefaultCreatedAt holds the default value on creation for the created_at field.
	consultation.DefaultCreatedAt = consultationDescCreatedAt.Default.(func() time.Time)
	// consultationDescUpdatedAt is the schema descriptor for updated_at field.
	consultationDescUpdatedAt := consultationFields[3].Descriptor()
	// consultation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	consultation.DefaultUpdatedAt = consultationDescUpdatedAt.Default.(func() time.Time)
	// consultation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	consultation.UpdateDefaultUpdatedAt = consultationDescUpdatedAt.UpdateDefault.(func() time.Time)
	noteFields := schema.Note{}.Fields()
	_ = noteFields
	// noteDescContent is the schema descriptor for content field.
	noteDescContent := noteFields[0].Descriptor()
	// note.DefaultContent holds the default value on creation for the content field.
	note.DefaultContent = noteDescContent.Default.(string)
	// noteDescCreatedAt is the schema descriptor for created_at field.
	noteDescCreatedAt := noteFields[2].Descriptor()
	// note.DefaultCreatedAt holds the default value on creation for the created_at field.
	note.DefaultCreatedAt = noteDescCreatedAt.Default.(func() time.Time)
	// noteDescUpdatedAt is the schema descriptor for updated_at field.
	noteDescUpdatedAt := noteFields[3].Descriptor()
	// note.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	note.DefaultUpdatedAt = noteDescUpdatedAt.Default.(func() time.Time)
	// note.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	note.UpdateDefaultUpdatedAt = noteDescUpdatedAt.UpdateDefault.(func() time.Time)
	recordingFields := schema.Recording{}.Fields()
	_ = recordingFields
	// recordingDescFilename is the schema descriptor for filename field.
	recordingDescFilename := recordingFields[0].Descriptor()
	// recording.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	recording.FilenameValidator = recordingDescFilename.Validators[0].(func(string) error)
	// recordingDescFilepath is the schema descriptor for filepath field.
	recordingDescFilepath := recordingFields[1].Descriptor()
	// recording.FilepathValidator is a validator for the "filepath" field. It is called by the builders before save.
	recording.FilepathValidator = recordingDescFilepath.Validators[0].(func(string) error)
	// recordingDescMimetype is the schema descriptor for mimetype field.
	recordingDescMimetype := recordingFields[2].Descriptor()
	// recording.MimetypeValidator is a validator for the "mimetype" field. It is called by the builders before save.
	recording.MimetypeValidator = recordingDescMimetype.Validators[0].(func(string) error)
	// recordingDescCreatedAt is the schema descriptor for created_at field.
	recordingDescCreatedAt := recordingFields[5].Descriptor()
	// recording.DefaultCreatedAt holds the default value on creation for the created_at field.
	recording.DefaultCreatedAt = recordingDescCreatedAt.Default.(func() time.Time)
	// recordingDescUpdatedAt is the schema descriptor for updated_at field.
	recordingDescUpdatedAt := recordingFields[6].Descriptor()
	// recording.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recording.DefaultUpdatedAt = recordingDescUpdatedAt.Default.(func() time.Time)
	// recording.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recording.UpdateDefaultUpdatedAt = recordingDescUpdatedAt.UpdateDefault.(func() time.Time)
	summaryFields := schema.Summary{}.Fields()
	_ = summaryFields
	// summaryDescCreatedAt is the schema descriptor for created_at field.
	summaryDescCreatedAt := summaryFields[2].Descriptor()
	// summary.DefaultCreatedAt holds the default value on creation for the created_at field.
	summary.DefaultCreatedAt = summaryDescCreatedAt.Default.(func() time.Time)
	// summaryDescUpdatedAt is the schema descriptor for updated_at field.
	summaryDescUpdatedAt := summaryFields[3].Descriptor()
	// summary.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	summary.DefaultUpdatedAt = summaryDescUpdatedAt.Default.(func() time.Time)
	// summary.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	summary.UpdateDefaultUpdatedAt = summaryDescUpdatedAt.UpdateDefault.(func() time.Time)
	transcriptionFields := schema.Transcription{}.Fields()
	_ = transcriptionFields
	// transcriptionDescCreatedAt is the schema descriptor for created_at field.
	transcriptionDescCreatedAt := transcriptionFields[2].Descriptor()
	// transcription.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcription.DefaultCreatedAt = transcriptionDescCreatedAt.Default.(func() time.Time)
	// transcriptionDescUpdatedAt is the schema descriptor for updated_at field.
	transcriptionDescUpdatedAt := transcriptionFields[3].Descriptor()
	// transcription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	transcription.DefaultUpdatedAt = transcriptionDescUpdatedAt.Default.(func() time.Time)
	// transcription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	transcription.UpdateDefaultUpdatedAt = transcriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
