package entity

import "io"

// UploadRecordingRequest carries the intake-provided audio stream and its
// declared metadata. The pipeline stores both untouched.
type UploadRecordingRequest struct {
	ConsultationID int
	Audio          io.Reader
	Filename       string
	Mimetype       string
	Size           int64
}

type UploadRecordingResponse struct {
	Recording     *Recording
	Transcription *Transcription
}
