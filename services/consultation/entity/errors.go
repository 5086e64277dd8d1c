package entity

import "errors"

// Error kinds surfaced by the consultation service. Pipeline stages wrap
// ErrRemote with the stage-scoped kind, so errors.Is matches both.
var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrRemote              = errors.New("remote service error")
	ErrTranscriptionFailed = errors.New("transcription failed")
	ErrGenerationFailed    = errors.New("summary generation failed")
)
