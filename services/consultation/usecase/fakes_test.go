package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

// fakeStorage is an in-memory Storage with the same observable semantics as
// the postgres implementation: one note and at most one summary per
// consultation, recordings in insertion order, cascade on delete.
type fakeStorage struct {
	mu             sync.Mutex
	nextID         int
	consultations  map[int]*entity.Consultation
	notes          map[int]*entity.Note          // keyed by consultation id
	recordings     map[int]*entity.Recording     // keyed by recording id
	transcriptions map[int]*entity.Transcription // keyed by recording id
	summaries      map[int]*entity.Summary       // keyed by consultation id
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		consultations:  make(map[int]*entity.Consultation),
		notes:          make(map[int]*entity.Note),
		recordings:     make(map[int]*entity.Recording),
		transcriptions: make(map[int]*entity.Transcription),
		summaries:      make(map[int]*entity.Summary),
	}
}

func (f *fakeStorage) id() int {
	f.nextID++
	return f.nextID
}

func (f *fakeStorage) CreateConsultation(ctx context.Context, title string, description *string) (*entity.Consultation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	consultation := &entity.Consultation{
		ID:          f.id(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	note := &entity.Note{
		ID:             f.id(),
		ConsultationID: consultation.ID,
		Content:        "",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.consultations[consultation.ID] = consultation
	f.notes[consultation.ID] = note

	result := *consultation
	noteCopy := *note
	result.Note = &noteCopy
	return &result, nil
}

func (f *fakeStorage) GetConsultation(ctx context.Context, id int) (*entity.Consultation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	consultation, ok := f.consultations[id]
	if !ok {
		return nil, fmt.Errorf("consultation %d: %w", id, entity.ErrNotFound)
	}

	return f.assemble(consultation), nil
}

func (f *fakeStorage) assemble(consultation *entity.Consultation) *entity.Consultation {
	result := *consultation
	if note, ok := f.notes[consultation.ID]; ok {
		noteCopy := *note
		result.Note = &noteCopy
	}
	if summary, ok := f.summaries[consultation.ID]; ok {
		summaryCopy := *summary
		result.Summary = &summaryCopy
	}

	result.Recordings = nil
	for _, recording := range f.sortedRecordings(consultation.ID) {
		recordingCopy := *recording
		if transcription, ok := f.transcriptions[recording.ID]; ok {
			transcriptionCopy := *transcription
			recordingCopy.Transcription = &transcriptionCopy
		}
		result.Recordings = append(result.Recordings, &recordingCopy)
	}
	return &result
}

func (f *fakeStorage) sortedRecordings(consultationID int) []*entity.Recording {
	var recordings []*entity.Recording
	for _, recording := range f.recordings {
		if recording.ConsultationID == consultationID {
			recordings = append(recordings, recording)
		}
	}
	sort.Slice(recordings, func(i, j int) bool { return recordings[i].ID < recordings[j].ID })
	return recordings
}

func (f *fakeStorage) ListConsultations(ctx context.Context) ([]*entity.Consultation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var ids []int
	for id := range f.consultations {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]*entity.Consultation, 0, len(ids))
	for _, id := range ids {
		result = append(result, f.assemble(f.consultations[id]))
	}
	return result, nil
}

func (f *fakeStorage) ConsultationExists(ctx context.Context, id int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.consultations[id]
	return ok, nil
}

func (f *fakeStorage) DeleteConsultation(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.consultations[id]; !ok {
		return fmt.Errorf("consultation %d: %w", id, entity.ErrNotFound)
	}
	delete(f.consultations, id)
	delete(f.notes, id)
	delete(f.summaries, id)
	for recordingID, recording := range f.recordings {
		if recording.ConsultationID == id {
			delete(f.recordings, recordingID)
			delete(f.transcriptions, recordingID)
		}
	}
	return nil
}

func (f *fakeStorage) GetNoteByConsultation(ctx context.Context, consultationID int) (*entity.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	note, ok := f.notes[consultationID]
	if !ok {
		return nil, fmt.Errorf("note for consultation %d: %w", consultationID, entity.ErrNotFound)
	}
	noteCopy := *note
	return &noteCopy, nil
}

func (f *fakeStorage) UpsertNote(ctx context.Context, consultationID int, content string) (*entity.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	note, ok := f.notes[consultationID]
	if ok {
		note.Content = content
		note.UpdatedAt = time.Now()
	} else {
		now := time.Now()
		note = &entity.Note{
			ID:             f.id(),
			ConsultationID: consultationID,
			Content:        content,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		f.notes[consultationID] = note
	}

	noteCopy := *note
	return &noteCopy, nil
}

func (f *fakeStorage) CreateRecording(ctx context.Context, consultationID int, filename, filepath, mimetype string, size int64) (*entity.Recording, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	recording := &entity.Recording{
		ID:             f.id(),
		ConsultationID: consultationID,
		Filename:       filename,
		Filepath:       filepath,
		Mimetype:       mimetype,
		Size:           size,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.recordings[recording.ID] = recording

	recordingCopy := *recording
	return &recordingCopy, nil
}

func (f *fakeStorage) GetRecording(ctx context.Context, id int) (*entity.Recording, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	recording, ok := f.recordings[id]
	if !ok {
		return nil, fmt.Errorf("recording %d: %w", id, entity.ErrNotFound)
	}
	recordingCopy := *recording
	if transcription, ok := f.transcriptions[id]; ok {
		transcriptionCopy := *transcription
		recordingCopy.Transcription = &transcriptionCopy
	}
	return &recordingCopy, nil
}

func (f *fakeStorage) ListUntranscribedRecordings(ctx context.Context, consultationID int) ([]*entity.Recording, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := []*entity.Recording{}
	for _, recording := range f.sortedRecordings(consultationID) {
		if _, ok := f.transcriptions[recording.ID]; !ok {
			recordingCopy := *recording
			result = append(result, &recordingCopy)
		}
	}
	return result, nil
}

func (f *fakeStorage) CreateTranscription(ctx context.Context, recordingID int, text string) (*entity.Transcription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	transcription := &entity.Transcription{
		ID:          f.id(),
		RecordingID: recordingID,
		Text:        text,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.transcriptions[recordingID] = transcription

	transcriptionCopy := *transcription
	return &transcriptionCopy, nil
}

func (f *fakeStorage) UpsertSummary(ctx context.Context, consultationID int, content string) (*entity.Summary, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	summary, ok := f.summaries[consultationID]
	if ok {
		summary.Content = content
		summary.UpdatedAt = time.Now()
		summaryCopy := *summary
		return &summaryCopy, false, nil
	}

	now := time.Now()
	summary = &entity.Summary{
		ID:             f.id(),
		ConsultationID: consultationID,
		Content:        content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.summaries[consultationID] = summary

	summaryCopy := *summary
	return &summaryCopy, true, nil
}

// fakeFileStore keeps audio blobs in memory.
type fakeFileStore struct {
	mu    sync.Mutex
	n     int
	files map[string][]byte
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: make(map[string][]byte)}
}

func (f *fakeFileStore) Save(ctx context.Context, r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	path := fmt.Sprintf("recordings/audio-%d", f.n)
	f.files[path] = data
	return path, nil
}

func (f *fakeFileStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("audio file %s: %w", path, entity.ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

type fakeTranscriber struct {
	text  string
	err   error
	calls int
	audio []byte
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio io.Reader, filename, mimetype string) (string, error) {
	f.calls++
	data, rerr := io.ReadAll(audio)
	if rerr != nil {
		return "", rerr
	}
	f.audio = data
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeGenerator struct {
	content   string
	err       error
	calls     int
	gotSystem string
	gotDoc    string
	gotMax    int64
}

func (f *fakeGenerator) Complete(ctx context.Context, systemPrompt, document string, maxTokens int64) (string, error) {
	f.calls++
	f.gotSystem = systemPrompt
	f.gotDoc = document
	f.gotMax = maxTokens
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

func newTestUsecase() (Usecase, *fakeStorage, *fakeFileStore, *fakeTranscriber, *fakeGenerator) {
	stg := newFakeStorage()
	files := newFakeFileStore()
	transcriber := &fakeTranscriber{text: "transcribed text"}
	generator := &fakeGenerator{content: "generated summary"}
	return New(stg, files, transcriber, generator), stg, files, transcriber, generator
}
