package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	config "github.com/felixmccuaig/lyrebird-health-interview/config/consultation"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

type fakeUsecase struct {
	createConsultation func(ctx context.Context, req *entity.CreateConsultationRequest) (*entity.CreateConsultationResponse, error)
	getConsultation    func(ctx context.Context, id int) (*entity.Consultation, error)
	listConsultations  func(ctx context.Context) ([]*entity.Consultation, error)
	deleteConsultation func(ctx context.Context, id int) error
	getNote            func(ctx context.Context, consultationID int) (*entity.Note, error)
	upsertNote         func(ctx context.Context, req *entity.UpsertNoteRequest) (*entity.UpsertNoteResponse, error)
	uploadRecording    func(ctx context.Context, req *entity.UploadRecordingRequest) (*entity.UploadRecordingResponse, error)
	listPending        func(ctx context.Context, consultationID int) ([]*entity.Recording, error)
	retryTranscription func(ctx context.Context, recordingID int) (*entity.UploadRecordingResponse, error)
	generateSummary    func(ctx context.Context, req *entity.GenerateSummaryRequest) (*entity.GenerateSummaryResponse, error)
}

func (f *fakeUsecase) CreateConsultation(ctx context.Context, req *entity.CreateConsultationRequest) (*entity.CreateConsultationResponse, error) {
	return f.createConsultation(ctx, req)
}

func (f *fakeUsecase) GetConsultation(ctx context.Context, id int) (*entity.Consultation, error) {
	return f.getConsultation(ctx, id)
}

func (f *fakeUsecase) ListConsultations(ctx context.Context) ([]*entity.Consultation, error) {
	return f.listConsultations(ctx)
}

func (f *fakeUsecase) DeleteConsultation(ctx context.Context, id int) error {
	return f.deleteConsultation(ctx, id)
}

func (f *fakeUsecase) GetNote(ctx context.Context, consultationID int) (*entity.Note, error) {
	return f.getNote(ctx, consultationID)
}

func (f *fakeUsecase) UpsertNote(ctx context.Context, req *entity.UpsertNoteRequest) (*entity.UpsertNoteResponse, error) {
	return f.upsertNote(ctx, req)
}

func (f *fakeUsecase) UploadRecording(ctx context.Context, req *entity.UploadRecordingRequest) (*entity.UploadRecordingResponse, error) {
	return f.uploadRecording(ctx, req)
}

func (f *fakeUsecase) ListPendingTranscriptions(ctx context.Context, consultationID int) ([]*entity.Recording, error) {
	return f.listPending(ctx, consultationID)
}

func (f *fakeUsecase) RetryTranscription(ctx context.Context, recordingID int) (*entity.UploadRecordingResponse, error) {
	return f.retryTranscription(ctx, recordingID)
}

func (f *fakeUsecase) GenerateSummary(ctx context.Context, req *entity.GenerateSummaryRequest) (*entity.GenerateSummaryResponse, error) {
	return f.generateSummary(ctx, req)
}

func newTestServer(usc *fakeUsecase) *httptest.Server {
	srv := NewServerOptions(&config.Config{}, usc)
	return httptest.NewServer(srv.NewRouter())
}

func TestHealthHandler(t *testing.T) {
	ts := newTestServer(&fakeUsecase{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateConsultationHandlerStatusCodes(t *testing.T) {
	usc := &fakeUsecase{
		createConsultation: func(ctx context.Context, req *entity.CreateConsultationRequest) (*entity.CreateConsultationResponse, error) {
			if req.Title == "" {
				return nil, fmt.Errorf("%w: title is required", entity.ErrValidation)
			}
			return &entity.CreateConsultationResponse{
				Consultation: &entity.Consultation{ID: 1, Title: req.Title, Note: &entity.Note{ID: 2, ConsultationID: 1}},
			}, nil
		},
	}
	ts := newTestServer(usc)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/consultations", "application/json", strings.NewReader(`{"title":"Checkup"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Consultation *entity.Consultation `json:"consultation"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Checkup", body.Consultation.Title)
	require.NotNil(t, body.Consultation.Note)

	resp, err = http.Post(ts.URL+"/api/v1/consultations", "application/json", strings.NewReader(`{"title":""}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetConsultationHandlerNotFound(t *testing.T) {
	usc := &fakeUsecase{
		getConsultation: func(ctx context.Context, id int) (*entity.Consultation, error) {
			return nil, fmt.Errorf("consultation %d: %w", id, entity.ErrNotFound)
		},
	}
	ts := newTestServer(usc)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/consultations/42")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/v1/consultations/not-a-number")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadRecordingHandler(t *testing.T) {
	var gotFilename string
	usc := &fakeUsecase{
		uploadRecording: func(ctx context.Context, req *entity.UploadRecordingRequest) (*entity.UploadRecordingResponse, error) {
			gotFilename = req.Filename
			return &entity.UploadRecordingResponse{
				Recording:     &entity.Recording{ID: 3, ConsultationID: 1, Filename: req.Filename},
				Transcription: &entity.Transcription{ID: 4, RecordingID: 3, Text: "hello"},
			}, nil
		},
	}
	ts := newTestServer(usc)
	defer ts.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "visit.mp3")
	require.NoError(t, err)
	_, err = part.Write([]byte("audio bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(ts.URL+"/api/v1/consultations/1/upload", writer.FormDataContentType(), body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "visit.mp3", gotFilename)
}

func TestUploadRecordingHandlerMissingFile(t *testing.T) {
	ts := newTestServer(&fakeUsecase{})
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/consultations/1/upload", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadRecordingHandlerTranscriptionFailure(t *testing.T) {
	usc := &fakeUsecase{
		uploadRecording: func(ctx context.Context, req *entity.UploadRecordingRequest) (*entity.UploadRecordingResponse, error) {
			return nil, fmt.Errorf("%w: %w", entity.ErrTranscriptionFailed, entity.ErrRemote)
		},
	}
	ts := newTestServer(usc)
	defer ts.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "visit.mp3")
	require.NoError(t, err)
	_, err = part.Write([]byte("audio"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(ts.URL+"/api/v1/consultations/1/upload", writer.FormDataContentType(), body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestGenerateSummaryHandlerStatusByResult(t *testing.T) {
	status := entity.SummaryCreated
	usc := &fakeUsecase{
		generateSummary: func(ctx context.Context, req *entity.GenerateSummaryRequest) (*entity.GenerateSummaryResponse, error) {
			return &entity.GenerateSummaryResponse{
				Summary: &entity.Summary{ID: 9, ConsultationID: req.ConsultationID, Content: "sum"},
				Status:  status,
			}, nil
		},
	}
	ts := newTestServer(usc)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/consultations/1/generate-notes", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	status = entity.SummaryUpdated
	resp, err = http.Post(ts.URL+"/api/v1/consultations/1/generate-notes", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpsertNoteHandlerValidation(t *testing.T) {
	usc := &fakeUsecase{
		upsertNote: func(ctx context.Context, req *entity.UpsertNoteRequest) (*entity.UpsertNoteResponse, error) {
			return &entity.UpsertNoteResponse{
				Note: &entity.Note{ID: 1, ConsultationID: req.ConsultationID, Content: req.Content},
			}, nil
		},
	}
	ts := newTestServer(usc)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/notes/1", "application/json", strings.NewReader(`{"content":"  "}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/api/v1/notes/1", "application/json", strings.NewReader(`{"content":" hello "}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Note *entity.Note `json:"note"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "hello", body.Note.Content)
}
