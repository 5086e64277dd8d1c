package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/felixmccuaig/lyrebird-health-interview/pkg/json"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

type CreateConsultationRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

func (s *Server) CreateConsultationHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateConsultationRequest
	if err := json.ParseJSON(r, &req); err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	res, err := s.usecase.CreateConsultation(r.Context(), &entity.CreateConsultationRequest{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":      "Consultation created successfully.",
		"consultation": res.Consultation,
	})
}

func (s *Server) ListConsultationsHandler(w http.ResponseWriter, r *http.Request) {
	consultations, err := s.usecase.ListConsultations(r.Context())
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, map[string]any{
		"consultations": consultations,
	})
}

func (s *Server) GetConsultationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid consultation ID"))
		return
	}

	consultation, err := s.usecase.GetConsultation(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, map[string]any{
		"consultation": consultation,
	})
}

func (s *Server) DeleteConsultationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid consultation ID"))
		return
	}

	if err := s.usecase.DeleteConsultation(r.Context(), id); err != nil {
		writeUsecaseError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Consultation deleted successfully.",
	})
}

func (s *Server) UploadRecordingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid consultation ID"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("no file uploaded"))
		return
	}
	defer file.Close()

	res, err := s.usecase.UploadRecording(r.Context(), &entity.UploadRecordingRequest{
		ConsultationID: id,
		Audio:          file,
		Filename:       header.Filename,
		Mimetype:       header.Header.Get("Content-Type"),
		Size:           header.Size,
	})
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, map[string]any{
		"message":       "File uploaded and transcribed successfully.",
		"recording":     res.Recording,
		"transcription": res.Transcription,
	})
}

func (s *Server) GenerateSummaryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid consultation ID"))
		return
	}

	res, err := s.usecase.GenerateSummary(r.Context(), &entity.GenerateSummaryRequest{
		ConsultationID: id,
	})
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	status := http.StatusOK
	if res.Status == entity.SummaryCreated {
		status = http.StatusCreated
	}

	json.WriteJSON(w, status, map[string]any{
		"summary": res.Summary,
		"status":  res.Status,
	})
}

func (s *Server) ListPendingTranscriptionsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid consultation ID"))
		return
	}

	recordings, err := s.usecase.ListPendingTranscriptions(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, map[string]any{
		"recordings": recordings,
	})
}
