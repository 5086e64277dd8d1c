package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/felixmccuaig/lyrebird-health-interview/pkg/json"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
)

type UpsertNoteRequest struct {
	Content string `json:"content"`
}

func (s *Server) GetNoteHandler(w http.ResponseWriter, r *http.Request) {
	consultationID, err := strconv.Atoi(chi.URLParam(r, "consultationId"))
	if err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid consultation ID"))
		return
	}

	note, err := s.usecase.GetNote(r.Context(), consultationID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, map[string]any{
		"note": note,
	})
}

func (s *Server) UpsertNoteHandler(w http.ResponseWriter, r *http.Request) {
	consultationID, err := strconv.Atoi(chi.URLParam(r, "consultationId"))
	if err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid consultation ID"))
		return
	}

	var req UpsertNoteRequest
	if err := json.ParseJSON(r, &req); err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("content is required and must be a non-empty string"))
		return
	}

	res, err := s.usecase.UpsertNote(r.Context(), &entity.UpsertNoteRequest{
		ConsultationID: consultationID,
		Content:        content,
	})
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Note saved successfully.",
		"note":    res.Note,
	})
}
