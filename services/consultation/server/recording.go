package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/felixmccuaig/lyrebird-health-interview/pkg/json"
)

func (s *Server) RetryTranscriptionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		json.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid recording ID"))
		return
	}

	res, err := s.usecase.RetryTranscription(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, map[string]any{
		"recording":     res.Recording,
		"transcription": res.Transcription,
	})
}
