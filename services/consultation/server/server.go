package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	config "github.com/felixmccuaig/lyrebird-health-interview/config/consultation"
	"github.com/felixmccuaig/lyrebird-health-interview/pkg/json"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/entity"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/usecase"
)

type Server struct {
	cfg     *config.Config
	usecase usecase.Usecase
}

func NewServerOptions(cfg *config.Config, usecase usecase.Usecase) *Server {
	return &Server{
		cfg:     cfg,
		usecase: usecase,
	}
}

func (s *Server) NewRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/health", s.HealthHandler)

	router.Route("/api/v1", func(apiRouter chi.Router) {
		apiRouter.Route("/consultations", func(consultationRouter chi.Router) {
			consultationRouter.Post("/", s.CreateConsultationHandler)
			consultationRouter.Get("/", s.ListConsultationsHandler)
			consultationRouter.Get("/{id}", s.GetConsultationHandler)
			consultationRouter.Delete("/{id}", s.DeleteConsultationHandler)
			consultationRouter.Post("/{id}/upload", s.UploadRecordingHandler)
			consultationRouter.Post("/{id}/generate-notes", s.GenerateSummaryHandler)
			consultationRouter.Get("/{id}/pending-transcriptions", s.ListPendingTranscriptionsHandler)
		})
		apiRouter.Route("/recordings", func(recordingRouter chi.Router) {
			recordingRouter.Post("/{id}/retry-transcription", s.RetryTranscriptionHandler)
		})
		apiRouter.Route("/notes", func(noteRouter chi.Router) {
			noteRouter.Get("/{consultationId}", s.GetNoteHandler)
			noteRouter.Post("/{consultationId}", s.UpsertNoteHandler)
		})
	})

	return router
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	json.WriteJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// writeUsecaseError translates error kinds into transport status codes.
func writeUsecaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		json.WriteError(w, http.StatusBadRequest, err)
	case errors.Is(err, entity.ErrNotFound):
		json.WriteError(w, http.StatusNotFound, err)
	case errors.Is(err, entity.ErrTranscriptionFailed), errors.Is(err, entity.ErrGenerationFailed):
		json.WriteError(w, http.StatusBadGateway, err)
	default:
		json.WriteError(w, http.StatusInternalServerError, err)
	}
}
