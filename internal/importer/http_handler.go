package importer

import (
	"errors"
	"io"
	"net/http"

	"marcingest/internal/httpx"
	"marcingest/internal/queue"

	"github.com/go-chi/chi/v5"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Routes mounts the handlers. Callers guard them with
// httpx.InternalSecretMiddleware.
func (h *HTTPHandler) Routes(r chi.Router) {
	r.Post("/internal/jobs/marc-import", h.Run)
	r.Get("/internal/jobs/marc-import/{id}", h.Get)
}

// Run handles POST /internal/jobs/marc-import. The body is a job message; the
// job runs to completion before the response is written.
func (h *HTTPHandler) Run(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_BODY", "could not read request body", nil)
		return
	}

	msg, err := queue.DecodeJobMessage(body)
	if err != nil {
		var invalid *queue.InvalidJobMessageError
		if errors.As(err, &invalid) {
			httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JOB_MESSAGE", err.Error(), fieldDetails(invalid))
			return
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JOB_MESSAGE", err.Error(), nil)
		return
	}

	if err := h.svc.Process(r.Context(), msg); err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "IMPORT_FAILED", err.Error(), nil)
		return
	}

	job, err := h.svc.Status(r.Context(), msg.ImportID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "could not load import job", nil)
		return
	}
	httpx.JSONSuccess(w, r, job, nil)
}

// Get handles GET /internal/jobs/marc-import/{id}.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	job, err := h.svc.Status(r.Context(), id)
	if errors.Is(err, ErrJobNotFound) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "import job not found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "could not load import job", nil)
		return
	}
	httpx.JSONSuccess(w, r, job, nil)
}

func fieldDetails(err *queue.InvalidJobMessageError) []httpx.ErrorDetail {
	if len(err.Fields) == 0 {
		return nil
	}
	details := make([]httpx.ErrorDetail, len(err.Fields))
	for i, f := range err.Fields {
		details[i] = httpx.ErrorDetail{Field: f.Field, Message: f.Message}
	}
	return details
}
