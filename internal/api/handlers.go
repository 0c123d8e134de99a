// Package api exposes HTTP handlers for the signup service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"example.com/signup/internal/domain"
	"example.com/signup/internal/observability"
)

// ActivityService captures the roster operations the handlers depend on.
type ActivityService interface {
	ListActivities(ctx context.Context) (domain.Registry, error)
	Signup(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
}

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service  ActivityService
	validate *validator.Validate
}

// NewHandler builds a Handler.
func NewHandler(service ActivityService) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

type emailParam struct {
	Email string `validate:"required,email"`
}

// messageResponse confirms a successful roster mutation.
type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")
	if err := h.validate.Struct(emailParam{Email: email}); err != nil {
		observability.RecordRejection("invalid_email")
		writeError(w, http.StatusBadRequest, "validation_failed", "a valid email query parameter is required")
		return
	}

	if err := h.service.Signup(r.Context(), name, email); err != nil {
		h.writeRosterError(w, err, "already_registered", domain.ErrAlreadyRegistered)
		return
	}

	observability.RecordSignup(name)
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("%s signed up for %s", email, name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")
	if err := h.validate.Struct(emailParam{Email: email}); err != nil {
		observability.RecordRejection("invalid_email")
		writeError(w, http.StatusBadRequest, "validation_failed", "a valid email query parameter is required")
		return
	}

	if err := h.service.Unregister(r.Context(), name, email); err != nil {
		h.writeRosterError(w, err, "not_registered", domain.ErrNotRegistered)
		return
	}

	observability.RecordUnregistration(name)
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("%s unregistered from %s", email, name),
	})
}

// writeRosterError maps store errors onto HTTP statuses: unknown activities
// are 404, roster conflicts and bad input are 400.
func (h *Handler) writeRosterError(w http.ResponseWriter, err error, conflictCode string, conflict error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		observability.RecordRejection("activity_not_found")
		writeError(w, http.StatusNotFound, "not_found", domain.ErrActivityNotFound.Error())
	case errors.Is(err, conflict):
		observability.RecordRejection(conflictCode)
		writeError(w, http.StatusBadRequest, conflictCode, conflict.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		observability.RecordRejection("invalid_input")
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// activityName extracts the {name} URL parameter. Names may contain spaces,
// so the raw segment is path-unescaped when the router hands it over encoded.
func activityName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
