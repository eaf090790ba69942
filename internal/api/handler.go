// Package api provides the HTTP handlers for the HeartCheck application.
package api

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Muniranjani/heartcheck/internal/store"
	"github.com/Muniranjani/heartcheck/internal/wizard"
)

// Handler carries the shared dependencies for all HTTP handlers.
type Handler struct {
	repo store.Repository
	wiz  *wizard.Service
	tmpl *template.Template
}

// NewHandler creates a new Handler.
func NewHandler(repo store.Repository, wiz *wizard.Service, tmpl *template.Template) *Handler {
	return &Handler{
		repo: repo,
		wiz:  wiz,
		tmpl: tmpl,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// render executes the named page template.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("Failed to render template", "template", name, "error", err)
	}
}

// renderError renders the error page with the given message.
func (h *Handler) renderError(w http.ResponseWriter, status int, message string) {
	h.render(w, status, "error.html", map[string]string{"Message": message})
}

// formInt reads a required integer form field. A missing or non-numeric
// value is a coercion error surfaced to the caller, never silently
// defaulted.
func formInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("field %q: invalid integer %q", name, raw)
	}
	return n, nil
}

// formIntDefault reads an optional integer form field, falling back to def
// when the field is absent or empty. A present but non-numeric value is
// still a coercion error.
func formIntDefault(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("field %q: invalid integer %q", name, raw)
	}
	return n, nil
}
