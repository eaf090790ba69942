package api

import (
	"log/slog"
	"net/http"
)

// Users renders all persisted submissions, newest first.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	subs, err := h.repo.ListAll(r.Context())
	if err != nil {
		slog.Error("Failed to list submissions", "error", err)
		h.renderError(w, http.StatusInternalServerError, "Could not load submissions.")
		return
	}
	h.render(w, http.StatusOK, "users.html", subs)
}

// APISubmissions returns all persisted submissions as JSON, newest first.
func (h *Handler) APISubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.repo.ListAll(r.Context())
	if err != nil {
		slog.Error("Failed to list submissions", "error", err)
		Error(w, http.StatusInternalServerError, "failed to list submissions")
		return
	}
	JSON(w, http.StatusOK, subs)
}
