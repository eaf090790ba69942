package api

import (
	"context"
	"net/http"
	"time"
)

// Health reports liveness and record-store connectivity.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.repo.Ping(ctx); err != nil {
		JSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"db":     err.Error(),
		})
		return
	}

	JSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"db":     "ok",
	})
}
