package handlers

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

// SystemHandler serves the root welcome payload and the health check.
type SystemHandler struct {
	ping func(ctx context.Context) error
}

// NewSystemHandler creates a new SystemHandler with a store ping function.
func NewSystemHandler(ping func(ctx context.Context) error) *SystemHandler {
	return &SystemHandler{ping: ping}
}

// Home returns the welcome payload.
func (h *SystemHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to Explore Karnataka API!",
		"routes": []string{
			"/api/attractions",
			"/api/festivals",
			"/api/admin/check",
		},
	})
}

// Health reports store connectivity.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.ping(r.Context()); err != nil {
		log.Error().Err(err).Msg("Store ping failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "store unreachable",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "connected",
		"message": "MongoDB OK!",
	})
}
