package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/explore-karnataka/backend/internal/services"
)

// AnalyticsHandler serves the admin analytics dashboard payload.
type AnalyticsHandler struct {
	service services.AnalyticsServiceProvider
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service services.AnalyticsServiceProvider) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Get returns catalog statistics. Admin only; enforced by the guard.
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Report(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to build analytics report")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
