package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/explore-karnataka/backend/internal/auth"
	"github.com/explore-karnataka/backend/internal/services"
)

// ItineraryHandler handles HTTP requests for per-user itineraries.
type ItineraryHandler struct {
	service services.ItineraryServiceProvider
}

// NewItineraryHandler creates a new ItineraryHandler.
func NewItineraryHandler(service services.ItineraryServiceProvider) *ItineraryHandler {
	return &ItineraryHandler{service: service}
}

// GetAll lists the caller's itinerary.
func (h *ItineraryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		writeErrorMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items, err := h.service.List(r.Context(), acc.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", acc.ID.String()).Msg("Failed to load itineraries")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Create saves an attraction to the caller's itinerary.
func (h *ItineraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		writeErrorMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var payload struct {
		AttractionID string `json:"attraction_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Add(r.Context(), acc.ID, payload.AttractionID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Attraction added to itinerary"})
}

// Delete removes one itinerary entry owned by the caller.
func (h *ItineraryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		writeErrorMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.Remove(r.Context(), acc.ID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Itinerary removed"})
}
