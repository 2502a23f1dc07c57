package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/explore-karnataka/backend/internal/models"
	"github.com/explore-karnataka/backend/internal/services"
)

// AttractionHandler handles HTTP requests for the attractions catalog.
type AttractionHandler struct {
	service services.AttractionServiceProvider
}

// NewAttractionHandler creates a new AttractionHandler.
func NewAttractionHandler(service services.AttractionServiceProvider) *AttractionHandler {
	return &AttractionHandler{service: service}
}

// GetAll returns the full catalog.
func (h *AttractionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	attractions, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if attractions == nil {
		attractions = []models.Attraction{}
	}
	writeJSON(w, http.StatusOK, attractions)
}

// Get returns one attraction by id.
func (h *AttractionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	attraction, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attraction)
}

// Create adds a new attraction (admin only; enforced by the guard).
func (h *AttractionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.Attraction
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "Invalid data")
		return
	}

	created, err := h.service.Create(r.Context(), payload)
	if err != nil {
		log.Warn().Err(err).Str("name", payload.Name).Msg("Failed to create attraction")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update applies a partial update to an attraction.
func (h *AttractionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "No update data")
		return
	}

	if err := h.service.Update(r.Context(), id, data); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Attraction updated"})
}

// Delete removes an attraction.
func (h *AttractionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Attraction deleted"})
}
