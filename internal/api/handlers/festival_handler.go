package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/explore-karnataka/backend/internal/models"
	"github.com/explore-karnataka/backend/internal/services"
)

// FestivalHandler handles HTTP requests for the festivals catalog.
type FestivalHandler struct {
	service services.FestivalServiceProvider
}

// NewFestivalHandler creates a new FestivalHandler.
func NewFestivalHandler(service services.FestivalServiceProvider) *FestivalHandler {
	return &FestivalHandler{service: service}
}

// GetAll returns all festivals.
func (h *FestivalHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	festivals, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if festivals == nil {
		festivals = []models.Festival{}
	}
	writeJSON(w, http.StatusOK, festivals)
}

// Get returns one festival by id.
func (h *FestivalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	festival, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, festival)
}

// Create adds a new festival (admin only; enforced by the guard).
func (h *FestivalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.Festival
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "Invalid data")
		return
	}

	created, err := h.service.Create(r.Context(), payload)
	if err != nil {
		log.Warn().Err(err).Str("name", payload.Name).Msg("Failed to create festival")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update applies a partial update to a festival.
func (h *FestivalHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, map[string]string{"message": "Festival updated"})
}

// Delete removes a festival.
func (h *FestivalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Festival deleted"})
}
