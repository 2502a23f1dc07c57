package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/explore-karnataka/backend/internal/auth"
	"github.com/explore-karnataka/backend/internal/services"
)

// RecommendationHandler serves personalized attraction recommendations.
type RecommendationHandler struct {
	service services.RecommendationServiceProvider
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(service services.RecommendationServiceProvider) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// Get computes recommendations for the caller's declared interests.
func (h *RecommendationHandler) Get(w http.ResponseWriter, r *http.Request) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		writeErrorMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	recommendations, err := h.service.ForInterests(r.Context(), acc.Interests)
	if err != nil {
		log.Error().Err(err).Str("user_id", acc.ID.String()).Msg("Failed to compute recommendations")
		writeError(w, err)
		return
	}

	interests := acc.Interests
	if interests == nil {
		interests = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user_interests":  interests,
		"recommendations": recommendations,
	})
}
