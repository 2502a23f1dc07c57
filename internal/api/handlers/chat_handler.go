package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/explore-karnataka/backend/internal/auth"
	"github.com/explore-karnataka/backend/internal/services"
)

// ChatHandler handles the tourism assistant endpoint.
type ChatHandler struct {
	service services.ChatServiceProvider
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(service services.ChatServiceProvider) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat forwards the user message to the assistant, steered by the caller's
// interests.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		writeErrorMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := h.service.Ask(r.Context(), acc.Interests, payload.Message)
	if err != nil {
		log.Warn().Err(err).Str("user_id", acc.ID.String()).Msg("Assistant request failed")
		writeError(w, err)
		return
	}

	interests := acc.Interests
	if interests == nil {
		interests = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reply":          reply,
		"interests_used": interests,
	})
}
