package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/explore-karnataka/backend/internal/auth"
	"github.com/explore-karnataka/backend/internal/services"
)

// AuthHandler handles registration, login and profile endpoints.
type AuthHandler struct {
	service services.UserServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	AdminCode string `json:"admin_code"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new account registration.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Register(r.Context(), payload.Name, payload.Email, payload.Password, payload.AdminCode)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Registration rejected")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Registration successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

// Login handles authentication and session token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed authentication attempt")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

// Me returns the authenticated account's public view.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve account from context")
		writeErrorMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": acc.Public()})
}

// UpdateProfile sets the account's bio and interests.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve account from context")
		writeErrorMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var payload struct {
		Bio       string          `json:"bio"`
		Interests json.RawMessage `json:"interests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	interests := []string{}
	if len(payload.Interests) > 0 && string(payload.Interests) != "null" {
		if err := json.Unmarshal(payload.Interests, &interests); err != nil {
			writeErrorMsg(w, http.StatusBadRequest, "Interests must be a list")
			return
		}
	}

	profile, err := h.service.UpdateProfile(r.Context(), acc.ID, payload.Bio, interests)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}

// AdminCheck confirms the caller holds the admin role; the guard has already
// enforced it by the time this runs.
func (h *AuthHandler) AdminCheck(w http.ResponseWriter, r *http.Request) {
	acc, ok := auth.AccountFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve account from context")
		writeErrorMsg(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome Admin!",
		"user":    map[string]string{"name": acc.Name, "email": acc.Email},
	})
}
