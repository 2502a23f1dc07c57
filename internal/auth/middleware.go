package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/explore-karnataka/backend/internal/apperr"
	"github.com/explore-karnataka/backend/internal/models"
)

// AccountResolver loads the account a validated token points at.
type AccountResolver interface {
	ResolveAccount(ctx context.Context, ref string) (models.Account, error)
}

type contextKey string

const accountKey = contextKey("account")

// AccountFromContext returns the account the guard resolved for this request.
func AccountFromContext(ctx context.Context) (models.Account, bool) {
	acc, ok := ctx.Value(accountKey).(models.Account)
	return acc, ok
}

// Guard gates protected routes: it validates the bearer token, resolves the
// subject into an account, and optionally enforces a role, in that order.
// The signature check always runs before any store lookup.
type Guard struct {
	tokens   *TokenService
	resolver AccountResolver
}

// NewGuard creates a Guard.
func NewGuard(tokens *TokenService, resolver AccountResolver) *Guard {
	return &Guard{tokens: tokens, resolver: resolver}
}

// RequireAuth admits any authenticated caller.
func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return g.require(next, nil)
}

// RequireAdmin admits only authenticated callers with the admin role.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	role := models.RoleAdmin
	return g.require(next, &role)
}

func (g *Guard) require(next http.Handler, role *models.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearerToken(r)
		if tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "Missing auth token")
			return
		}

		subject, err := g.tokens.Validate(tokenStr)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				writeError(w, http.StatusUnauthorized, "Token expired")
				return
			}
			writeError(w, http.StatusUnauthorized, "Invalid auth token")
			return
		}

		acc, err := g.resolver.ResolveAccount(r.Context(), subject)
		if err != nil {
			// A deleted account must not retain access; a miss is
			// indistinguishable from a bad token to the caller.
			if errors.Is(err, apperr.ErrNotFound) {
				writeError(w, http.StatusUnauthorized, "Invalid auth token")
				return
			}
			log.Error().Err(err).Str("subject", subject).Msg("Account resolution failed")
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if role != nil && acc.Role != *role {
			writeError(w, http.StatusForbidden, "Access denied")
			return
		}

		ctx := context.WithValue(r.Context(), accountKey, acc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
