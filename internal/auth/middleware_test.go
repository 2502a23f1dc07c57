package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/explore-karnataka/backend/internal/apperr"
	"github.com/explore-karnataka/backend/internal/models"
)

type fakeResolver struct {
	accounts map[string]models.Account
	calls    int
}

func (f *fakeResolver) ResolveAccount(ctx context.Context, ref string) (models.Account, error) {
	f.calls++
	acc, ok := f.accounts[ref]
	if !ok {
		return models.Account{}, apperr.New(apperr.ErrNotFound, "User not found")
	}
	return acc, nil
}

func guardFixture(t *testing.T, role models.Role) (*Guard, *TokenService, string, *fakeResolver) {
	t.Helper()
	tokens := NewTokenService("test-secret", time.Hour)
	id := "64f1a0c8e4b0a1b2c3d4e5f6"
	resolver := &fakeResolver{accounts: map[string]models.Account{
		id: {ID: models.ParseRef(id), Name: "Asha", Email: "asha@example.com", Role: role},
	}}
	return NewGuard(tokens, resolver), tokens, id, resolver
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestGuard_MissingToken(t *testing.T) {
	t.Parallel()

	guard, _, _, resolver := guardFixture(t, models.RoleUser)
	called := false

	rec := httptest.NewRecorder()
	guard.RequireAuth(okHandler(&called)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
	// Forged or absent input must never reach the resolver
	require.Zero(t, resolver.calls)
}

func TestGuard_InvalidToken(t *testing.T) {
	t.Parallel()

	guard, _, _, resolver := guardFixture(t, models.RoleUser)
	called := false

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	guard.RequireAuth(okHandler(&called)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
	require.Zero(t, resolver.calls)
}

func TestGuard_ExpiredToken(t *testing.T) {
	t.Parallel()

	guard, _, id, _ := guardFixture(t, models.RoleUser)
	expired, err := NewTokenService("test-secret", -time.Minute).Issue(id)
	require.NoError(t, err)

	called := false
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	guard.RequireAuth(okHandler(&called)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Token expired")
	require.False(t, called)
}

func TestGuard_DeletedAccount(t *testing.T) {
	t.Parallel()

	guard, tokens, _, _ := guardFixture(t, models.RoleUser)
	tok, err := tokens.Issue("64f1a0c8e4b0a1b2c3d4e500") // no such account
	require.NoError(t, err)

	called := false
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	guard.RequireAuth(okHandler(&called)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
}

func TestGuard_AdminRequired(t *testing.T) {
	t.Parallel()

	guard, tokens, id, _ := guardFixture(t, models.RoleUser)
	tok, err := tokens.Issue(id)
	require.NoError(t, err)

	called := false
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	guard.RequireAdmin(okHandler(&called)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, called)
}

func TestGuard_ResolvedAccountInContext(t *testing.T) {
	t.Parallel()

	guard, tokens, id, _ := guardFixture(t, models.RoleAdmin)
	tok, err := tokens.Issue(id)
	require.NoError(t, err)

	var got models.Account
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acc, ok := AccountFromContext(r.Context())
		require.True(t, ok)
		got = acc
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	guard.RequireAdmin(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "asha@example.com", got.Email)
	require.Equal(t, models.RoleAdmin, got.Role)
}
