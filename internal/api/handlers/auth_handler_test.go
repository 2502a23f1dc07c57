package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/explore-karnataka/backend/internal/ai"
	"github.com/explore-karnataka/backend/internal/api"
	"github.com/explore-karnataka/backend/internal/api/handlers"
	"github.com/explore-karnataka/backend/internal/apperr"
	"github.com/explore-karnataka/backend/internal/auth"
	"github.com/explore-karnataka/backend/internal/models"
	"github.com/explore-karnataka/backend/internal/services"
)

// -------- fakes --------

type memUserStore struct {
	byEmail map[string]models.Account
	byID    map[string]models.Account
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byEmail: map[string]models.Account{}, byID: map[string]models.Account{}}
}

func (m *memUserStore) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	acc, ok := m.byEmail[email]
	if !ok {
		return models.Account{}, apperr.New(apperr.ErrNotFound, "User not found")
	}
	return acc, nil
}

func (m *memUserStore) FindByRef(ctx context.Context, ref string) (models.Account, error) {
	acc, ok := m.byID[ref]
	if !ok {
		return models.Account{}, apperr.New(apperr.ErrNotFound, "User not found")
	}
	return acc, nil
}

func (m *memUserStore) Insert(ctx context.Context, acc models.Account) (models.Ref, error) {
	if _, exists := m.byEmail[acc.Email]; exists {
		return models.Ref{}, apperr.New(apperr.ErrConflict, "User already exists")
	}
	id := models.RefFromObjectID(primitive.NewObjectID())
	acc.ID = id
	m.byEmail[acc.Email] = acc
	m.byID[id.String()] = acc
	return id, nil
}

func (m *memUserStore) UpdateProfile(ctx context.Context, id models.Ref, bio string, interests []string) error {
	acc, ok := m.byID[id.String()]
	if !ok {
		return apperr.New(apperr.ErrNotFound, "User not found")
	}
	acc.Bio = bio
	acc.Interests = interests
	acc.ProfileCompleted = true
	m.byID[id.String()] = acc
	m.byEmail[acc.Email] = acc
	return nil
}

type memCatalog struct{ entries []models.Attraction }

func (m *memCatalog) All(ctx context.Context) ([]models.Attraction, error) {
	return m.entries, nil
}

type stubChat struct{}

func (stubChat) Ask(ctx context.Context, interests []string, message string) (string, error) {
	return "Visit Hampi.", nil
}

type stubAttractions struct{ services.AttractionServiceProvider }

type stubFestivals struct{ services.FestivalServiceProvider }

type stubItineraries struct{ services.ItineraryServiceProvider }

type stubAnalytics struct{ services.AnalyticsServiceProvider }

type stubClassifier struct{}

func (stubClassifier) Classify(ctx context.Context, image []byte, filename string) (ai.Prediction, error) {
	return ai.Prediction{PredictedPlace: "hampi", Confidence: 99.1}, nil
}

const adminCode = "EXPKARNATAKA2025"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := newMemUserStore()
	tokens := auth.NewTokenService("test-secret", 12*time.Hour)
	userService := services.NewUserService(store, tokens, adminCode)
	guard := auth.NewGuard(tokens, userService)

	catalog := &memCatalog{entries: []models.Attraction{
		{ID: models.ParseRef("64f1a0c8e4b0a1b2c3d4e5f6"), Name: "Gokarna", Category: "Beach Town"},
		{ID: models.ParseRef("64f1a0c8e4b0a1b2c3d4e5f7"), Name: "Nandi Hills", Category: "Hill Station"},
	}}

	router := api.NewRouter(guard, api.Handlers{
		System:         handlers.NewSystemHandler(func(ctx context.Context) error { return nil }),
		Auth:           handlers.NewAuthHandler(userService),
		Attraction:     handlers.NewAttractionHandler(stubAttractions{}),
		Festival:       handlers.NewFestivalHandler(stubFestivals{}),
		Itinerary:      handlers.NewItineraryHandler(stubItineraries{}),
		Recommendation: handlers.NewRecommendationHandler(services.NewRecommendationService(catalog)),
		Analytics:      handlers.NewAnalyticsHandler(stubAnalytics{}),
		Chat:           handlers.NewChatHandler(stubChat{}),
		Image:          handlers.NewImageHandler(stubClassifier{}, t.TempDir()),
	}, "http://localhost:5173")

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

// -------- tests --------

func TestRegisterMeAdminFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"name": "Asha", "email": "a@b.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	user := body["user"].(map[string]any)
	require.Equal(t, "user", user["role"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "a@b.com", body["user"].(map[string]any)["email"])

	// Same caller, admin-gated route
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/admin/check", token, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRegisterWithActivationCode(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"name": "Admin", "email": "admin@b.com", "password": "secret1", "admin_code": adminCode,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "admin", body["user"].(map[string]any)["role"])
	token := body["token"].(string)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/admin/check", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Welcome Admin!", body["message"])
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	srv := newTestServer(t)

	payload := map[string]string{"name": "Asha", "email": "dup@b.com", "password": "pw"}
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", payload)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "User already exists", body["error"])
}

func TestLogin_UnknownEmailIs404(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email": "nobody@b.com", "password": "pw",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Username does not exist", body["error"])
}

func TestLogin_WrongPasswordIs401(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"name": "Asha", "email": "a@b.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email": "A@B.com", "password": "nope",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Invalid password", body["error"])
}

func TestProfileAndRecommendationsFlow(t *testing.T) {
	srv := newTestServer(t)

	_, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"name": "Asha", "email": "a@b.com", "password": "secret1",
	})
	token := body["token"].(string)

	// No interests yet: empty recommendations
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/recommendations", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, body["recommendations"])

	// Malformed interests shape is rejected
	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/auth/profile", token, map[string]any{
		"bio": "x", "interests": "beach",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/auth/profile", token, map[string]any{
		"bio": "traveller", "interests": []string{"beach"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/recommendations", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	recs := body["recommendations"].([]any)
	require.Len(t, recs, 1)
	require.Equal(t, "Gokarna", recs[0].(map[string]any)["name"])
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Missing auth token", body["error"])
}
