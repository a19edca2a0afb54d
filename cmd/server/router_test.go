package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskm-api/internal/config"
	"github.com/phrazzld/taskm-api/internal/domain"
	"github.com/phrazzld/taskm-api/internal/mocks"
	"github.com/phrazzld/taskm-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApplication wires an application around mock services and a real
// JWT service, so routes and auth middleware run end to end without a
// database.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:                   "test-secret-thats-at-least-32-chars",
			TokenLifetimeMinutes:        15,
			RefreshTokenLifetimeMinutes: 10080,
		},
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	return &application{
		config:      cfg,
		logger:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		jwtService:  jwtService,
		hasher:      auth.NewBcryptHasher(4),
		userService: &mocks.MockUserService{},
		taskService: &mocks.MockTaskService{},
	}
}

func TestRouterHealth(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRouterProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	for _, route := range []struct {
		method string
		path   string
	}{
		{"GET", "/tasks"},
		{"POST", "/tasks"},
		{"PUT", "/tasks/1"},
		{"DELETE", "/tasks/1"},
		{"GET", "/profile"},
		{"PUT", "/profile"},
	} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code,
			"%s %s should require a token", route.method, route.path)
	}
}

func TestRouterAccessTokenFlow(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	app.taskService = &mocks.MockTaskService{
		Tasks: []*domain.Task{{ID: 1, UserID: 42, Title: "wired", Priority: "Medium"}},
	}
	router := app.setupRouter()

	token, err := app.jwtService.GenerateToken(context.Background(), 42)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "wired")
}

func TestRouterRefreshRejectsAccessToken(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	accessToken, err := app.jwtService.GenerateToken(context.Background(), 42)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRouterRefreshIssuesNewAccessToken(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	refreshToken, err := app.jwtService.GenerateRefreshToken(context.Background(), 42)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+refreshToken)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotEmpty(t, body["access_token"])

	// The refreshed token authenticates ordinary API calls.
	claims, err := app.jwtService.ValidateToken(context.Background(), body["access_token"])
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}
