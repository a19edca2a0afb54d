package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskm-api/internal/api/shared"
	"github.com/phrazzld/taskm-api/internal/mocks"
	"github.com/phrazzld/taskm-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectedUserID int64
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: 42, Subject: "42"},
			expectedStatus: http.StatusOK,
			expectedUserID: 42,
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "refresh token used as access token",
			authHeader:     "Bearer refresh-token",
			validateErr:    auth.ErrWrongTokenType,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed subject claim",
			authHeader:     "Bearer odd-token",
			claims:         &auth.Claims{Subject: "not-a-number"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}

			middleware := NewAuthMiddleware(jwtService)

			var capturedUserID int64
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, ok := GetUserID(r)
				if ok {
					capturedUserID = userID
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			middleware.Authenticate(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedUserID, capturedUserID)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{name: "well formed", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi", wantOK: true},
		{name: "missing header", header: "", wantOK: false},
		{name: "no bearer prefix", header: "Basic abc", wantOK: false},
		{name: "too many parts", header: "Bearer a b", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("POST", "/refresh", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, ok := BearerToken(req)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	t.Run("context with user ID", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/", nil)
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, int64(7))
		userID, ok := GetUserID(req.WithContext(ctx))

		assert.True(t, ok)
		assert.Equal(t, int64(7), userID)
	})

	t.Run("context without user ID", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/", nil)
		_, ok := GetUserID(req)

		assert.False(t, ok)
	})
}
