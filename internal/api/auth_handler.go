package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phrazzld/taskm-api/internal/api/middleware"
	"github.com/phrazzld/taskm-api/internal/api/shared"
	"github.com/phrazzld/taskm-api/internal/platform/logger"
	"github.com/phrazzld/taskm-api/internal/redact"
	"github.com/phrazzld/taskm-api/internal/service"
	"github.com/phrazzld/taskm-api/internal/service/auth"
	"github.com/phrazzld/taskm-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userService      service.UserService
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userService service.UserService,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		userService:      userService,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Signup handles POST /signup requests.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SignupRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	log.Info("user signed up",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// Login handles POST /login requests.
// Unknown email and wrong password produce the same generic response, so a
// caller cannot tell which one failed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := h.userService.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error("failed to get user by email", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	accessToken, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to generate access token",
			slog.String("error", redact.Error(err)),
			slog.Int64("user_id", user.ID))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to generate refresh token",
			slog.String("error", redact.Error(err)),
			slog.Int64("user_id", user.ID))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	log.Debug("user logged in", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
	})
}

// Refresh handles POST /refresh requests. The refresh token arrives as a
// bearer credential in the Authorization header; an access token presented
// here is rejected.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	token, ok := middleware.BearerToken(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), token)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to refresh token")
		return
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	accessToken, err := h.jwtService.GenerateToken(r.Context(), userID)
	if err != nil {
		log.Error("failed to generate access token on refresh",
			slog.String("error", redact.Error(err)),
			slog.Int64("user_id", userID))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to refresh token")
		return
	}

	log.Debug("access token refreshed", slog.Int64("user_id", userID))
	shared.RespondWithJSON(w, r, http.StatusOK, RefreshResponse{AccessToken: accessToken})
}
