package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelhq/hotel_folio_app/internal/apperrors"
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	portssvc "github.com/hotelhq/hotel_folio_app/internal/core/ports/services"
	"github.com/hotelhq/hotel_folio_app/internal/middleware"
	"github.com/hotelhq/hotel_folio_app/internal/utils"
)

// GoogleOAuthHandler handles Google OAuth exchange requests.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(gs portssvc.GoogleOAuthHandlerSvcFacade, us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: gs,
		userService:        us,
		tokenService:       ts,
	}
}

// ExchangeCodeRequest carries the authorization code returned by Google.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ExchangeCodeResponse carries the issued token pair.
type ExchangeCodeResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

func registerGoogleOAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token)
	rg.POST("/google/exchange-code", h.ExchangeCodeGoogle)
}

// ExchangeCodeGoogle godoc
// @Summary Exchange Google auth code for tokens
// @Description Exchanges a Google OAuth authorization code for an application access/refresh token pair. Creates a receptionist account on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param exchange body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} ExchangeCodeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewBadRequestError("Invalid request body")
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	token, err := h.googleOAuthService.ExchangeCodeForToken(c.Request.Context(), req.Code)
	if err != nil {
		logger.Error("Failed to exchange Google auth code", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Failed to exchange authorization code")
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		appErr := apperrors.NewUnauthorizedError("No id_token in Google response")
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(c.Request.Context(), rawIDToken)
	if err != nil {
		logger.Error("Failed to validate Google ID token", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Invalid Google ID token")
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !emailVerified {
		appErr := apperrors.NewUnauthorizedError("Google account email is missing or unverified")
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), domain.GoogleUserInfo{
		ID:            payload.Subject,
		Email:         email,
		Name:          name,
		VerifiedEmail: emailVerified,
	})
	if err != nil {
		logger.Error("Failed to find or create Google user", slog.String("error", err.Error()))
		appErr := apperrors.NewInternalServerError("Failed to sign in with Google")
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		appErr := apperrors.NewInternalServerError("Failed to generate token")
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		appErr := apperrors.NewInternalServerError("Failed to generate token")
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	if err := h.userService.UpdateRefreshToken(c.Request.Context(), user.UserID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		logger.Error("Failed to store refresh token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		appErr := apperrors.NewInternalServerError("Failed to generate token")
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	logger.Info("Google sign-in successful", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, gin.H{"data": ExchangeCodeResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
	}})
}
