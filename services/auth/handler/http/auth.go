package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nagaralert/nagarhub/internal/pkg/logger"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
	"github.com/nagaralert/nagarhub/internal/utils"
	"github.com/nagaralert/nagarhub/services/auth"
)

// AuthHandler handles HTTP requests for the auth flow
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// MobileSync resolves a phone credential to the next auth step
func (h *AuthHandler) MobileSync(c echo.Context) error {
	var req models.MobileSyncRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.IDToken == "" {
		return utils.BadRequestResponse(c, "idToken is required")
	}

	resp, err := h.authUC.MobileSync(c.Request().Context(), &req)
	if err != nil {
		return h.mapAuthError(c, err, "Mobile sync failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sync resolved", resp)
}

// SendEmailOTP issues an email verification code
func (h *AuthHandler) SendEmailOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.IDToken == "" || req.Email == "" {
		return utils.BadRequestResponse(c, "idToken and email are required")
	}

	if err := h.authUC.RequestChallenge(c.Request().Context(), &req); err != nil {
		return h.mapAuthError(c, err, "Failed to send verification code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", nil)
}

// FinalizeAuth consumes the verification code and returns a session token
func (h *AuthHandler) FinalizeAuth(c echo.Context) error {
	var req models.FinalizeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.IDToken == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "idToken and otp are required")
	}

	resp, err := h.authUC.Finalize(c.Request().Context(), &req)
	if err != nil {
		return h.mapAuthError(c, err, "Failed to finalize auth")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Auth finalized", resp)
}

// mapAuthError converts usecase sentinels to status codes. Anything
// unrecognized is a dependency failure.
func (h *AuthHandler) mapAuthError(c echo.Context, err error, logMsg string) error {
	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		return utils.UnauthorizedResponse(c, "Invalid or expired credential")
	case errors.Is(err, auth.ErrAdminSecretMismatch):
		return utils.ForbiddenResponse(c, "Invalid admin secret code")
	case errors.Is(err, auth.ErrInvalidOTP):
		return utils.BadRequestResponse(c, "Invalid OTP")
	case errors.Is(err, auth.ErrOTPExpired):
		return utils.BadRequestResponse(c, "OTP expired")
	default:
		logger.Error(logMsg, logger.ErrorField(err))
		return utils.ServiceUnavailableResponse(c, logMsg)
	}
}
