package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/nagaralert/nagarhub/services/auth/handler/http"
)

// Handler coordinates the protocol handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *http.AuthHandler) *Handler {
	return &Handler{
		authHandler: authHandler,
	}
}

// RegisterRoutes registers the auth flow endpoints. All three are public:
// the credential inside the body is the authentication.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/api/auth")
	authGroup.POST("/mobile-sync", h.authHandler.MobileSync)
	authGroup.POST("/send-email-otp", h.authHandler.SendEmailOTP)
	authGroup.POST("/finalize-auth", h.authHandler.FinalizeAuth)
}
