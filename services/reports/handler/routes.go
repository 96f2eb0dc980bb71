package handler

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
	"github.com/nagaralert/nagarhub/services/reports/handler/http"
	"github.com/nagaralert/nagarhub/services/reports/handler/nats"
)

// Handler coordinates all protocol handlers for the report service
type Handler struct {
	reportHandler *http.ReportHandler
	natsHandler   *nats.NatsHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	reportHandler *http.ReportHandler,
	natsHandler *nats.NatsHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		reportHandler: reportHandler,
		natsHandler:   natsHandler,
		cfg:           cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for admin routes
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			if token, ok := c.Get("user").(*jwt.Token); ok {
				if claims, ok := token.Claims.(jwt.MapClaims); ok {
					if uid, exists := claims["uid"]; exists {
						c.Set("uid", uid)
					}
					if role, exists := claims["role"]; exists {
						c.Set("role", role)
					}
				}
			}
		},
	})
}

// RegisterRoutes registers all HTTP routes and starts NATS consumers
func (h *Handler) RegisterRoutes(e *echo.Echo) error {
	api := e.Group("/api")

	// Citizen-facing routes
	api.POST("/verify-image", h.reportHandler.VerifyImage)
	api.POST("/upload-image", h.reportHandler.UploadImage)
	api.POST("/submit-report", h.reportHandler.SubmitReport)
	api.GET("/reports/:id", h.reportHandler.GetReport)
	api.GET("/leaderboard", h.reportHandler.Leaderboard)

	// Session-token routes: citizens read their own history, admins manage
	// the queue and the dispatcher
	protected := api.Group("", h.GetJWTMiddleware())
	protected.GET("/users/:id/reports", h.reportHandler.ListUserReports)
	protected.GET("/reports", h.reportHandler.ListReports)
	protected.PATCH("/reports/:id/status", h.reportHandler.UpdateReportStatus)
	protected.POST("/broadcast", h.reportHandler.Broadcast)

	return h.natsHandler.InitNATSConsumers()
}
