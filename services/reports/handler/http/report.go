package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nagaralert/nagarhub/internal/pkg/logger"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
	"github.com/nagaralert/nagarhub/internal/utils"
	"github.com/nagaralert/nagarhub/services/reports"
)

// ReportHandler handles HTTP requests for report operations
type ReportHandler struct {
	reportUC reports.ReportUC
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportUC reports.ReportUC) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
	}
}

// SubmitReport handles report submissions from the mobile client
func (h *ReportHandler) SubmitReport(c echo.Context) error {
	var input models.ReportInput
	if err := c.Bind(&input); err != nil {
		logger.Warn("Invalid request payload for report submission",
			logger.ErrorField(err),
			logger.String("endpoint", "SubmitReport"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if input.UserID == "" || input.Category == "" || input.Location == nil {
		return utils.BadRequestResponse(c, "userId, type and location are required")
	}

	result, err := h.reportUC.SubmitReport(c.Request().Context(), &input)
	if err != nil {
		logger.Error("Failed to submit report",
			logger.ErrorField(err),
			logger.String("user_id", input.UserID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to submit report")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Report submitted", result)
}

// ListReports returns all reports, optionally filtered by status
func (h *ReportHandler) ListReports(c echo.Context) error {
	status := c.QueryParam("status")

	reports, err := h.reportUC.ListReports(c.Request().Context(), status)
	if err != nil {
		logger.Error("Failed to list reports", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list reports")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reports retrieved", reports)
}

// GetReport returns a single report by its identifier
func (h *ReportHandler) GetReport(c echo.Context) error {
	reportID := c.Param("id")
	if reportID == "" {
		return utils.BadRequestResponse(c, "Report ID is required")
	}

	report, err := h.reportUC.GetReport(c.Request().Context(), reportID)
	if err != nil {
		logger.Warn("Failed to get report",
			logger.ErrorField(err),
			logger.String("report_id", reportID),
		)
		return utils.NotFoundResponse(c, "Report not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Report retrieved", report)
}

// ListUserReports returns a single citizen's reports
func (h *ReportHandler) ListUserReports(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "User ID is required")
	}

	reports, err := h.reportUC.ListUserReports(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list user reports",
			logger.ErrorField(err),
			logger.String("user_id", userID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to list reports")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reports retrieved", reports)
}

// UpdateReportStatus moves a report through its lifecycle (admin only)
func (h *ReportHandler) UpdateReportStatus(c echo.Context) error {
	reportID := c.Param("id")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.reportUC.UpdateReportStatus(c.Request().Context(), reportID, req.Status); err != nil {
		logger.Error("Failed to update report status",
			logger.ErrorField(err),
			logger.String("report_id", reportID),
			logger.String("status", req.Status),
		)
		return utils.BadRequestResponse(c, "Failed to update report status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Report status updated", nil)
}

// Leaderboard returns the top point balances
func (h *ReportHandler) Leaderboard(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
		limit = parsed
	}

	accounts, err := h.reportUC.Leaderboard(c.Request().Context(), limit)
	if err != nil {
		logger.Error("Failed to load leaderboard", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to load leaderboard")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Leaderboard retrieved", accounts)
}

// Broadcast queues an administrative alert for asynchronous fan-out
func (h *ReportHandler) Broadcast(c echo.Context) error {
	var req models.BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Message == "" {
		return utils.BadRequestResponse(c, "Message is required")
	}

	if err := h.reportUC.RequestBroadcast(c.Request().Context(), &req); err != nil {
		logger.Error("Failed to queue broadcast", logger.ErrorField(err))
		return utils.ServiceUnavailableResponse(c, "Failed to queue broadcast")
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Broadcast queued", nil)
}
