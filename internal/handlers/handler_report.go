package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/SafeHavenApp/safehaven_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests related to harassment reports.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

// registerReportRoutes registers all report-related routes.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.POST("", h.createReport)
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
		reports.PATCH("/:id", h.updateReportStatus) // Admin only
	}
}

// createReport godoc
// @Summary File a harassment report
// @Description Creates a new report owned by the authenticated user.
// @Tags reports
// @Accept json
// @Produce json
// @Param report body dto.CreateReportRequest true "Report details"
// @Success 201 {object} dto.APIResponse{data=dto.ReportResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/reports [post]
func (h *reportHandler) createReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	report, err := h.reportService.CreateReport(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Report created", slog.String("report_id", report.ReportID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToReportResponse(report)))
}

// listReports godoc
// @Summary List reports
// @Description Lists all reports for admins; own plus public reports otherwise.
// @Tags reports
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.APIResponse{data=[]dto.ReportResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/reports [get]
func (h *reportHandler) listReports(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}
	isAdmin := middleware.GetIsAdminFromContext(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reports, err := h.reportService.ListReports(c.Request.Context(), userID, isAdmin, limit, offset)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToReportListResponse(reports)))
}

// getReport godoc
// @Summary Get a report
// @Description Returns one report when the caller is its owner, an admin, or the report is public.
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} dto.APIResponse{data=dto.ReportResponse}
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/reports/{id} [get]
func (h *reportHandler) getReport(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}
	isAdmin := middleware.GetIsAdminFromContext(c)

	report, err := h.reportService.GetReport(c.Request.Context(), c.Param("id"), userID, isAdmin)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToReportResponse(report)))
}

// updateReportStatus godoc
// @Summary Update report status
// @Description Sets the report's review status. Admin only.
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param status body dto.UpdateReportStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.ReportResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/reports/{id} [patch]
func (h *reportHandler) updateReportStatus(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}
	isAdmin := middleware.GetIsAdminFromContext(c)

	var req dto.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Status is required"))
		return
	}

	report, err := h.reportService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, userID, isAdmin)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToReportResponse(report)))
}
