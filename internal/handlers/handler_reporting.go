package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hotelhq/hotel_folio_app/internal/apperrors"
	portssvc "github.com/hotelhq/hotel_folio_app/internal/core/ports/services"
	"github.com/hotelhq/hotel_folio_app/internal/dto"
	"github.com/hotelhq/hotel_folio_app/internal/middleware"
)

const reportDateLayout = "2006-01-02"

type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingService) {
	h := newReportingHandler(rs)
	reports := rg.Group("/reports")
	{
		reports.GET("/daily-revenue", h.getDailyRevenue)
		reports.GET("/occupancy", h.getOccupancy)
	}
}

// getDailyRevenue godoc
// @Summary Daily revenue report
// @Description Returns per-day revenue totals for the given date range. Manager role required.
// @Tags reports
// @Produce json
// @Param fromDate query string true "Range start (YYYY-MM-DD)"
// @Param toDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyRevenueResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /reports/daily-revenue [get]
func (h *reportingHandler) getDailyRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fromStr := c.Query("fromDate")
	toStr := c.Query("toDate")
	from, err := time.Parse(reportDateLayout, fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate must be in YYYY-MM-DD format"})
		return
	}
	to, err := time.Parse(reportDateLayout, toStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "toDate must be in YYYY-MM-DD format"})
		return
	}

	rows, err := h.reportingService.DailyRevenue(c.Request.Context(), from, to, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Manager role required"})
		default:
			logger.Error("Failed to generate daily revenue report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyRevenueResponse(fromStr, toStr, rows))
}

// getOccupancy godoc
// @Summary Current occupancy snapshot
// @Description Returns room counts by status and the current occupancy rate.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.OccupancyResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /reports/occupancy [get]
func (h *reportingHandler) getOccupancy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	snapshot, err := h.reportingService.Occupancy(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		logger.Error("Failed to generate occupancy snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOccupancyResponse(*snapshot))
}
