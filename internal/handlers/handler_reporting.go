package handlers

import (
	"net/http"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portssvc "github.com/StaySuite/stay_booking_app/internal/core/ports/services"
	"github.com/StaySuite/stay_booking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles read-only reporting requests.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes registers reporting routes on the property-scoped group.
func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := group.Group("/reports")
	{
		reports.GET("/daily", h.getDailyReport)
	}
}

// getDailyReport returns zero-filled per-day activity rows plus grand
// totals for an inclusive day-key range, on a cash or accrual basis.
func (h *reportingHandler) getDailyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")

	mode := c.DefaultQuery("mode", string(domain.ReportCash))
	startKey := c.Query("start")
	endKey := c.Query("end")
	if startKey == "" || endKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query parameters are required"})
		return
	}

	report, err := h.reportingService.GetDailyReport(c.Request.Context(), propertyID, domain.ReportMode(mode), startKey, endKey)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build daily report")
		return
	}

	c.JSON(http.StatusOK, report)
}
