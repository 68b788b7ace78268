package handlers

import (
	"net/http"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portssvc "github.com/StaySuite/stay_booking_app/internal/core/ports/services"
	"github.com/StaySuite/stay_booking_app/internal/dto"
	"github.com/StaySuite/stay_booking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// folioHandler handles HTTP requests against a reservation's ledger.
type folioHandler struct {
	folioService portssvc.FolioSvcFacade
}

// newFolioHandler creates a new folioHandler.
func newFolioHandler(folioService portssvc.FolioSvcFacade) *folioHandler {
	return &folioHandler{folioService: folioService}
}

// registerFolioRoutes registers ledger routes on the property-scoped group.
// Reversal and open/close are manager-only; posting lines is front desk work.
func registerFolioRoutes(group *gin.RouterGroup, folioService portssvc.FolioSvcFacade) {
	h := newFolioHandler(folioService)

	folio := group.Group("/reservations/:reservationID/folio")
	{
		folio.GET("", h.getFolio)
		folio.POST("/charges", h.addCharge)
		folio.POST("/payments", h.addPayment)
		folio.POST("/refunds", h.addRefund)
		folio.POST("/room-charges", h.postRoomCharges)

		manager := folio.Group("", middleware.RequireRole(domain.RoleManager))
		{
			manager.POST("/lines/:lineID/reverse", h.reverseLine)
			manager.POST("/close", h.closeFolio)
			manager.POST("/reopen", h.reopenFolio)
		}
	}
}

// getFolio returns the folio header, all lines and the computed summary.
func (h *folioHandler) getFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	reservationID := c.Param("reservationID")

	folio, lines, summary, err := h.folioService.GetFolio(c.Request.Context(), propertyID, reservationID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve folio")
		return
	}

	c.JSON(http.StatusOK, dto.ToFolioResponse(folio, lines, summary))
}

// addCharge posts a CHARGE line to the folio.
func (h *folioHandler) addCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	reservationID := c.Param("reservationID")

	var req dto.AddChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	line, err := h.folioService.AddCharge(c.Request.Context(), propertyID, reservationID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add charge")
		return
	}

	logger.Info("Charge posted", "reservation_id", reservationID, "line_id", line.LineID, "amount_cents", line.AmountCents)
	c.JSON(http.StatusCreated, dto.ToFolioLineResponse(line))
}

// addPayment records a payment against the folio.
func (h *folioHandler) addPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	reservationID := c.Param("reservationID")

	var req dto.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	line, err := h.folioService.AddPayment(c.Request.Context(), propertyID, reservationID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add payment")
		return
	}

	logger.Info("Payment posted", "reservation_id", reservationID, "line_id", line.LineID, "amount_cents", line.AmountCents)
	c.JSON(http.StatusCreated, dto.ToFolioLineResponse(line))
}

// addRefund records money returned to the guest.
func (h *folioHandler) addRefund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	reservationID := c.Param("reservationID")

	var req dto.AddRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	line, err := h.folioService.AddRefund(c.Request.Context(), propertyID, reservationID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add refund")
		return
	}

	logger.Info("Refund posted", "reservation_id", reservationID, "line_id", line.LineID, "amount_cents", line.AmountCents)
	c.JSON(http.StatusCreated, dto.ToFolioLineResponse(line))
}

// reverseLine appends a REVERSAL negating the target line.
func (h *folioHandler) reverseLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	reservationID := c.Param("reservationID")
	lineID := c.Param("lineID")

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	line, err := h.folioService.ReverseLine(c.Request.Context(), propertyID, reservationID, lineID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to reverse line")
		return
	}

	logger.Info("Line reversed", "reservation_id", reservationID, "original_line_id", lineID, "reversal_line_id", line.LineID)
	c.JSON(http.StatusCreated, dto.ToFolioLineResponse(line))
}

// postRoomCharges posts the stay's room charge from the configured rates.
func (h *folioHandler) postRoomCharges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	reservationID := c.Param("reservationID")

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	line, err := h.folioService.PostRoomCharges(c.Request.Context(), propertyID, reservationID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to post room charges")
		return
	}

	logger.Info("Room charges posted", "reservation_id", reservationID, "line_id", line.LineID, "amount_cents", line.AmountCents)
	c.JSON(http.StatusCreated, dto.ToFolioLineResponse(line))
}

// closeFolio stops the folio accepting new lines.
func (h *folioHandler) closeFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	reservationID := c.Param("reservationID")

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.folioService.CloseFolio(c.Request.Context(), propertyID, reservationID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to close folio")
		return
	}

	logger.Info("Folio closed", "reservation_id", reservationID)
	c.JSON(http.StatusOK, gin.H{"status": "CLOSED"})
}

// reopenFolio lets a closed folio accept late charges again.
func (h *folioHandler) reopenFolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	reservationID := c.Param("reservationID")

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.folioService.ReopenFolio(c.Request.Context(), propertyID, reservationID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to reopen folio")
		return
	}

	logger.Info("Folio reopened", "reservation_id", reservationID)
	c.JSON(http.StatusOK, gin.H{"status": "OPEN"})
}
