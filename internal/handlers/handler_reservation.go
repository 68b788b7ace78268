package handlers

import (
	"net/http"
	"strconv"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portssvc "github.com/StaySuite/stay_booking_app/internal/core/ports/services"
	"github.com/StaySuite/stay_booking_app/internal/dto"
	"github.com/StaySuite/stay_booking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reservationHandler handles HTTP requests for the booking lifecycle.
type reservationHandler struct {
	reservationService portssvc.ReservationSvcFacade
}

// newReservationHandler creates a new reservationHandler.
func newReservationHandler(reservationService portssvc.ReservationSvcFacade) *reservationHandler {
	return &reservationHandler{reservationService: reservationService}
}

// registerReservationRoutes registers reservation lifecycle routes on the
// property-scoped group.
func registerReservationRoutes(group *gin.RouterGroup, reservationService portssvc.ReservationSvcFacade) {
	h := newReservationHandler(reservationService)

	reservations := group.Group("/reservations")
	{
		reservations.POST("", h.createStay)
		reservations.GET("", h.listReservations)
		reservations.GET("/:reservationID", h.getReservation)
		reservations.PATCH("/:reservationID/dates", h.changeStayDates)
		reservations.PATCH("/:reservationID/room", h.moveRoom)
		reservations.POST("/:reservationID/transition", h.transitionStatus)
	}
}

// createStay books a room for a guest, creating the reservation, its stay
// segment and its open folio atomically.
func (h *reservationHandler) createStay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")

	var req dto.CreateStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reservation, stay, err := h.reservationService.CreateStay(c.Request.Context(), propertyID, req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create reservation")
		return
	}

	logger.Info("Reservation created", "reservation_id", reservation.ReservationID, "room_id", stay.RoomID)
	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation, stay))
}

// getReservation returns the reservation header with its stay segment.
func (h *reservationHandler) getReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	reservationID := c.Param("reservationID")

	reservation, stay, err := h.reservationService.GetReservation(c.Request.Context(), propertyID, reservationID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve reservation")
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation, stay))
}

// listReservations returns a page of reservations, newest first.
func (h *reservationHandler) listReservations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	var nextToken *string
	if tokenStr := c.Query("nextToken"); tokenStr != "" {
		nextToken = &tokenStr
	}

	reservations, newNextToken, err := h.reservationService.ListReservations(c.Request.Context(), propertyID, limit, nextToken)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list reservations")
		return
	}

	responses := make([]dto.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		responses = append(responses, dto.ToReservationResponse(&reservations[i], nil))
	}

	c.JSON(http.StatusOK, dto.ListReservationsResponse{
		Reservations: responses,
		NextToken:    newNextToken,
	})
}

// changeStayDates moves the stay to a new half-open date range on the same room.
func (h *reservationHandler) changeStayDates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	reservationID := c.Param("reservationID")

	var req dto.ChangeStayDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stay, err := h.reservationService.ChangeStayDates(c.Request.Context(), propertyID, reservationID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to change stay dates")
		return
	}

	logger.Info("Stay dates changed", "reservation_id", reservationID)
	reservation, _, err := h.reservationService.GetReservation(c.Request.Context(), propertyID, reservationID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve reservation")
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation, stay))
}

// moveRoom moves the stay to another room over the same date range.
func (h *reservationHandler) moveRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	reservationID := c.Param("reservationID")

	var req dto.MoveRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stay, err := h.reservationService.MoveRoom(c.Request.Context(), propertyID, reservationID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to move room")
		return
	}

	logger.Info("Stay moved to new room", "reservation_id", reservationID, "room_id", stay.RoomID)
	reservation, _, err := h.reservationService.GetReservation(c.Request.Context(), propertyID, reservationID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve reservation")
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation, stay))
}

// transitionStatus applies a lifecycle transition to the reservation.
func (h *reservationHandler) transitionStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	reservationID := c.Param("reservationID")

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reservation, err := h.reservationService.TransitionStatus(c.Request.Context(), propertyID, reservationID, domain.ReservationStatus(req.ToStatus), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to transition reservation")
		return
	}

	logger.Info("Reservation transitioned", "reservation_id", reservationID, "status", string(reservation.Status))
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation, nil))
}
