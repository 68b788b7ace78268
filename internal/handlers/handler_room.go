package handlers

import (
	"net/http"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portssvc "github.com/StaySuite/stay_booking_app/internal/core/ports/services"
	"github.com/StaySuite/stay_booking_app/internal/dto"
	"github.com/StaySuite/stay_booking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// roomHandler handles HTTP requests for room inventory, availability
// checks and maintenance blocks.
type roomHandler struct {
	roomService  portssvc.RoomSvcFacade
	availability portssvc.AvailabilitySvcFacade
}

// newRoomHandler creates a new roomHandler.
func newRoomHandler(roomService portssvc.RoomSvcFacade, availability portssvc.AvailabilitySvcFacade) *roomHandler {
	return &roomHandler{
		roomService:  roomService,
		availability: availability,
	}
}

// registerRoomRoutes registers room and block routes on the property-scoped
// group. Block management is manager-only.
func registerRoomRoutes(group *gin.RouterGroup, roomService portssvc.RoomSvcFacade, availability portssvc.AvailabilitySvcFacade) {
	h := newRoomHandler(roomService, availability)

	rooms := group.Group("/rooms")
	{
		rooms.GET("", h.listRooms)
		rooms.GET("/:roomID/availability", h.checkAvailability)
		rooms.GET("/:roomID/blocks", h.listBlocks)
	}

	blocks := group.Group("/blocks", middleware.RequireRole(domain.RoleManager))
	{
		blocks.POST("", h.createBlock)
		blocks.DELETE("/:blockID", h.deleteBlock)
	}
}

// listRooms returns all rooms of the property.
func (h *roomHandler) listRooms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")

	rooms, err := h.roomService.ListRooms(c.Request.Context(), propertyID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list rooms")
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// checkAvailability answers whether the room can host the half-open
// [start, end) day-key range.
func (h *roomHandler) checkAvailability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	roomID := c.Param("roomID")

	startKey := c.Query("start")
	endKey := c.Query("end")
	if startKey == "" || endKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query parameters are required"})
		return
	}

	var excludeReservationID *string
	if exclude := c.Query("excludeReservationID"); exclude != "" {
		excludeReservationID = &exclude
	}

	available, err := h.availability.IsRoomAvailable(c.Request.Context(), propertyID, roomID, startKey, endKey, excludeReservationID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to check availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"roomID":    roomID,
		"start":     startKey,
		"end":       endKey,
		"available": available,
	})
}

// listBlocks returns all maintenance blocks on a room.
func (h *roomHandler) listBlocks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	roomID := c.Param("roomID")

	blocks, err := h.roomService.ListBlocks(c.Request.Context(), propertyID, roomID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list blocks")
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// createBlock opens a maintenance window on a room.
func (h *roomHandler) createBlock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")

	var req dto.BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	block, err := h.roomService.CreateBlock(c.Request.Context(), propertyID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create block")
		return
	}

	logger.Info("Block created", "block_id", block.BlockID, "room_id", block.RoomID)
	c.JSON(http.StatusCreated, block)
}

// deleteBlock removes a maintenance block.
func (h *roomHandler) deleteBlock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	propertyID := c.Param("propertyID")
	blockID := c.Param("blockID")

	if err := h.roomService.DeleteBlock(c.Request.Context(), propertyID, blockID); err != nil {
		respondWithError(c, logger, err, "Failed to delete block")
		return
	}

	logger.Info("Block deleted", "block_id", blockID)
	c.Status(http.StatusNoContent)
}
