package services

import (
	"context"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	"github.com/StaySuite/stay_booking_app/internal/dto"
)

// RoomSvcFacade exposes the room inventory the engine reads and the
// maintenance blocks that make rooms unavailable.
type RoomSvcFacade interface {
	// ListRooms retrieves all rooms of a property.
	ListRooms(ctx context.Context, propertyID string) ([]domain.Room, error)

	// ListBlocks retrieves all maintenance blocks on a room.
	ListBlocks(ctx context.Context, propertyID, roomID string) ([]domain.Block, error)

	// CreateBlock opens a maintenance window on a room. Existing
	// reservations are untouched; the block only rejects new bookings.
	CreateBlock(ctx context.Context, propertyID string, req dto.BlockRequest, userID string) (*domain.Block, error)

	// DeleteBlock removes a maintenance block.
	DeleteBlock(ctx context.Context, propertyID, blockID string) error
}
