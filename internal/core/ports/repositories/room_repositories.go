package repositories

import (
	"context"
	"time"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
)

// RoomReader defines read operations on rooms, room types and rate plans.
// The booking engine only reads this data; room CRUD lives elsewhere.
type RoomReader interface {
	// FindRoomByID retrieves a room by its identifier.
	FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error)

	// FindRoomTypeByID retrieves a room type by its identifier.
	FindRoomTypeByID(ctx context.Context, roomTypeID string) (*domain.RoomType, error)

	// ListRoomsByProperty retrieves all rooms of a property.
	ListRoomsByProperty(ctx context.Context, propertyID string) ([]domain.Room, error)

	// FindPropertyByID retrieves a property (for its default rate plan and currency).
	FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)

	// FindRatePlanRate retrieves the nightly rate a plan assigns to a room
	// type, or apperrors.ErrNotFound when the plan has no row for it.
	FindRatePlanRate(ctx context.Context, ratePlanID, roomTypeID string) (*domain.RatePlanRate, error)
}

// RoomWriter defines the single room mutation the engine performs: the
// housekeeping side effect of checkout.
type RoomWriter interface {
	// UpdateHousekeepingStatus sets the housekeeping state of a room.
	UpdateHousekeepingStatus(ctx context.Context, roomID string, status domain.HousekeepingStatus, updatedBy string) error
}

// RoomRepositoryFacade combines room repository interfaces.
type RoomRepositoryFacade interface {
	RoomReader
	RoomWriter
}

// BlockReader defines read operations for maintenance blocks.
type BlockReader interface {
	// FindBlocksOverlapping retrieves blocks on a room whose half-open
	// range overlaps [start, end).
	FindBlocksOverlapping(ctx context.Context, roomID string, start, end time.Time) ([]domain.Block, error)

	// ListBlocksByRoom retrieves all blocks on a room.
	ListBlocksByRoom(ctx context.Context, roomID string) ([]domain.Block, error)

	// FindBlockByID retrieves a block by its identifier.
	FindBlockByID(ctx context.Context, blockID string) (*domain.Block, error)
}

// BlockWriter defines write operations for maintenance blocks.
type BlockWriter interface {
	// SaveBlock persists a new maintenance block.
	SaveBlock(ctx context.Context, block domain.Block) error

	// DeleteBlock removes a block by its identifier.
	DeleteBlock(ctx context.Context, blockID string) error
}

// BlockRepositoryFacade combines block repository interfaces.
type BlockRepositoryFacade interface {
	BlockReader
	BlockWriter
}
