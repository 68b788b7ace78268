package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/StaySuite/stay_booking_app/internal/apperrors"
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portsrepo "github.com/StaySuite/stay_booking_app/internal/core/ports/repositories"
	portssvc "github.com/StaySuite/stay_booking_app/internal/core/ports/services"
	"github.com/StaySuite/stay_booking_app/internal/dto"
	"github.com/StaySuite/stay_booking_app/internal/utils/dates"
)

// roomService exposes the room inventory and maintains maintenance blocks.
type roomService struct {
	BaseService
	roomRepo  portsrepo.RoomReader
	blockRepo portsrepo.BlockRepositoryFacade
}

// NewRoomService creates a new RoomService.
func NewRoomService(roomRepo portsrepo.RoomReader, blockRepo portsrepo.BlockRepositoryFacade) portssvc.RoomSvcFacade {
	return &roomService{
		roomRepo:  roomRepo,
		blockRepo: blockRepo,
	}
}

var _ portssvc.RoomSvcFacade = (*roomService)(nil)

// ListRooms retrieves all rooms of a property.
func (s *roomService) ListRooms(ctx context.Context, propertyID string) ([]domain.Room, error) {
	if _, err := s.roomRepo.FindPropertyByID(ctx, propertyID); err != nil {
		return nil, fmt.Errorf("failed to find property %s: %w", propertyID, err)
	}
	return s.roomRepo.ListRoomsByProperty(ctx, propertyID)
}

// ListBlocks retrieves all maintenance blocks on a room.
func (s *roomService) ListBlocks(ctx context.Context, propertyID, roomID string) ([]domain.Block, error) {
	if _, err := s.findScopedRoom(ctx, propertyID, roomID); err != nil {
		return nil, err
	}
	return s.blockRepo.ListBlocksByRoom(ctx, roomID)
}

// CreateBlock opens a maintenance window on a room. Existing reservations
// are untouched; the block only rejects new overlapping bookings.
func (s *roomService) CreateBlock(ctx context.Context, propertyID string, req dto.BlockRequest, userID string) (*domain.Block, error) {
	start, end, err := dates.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.findScopedRoom(ctx, propertyID, req.RoomID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	block := domain.Block{
		BlockID:   uuid.NewString(),
		RoomID:    req.RoomID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.blockRepo.SaveBlock(ctx, block); err != nil {
		s.LogError(ctx, err, "Failed to save block", "room_id", req.RoomID)
		return nil, err
	}

	s.LogInfo(ctx, "Block created", "block_id", block.BlockID, "room_id", req.RoomID)
	return &block, nil
}

// DeleteBlock removes a maintenance block after confirming it belongs to
// the property.
func (s *roomService) DeleteBlock(ctx context.Context, propertyID, blockID string) error {
	block, err := s.blockRepo.FindBlockByID(ctx, blockID)
	if err != nil {
		return err
	}
	if _, err := s.findScopedRoom(ctx, propertyID, block.RoomID); err != nil {
		return err
	}
	return s.blockRepo.DeleteBlock(ctx, blockID)
}

// findScopedRoom loads a room and hides its existence when it belongs to a
// different property.
func (s *roomService) findScopedRoom(ctx context.Context, propertyID, roomID string) (*domain.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to find room %s: %w", roomID, err)
	}
	if room.PropertyID != propertyID {
		return nil, apperrors.ErrNotFound
	}
	return room, nil
}
