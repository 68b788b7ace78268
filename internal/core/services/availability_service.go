package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/StaySuite/stay_booking_app/internal/apperrors"
	portsrepo "github.com/StaySuite/stay_booking_app/internal/core/ports/repositories"
	portssvc "github.com/StaySuite/stay_booking_app/internal/core/ports/services"
	"github.com/StaySuite/stay_booking_app/internal/utils/dates"
)

// availabilityService decides whether a room can host a half-open date
// range. It reads one consistent snapshot of blocks and occupying stays;
// the storage layer's exclusion constraint backstops the read-then-write
// race between two concurrent bookings.
type availabilityService struct {
	BaseService
	reservationRepo portsrepo.ReservationReader
	blockRepo       portsrepo.BlockReader
	roomRepo        portsrepo.RoomReader
}

// NewAvailabilityService creates a new availability checker.
func NewAvailabilityService(reservationRepo portsrepo.ReservationReader, blockRepo portsrepo.BlockReader, roomRepo portsrepo.RoomReader) portssvc.AvailabilitySvcFacade {
	return &availabilityService{
		reservationRepo: reservationRepo,
		blockRepo:       blockRepo,
		roomRepo:        roomRepo,
	}
}

var _ portssvc.AvailabilitySvcFacade = (*availabilityService)(nil)

// IsRoomAvailable reports availability for a day-key range. It returns
// false for availability conflicts and an error for anything else.
func (s *availabilityService) IsRoomAvailable(ctx context.Context, propertyID, roomID, startKey, endKey string, excludeReservationID *string) (bool, error) {
	start, end, err := dates.ParseRange(startKey, endKey)
	if err != nil {
		return false, err
	}

	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("failed to find room %s: %w", roomID, err)
	}
	if room.PropertyID != propertyID {
		// Obscure existence across properties.
		return false, apperrors.ErrNotFound
	}

	if err := s.AssertAvailable(ctx, roomID, start, end, excludeReservationID); err != nil {
		if errors.Is(err, apperrors.ErrRoomBlocked) || errors.Is(err, apperrors.ErrRoomOccupied) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// AssertAvailable fails with ErrRoomBlocked or ErrRoomOccupied when the
// half-open range [start, end) conflicts with a block or an occupying stay.
// Blocks always win, regardless of any reservation status. Stays of
// cancelled, no-show and checked-out reservations never conflict.
func (s *availabilityService) AssertAvailable(ctx context.Context, roomID string, start, end time.Time, excludeReservationID *string) error {
	if !end.After(start) {
		return apperrors.ErrInvalidDateRange
	}

	blocks, err := s.blockRepo.FindBlocksOverlapping(ctx, roomID, start, end)
	if err != nil {
		return fmt.Errorf("failed to check blocks for room %s: %w", roomID, err)
	}
	if len(blocks) > 0 {
		s.LogDebug(ctx, "Room blocked for requested range",
			"room_id", roomID,
			"start", dates.FormatDayKey(start),
			"end", dates.FormatDayKey(end),
			"block_id", blocks[0].BlockID)
		return apperrors.ErrRoomBlocked
	}

	stays, err := s.reservationRepo.FindOccupyingStays(ctx, roomID, start, end, excludeReservationID)
	if err != nil {
		return fmt.Errorf("failed to check stays for room %s: %w", roomID, err)
	}
	if len(stays) > 0 {
		s.LogDebug(ctx, "Room occupied for requested range",
			"room_id", roomID,
			"start", dates.FormatDayKey(start),
			"end", dates.FormatDayKey(end),
			"reservation_id", stays[0].ReservationID)
		return apperrors.ErrRoomOccupied
	}

	return nil
}
