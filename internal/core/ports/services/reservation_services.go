package services

import (
	"context"
	"time"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	"github.com/StaySuite/stay_booking_app/internal/dto"
)

// AvailabilityChecker answers whether a room can host a half-open date
// range. It is a pure decision over a repository snapshot; the storage
// layer's uniqueness backstop catches read-then-write races.
type AvailabilityChecker interface {
	// IsRoomAvailable reports availability for a day-key range, optionally
	// ignoring one reservation's own occupancy.
	IsRoomAvailable(ctx context.Context, propertyID, roomID, startKey, endKey string, excludeReservationID *string) (bool, error)

	// AssertAvailable fails with apperrors.ErrRoomBlocked or
	// apperrors.ErrRoomOccupied instead of returning false.
	AssertAvailable(ctx context.Context, roomID string, start, end time.Time, excludeReservationID *string) error
}

// AvailabilitySvcFacade is the availability checker surface.
type AvailabilitySvcFacade interface {
	AvailabilityChecker
}

// ReservationSvcFacade drives the stay booking lifecycle.
type ReservationSvcFacade interface {
	// CreateStay atomically creates the reservation, its stay segment and
	// its open zero-balance folio.
	CreateStay(ctx context.Context, propertyID string, req dto.CreateStayRequest, creatorUserID string) (*domain.Reservation, *domain.StaySegment, error)

	// GetReservation retrieves a reservation header and its stay segment.
	GetReservation(ctx context.Context, propertyID, reservationID string) (*domain.Reservation, *domain.StaySegment, error)

	// ListReservations retrieves reservations for a property with token
	// pagination.
	ListReservations(ctx context.Context, propertyID string, limit int, nextToken *string) ([]domain.Reservation, *string, error)

	// ChangeStayDates rewrites the stay's date range after re-checking
	// availability excluding the reservation itself.
	ChangeStayDates(ctx context.Context, propertyID, reservationID string, req dto.ChangeStayDatesRequest, userID string) (*domain.StaySegment, error)

	// MoveRoom rewrites the stay's room after re-checking availability on
	// the target room.
	MoveRoom(ctx context.Context, propertyID, reservationID string, req dto.MoveRoomRequest, userID string) (*domain.StaySegment, error)

	// TransitionStatus applies a lifecycle transition, re-validating
	// availability on re-entry into an occupying status.
	TransitionStatus(ctx context.Context, propertyID, reservationID string, toStatus domain.ReservationStatus, userID string) (*domain.Reservation, error)
}
