package repositories

import (
	"context"
	"time"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
)

// ReservationReader defines read operations for reservations and stay segments.
type ReservationReader interface {
	// FindReservationByID retrieves a reservation header by its identifier.
	FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error)

	// FindStaySegmentByReservationID retrieves the single stay segment owned
	// by a reservation.
	FindStaySegmentByReservationID(ctx context.Context, reservationID string) (*domain.StaySegment, error)

	// FindOccupyingStays retrieves stay segments on a room whose reservation
	// is in an occupying status and whose half-open range overlaps
	// [start, end). excludeReservationID, when non-nil, removes that
	// reservation's own segment from consideration.
	FindOccupyingStays(ctx context.Context, roomID string, start, end time.Time, excludeReservationID *string) ([]domain.StaySegment, error)

	// ListReservationsByProperty retrieves reservations for a property,
	// newest first, with token pagination.
	ListReservationsByProperty(ctx context.Context, propertyID string, limit int, nextToken *string) ([]domain.Reservation, *string, error)
}

// ReservationWriter defines write operations for reservations and stay segments.
type ReservationWriter interface {
	// CreateBooking persists the reservation, its stay segment and its open
	// folio as one atomic unit. A storage-level conflict on the room/date
	// range surfaces as apperrors.ErrRoomOccupied.
	CreateBooking(ctx context.Context, reservation domain.Reservation, stay domain.StaySegment, folio domain.Folio) error

	// UpdateReservationStatus applies a lifecycle transition, keeping the
	// stay segment's active flag in sync and, when markRoomDirty is set,
	// flipping the room's housekeeping status in the same transaction.
	UpdateReservationStatus(ctx context.Context, reservationID string, status domain.ReservationStatus, markRoomDirty bool, updatedBy string, updatedAt time.Time) error

	// UpdateStaySegment rewrites the room and date range of a reservation's
	// stay segment. Storage-level range conflicts surface as
	// apperrors.ErrRoomOccupied.
	UpdateStaySegment(ctx context.Context, stay domain.StaySegment, updatedBy string, updatedAt time.Time) error
}

// ReservationRepositoryFacade combines reservation repository interfaces.
type ReservationRepositoryFacade interface {
	ReservationReader
	ReservationWriter
}
