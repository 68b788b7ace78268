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

// reservationService drives the stay booking lifecycle.
type reservationService struct {
	BaseService
	reservationRepo portsrepo.ReservationRepositoryFacade
	roomRepo        portsrepo.RoomRepositoryFacade
	availability    portssvc.AvailabilityChecker
}

// NewReservationService creates a new ReservationService.
func NewReservationService(reservationRepo portsrepo.ReservationRepositoryFacade, roomRepo portsrepo.RoomRepositoryFacade, availability portssvc.AvailabilityChecker) portssvc.ReservationSvcFacade {
	return &reservationService{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		availability:    availability,
	}
}

var _ portssvc.ReservationSvcFacade = (*reservationService)(nil)

// CreateStay books a room for a half-open date range, creating the
// reservation header, its stay segment and its open zero-balance folio as
// one atomic unit. The availability check runs over a snapshot; the
// repository's range-exclusion backstop turns a concurrent double booking
// into ErrRoomOccupied instead of silent corruption.
func (s *reservationService) CreateStay(ctx context.Context, propertyID string, req dto.CreateStayRequest, creatorUserID string) (*domain.Reservation, *domain.StaySegment, error) {
	start, end, err := dates.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, nil, err
	}

	room, err := s.roomRepo.FindRoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find room %s: %w", req.RoomID, err)
	}
	if room.PropertyID != propertyID {
		return nil, nil, apperrors.ErrNotFound
	}
	if !room.IsActive || room.Status != domain.RoomActive {
		return nil, nil, fmt.Errorf("%w: room %s is not bookable", apperrors.ErrValidation, req.RoomID)
	}

	if err := s.availability.AssertAvailable(ctx, req.RoomID, start, end, nil); err != nil {
		return nil, nil, err
	}

	property, err := s.roomRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find property %s: %w", propertyID, err)
	}

	now := time.Now().UTC()
	status := domain.StatusConfirmed
	if req.Hold {
		status = domain.StatusDraft
	}
	source := req.Source
	if source == "" {
		source = "FRONT_DESK"
	}

	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	reservation := domain.Reservation{
		ReservationID: uuid.NewString(),
		PropertyID:    propertyID,
		Status: status,
		// Seed the cache from the empty-folio fold so the cached status and
		// a GetFolio summary agree before the first line is posted.
		PaymentStatus: domain.SummarizeLines(nil).PaymentStatus,
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		Source:        source,
		Channel:       req.Channel,
		Notes:         req.Notes,
		AuditFields:   audit,
	}

	stay := domain.StaySegment{
		ReservationID: reservation.ReservationID,
		RoomID:        room.RoomID,
		RoomTypeID:    room.RoomTypeID,
		StartDate:     start,
		EndDate:       end,
		Adults:        req.Adults,
		Children:      req.Children,
	}

	folio := domain.Folio{
		FolioID:       uuid.NewString(),
		ReservationID: reservation.ReservationID,
		CurrencyCode:  property.CurrencyCode,
		Status:        domain.FolioOpen,
		AuditFields:   audit,
	}

	if err := s.reservationRepo.CreateBooking(ctx, reservation, stay, folio); err != nil {
		s.LogError(ctx, err, "Failed to create booking", "room_id", req.RoomID, "property_id", propertyID)
		return nil, nil, err
	}

	s.LogInfo(ctx, "Stay created",
		"reservation_id", reservation.ReservationID,
		"room_id", room.RoomID,
		"start", req.StartDate,
		"end", req.EndDate,
		"status", string(status))
	return &reservation, &stay, nil
}

// GetReservation retrieves a reservation header and its stay segment,
// hiding reservations of other properties.
func (s *reservationService) GetReservation(ctx context.Context, propertyID, reservationID string) (*domain.Reservation, *domain.StaySegment, error) {
	reservation, stay, err := s.findScoped(ctx, propertyID, reservationID)
	if err != nil {
		return nil, nil, err
	}
	return reservation, stay, nil
}

// ListReservations retrieves reservations for a property with token pagination.
func (s *reservationService) ListReservations(ctx context.Context, propertyID string, limit int, nextToken *string) ([]domain.Reservation, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	reservations, token, err := s.reservationRepo.ListReservationsByProperty(ctx, propertyID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reservations", "property_id", propertyID)
		return nil, nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return reservations, token, nil
}

// ChangeStayDates rewrites the stay's date range. The availability re-check
// excludes the reservation's own current occupancy so shrinking or shifting
// within the original range is permitted.
func (s *reservationService) ChangeStayDates(ctx context.Context, propertyID, reservationID string, req dto.ChangeStayDatesRequest, userID string) (*domain.StaySegment, error) {
	start, end, err := dates.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	reservation, stay, err := s.findScoped(ctx, propertyID, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: reservation %s is %s", apperrors.ErrConflict, reservationID, reservation.Status)
	}

	if err := s.availability.AssertAvailable(ctx, stay.RoomID, start, end, &reservationID); err != nil {
		return nil, err
	}

	stay.StartDate = start
	stay.EndDate = end
	if err := s.reservationRepo.UpdateStaySegment(ctx, *stay, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to update stay dates", "reservation_id", reservationID)
		return nil, err
	}

	s.LogInfo(ctx, "Stay dates changed", "reservation_id", reservationID, "start", req.StartDate, "end", req.EndDate)
	return stay, nil
}

// MoveRoom rewrites the stay's room after re-checking availability on the
// target room for the existing date range.
func (s *reservationService) MoveRoom(ctx context.Context, propertyID, reservationID string, req dto.MoveRoomRequest, userID string) (*domain.StaySegment, error) {
	reservation, stay, err := s.findScoped(ctx, propertyID, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: reservation %s is %s", apperrors.ErrConflict, reservationID, reservation.Status)
	}

	room, err := s.roomRepo.FindRoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to find room %s: %w", req.RoomID, err)
	}
	if room.PropertyID != propertyID {
		return nil, apperrors.ErrNotFound
	}
	if !room.IsActive || room.Status != domain.RoomActive {
		return nil, fmt.Errorf("%w: room %s is not bookable", apperrors.ErrValidation, req.RoomID)
	}

	// Exclude self so a no-op move back to the same room stays idempotent.
	if err := s.availability.AssertAvailable(ctx, room.RoomID, stay.StartDate, stay.EndDate, &reservationID); err != nil {
		return nil, err
	}

	stay.RoomID = room.RoomID
	stay.RoomTypeID = room.RoomTypeID
	if err := s.reservationRepo.UpdateStaySegment(ctx, *stay, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to move room", "reservation_id", reservationID, "room_id", req.RoomID)
		return nil, err
	}

	s.LogInfo(ctx, "Stay moved to new room", "reservation_id", reservationID, "room_id", room.RoomID)
	return stay, nil
}

// TransitionStatus applies a lifecycle transition. Re-entry into an
// occupying status re-runs the availability check excluding self, because
// the room may have been double-booked or blocked since the reservation was
// created. Reaching CHECKED_OUT marks the room dirty for housekeeping in
// the same storage transaction.
func (s *reservationService) TransitionStatus(ctx context.Context, propertyID, reservationID string, toStatus domain.ReservationStatus, userID string) (*domain.Reservation, error) {
	reservation, stay, err := s.findScoped(ctx, propertyID, reservationID)
	if err != nil {
		return nil, err
	}

	from := reservation.Status

	if toStatus == from && toStatus.Occupies() {
		// Idempotent re-transition into the same occupying state is treated
		// as success, provided the room is still available to this stay.
		if err := s.availability.AssertAvailable(ctx, stay.RoomID, stay.StartDate, stay.EndDate, &reservationID); err != nil {
			return nil, err
		}
		s.LogDebug(ctx, "Idempotent transition to current status", "reservation_id", reservationID, "status", string(toStatus))
		return reservation, nil
	}

	if !domain.CanTransition(from, toStatus) {
		return nil, apperrors.NewInvalidTransition(string(from), string(toStatus))
	}

	if toStatus.Occupies() {
		if err := s.availability.AssertAvailable(ctx, stay.RoomID, stay.StartDate, stay.EndDate, &reservationID); err != nil {
			return nil, err
		}
	}

	markRoomDirty := toStatus == domain.StatusCheckedOut
	now := time.Now().UTC()
	if err := s.reservationRepo.UpdateReservationStatus(ctx, reservationID, toStatus, markRoomDirty, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to persist status transition", "reservation_id", reservationID, "to", string(toStatus))
		return nil, err
	}

	reservation.Status = toStatus
	reservation.LastUpdatedAt = now
	reservation.LastUpdatedBy = userID

	s.LogInfo(ctx, "Reservation transitioned",
		"reservation_id", reservationID,
		"from", string(from),
		"to", string(toStatus))
	return reservation, nil
}

// findScoped fetches a reservation and its stay segment, returning
// ErrNotFound when the reservation belongs to a different property.
func (s *reservationService) findScoped(ctx context.Context, propertyID, reservationID string) (*domain.Reservation, *domain.StaySegment, error) {
	reservation, err := s.reservationRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find reservation %s: %w", reservationID, err)
	}
	if reservation.PropertyID != propertyID {
		// Obscure existence across properties.
		return nil, nil, apperrors.ErrNotFound
	}
	stay, err := s.reservationRepo.FindStaySegmentByReservationID(ctx, reservationID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find stay segment for reservation %s: %w", reservationID, err)
	}
	return reservation, stay, nil
}
