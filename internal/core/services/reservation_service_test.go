package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/StaySuite/stay_booking_app/internal/apperrors"
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portssvc "github.com/StaySuite/stay_booking_app/internal/core/ports/services"
	"github.com/StaySuite/stay_booking_app/internal/core/services"
	"github.com/StaySuite/stay_booking_app/internal/dto"
)

// excludes matches the self-exclusion pointer the service builds internally.
func excludes(reservationID string) interface{} {
	return mock.MatchedBy(func(p *string) bool {
		return p != nil && *p == reservationID
	})
}

type ReservationServiceTestSuite struct {
	suite.Suite
	mockReservationRepo *MockReservationRepository
	mockRoomRepo        *MockRoomRepository
	mockAvailability    *MockAvailabilityChecker
	service             portssvc.ReservationSvcFacade

	propertyID string
	roomID     string
	roomTypeID string
	userID     string
}

func (suite *ReservationServiceTestSuite) SetupTest() {
	suite.mockReservationRepo = new(MockReservationRepository)
	suite.mockRoomRepo = new(MockRoomRepository)
	suite.mockAvailability = new(MockAvailabilityChecker)
	suite.service = services.NewReservationService(suite.mockReservationRepo, suite.mockRoomRepo, suite.mockAvailability)

	suite.propertyID = uuid.NewString()
	suite.roomID = uuid.NewString()
	suite.roomTypeID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *ReservationServiceTestSuite) activeRoom() *domain.Room {
	return &domain.Room{
		RoomID:     suite.roomID,
		PropertyID: suite.propertyID,
		RoomTypeID: suite.roomTypeID,
		Number:     "101",
		IsActive:   true,
		Status:     domain.RoomActive,
	}
}

func (suite *ReservationServiceTestSuite) property() *domain.Property {
	return &domain.Property{
		PropertyID:   suite.propertyID,
		Name:         "Harbor View Hotel",
		CurrencyCode: "USD",
	}
}

func (suite *ReservationServiceTestSuite) existingReservation(status domain.ReservationStatus) (*domain.Reservation, *domain.StaySegment) {
	reservationID := uuid.NewString()
	reservation := &domain.Reservation{
		ReservationID: reservationID,
		PropertyID:    suite.propertyID,
		Status:        status,
		PaymentStatus: domain.PaymentUnpaid,
		GuestName:     "Alice Cooper",
	}
	stay := &domain.StaySegment{
		ReservationID: reservationID,
		RoomID:        suite.roomID,
		RoomTypeID:    suite.roomTypeID,
		StartDate:     day("2024-06-01"),
		EndDate:       day("2024-06-05"),
		Adults:        2,
	}
	return reservation, stay
}

func (suite *ReservationServiceTestSuite) expectFindScoped(reservation *domain.Reservation, stay *domain.StaySegment) {
	suite.mockReservationRepo.On("FindReservationByID", mock.Anything, reservation.ReservationID).Return(reservation, nil).Once()
	suite.mockReservationRepo.On("FindStaySegmentByReservationID", mock.Anything, reservation.ReservationID).Return(stay, nil).Once()
}

// --- CreateStay ---

func (suite *ReservationServiceTestSuite) TestCreateStay_Success() {
	ctx := context.Background()
	req := dto.CreateStayRequest{
		RoomID:    suite.roomID,
		StartDate: "2024-06-01",
		EndDate:   "2024-06-05",
		GuestName: "Alice Cooper",
		Adults:    2,
	}

	suite.mockRoomRepo.On("FindRoomByID", ctx, suite.roomID).Return(suite.activeRoom(), nil).Once()
	suite.mockAvailability.On("AssertAvailable", ctx, suite.roomID, day("2024-06-01"), day("2024-06-05"), (*string)(nil)).Return(nil).Once()
	suite.mockRoomRepo.On("FindPropertyByID", ctx, suite.propertyID).Return(suite.property(), nil).Once()
	suite.mockReservationRepo.On("CreateBooking", ctx,
		mock.AnythingOfType("domain.Reservation"),
		mock.AnythingOfType("domain.StaySegment"),
		mock.AnythingOfType("domain.Folio"),
	).Return(nil).Once()

	reservation, stay, err := suite.service.CreateStay(ctx, suite.propertyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(reservation)
	suite.Require().NotNil(stay)
	suite.NotEmpty(reservation.ReservationID)
	suite.Equal(domain.StatusConfirmed, reservation.Status)
	suite.Equal(domain.SummarizeLines(nil).PaymentStatus, reservation.PaymentStatus)
	suite.Equal("FRONT_DESK", reservation.Source)
	suite.Equal(suite.userID, reservation.CreatedBy)
	suite.WithinDuration(time.Now(), reservation.CreatedAt, time.Second)
	suite.Equal(reservation.ReservationID, stay.ReservationID)
	suite.Equal(suite.roomID, stay.RoomID)
	suite.Equal(day("2024-06-01"), stay.StartDate)
	suite.Equal(day("2024-06-05"), stay.EndDate)

	suite.mockReservationRepo.AssertExpectations(suite.T())
	suite.mockRoomRepo.AssertExpectations(suite.T())
	suite.mockAvailability.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestCreateStay_FolioCreatedWithPropertyCurrency() {
	ctx := context.Background()
	req := dto.CreateStayRequest{
		RoomID:    suite.roomID,
		StartDate: "2024-06-01",
		EndDate:   "2024-06-02",
		GuestName: "Alice Cooper",
		Adults:    1,
	}

	suite.mockRoomRepo.On("FindRoomByID", ctx, suite.roomID).Return(suite.activeRoom(), nil).Once()
	suite.mockAvailability.On("AssertAvailable", ctx, suite.roomID, day("2024-06-01"), day("2024-06-02"), (*string)(nil)).Return(nil).Once()
	suite.mockRoomRepo.On("FindPropertyByID", ctx, suite.propertyID).Return(suite.property(), nil).Once()

	var createdFolio domain.Folio
	suite.mockReservationRepo.On("CreateBooking", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			createdFolio = args.Get(3).(domain.Folio)
		}).Return(nil).Once()

	reservation, _, err := suite.service.CreateStay(ctx, suite.propertyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(reservation.ReservationID, createdFolio.ReservationID)
	suite.Equal("USD", createdFolio.CurrencyCode)
	suite.Equal(domain.FolioOpen, createdFolio.Status)
	suite.NotEmpty(createdFolio.FolioID)
}

func (suite *ReservationServiceTestSuite) TestCreateStay_HoldCreatesDraft() {
	ctx := context.Background()
	req := dto.CreateStayRequest{
		RoomID:    suite.roomID,
		StartDate: "2024-06-01",
		EndDate:   "2024-06-05",
		GuestName: "Bob Harris",
		Adults:    1,
		Hold:      true,
	}

	suite.mockRoomRepo.On("FindRoomByID", ctx, suite.roomID).Return(suite.activeRoom(), nil).Once()
	suite.mockAvailability.On("AssertAvailable", ctx, suite.roomID, day("2024-06-01"), day("2024-06-05"), (*string)(nil)).Return(nil).Once()
	suite.mockRoomRepo.On("FindPropertyByID", ctx, suite.propertyID).Return(suite.property(), nil).Once()
	suite.mockReservationRepo.On("CreateBooking", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	reservation, _, err := suite.service.CreateStay(ctx, suite.propertyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDraft, reservation.Status)
}

func (suite *ReservationServiceTestSuite) TestCreateStay_OverlappingRangeRejected() {
	ctx := context.Background()
	req := dto.CreateStayRequest{
		RoomID:    suite.roomID,
		StartDate: "2024-06-03",
		EndDate:   "2024-06-04",
		GuestName: "Bob Harris",
		Adults:    1,
	}

	suite.mockRoomRepo.On("FindRoomByID", ctx, suite.roomID).Return(suite.activeRoom(), nil).Once()
	suite.mockAvailability.On("AssertAvailable", ctx, suite.roomID, day("2024-06-03"), day("2024-06-04"), (*string)(nil)).Return(apperrors.ErrRoomOccupied).Once()

	reservation, stay, err := suite.service.CreateStay(ctx, suite.propertyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRoomOccupied)
	suite.Nil(reservation)
	suite.Nil(stay)
	suite.mockReservationRepo.AssertNotCalled(suite.T(), "CreateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestCreateStay_BackToBackRangeAllowed() {
	// A stay starting on another stay's checkout day does not conflict.
	ctx := context.Background()
	req := dto.CreateStayRequest{
		RoomID:    suite.roomID,
		StartDate: "2024-06-05",
		EndDate:   "2024-06-07",
		GuestName: "Bob Harris",
		Adults:    1,
	}

	suite.mockRoomRepo.On("FindRoomByID", ctx, suite.roomID).Return(suite.activeRoom(), nil).Once()
	suite.mockAvailability.On("AssertAvailable", ctx, suite.roomID, day("2024-06-05"), day("2024-06-07"), (*string)(nil)).Return(nil).Once()
	suite.mockRoomRepo.On("FindPropertyByID", ctx, suite.propertyID).Return(suite.property(), nil).Once()
	suite.mockReservationRepo.On("CreateBooking", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	reservation, _, err := suite.service.CreateStay(ctx, suite.propertyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusConfirmed, reservation.Status)
}

func (suite *ReservationServiceTestSuite) TestCreateStay_InvalidRange() {
	ctx := context.Background()
	req := dto.CreateStayRequest{
		RoomID:    suite.roomID,
		StartDate: "2024-06-05",
		EndDate:   "2024-06-05",
		GuestName: "Bob Harris",
		Adults:    1,
	}

	_, _, err := suite.service.CreateStay(ctx, suite.propertyID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrInvalidDateRange)
	suite.mockRoomRepo.AssertNotCalled(suite.T(), "FindRoomByID", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestCreateStay_InactiveRoomNotBookable() {
	ctx := context.Background()
	room := suite.activeRoom()
	room.Status = domain.RoomOutOfOrder
	req := dto.CreateStayRequest{
		RoomID:    suite.roomID,
		StartDate: "2024-06-01",
		EndDate:   "2024-06-05",
		GuestName: "Bob Harris",
		Adults:    1,
	}

	suite.mockRoomRepo.On("FindRoomByID", ctx, suite.roomID).Return(room, nil).Once()

	_, _, err := suite.service.CreateStay(ctx, suite.propertyID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReservationServiceTestSuite) TestCreateStay_RoomFromOtherPropertyHidden() {
	ctx := context.Background()
	room := suite.activeRoom()
	room.PropertyID = uuid.NewString()
	req := dto.CreateStayRequest{
		RoomID:    suite.roomID,
		StartDate: "2024-06-01",
		EndDate:   "2024-06-05",
		GuestName: "Bob Harris",
		Adults:    1,
	}

	suite.mockRoomRepo.On("FindRoomByID", ctx, suite.roomID).Return(room, nil).Once()

	_, _, err := suite.service.CreateStay(ctx, suite.propertyID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReservationServiceTestSuite) TestCreateStay_StorageConflictSurfaces() {
	// Concurrent double booking slips past the snapshot check; the
	// repository's range exclusion reports it.
	ctx := context.Background()
	req := dto.CreateStayRequest{
		RoomID:    suite.roomID,
		StartDate: "2024-06-01",
		EndDate:   "2024-06-05",
		GuestName: "Bob Harris",
		Adults:    1,
	}

	suite.mockRoomRepo.On("FindRoomByID", ctx, suite.roomID).Return(suite.activeRoom(), nil).Once()
	suite.mockAvailability.On("AssertAvailable", ctx, suite.roomID, day("2024-06-01"), day("2024-06-05"), (*string)(nil)).Return(nil).Once()
	suite.mockRoomRepo.On("FindPropertyByID", ctx, suite.propertyID).Return(suite.property(), nil).Once()
	suite.mockReservationRepo.On("CreateBooking", ctx, mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrRoomOccupied).Once()

	_, _, err := suite.service.CreateStay(ctx, suite.propertyID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrRoomOccupied)
}

// --- GetReservation / ListReservations ---

func (suite *ReservationServiceTestSuite) TestGetReservation_OtherPropertyHidden() {
	ctx := context.Background()
	reservation, _ := suite.existingReservation(domain.StatusConfirmed)
	reservation.PropertyID = uuid.NewString()

	suite.mockReservationRepo.On("FindReservationByID", ctx, reservation.ReservationID).Return(reservation, nil).Once()

	_, _, err := suite.service.GetReservation(ctx, suite.propertyID, reservation.ReservationID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReservationRepo.AssertNotCalled(suite.T(), "FindStaySegmentByReservationID", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestListReservations_DefaultsLimit() {
	ctx := context.Background()
	expected := []domain.Reservation{{ReservationID: uuid.NewString(), PropertyID: suite.propertyID}}

	suite.mockReservationRepo.On("ListReservationsByProperty", ctx, suite.propertyID, 20, (*string)(nil)).Return(expected, nil, nil).Once()

	reservations, token, err := suite.service.ListReservations(ctx, suite.propertyID, 0, nil)

	suite.Require().NoError(err)
	suite.Equal(expected, reservations)
	suite.Nil(token)
	suite.mockReservationRepo.AssertExpectations(suite.T())
}

// --- ChangeStayDates / MoveRoom ---

func (suite *ReservationServiceTestSuite) TestChangeStayDates_ExcludesSelf() {
	ctx := context.Background()
	reservation, stay := suite.existingReservation(domain.StatusConfirmed)
	suite.expectFindScoped(reservation, stay)

	// Shift within the original range: only possible because the re-check
	// ignores this reservation's own occupancy.
	suite.mockAvailability.On("AssertAvailable", ctx, suite.roomID, day("2024-06-02"), day("2024-06-04"), excludes(reservation.ReservationID)).Return(nil).Once()
	suite.mockReservationRepo.On("UpdateStaySegment", ctx, mock.AnythingOfType("domain.StaySegment"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.ChangeStayDates(ctx, suite.propertyID, reservation.ReservationID, dto.ChangeStayDatesRequest{
		StartDate: "2024-06-02",
		EndDate:   "2024-06-04",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(day("2024-06-02"), updated.StartDate)
	suite.Equal(day("2024-06-04"), updated.EndDate)
	suite.mockAvailability.AssertExpectations(suite.T())
	suite.mockReservationRepo.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestChangeStayDates_TerminalReservationRejected() {
	ctx := context.Background()
	reservation, stay := suite.existingReservation(domain.StatusCheckedOut)
	suite.expectFindScoped(reservation, stay)

	_, err := suite.service.ChangeStayDates(ctx, suite.propertyID, reservation.ReservationID, dto.ChangeStayDatesRequest{
		StartDate: "2024-06-02",
		EndDate:   "2024-06-04",
	}, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockReservationRepo.AssertNotCalled(suite.T(), "UpdateStaySegment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestMoveRoom_Success() {
	ctx := context.Background()
	reservation, stay := suite.existingReservation(domain.StatusConfirmed)
	suite.expectFindScoped(reservation, stay)

	targetRoomID := uuid.NewString()
	targetRoomTypeID := uuid.NewString()
	suite.mockRoomRepo.On("FindRoomByID", ctx, targetRoomID).Return(&domain.Room{
		RoomID:     targetRoomID,
		PropertyID: suite.propertyID,
		RoomTypeID: targetRoomTypeID,
		Number:     "207",
		IsActive:   true,
		Status:     domain.RoomActive,
	}, nil).Once()
	suite.mockAvailability.On("AssertAvailable", ctx, targetRoomID, stay.StartDate, stay.EndDate, excludes(reservation.ReservationID)).Return(nil).Once()
	suite.mockReservationRepo.On("UpdateStaySegment", ctx, mock.AnythingOfType("domain.StaySegment"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.MoveRoom(ctx, suite.propertyID, reservation.ReservationID, dto.MoveRoomRequest{RoomID: targetRoomID}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(targetRoomID, updated.RoomID)
	suite.Equal(targetRoomTypeID, updated.RoomTypeID)
}

func (suite *ReservationServiceTestSuite) TestMoveRoom_TargetOccupied() {
	ctx := context.Background()
	reservation, stay := suite.existingReservation(domain.StatusCheckedIn)
	suite.expectFindScoped(reservation, stay)

	targetRoomID := uuid.NewString()
	suite.mockRoomRepo.On("FindRoomByID", ctx, targetRoomID).Return(&domain.Room{
		RoomID:     targetRoomID,
		PropertyID: suite.propertyID,
		RoomTypeID: uuid.NewString(),
		IsActive:   true,
		Status:     domain.RoomActive,
	}, nil).Once()
	suite.mockAvailability.On("AssertAvailable", ctx, targetRoomID, stay.StartDate, stay.EndDate, excludes(reservation.ReservationID)).Return(apperrors.ErrRoomOccupied).Once()

	_, err := suite.service.MoveRoom(ctx, suite.propertyID, reservation.ReservationID, dto.MoveRoomRequest{RoomID: targetRoomID}, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrRoomOccupied)
	suite.mockReservationRepo.AssertNotCalled(suite.T(), "UpdateStaySegment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- TransitionStatus ---

func (suite *ReservationServiceTestSuite) TestTransitionStatus_CheckIn() {
	ctx := context.Background()
	reservation, stay := suite.existingReservation(domain.StatusConfirmed)
	suite.expectFindScoped(reservation, stay)

	suite.mockAvailability.On("AssertAvailable", ctx, stay.RoomID, stay.StartDate, stay.EndDate, excludes(reservation.ReservationID)).Return(nil).Once()
	suite.mockReservationRepo.On("UpdateReservationStatus", ctx, reservation.ReservationID, domain.StatusCheckedIn, false, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.TransitionStatus(ctx, suite.propertyID, reservation.ReservationID, domain.StatusCheckedIn, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCheckedIn, updated.Status)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
	suite.mockReservationRepo.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestTransitionStatus_CheckOutMarksRoomDirty() {
	ctx := context.Background()
	reservation, stay := suite.existingReservation(domain.StatusCheckedIn)
	suite.expectFindScoped(reservation, stay)

	suite.mockReservationRepo.On("UpdateReservationStatus", ctx, reservation.ReservationID, domain.StatusCheckedOut, true, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.TransitionStatus(ctx, suite.propertyID, reservation.ReservationID, domain.StatusCheckedOut, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCheckedOut, updated.Status)
	// Leaving occupancy needs no availability re-check.
	suite.mockAvailability.AssertNotCalled(suite.T(), "AssertAvailable", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockReservationRepo.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestTransitionStatus_CancelFromConfirmed() {
	ctx := context.Background()
	reservation, stay := suite.existingReservation(domain.StatusConfirmed)
	suite.expectFindScoped(reservation, stay)

	suite.mockReservationRepo.On("UpdateReservationStatus", ctx, reservation.ReservationID, domain.StatusCancelled, false, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.TransitionStatus(ctx, suite.propertyID, reservation.ReservationID, domain.StatusCancelled, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCancelled, updated.Status)
}

func (suite *ReservationServiceTestSuite) TestTransitionStatus_NoUnconfirm() {
	ctx := context.Background()
	reservation, stay := suite.existingReservation(domain.StatusConfirmed)
	suite.expectFindScoped(reservation, stay)

	_, err := suite.service.TransitionStatus(ctx, suite.propertyID, reservation.ReservationID, domain.StatusDraft, suite.userID)

	suite.Require().Error(err)
	suite.True(apperrors.IsInvalidTransition(err))
	suite.mockReservationRepo.AssertNotCalled(suite.T(), "UpdateReservationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestTransitionStatus_TerminalStateLocked() {
	ctx := context.Background()
	reservation, stay := suite.existingReservation(domain.StatusCheckedOut)
	suite.expectFindScoped(reservation, stay)

	_, err := suite.service.TransitionStatus(ctx, suite.propertyID, reservation.ReservationID, domain.StatusCheckedIn, suite.userID)

	suite.Require().Error(err)
	suite.True(apperrors.IsInvalidTransition(err))
}

func (suite *ReservationServiceTestSuite) TestTransitionStatus_IdempotentReentry() {
	ctx := context.Background()
	reservation, stay := suite.existingReservation(domain.StatusCheckedIn)
	suite.expectFindScoped(reservation, stay)

	suite.mockAvailability.On("AssertAvailable", ctx, stay.RoomID, stay.StartDate, stay.EndDate, excludes(reservation.ReservationID)).Return(nil).Once()

	updated, err := suite.service.TransitionStatus(ctx, suite.propertyID, reservation.ReservationID, domain.StatusCheckedIn, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCheckedIn, updated.Status)
	suite.mockReservationRepo.AssertNotCalled(suite.T(), "UpdateReservationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestTransitionStatus_ReentryBlockedRoomFails() {
	ctx := context.Background()
	reservation, stay := suite.existingReservation(domain.StatusConfirmed)
	suite.expectFindScoped(reservation, stay)

	suite.mockAvailability.On("AssertAvailable", ctx, stay.RoomID, stay.StartDate, stay.EndDate, excludes(reservation.ReservationID)).Return(apperrors.ErrRoomBlocked).Once()

	_, err := suite.service.TransitionStatus(ctx, suite.propertyID, reservation.ReservationID, domain.StatusCheckedIn, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrRoomBlocked)
	suite.mockReservationRepo.AssertNotCalled(suite.T(), "UpdateReservationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReservationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}
