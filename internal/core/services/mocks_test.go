package services_test

import (
	"context"
	"time"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portsrepo "github.com/StaySuite/stay_booking_app/internal/core/ports/repositories"
	portssvc "github.com/StaySuite/stay_booking_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock ReservationRepository ---
type MockReservationRepository struct {
	mock.Mock
}

var _ portsrepo.ReservationRepositoryFacade = (*MockReservationRepository)(nil)

func (m *MockReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindStaySegmentByReservationID(ctx context.Context, reservationID string) (*domain.StaySegment, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaySegment), args.Error(1)
}

func (m *MockReservationRepository) FindOccupyingStays(ctx context.Context, roomID string, start, end time.Time, excludeReservationID *string) ([]domain.StaySegment, error) {
	args := m.Called(ctx, roomID, start, end, excludeReservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StaySegment), args.Error(1)
}

func (m *MockReservationRepository) ListReservationsByProperty(ctx context.Context, propertyID string, limit int, nextToken *string) ([]domain.Reservation, *string, error) {
	args := m.Called(ctx, propertyID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Reservation), returnedNextToken, args.Error(2)
}

func (m *MockReservationRepository) CreateBooking(ctx context.Context, reservation domain.Reservation, stay domain.StaySegment, folio domain.Folio) error {
	args := m.Called(ctx, reservation, stay, folio)
	return args.Error(0)
}

func (m *MockReservationRepository) UpdateReservationStatus(ctx context.Context, reservationID string, status domain.ReservationStatus, markRoomDirty bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, reservationID, status, markRoomDirty, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockReservationRepository) UpdateStaySegment(ctx context.Context, stay domain.StaySegment, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, stay, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock FolioRepository ---
type MockFolioRepository struct {
	mock.Mock
}

var _ portsrepo.FolioRepositoryFacade = (*MockFolioRepository)(nil)

func (m *MockFolioRepository) FindFolioByReservationID(ctx context.Context, reservationID string) (*domain.Folio, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioRepository) FindLinesByFolioID(ctx context.Context, folioID string) ([]domain.FolioLine, error) {
	args := m.Called(ctx, folioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FolioLine), args.Error(1)
}

func (m *MockFolioRepository) AppendLine(ctx context.Context, line domain.FolioLine) (*domain.FolioSummary, error) {
	args := m.Called(ctx, line)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioSummary), args.Error(1)
}

func (m *MockFolioRepository) AppendReversal(ctx context.Context, reversal domain.FolioLine, originalLineID string) (*domain.FolioSummary, error) {
	args := m.Called(ctx, reversal, originalLineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioSummary), args.Error(1)
}

func (m *MockFolioRepository) UpdateFolioStatus(ctx context.Context, folioID string, status domain.FolioStatus, updatedBy string) error {
	args := m.Called(ctx, folioID, status, updatedBy)
	return args.Error(0)
}

// --- Mock RoomRepository ---
type MockRoomRepository struct {
	mock.Mock
}

var _ portsrepo.RoomRepositoryFacade = (*MockRoomRepository)(nil)

func (m *MockRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) FindRoomTypeByID(ctx context.Context, roomTypeID string) (*domain.RoomType, error) {
	args := m.Called(ctx, roomTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockRoomRepository) ListRoomsByProperty(ctx context.Context, propertyID string) ([]domain.Room, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockRoomRepository) FindRatePlanRate(ctx context.Context, ratePlanID, roomTypeID string) (*domain.RatePlanRate, error) {
	args := m.Called(ctx, ratePlanID, roomTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatePlanRate), args.Error(1)
}

func (m *MockRoomRepository) UpdateHousekeepingStatus(ctx context.Context, roomID string, status domain.HousekeepingStatus, updatedBy string) error {
	args := m.Called(ctx, roomID, status, updatedBy)
	return args.Error(0)
}

// --- Mock BlockRepository ---
type MockBlockRepository struct {
	mock.Mock
}

var _ portsrepo.BlockRepositoryFacade = (*MockBlockRepository)(nil)

func (m *MockBlockRepository) FindBlocksOverlapping(ctx context.Context, roomID string, start, end time.Time) ([]domain.Block, error) {
	args := m.Called(ctx, roomID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Block), args.Error(1)
}

func (m *MockBlockRepository) ListBlocksByRoom(ctx context.Context, roomID string) ([]domain.Block, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Block), args.Error(1)
}

func (m *MockBlockRepository) FindBlockByID(ctx context.Context, blockID string) (*domain.Block, error) {
	args := m.Called(ctx, blockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Block), args.Error(1)
}

func (m *MockBlockRepository) SaveBlock(ctx context.Context, block domain.Block) error {
	args := m.Called(ctx, block)
	return args.Error(0)
}

func (m *MockBlockRepository) DeleteBlock(ctx context.Context, blockID string) error {
	args := m.Called(ctx, blockID)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetCashActivity(ctx context.Context, propertyID, startKey, endKey string) ([]portsrepo.CashDayAggregate, error) {
	args := m.Called(ctx, propertyID, startKey, endKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.CashDayAggregate), args.Error(1)
}

func (m *MockReportingRepository) GetAccrualActivity(ctx context.Context, propertyID, startKey, endKey string) ([]portsrepo.AccrualDayAggregate, error) {
	args := m.Called(ctx, propertyID, startKey, endKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.AccrualDayAggregate), args.Error(1)
}

// --- Mock StaffUserRepository ---
type MockStaffUserRepository struct {
	mock.Mock
}

var _ portsrepo.StaffUserRepositoryFacade = (*MockStaffUserRepository)(nil)

func (m *MockStaffUserRepository) FindStaffUserByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}

func (m *MockStaffUserRepository) FindStaffUserByID(ctx context.Context, staffUserID string) (*domain.StaffUser, error) {
	args := m.Called(ctx, staffUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffUser), args.Error(1)
}

// --- Mock AvailabilityChecker ---
type MockAvailabilityChecker struct {
	mock.Mock
}

var _ portssvc.AvailabilityChecker = (*MockAvailabilityChecker)(nil)

func (m *MockAvailabilityChecker) IsRoomAvailable(ctx context.Context, propertyID, roomID, startKey, endKey string, excludeReservationID *string) (bool, error) {
	args := m.Called(ctx, propertyID, roomID, startKey, endKey, excludeReservationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAvailabilityChecker) AssertAvailable(ctx context.Context, roomID string, start, end time.Time, excludeReservationID *string) error {
	args := m.Called(ctx, roomID, start, end, excludeReservationID)
	return args.Error(0)
}
