package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/StaySuite/stay_booking_app/internal/apperrors"
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portssvc "github.com/StaySuite/stay_booking_app/internal/core/ports/services"
	"github.com/StaySuite/stay_booking_app/internal/dto"
	"github.com/StaySuite/stay_booking_app/internal/handlers"
	"github.com/StaySuite/stay_booking_app/internal/middleware"
	"github.com/StaySuite/stay_booking_app/internal/platform/config"
)

// --- Mock FolioService ---
type MockFolioService struct {
	mock.Mock
}

func (m *MockFolioService) AddCharge(ctx context.Context, propertyID, reservationID string, req dto.AddChargeRequest, userID string) (*domain.FolioLine, error) {
	args := m.Called(ctx, propertyID, reservationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioLine), args.Error(1)
}
func (m *MockFolioService) AddPayment(ctx context.Context, propertyID, reservationID string, req dto.AddPaymentRequest, userID string) (*domain.FolioLine, error) {
	args := m.Called(ctx, propertyID, reservationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioLine), args.Error(1)
}
func (m *MockFolioService) AddRefund(ctx context.Context, propertyID, reservationID string, req dto.AddRefundRequest, userID string) (*domain.FolioLine, error) {
	args := m.Called(ctx, propertyID, reservationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioLine), args.Error(1)
}
func (m *MockFolioService) ReverseLine(ctx context.Context, propertyID, reservationID, lineID, userID string) (*domain.FolioLine, error) {
	args := m.Called(ctx, propertyID, reservationID, lineID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioLine), args.Error(1)
}
func (m *MockFolioService) PostRoomCharges(ctx context.Context, propertyID, reservationID, userID string) (*domain.FolioLine, error) {
	args := m.Called(ctx, propertyID, reservationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioLine), args.Error(1)
}
func (m *MockFolioService) GetFolio(ctx context.Context, propertyID, reservationID string) (*domain.Folio, []domain.FolioLine, domain.FolioSummary, error) {
	args := m.Called(ctx, propertyID, reservationID)
	if args.Get(0) == nil {
		return nil, nil, domain.FolioSummary{}, args.Error(3)
	}
	return args.Get(0).(*domain.Folio), args.Get(1).([]domain.FolioLine), args.Get(2).(domain.FolioSummary), args.Error(3)
}
func (m *MockFolioService) CloseFolio(ctx context.Context, propertyID, reservationID, userID string) error {
	args := m.Called(ctx, propertyID, reservationID, userID)
	return args.Error(0)
}
func (m *MockFolioService) ReopenFolio(ctx context.Context, propertyID, reservationID, userID string) error {
	args := m.Called(ctx, propertyID, reservationID, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.FolioSvcFacade = (*MockFolioService)(nil)

// --- Test Suite ---
type FolioHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockFolioService *MockFolioService
	jwtSecret        string

	propertyID    string
	reservationID string
}

// generateTestToken creates a signed JWT carrying the user ID and role.
func (suite *FolioHandlerTestSuite) generateTestToken(userID string, role domain.StaffRole) string {
	claims := middleware.AuthClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "stay-suite-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *FolioHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockFolioService = new(MockFolioService)
	suite.propertyID = uuid.NewString()
	suite.reservationID = uuid.NewString()

	cfg := &config.Config{JWTSecret: suite.jwtSecret}
	container := &portssvc.ServiceContainer{Folio: suite.mockFolioService}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *FolioHandlerTestSuite) folioURL(suffix string) string {
	return fmt.Sprintf("/api/v1/properties/%s/reservations/%s/folio%s", suite.propertyID, suite.reservationID, suffix)
}

func (suite *FolioHandlerTestSuite) doJSON(method, url string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *FolioHandlerTestSuite) TestAddCharge_Success() {
	userID := uuid.NewString()
	expectedLine := &domain.FolioLine{
		LineID:       uuid.NewString(),
		FolioID:      uuid.NewString(),
		Type:         domain.LineCharge,
		AmountCents:  2500,
		CurrencyCode: "USD",
		Description:  "Minibar",
		Category:     domain.CategoryFee,
		PostedAt:     time.Now().UTC(),
	}

	suite.mockFolioService.On("AddCharge",
		mock.Anything,
		suite.propertyID,
		suite.reservationID,
		mock.MatchedBy(func(req dto.AddChargeRequest) bool {
			return req.AmountCents == 2500 && req.Category == "FEE"
		}),
		userID,
	).Return(expectedLine, nil).Once()

	token := suite.generateTestToken(userID, domain.RoleFrontDesk)
	w := suite.doJSON(http.MethodPost, suite.folioURL("/charges"), dto.AddChargeRequest{
		AmountCents: 2500,
		Description: "Minibar",
		Category:    "FEE",
	}, token)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.FolioLineResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(expectedLine.LineID, body.LineID)
	suite.Equal(int64(2500), body.AmountCents)
	suite.Equal("25.00", body.Amount)
	suite.Equal("CHARGE", body.Type)

	suite.mockFolioService.AssertExpectations(suite.T())
}

func (suite *FolioHandlerTestSuite) TestAddCharge_ClosedFolioConflicts() {
	userID := uuid.NewString()
	suite.mockFolioService.On("AddCharge", mock.Anything, suite.propertyID, suite.reservationID, mock.Anything, userID).
		Return(nil, apperrors.ErrFolioClosed).Once()

	token := suite.generateTestToken(userID, domain.RoleFrontDesk)
	w := suite.doJSON(http.MethodPost, suite.folioURL("/charges"), dto.AddChargeRequest{AmountCents: 100}, token)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *FolioHandlerTestSuite) TestAddCharge_MissingToken() {
	w := suite.doJSON(http.MethodPost, suite.folioURL("/charges"), dto.AddChargeRequest{AmountCents: 100}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockFolioService.AssertNotCalled(suite.T(), "AddCharge", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FolioHandlerTestSuite) TestReverseLine_FrontDeskForbidden() {
	lineID := uuid.NewString()
	token := suite.generateTestToken(uuid.NewString(), domain.RoleFrontDesk)

	w := suite.doJSON(http.MethodPost, suite.folioURL("/lines/"+lineID+"/reverse"), nil, token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockFolioService.AssertNotCalled(suite.T(), "ReverseLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FolioHandlerTestSuite) TestReverseLine_ManagerAllowed() {
	userID := uuid.NewString()
	originalID := uuid.NewString()
	reversal := &domain.FolioLine{
		LineID:           uuid.NewString(),
		Type:             domain.LineReversal,
		AmountCents:      -2500,
		CurrencyCode:     "USD",
		ReversalOfLineID: &originalID,
		PostedAt:         time.Now().UTC(),
	}

	suite.mockFolioService.On("ReverseLine", mock.Anything, suite.propertyID, suite.reservationID, originalID, userID).
		Return(reversal, nil).Once()

	token := suite.generateTestToken(userID, domain.RoleManager)
	w := suite.doJSON(http.MethodPost, suite.folioURL("/lines/"+originalID+"/reverse"), nil, token)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.FolioLineResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("REVERSAL", body.Type)
	suite.Equal(int64(-2500), body.AmountCents)
	suite.Require().NotNil(body.ReversalOfLineID)
	suite.Equal(originalID, *body.ReversalOfLineID)

	suite.mockFolioService.AssertExpectations(suite.T())
}

func (suite *FolioHandlerTestSuite) TestReverseLine_AlreadyReversedConflicts() {
	userID := uuid.NewString()
	lineID := uuid.NewString()

	suite.mockFolioService.On("ReverseLine", mock.Anything, suite.propertyID, suite.reservationID, lineID, userID).
		Return(nil, apperrors.ErrAlreadyReversed).Once()

	token := suite.generateTestToken(userID, domain.RoleManager)
	w := suite.doJSON(http.MethodPost, suite.folioURL("/lines/"+lineID+"/reverse"), nil, token)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *FolioHandlerTestSuite) TestGetFolio_Success() {
	folio := &domain.Folio{
		FolioID:       uuid.NewString(),
		ReservationID: suite.reservationID,
		CurrencyCode:  "USD",
		Status:        domain.FolioOpen,
	}
	lines := []domain.FolioLine{
		{LineID: uuid.NewString(), Type: domain.LineCharge, AmountCents: 10000, PostedAt: time.Now().UTC()},
		{LineID: uuid.NewString(), Type: domain.LinePayment, AmountCents: -4000, PostedAt: time.Now().UTC()},
	}
	summary := domain.SummarizeLines(lines)

	suite.mockFolioService.On("GetFolio", mock.Anything, suite.propertyID, suite.reservationID).
		Return(folio, lines, summary, nil).Once()

	token := suite.generateTestToken(uuid.NewString(), domain.RoleFrontDesk)
	w := suite.doJSON(http.MethodGet, suite.folioURL(""), nil, token)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.FolioResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(folio.FolioID, body.FolioID)
	suite.Len(body.Lines, 2)
	suite.Equal(int64(10000), body.Summary.SubtotalCents)
	suite.Equal(int64(4000), body.Summary.PaidCents)
	suite.Equal(int64(6000), body.Summary.BalanceCents)
	suite.Equal("PARTIALLY_PAID", body.Summary.PaymentStatus)
}

func (suite *FolioHandlerTestSuite) TestGetFolio_UnknownReservation() {
	suite.mockFolioService.On("GetFolio", mock.Anything, suite.propertyID, suite.reservationID).
		Return(nil, nil, domain.FolioSummary{}, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(uuid.NewString(), domain.RoleFrontDesk)
	w := suite.doJSON(http.MethodGet, suite.folioURL(""), nil, token)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestFolioHandler(t *testing.T) {
	suite.Run(t, new(FolioHandlerTestSuite))
}
