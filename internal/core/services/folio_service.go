package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/StaySuite/stay_booking_app/internal/apperrors"
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portsrepo "github.com/StaySuite/stay_booking_app/internal/core/ports/repositories"
	portssvc "github.com/StaySuite/stay_booking_app/internal/core/ports/services"
	"github.com/StaySuite/stay_booking_app/internal/dto"
	"github.com/StaySuite/stay_booking_app/internal/utils"
	"github.com/StaySuite/stay_booking_app/internal/utils/dates"
)

// folioService maintains the append-only ledger of one reservation.
// Lines are immutable; correction is always by reversal. The repository
// recomputes and persists the reservation's cached payment status inside
// the same transaction as every insert.
type folioService struct {
	BaseService
	folioRepo       portsrepo.FolioRepositoryFacade
	reservationRepo portsrepo.ReservationReader
	roomRepo        portsrepo.RoomReader
}

// NewFolioService creates a new FolioService.
func NewFolioService(folioRepo portsrepo.FolioRepositoryFacade, reservationRepo portsrepo.ReservationReader, roomRepo portsrepo.RoomReader) portssvc.FolioSvcFacade {
	return &folioService{
		folioRepo:       folioRepo,
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
	}
}

var _ portssvc.FolioSvcFacade = (*folioService)(nil)

// AddCharge appends a positive CHARGE line.
func (s *folioService) AddCharge(ctx context.Context, propertyID, reservationID string, req dto.AddChargeRequest, userID string) (*domain.FolioLine, error) {
	category := domain.ChargeCategory(req.Category)
	if category == "" {
		category = domain.CategoryUncategorized
	}
	return s.appendLine(ctx, propertyID, reservationID, domain.LineCharge, req.AmountCents, req.Description, category, "", userID)
}

// AddPayment records a payment captured elsewhere. The tendered amount is
// positive at the boundary; the ledger stores its negation.
func (s *folioService) AddPayment(ctx context.Context, propertyID, reservationID string, req dto.AddPaymentRequest, userID string) (*domain.FolioLine, error) {
	return s.appendLine(ctx, propertyID, reservationID, domain.LinePayment, req.AmountCents, req.Description, "", req.PaymentMethod, userID)
}

// AddRefund records money returned to the guest, stored positive.
func (s *folioService) AddRefund(ctx context.Context, propertyID, reservationID string, req dto.AddRefundRequest, userID string) (*domain.FolioLine, error) {
	return s.appendLine(ctx, propertyID, reservationID, domain.LineRefund, req.AmountCents, req.Description, "", req.PaymentMethod, userID)
}

// appendLine validates the amount, signs it per line type and hands the
// insert to the repository, which syncs the cached payment status in the
// same transaction.
func (s *folioService) appendLine(ctx context.Context, propertyID, reservationID string, lineType domain.LineType, amountCents int64, description string, category domain.ChargeCategory, paymentMethod, userID string) (*domain.FolioLine, error) {
	if amountCents <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	folio, err := s.findScopedFolio(ctx, propertyID, reservationID)
	if err != nil {
		return nil, err
	}
	if folio.Status != domain.FolioOpen {
		return nil, apperrors.ErrFolioClosed
	}

	stored := amountCents
	if lineType == domain.LinePayment {
		stored = -amountCents
	}

	now := time.Now().UTC()
	line := domain.FolioLine{
		LineID:        uuid.NewString(),
		FolioID:       folio.FolioID,
		Type:          lineType,
		AmountCents:   stored,
		CurrencyCode:  folio.CurrencyCode,
		Description:   description,
		Category:      category,
		PaymentMethod: paymentMethod,
		PostedAt:      now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	summary, err := s.folioRepo.AppendLine(ctx, line)
	if err != nil {
		s.LogError(ctx, err, "Failed to append folio line", "folio_id", folio.FolioID, "type", string(lineType))
		return nil, err
	}

	s.LogInfo(ctx, "Folio line appended",
		"folio_id", folio.FolioID,
		"line_id", line.LineID,
		"type", string(lineType),
		"amount_cents", stored,
		"payment_status", string(summary.PaymentStatus))
	return &line, nil
}

// ReverseLine appends a REVERSAL line carrying the exact negation of the
// target. Each line may be reversed at most once; the second attempt fails
// with ErrAlreadyReversed. The original is never mutated.
func (s *folioService) ReverseLine(ctx context.Context, propertyID, reservationID, lineID, userID string) (*domain.FolioLine, error) {
	folio, err := s.findScopedFolio(ctx, propertyID, reservationID)
	if err != nil {
		return nil, err
	}
	if folio.Status != domain.FolioOpen {
		return nil, apperrors.ErrFolioClosed
	}

	lines, err := s.folioRepo.FindLinesByFolioID(ctx, folio.FolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to load folio lines: %w", err)
	}

	var original *domain.FolioLine
	for i := range lines {
		if lines[i].LineID == lineID {
			original = &lines[i]
		}
		if lines[i].ReversalOfLineID != nil && *lines[i].ReversalOfLineID == lineID {
			return nil, apperrors.ErrAlreadyReversed
		}
	}
	if original == nil {
		return nil, apperrors.ErrLineNotFound
	}

	now := time.Now().UTC()
	targetID := original.LineID
	reversal := domain.FolioLine{
		LineID:           uuid.NewString(),
		FolioID:          folio.FolioID,
		Type:             domain.LineReversal,
		AmountCents:      -original.AmountCents,
		CurrencyCode:     original.CurrencyCode,
		Description:      fmt.Sprintf("Reversal of: %s", original.Description),
		Category:         original.Category,
		PostedAt:         now,
		ReversalOfLineID: &targetID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// The repository re-checks for an existing reversal inside its
	// transaction; the partial unique index on reversal_of_line_id turns a
	// concurrent double reversal into ErrAlreadyReversed.
	summary, err := s.folioRepo.AppendReversal(ctx, reversal, targetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrAlreadyReversed) {
			s.LogError(ctx, err, "Failed to append reversal", "folio_id", folio.FolioID, "line_id", lineID)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Folio line reversed",
		"folio_id", folio.FolioID,
		"original_line_id", lineID,
		"reversal_line_id", reversal.LineID,
		"payment_status", string(summary.PaymentStatus))
	return &reversal, nil
}

// PostRoomCharges derives the nightly rate for the stay and posts one ROOM
// charge of nights x rate. Rate resolution order: the property's default
// rate plan's rate for the room type, then the room type's legacy flat base
// rate. Calling twice posts two charges; deduplication is the caller's
// concern.
func (s *folioService) PostRoomCharges(ctx context.Context, propertyID, reservationID, userID string) (*domain.FolioLine, error) {
	reservation, err := s.reservationRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find reservation %s: %w", reservationID, err)
	}
	if reservation.PropertyID != propertyID {
		return nil, apperrors.ErrNotFound
	}

	stay, err := s.reservationRepo.FindStaySegmentByReservationID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find stay segment for reservation %s: %w", reservationID, err)
	}

	roomType, err := s.roomRepo.FindRoomTypeByID(ctx, stay.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find room type %s: %w", stay.RoomTypeID, err)
	}

	nightlyRateCents, err := s.resolveNightlyRate(ctx, propertyID, roomType)
	if err != nil {
		return nil, err
	}

	nights := dates.NightsBetween(stay.StartDate, stay.EndDate)
	if nights < 1 {
		nights = 1
	}

	total := int64(nights) * nightlyRateCents
	description := fmt.Sprintf("Room charge: %s, %d night(s) @ %s/night",
		roomType.Name, nights, utils.FormatCents(nightlyRateCents))

	line, err := s.appendLine(ctx, propertyID, reservationID, domain.LineCharge, total, description, domain.CategoryRoom, "", userID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Room charges posted",
		"reservation_id", reservationID,
		"nights", nights,
		"nightly_rate_cents", nightlyRateCents,
		"total_cents", total)
	return line, nil
}

// resolveNightlyRate looks up the property's default rate plan rate for the
// room type, falling back to the type's flat base rate. Zero or negative
// configured rates are treated as absent.
func (s *folioService) resolveNightlyRate(ctx context.Context, propertyID string, roomType *domain.RoomType) (int64, error) {
	property, err := s.roomRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		return 0, fmt.Errorf("failed to find property %s: %w", propertyID, err)
	}

	if property.DefaultRatePlanID != nil {
		rate, err := s.roomRepo.FindRatePlanRate(ctx, *property.DefaultRatePlanID, roomType.RoomTypeID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("failed to look up rate plan rate: %w", err)
		}
		if err == nil && rate.NightlyRateCents > 0 {
			return rate.NightlyRateCents, nil
		}
	}

	if roomType.BaseRateCents > 0 {
		return roomType.BaseRateCents, nil
	}

	return 0, apperrors.ErrNoRateConfigured
}

// GetFolio retrieves the folio, its lines in posting order and the summary
// computed by folding all lines.
func (s *folioService) GetFolio(ctx context.Context, propertyID, reservationID string) (*domain.Folio, []domain.FolioLine, domain.FolioSummary, error) {
	folio, err := s.findScopedFolio(ctx, propertyID, reservationID)
	if err != nil {
		return nil, nil, domain.FolioSummary{}, err
	}
	lines, err := s.folioRepo.FindLinesByFolioID(ctx, folio.FolioID)
	if err != nil {
		return nil, nil, domain.FolioSummary{}, fmt.Errorf("failed to load folio lines: %w", err)
	}
	return folio, lines, domain.SummarizeLines(lines), nil
}

// CloseFolio stops the folio accepting new lines.
func (s *folioService) CloseFolio(ctx context.Context, propertyID, reservationID, userID string) error {
	return s.setFolioStatus(ctx, propertyID, reservationID, domain.FolioClosed, userID)
}

// ReopenFolio lets a closed folio accept lines again (late charges).
func (s *folioService) ReopenFolio(ctx context.Context, propertyID, reservationID, userID string) error {
	return s.setFolioStatus(ctx, propertyID, reservationID, domain.FolioOpen, userID)
}

func (s *folioService) setFolioStatus(ctx context.Context, propertyID, reservationID string, status domain.FolioStatus, userID string) error {
	folio, err := s.findScopedFolio(ctx, propertyID, reservationID)
	if err != nil {
		return err
	}
	if folio.Status == status {
		return nil
	}
	if err := s.folioRepo.UpdateFolioStatus(ctx, folio.FolioID, status, userID); err != nil {
		s.LogError(ctx, err, "Failed to update folio status", "folio_id", folio.FolioID, "status", string(status))
		return err
	}
	s.LogInfo(ctx, "Folio status updated", "folio_id", folio.FolioID, "status", string(status))
	return nil
}

// findScopedFolio fetches a reservation's folio, hiding reservations of
// other properties.
func (s *folioService) findScopedFolio(ctx context.Context, propertyID, reservationID string) (*domain.Folio, error) {
	reservation, err := s.reservationRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find reservation %s: %w", reservationID, err)
	}
	if reservation.PropertyID != propertyID {
		return nil, apperrors.ErrNotFound
	}
	folio, err := s.folioRepo.FindFolioByReservationID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find folio for reservation %s: %w", reservationID, err)
	}
	return folio, nil
}
