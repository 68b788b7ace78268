package services

import (
	"context"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	"github.com/StaySuite/stay_booking_app/internal/dto"
)

// FolioSvcFacade maintains the append-only folio ledger of one reservation.
// Every mutation re-derives the reservation's cached payment status inside
// the same storage transaction as the line insert.
type FolioSvcFacade interface {
	// AddCharge appends a positive CHARGE line.
	AddCharge(ctx context.Context, propertyID, reservationID string, req dto.AddChargeRequest, userID string) (*domain.FolioLine, error)

	// AddPayment appends a PAYMENT line stored as the negation of the
	// tendered amount.
	AddPayment(ctx context.Context, propertyID, reservationID string, req dto.AddPaymentRequest, userID string) (*domain.FolioLine, error)

	// AddRefund appends a positive REFUND line for money returned to the guest.
	AddRefund(ctx context.Context, propertyID, reservationID string, req dto.AddRefundRequest, userID string) (*domain.FolioLine, error)

	// ReverseLine appends a REVERSAL line negating the target. Each
	// original line may be reversed exactly once.
	ReverseLine(ctx context.Context, propertyID, reservationID, lineID, userID string) (*domain.FolioLine, error)

	// PostRoomCharges derives the nightly rate for the stay and posts one
	// CHARGE line of nights x rate. Not idempotent: calling twice posts
	// two charges.
	PostRoomCharges(ctx context.Context, propertyID, reservationID, userID string) (*domain.FolioLine, error)

	// GetFolio retrieves the folio, its lines and the computed summary.
	GetFolio(ctx context.Context, propertyID, reservationID string) (*domain.Folio, []domain.FolioLine, domain.FolioSummary, error)

	// CloseFolio stops the folio accepting new lines.
	CloseFolio(ctx context.Context, propertyID, reservationID, userID string) error

	// ReopenFolio lets a closed folio accept lines again (late charges).
	ReopenFolio(ctx context.Context, propertyID, reservationID, userID string) error
}

// ReportingSvcFacade builds read-only day-bucketed projections over folio lines.
type ReportingSvcFacade interface {
	// GetDailyReport returns zero-filled per-day rows plus grand totals for
	// an inclusive day-key range, on a cash or accrual basis.
	GetDailyReport(ctx context.Context, propertyID string, mode domain.ReportMode, startKey, endKey string) (*domain.DailyReport, error)
}

// AuthSvcFacade authenticates staff users and issues bearer tokens.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a signed JWT with the user's role.
	Login(ctx context.Context, username, password string) (string, *domain.StaffUser, error)
}
