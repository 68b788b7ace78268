package repositories

import (
	"context"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
)

// FolioReader defines read operations for folios and their lines.
type FolioReader interface {
	// FindFolioByReservationID retrieves the folio owned by a reservation.
	FindFolioByReservationID(ctx context.Context, reservationID string) (*domain.Folio, error)

	// FindLinesByFolioID retrieves all lines of a folio in posting order.
	FindLinesByFolioID(ctx context.Context, folioID string) ([]domain.FolioLine, error)
}

// FolioWriter defines write operations for the append-only ledger.
type FolioWriter interface {
	// AppendLine inserts a line and re-derives the owning reservation's
	// cached payment status from all lines, in one transaction. The folio
	// row is locked for the duration; a closed folio surfaces as
	// apperrors.ErrFolioClosed. Returns the recomputed summary.
	AppendLine(ctx context.Context, line domain.FolioLine) (*domain.FolioSummary, error)

	// AppendReversal inserts a REVERSAL line targeting originalLineID,
	// rejecting a second reversal of the same original with
	// apperrors.ErrAlreadyReversed, and re-derives the cached payment
	// status, all in one transaction.
	AppendReversal(ctx context.Context, reversal domain.FolioLine, originalLineID string) (*domain.FolioSummary, error)

	// UpdateFolioStatus flips the folio between OPEN and CLOSED.
	UpdateFolioStatus(ctx context.Context, folioID string, status domain.FolioStatus, updatedBy string) error
}

// FolioRepositoryFacade combines folio repository interfaces.
type FolioRepositoryFacade interface {
	FolioReader
	FolioWriter
}
