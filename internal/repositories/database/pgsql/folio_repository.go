package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/StaySuite/stay_booking_app/internal/apperrors"
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portsrepo "github.com/StaySuite/stay_booking_app/internal/core/ports/repositories"
	"github.com/StaySuite/stay_booking_app/internal/models"
	"github.com/StaySuite/stay_booking_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFolioRepository struct {
	BaseRepository
}

// newPgxFolioRepository creates a new repository for folio and ledger line data.
func newPgxFolioRepository(pool *pgxpool.Pool) portsrepo.FolioRepositoryFacade {
	return &PgxFolioRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxFolioRepository implements portsrepo.FolioRepositoryFacade
var _ portsrepo.FolioRepositoryFacade = (*PgxFolioRepository)(nil)

const folioLineSelectColumns = `
	line_id, folio_id, line_type, amount_cents, currency_code, description,
	category, payment_method, posted_at, reversal_of_line_id,
	created_at, created_by, last_updated_at, last_updated_by
`

// FindFolioByReservationID retrieves the folio owned by a reservation.
func (r *PgxFolioRepository) FindFolioByReservationID(ctx context.Context, reservationID string) (*domain.Folio, error) {
	query := `
		SELECT folio_id, reservation_id, currency_code, status,
			created_at, created_by, last_updated_at, last_updated_by
		FROM folios
		WHERE reservation_id = $1;
	`

	var m models.Folio
	err := r.Pool.QueryRow(ctx, query, reservationID).Scan(
		&m.FolioID,
		&m.ReservationID,
		&m.CurrencyCode,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find folio for reservation "+reservationID, err)
	}

	domainFolio := mapping.ToDomainFolio(m)
	return &domainFolio, nil
}

// FindLinesByFolioID retrieves all lines of a folio in posting order.
func (r *PgxFolioRepository) FindLinesByFolioID(ctx context.Context, folioID string) ([]domain.FolioLine, error) {
	query := `
		SELECT ` + folioLineSelectColumns + `
		FROM folio_lines
		WHERE folio_id = $1
		ORDER BY posted_at, line_id;
	`
	rows, err := r.Pool.Query(ctx, query, folioID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for folio "+folioID, err)
	}
	defer rows.Close()

	lines, err := scanFolioLines(rows, folioID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainFolioLineSlice(lines), nil
}

// AppendLine inserts a line into an open folio and re-derives the owning
// reservation's cached payment status, all within one transaction.
func (r *PgxFolioRepository) AppendLine(ctx context.Context, line domain.FolioLine) (*domain.FolioSummary, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	reservationID, err := r.lockOpenFolio(ctx, tx, line.FolioID)
	if err != nil {
		return nil, err
	}

	if err := insertFolioLine(ctx, tx, line); err != nil {
		return nil, err
	}

	summary, err := r.refreshPaymentStatus(ctx, tx, line.FolioID, reservationID, line.CreatedBy, line.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return summary, nil
}

// AppendReversal inserts a REVERSAL line targeting originalLineID. The
// partial unique index on reversal_of_line_id makes a second reversal of the
// same original fail even under concurrent appends.
func (r *PgxFolioRepository) AppendReversal(ctx context.Context, reversal domain.FolioLine, originalLineID string) (*domain.FolioSummary, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	reservationID, err := r.lockOpenFolio(ctx, tx, reversal.FolioID)
	if err != nil {
		return nil, err
	}

	// The original must live in the same folio.
	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM folio_lines WHERE line_id = $1 AND folio_id = $2);`,
		originalLineID, reversal.FolioID,
	).Scan(&exists)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to check original line "+originalLineID, err)
	}
	if !exists {
		return nil, apperrors.ErrLineNotFound
	}

	if err := insertFolioLine(ctx, tx, reversal); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, apperrors.ErrAlreadyReversed
		}
		return nil, err
	}

	summary, err := r.refreshPaymentStatus(ctx, tx, reversal.FolioID, reservationID, reversal.CreatedBy, reversal.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return summary, nil
}

// UpdateFolioStatus flips the folio between OPEN and CLOSED.
func (r *PgxFolioRepository) UpdateFolioStatus(ctx context.Context, folioID string, status domain.FolioStatus, updatedBy string) error {
	query := `
		UPDATE folios
		SET status = $2, last_updated_at = now(), last_updated_by = $3
		WHERE folio_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, folioID, string(status), updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for folio "+folioID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// lockOpenFolio locks the folio row for the transaction and returns the
// owning reservation ID. A CLOSED folio rejects the append.
func (r *PgxFolioRepository) lockOpenFolio(ctx context.Context, tx pgx.Tx, folioID string) (string, error) {
	var reservationID string
	var status string
	err := tx.QueryRow(ctx,
		`SELECT reservation_id, status FROM folios WHERE folio_id = $1 FOR UPDATE;`,
		folioID,
	).Scan(&reservationID, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to lock folio "+folioID, err)
	}
	if models.FolioStatus(status) != models.FolioOpen {
		return "", apperrors.ErrFolioClosed
	}
	return reservationID, nil
}

func insertFolioLine(ctx context.Context, tx pgx.Tx, line domain.FolioLine) error {
	m := mapping.ToModelFolioLine(line)
	query := `
		INSERT INTO folio_lines (
			line_id, folio_id, line_type, amount_cents, currency_code, description,
			category, payment_method, posted_at, reversal_of_line_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.LineID,
		m.FolioID,
		m.Type,
		m.AmountCents,
		m.CurrencyCode,
		m.Description,
		m.Category,
		m.PaymentMethod,
		m.PostedAt,
		m.ReversalOfLineID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return err // caller maps reversal uniqueness
		}
		return apperrors.NewAppError(500, "failed to insert folio line "+m.LineID, err)
	}
	return nil
}

// refreshPaymentStatus folds all lines of the folio and writes the derived
// payment status back onto the reservation, inside the caller's transaction.
func (r *PgxFolioRepository) refreshPaymentStatus(ctx context.Context, tx pgx.Tx, folioID, reservationID, updatedBy string, updatedAt time.Time) (*domain.FolioSummary, error) {
	query := `
		SELECT ` + folioLineSelectColumns + `
		FROM folio_lines
		WHERE folio_id = $1
		ORDER BY posted_at, line_id;
	`
	rows, err := tx.Query(ctx, query, folioID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to re-read lines for folio "+folioID, err)
	}
	defer rows.Close()

	modelLines, err := scanFolioLines(rows, folioID)
	if err != nil {
		return nil, err
	}

	summary := domain.SummarizeLines(mapping.ToDomainFolioLineSlice(modelLines))

	updateQuery := `
		UPDATE reservations
		SET payment_status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE reservation_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, reservationID, string(summary.PaymentStatus), updatedAt, updatedBy); err != nil {
		return nil, apperrors.NewAppError(500, "failed to refresh payment status for reservation "+reservationID, err)
	}

	return &summary, nil
}

func scanFolioLines(rows pgx.Rows, folioID string) ([]models.FolioLine, error) {
	lines := []models.FolioLine{}
	for rows.Next() {
		var m models.FolioLine
		if err := rows.Scan(
			&m.LineID,
			&m.FolioID,
			&m.Type,
			&m.AmountCents,
			&m.CurrencyCode,
			&m.Description,
			&m.Category,
			&m.PaymentMethod,
			&m.PostedAt,
			&m.ReversalOfLineID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan folio line row for folio "+folioID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating folio line rows for folio "+folioID, err)
	}
	return lines, nil
}
