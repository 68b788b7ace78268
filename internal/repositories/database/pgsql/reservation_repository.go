package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/StaySuite/stay_booking_app/internal/apperrors"
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portsrepo "github.com/StaySuite/stay_booking_app/internal/core/ports/repositories"
	"github.com/StaySuite/stay_booking_app/internal/models"
	"github.com/StaySuite/stay_booking_app/internal/utils/mapping"
	"github.com/StaySuite/stay_booking_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReservationRepository struct {
	BaseRepository
}

// newPgxReservationRepository creates a new repository for reservation and stay segment data.
func newPgxReservationRepository(pool *pgxpool.Pool) portsrepo.ReservationRepositoryFacade {
	return &PgxReservationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReservationRepository implements portsrepo.ReservationRepositoryFacade
var _ portsrepo.ReservationRepositoryFacade = (*PgxReservationRepository)(nil)

const reservationSelectColumns = `
	r.reservation_id, r.property_id, r.status, r.payment_status,
	r.guest_name, r.guest_email, r.source, r.channel, r.notes,
	r.created_at, r.created_by, r.last_updated_at, r.last_updated_by
`

// isOverlapViolation reports whether err is the stay_segments exclusion
// constraint firing, i.e. another active stay already holds the room range.
func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" // exclusion_violation
	}
	return false
}

// CreateBooking persists the reservation, its stay segment and its folio in one DB transaction.
func (r *PgxReservationRepository) CreateBooking(ctx context.Context, reservation domain.Reservation, stay domain.StaySegment, folio domain.Folio) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	modelReservation := mapping.ToModelReservation(reservation)
	reservationQuery := `
		INSERT INTO reservations (
			reservation_id, property_id, status, payment_status,
			guest_name, guest_email, source, channel, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, reservationQuery,
		modelReservation.ReservationID,
		modelReservation.PropertyID,
		modelReservation.Status,
		modelReservation.PaymentStatus,
		modelReservation.GuestName,
		modelReservation.GuestEmail,
		modelReservation.Source,
		modelReservation.Channel,
		modelReservation.Notes,
		modelReservation.CreatedAt,
		modelReservation.CreatedBy,
		modelReservation.LastUpdatedAt,
		modelReservation.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert reservation "+modelReservation.ReservationID, err)
	}

	modelStay := mapping.ToModelStaySegment(stay, reservation.Status)
	stayQuery := `
		INSERT INTO stay_segments (
			reservation_id, room_id, room_type_id, start_date, end_date,
			adults, children, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, stayQuery,
		modelStay.ReservationID,
		modelStay.RoomID,
		modelStay.RoomTypeID,
		modelStay.StartDate,
		modelStay.EndDate,
		modelStay.Adults,
		modelStay.Children,
		modelStay.IsActive,
	)
	if err != nil {
		if isOverlapViolation(err) {
			return apperrors.ErrRoomOccupied
		}
		return apperrors.NewAppError(500, "failed to insert stay segment for reservation "+modelStay.ReservationID, err)
	}

	modelFolio := mapping.ToModelFolio(folio)
	folioQuery := `
		INSERT INTO folios (
			folio_id, reservation_id, currency_code, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, folioQuery,
		modelFolio.FolioID,
		modelFolio.ReservationID,
		modelFolio.CurrencyCode,
		modelFolio.Status,
		modelFolio.CreatedAt,
		modelFolio.CreatedBy,
		modelFolio.LastUpdatedAt,
		modelFolio.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert folio for reservation "+modelFolio.ReservationID, err)
	}

	return r.Commit(ctx, tx)
}

// FindReservationByID retrieves a single reservation by its ID.
func (r *PgxReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationSelectColumns + ` FROM reservations r WHERE r.reservation_id = $1;`

	var m models.Reservation
	err := r.Pool.QueryRow(ctx, query, reservationID).Scan(
		&m.ReservationID,
		&m.PropertyID,
		&m.Status,
		&m.PaymentStatus,
		&m.GuestName,
		&m.GuestEmail,
		&m.Source,
		&m.Channel,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find reservation by ID "+reservationID, err)
	}

	domainReservation := mapping.ToDomainReservation(m)
	return &domainReservation, nil
}

// FindStaySegmentByReservationID retrieves the stay segment owned by a reservation.
func (r *PgxReservationRepository) FindStaySegmentByReservationID(ctx context.Context, reservationID string) (*domain.StaySegment, error) {
	query := `
		SELECT reservation_id, room_id, room_type_id, start_date, end_date, adults, children, is_active
		FROM stay_segments
		WHERE reservation_id = $1;
	`

	var m models.StaySegment
	err := r.Pool.QueryRow(ctx, query, reservationID).Scan(
		&m.ReservationID,
		&m.RoomID,
		&m.RoomTypeID,
		&m.StartDate,
		&m.EndDate,
		&m.Adults,
		&m.Children,
		&m.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find stay segment for reservation "+reservationID, err)
	}

	domainStay := mapping.ToDomainStaySegment(m)
	return &domainStay, nil
}

// FindOccupyingStays retrieves stay segments on a room that overlap the
// half-open range [start, end) and belong to an occupying reservation.
func (r *PgxReservationRepository) FindOccupyingStays(ctx context.Context, roomID string, start, end time.Time, excludeReservationID *string) ([]domain.StaySegment, error) {
	statuses := domain.ActiveStatuses()
	statusStrings := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusStrings = append(statusStrings, string(s))
	}

	query := `
		SELECT s.reservation_id, s.room_id, s.room_type_id, s.start_date, s.end_date, s.adults, s.children, s.is_active
		FROM stay_segments s
		JOIN reservations r ON s.reservation_id = r.reservation_id
		WHERE s.room_id = $1
			AND s.start_date < $3
			AND s.end_date > $2
			AND r.status = ANY($4)
	`
	args := []interface{}{roomID, start, end, statusStrings}
	if excludeReservationID != nil {
		query += ` AND s.reservation_id <> $5`
		args = append(args, *excludeReservationID)
	}
	query += ` ORDER BY s.start_date;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query occupying stays for room "+roomID, err)
	}
	defer rows.Close()

	stays := []domain.StaySegment{}
	for rows.Next() {
		var m models.StaySegment
		if err := rows.Scan(
			&m.ReservationID,
			&m.RoomID,
			&m.RoomTypeID,
			&m.StartDate,
			&m.EndDate,
			&m.Adults,
			&m.Children,
			&m.IsActive,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stay segment row for room "+roomID, err)
		}
		stays = append(stays, mapping.ToDomainStaySegment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stay segment rows for room "+roomID, err)
	}

	return stays, nil
}

// ListReservationsByProperty retrieves a paginated list of reservations for a property using token-based pagination.
// It returns the reservations, a token for the next page, and an error.
func (r *PgxReservationRepository) ListReservationsByProperty(ctx context.Context, propertyID string, limit int, nextToken *string) ([]domain.Reservation, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + reservationSelectColumns + ` FROM reservations r WHERE r.property_id = $1`
	// Ordering must be stable; reservation_id breaks created_at ties.
	orderByClause := `ORDER BY r.created_at DESC, r.reservation_id DESC`

	args := []interface{}{propertyID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `AND (r.created_at, r.reservation_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
		baseQuery = baseQuery + " " + cursorClause
	}

	query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query reservations for property "+propertyID, err)
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		var m models.Reservation
		if err := rows.Scan(
			&m.ReservationID,
			&m.PropertyID,
			&m.Status,
			&m.PaymentStatus,
			&m.GuestName,
			&m.GuestEmail,
			&m.Source,
			&m.Channel,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan reservation row", err)
		}
		reservations = append(reservations, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating reservation rows", err)
	}

	var newNextToken *string
	if len(reservations) > limit {
		reservations = reservations[:limit]
		last := reservations[len(reservations)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ReservationID)
		newNextToken = &token
	}

	domainReservations := make([]domain.Reservation, 0, len(reservations))
	for _, m := range reservations {
		domainReservations = append(domainReservations, mapping.ToDomainReservation(m))
	}

	return domainReservations, newNextToken, nil
}

// UpdateReservationStatus applies a lifecycle transition. The stay segment's
// is_active flag tracks whether the new status still occupies the room, and
// checkout flips the room to DIRTY, all within one transaction.
func (r *PgxReservationRepository) UpdateReservationStatus(ctx context.Context, reservationID string, status domain.ReservationStatus, markRoomDirty bool, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE reservations
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE reservation_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery, reservationID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for reservation "+reservationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	// Keep the denormalized flag consistent so the exclusion constraint
	// releases the room range the moment the stay stops occupying it.
	_, err = tx.Exec(ctx, `UPDATE stay_segments SET is_active = $2 WHERE reservation_id = $1;`, reservationID, status.Occupies())
	if err != nil {
		return apperrors.NewAppError(500, "failed to sync stay segment for reservation "+reservationID, err)
	}

	if markRoomDirty {
		dirtyQuery := `
			UPDATE rooms
			SET housekeeping_status = $2, last_updated_at = $3, last_updated_by = $4
			WHERE room_id = (SELECT room_id FROM stay_segments WHERE reservation_id = $1);
		`
		_, err = tx.Exec(ctx, dirtyQuery, reservationID, string(domain.HousekeepingDirty), updatedAt, updatedBy)
		if err != nil {
			return apperrors.NewAppError(500, "failed to mark room dirty for reservation "+reservationID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateStaySegment rewrites the room and date range of a reservation's stay segment.
func (r *PgxReservationRepository) UpdateStaySegment(ctx context.Context, stay domain.StaySegment, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	stayQuery := `
		UPDATE stay_segments
		SET room_id = $2, room_type_id = $3, start_date = $4, end_date = $5, adults = $6, children = $7
		WHERE reservation_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, stayQuery,
		stay.ReservationID,
		stay.RoomID,
		stay.RoomTypeID,
		stay.StartDate,
		stay.EndDate,
		stay.Adults,
		stay.Children,
	)
	if err != nil {
		if isOverlapViolation(err) {
			return apperrors.ErrRoomOccupied
		}
		return apperrors.NewAppError(500, "failed to update stay segment for reservation "+stay.ReservationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	touchQuery := `
		UPDATE reservations
		SET last_updated_at = $2, last_updated_by = $3
		WHERE reservation_id = $1;
	`
	if _, err := tx.Exec(ctx, touchQuery, stay.ReservationID, updatedAt, updatedBy); err != nil {
		return apperrors.NewAppError(500, "failed to touch reservation "+stay.ReservationID, err)
	}

	return r.Commit(ctx, tx)
}
