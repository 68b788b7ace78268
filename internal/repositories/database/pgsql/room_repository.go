package pgsql

import (
	"context"
	"errors"

	"github.com/StaySuite/stay_booking_app/internal/apperrors"
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portsrepo "github.com/StaySuite/stay_booking_app/internal/core/ports/repositories"
	"github.com/StaySuite/stay_booking_app/internal/models"
	"github.com/StaySuite/stay_booking_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRoomRepository struct {
	BaseRepository
}

// newPgxRoomRepository creates a new repository for room, room type, property
// and rate plan data.
func newPgxRoomRepository(pool *pgxpool.Pool) portsrepo.RoomRepositoryFacade {
	return &PgxRoomRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxRoomRepository implements portsrepo.RoomRepositoryFacade
var _ portsrepo.RoomRepositoryFacade = (*PgxRoomRepository)(nil)

const roomSelectColumns = `
	room_id, property_id, room_type_id, room_number, is_active,
	status, housekeeping_status,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanRoom(row pgx.Row) (*models.Room, error) {
	var m models.Room
	err := row.Scan(
		&m.RoomID,
		&m.PropertyID,
		&m.RoomTypeID,
		&m.Number,
		&m.IsActive,
		&m.Status,
		&m.HousekeepingStatus,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindRoomByID retrieves a room by its identifier.
func (r *PgxRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	query := `SELECT ` + roomSelectColumns + ` FROM rooms WHERE room_id = $1;`

	m, err := scanRoom(r.Pool.QueryRow(ctx, query, roomID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find room by ID "+roomID, err)
	}

	domainRoom := mapping.ToDomainRoom(*m)
	return &domainRoom, nil
}

// FindRoomTypeByID retrieves a room type by its identifier.
func (r *PgxRoomRepository) FindRoomTypeByID(ctx context.Context, roomTypeID string) (*domain.RoomType, error) {
	query := `
		SELECT room_type_id, property_id, name, max_guests, base_rate_cents,
			created_at, created_by, last_updated_at, last_updated_by
		FROM room_types
		WHERE room_type_id = $1;
	`

	var m models.RoomType
	err := r.Pool.QueryRow(ctx, query, roomTypeID).Scan(
		&m.RoomTypeID,
		&m.PropertyID,
		&m.Name,
		&m.MaxGuests,
		&m.BaseRateCents,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find room type by ID "+roomTypeID, err)
	}

	domainRoomType := mapping.ToDomainRoomType(m)
	return &domainRoomType, nil
}

// ListRoomsByProperty retrieves all rooms of a property ordered by room number.
func (r *PgxRoomRepository) ListRoomsByProperty(ctx context.Context, propertyID string) ([]domain.Room, error) {
	query := `SELECT ` + roomSelectColumns + ` FROM rooms WHERE property_id = $1 ORDER BY room_number;`

	rows, err := r.Pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rooms for property "+propertyID, err)
	}
	defer rows.Close()

	rooms := []domain.Room{}
	for rows.Next() {
		m, err := scanRoom(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan room row for property "+propertyID, err)
		}
		rooms = append(rooms, mapping.ToDomainRoom(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating room rows for property "+propertyID, err)
	}

	return rooms, nil
}

// FindPropertyByID retrieves a property by its identifier.
func (r *PgxRoomRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	query := `
		SELECT property_id, name, currency_code, default_rate_plan_id,
			created_at, created_by, last_updated_at, last_updated_by
		FROM properties
		WHERE property_id = $1;
	`

	var m models.Property
	err := r.Pool.QueryRow(ctx, query, propertyID).Scan(
		&m.PropertyID,
		&m.Name,
		&m.CurrencyCode,
		&m.DefaultRatePlanID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find property by ID "+propertyID, err)
	}

	domainProperty := mapping.ToDomainProperty(m)
	return &domainProperty, nil
}

// FindRatePlanRate retrieves the nightly rate a plan assigns to a room type.
func (r *PgxRoomRepository) FindRatePlanRate(ctx context.Context, ratePlanID, roomTypeID string) (*domain.RatePlanRate, error) {
	query := `
		SELECT rate_plan_id, room_type_id, nightly_rate_cents
		FROM rate_plan_rates
		WHERE rate_plan_id = $1 AND room_type_id = $2;
	`

	var rate domain.RatePlanRate
	err := r.Pool.QueryRow(ctx, query, ratePlanID, roomTypeID).Scan(
		&rate.RatePlanID,
		&rate.RoomTypeID,
		&rate.NightlyRateCents,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find rate for plan "+ratePlanID+" and room type "+roomTypeID, err)
	}

	return &rate, nil
}

// UpdateHousekeepingStatus sets the housekeeping state of a room.
func (r *PgxRoomRepository) UpdateHousekeepingStatus(ctx context.Context, roomID string, status domain.HousekeepingStatus, updatedBy string) error {
	query := `
		UPDATE rooms
		SET housekeeping_status = $2, last_updated_at = now(), last_updated_by = $3
		WHERE room_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, roomID, string(status), updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update housekeeping status for room "+roomID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
