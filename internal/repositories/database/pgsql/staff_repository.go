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

type PgxStaffUserRepository struct {
	BaseRepository
}

// newPgxStaffUserRepository creates a new repository for staff user data.
func newPgxStaffUserRepository(pool *pgxpool.Pool) portsrepo.StaffUserRepositoryFacade {
	return &PgxStaffUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxStaffUserRepository implements portsrepo.StaffUserRepositoryFacade
var _ portsrepo.StaffUserRepositoryFacade = (*PgxStaffUserRepository)(nil)

const staffUserSelectColumns = `
	staff_user_id, username, password_hash, role, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

func (r *PgxStaffUserRepository) findStaffUser(ctx context.Context, filterQuery string, arg any) (*domain.StaffUser, error) {
	query := `SELECT ` + staffUserSelectColumns + ` FROM staff_users ` + filterQuery

	var m models.StaffUser
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.StaffUserID,
		&m.Username,
		&m.PasswordHash,
		&m.Role,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find staff user", err)
	}

	domainUser := mapping.ToDomainStaffUser(m)
	return &domainUser, nil
}

// FindStaffUserByUsername retrieves an account by username.
func (r *PgxStaffUserRepository) FindStaffUserByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	return r.findStaffUser(ctx, `WHERE username = $1;`, username)
}

// FindStaffUserByID retrieves an account by identifier.
func (r *PgxStaffUserRepository) FindStaffUserByID(ctx context.Context, staffUserID string) (*domain.StaffUser, error) {
	return r.findStaffUser(ctx, `WHERE staff_user_id = $1;`, staffUserID)
}
