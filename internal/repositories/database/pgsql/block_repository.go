package pgsql

import (
	"context"
	"time"

	"github.com/StaySuite/stay_booking_app/internal/apperrors"
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portsrepo "github.com/StaySuite/stay_booking_app/internal/core/ports/repositories"
	"github.com/StaySuite/stay_booking_app/internal/models"
	"github.com/StaySuite/stay_booking_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBlockRepository struct {
	BaseRepository
}

// newPgxBlockRepository creates a new repository for maintenance block data.
func newPgxBlockRepository(pool *pgxpool.Pool) portsrepo.BlockRepositoryFacade {
	return &PgxBlockRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBlockRepository implements portsrepo.BlockRepositoryFacade
var _ portsrepo.BlockRepositoryFacade = (*PgxBlockRepository)(nil)

const blockSelectColumns = `
	block_id, room_id, start_date, end_date, reason,
	created_at, created_by, last_updated_at, last_updated_by
`

func (r *PgxBlockRepository) queryBlocks(ctx context.Context, filterQuery string, args ...any) ([]domain.Block, error) {
	query := `SELECT ` + blockSelectColumns + ` FROM blocks ` + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query blocks", err)
	}
	defer rows.Close()

	blocks := []domain.Block{}
	for rows.Next() {
		var m models.Block
		if err := rows.Scan(
			&m.BlockID,
			&m.RoomID,
			&m.StartDate,
			&m.EndDate,
			&m.Reason,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan block row", err)
		}
		blocks = append(blocks, mapping.ToDomainBlock(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating block rows", err)
	}
	return blocks, nil
}

// FindBlocksOverlapping retrieves blocks on a room whose half-open range
// overlaps [start, end).
func (r *PgxBlockRepository) FindBlocksOverlapping(ctx context.Context, roomID string, start, end time.Time) ([]domain.Block, error) {
	return r.queryBlocks(ctx,
		`WHERE room_id = $1 AND start_date < $3 AND end_date > $2 ORDER BY start_date;`,
		roomID, start, end,
	)
}

// ListBlocksByRoom retrieves all blocks on a room.
func (r *PgxBlockRepository) ListBlocksByRoom(ctx context.Context, roomID string) ([]domain.Block, error) {
	return r.queryBlocks(ctx, `WHERE room_id = $1 ORDER BY start_date;`, roomID)
}

// FindBlockByID retrieves a block by its identifier.
func (r *PgxBlockRepository) FindBlockByID(ctx context.Context, blockID string) (*domain.Block, error) {
	blocks, err := r.queryBlocks(ctx, `WHERE block_id = $1;`, blockID)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &blocks[0], nil
}

// SaveBlock persists a new maintenance block.
func (r *PgxBlockRepository) SaveBlock(ctx context.Context, block domain.Block) error {
	m := mapping.ToModelBlock(block)
	query := `
		INSERT INTO blocks (
			block_id, room_id, start_date, end_date, reason,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BlockID,
		m.RoomID,
		m.StartDate,
		m.EndDate,
		m.Reason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert block "+m.BlockID, err)
	}
	return nil
}

// DeleteBlock removes a block by its identifier.
func (r *PgxBlockRepository) DeleteBlock(ctx context.Context, blockID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM blocks WHERE block_id = $1;`, blockID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete block "+blockID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
