package pgsql

import (
	"context"

	"github.com/StaySuite/stay_booking_app/internal/apperrors"
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portsrepo "github.com/StaySuite/stay_booking_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetCashActivity sums tendered and refunded money per posting day across a
// property. Payments are stored negated, so cash in is the negated sum.
func (r *reportingRepository) GetCashActivity(ctx context.Context, propertyID, startKey, endKey string) ([]portsrepo.CashDayAggregate, error) {
	query := `
		SELECT
			to_char((fl.posted_at AT TIME ZONE 'UTC')::date, 'YYYY-MM-DD') AS day_key,
			COALESCE(SUM(CASE WHEN fl.line_type = 'PAYMENT' THEN -fl.amount_cents ELSE 0 END), 0) AS cash_in_cents,
			COALESCE(SUM(CASE WHEN fl.line_type = 'REFUND' THEN fl.amount_cents ELSE 0 END), 0) AS refunds_cents
		FROM folio_lines fl
		JOIN folios f ON fl.folio_id = f.folio_id
		JOIN reservations res ON f.reservation_id = res.reservation_id
		WHERE res.property_id = $1
			AND fl.line_type IN ('PAYMENT', 'REFUND')
			AND (fl.posted_at AT TIME ZONE 'UTC')::date BETWEEN $2::date AND $3::date
		GROUP BY day_key
		ORDER BY day_key;
	`

	rows, err := r.Pool.Query(ctx, query, propertyID, startKey, endKey)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cash activity for property "+propertyID, err)
	}
	defer rows.Close()

	result := []portsrepo.CashDayAggregate{}
	for rows.Next() {
		var row portsrepo.CashDayAggregate
		if err := rows.Scan(&row.DayKey, &row.CashInCents, &row.RefundsCents); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cash activity row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cash activity rows", err)
	}

	return result, nil
}

// GetAccrualActivity sums charge lines per posting day and category across a property.
func (r *reportingRepository) GetAccrualActivity(ctx context.Context, propertyID, startKey, endKey string) ([]portsrepo.AccrualDayAggregate, error) {
	query := `
		SELECT
			to_char((fl.posted_at AT TIME ZONE 'UTC')::date, 'YYYY-MM-DD') AS day_key,
			fl.category,
			COALESCE(SUM(fl.amount_cents), 0) AS amount_cents
		FROM folio_lines fl
		JOIN folios f ON fl.folio_id = f.folio_id
		JOIN reservations res ON f.reservation_id = res.reservation_id
		WHERE res.property_id = $1
			AND fl.line_type = 'CHARGE'
			AND (fl.posted_at AT TIME ZONE 'UTC')::date BETWEEN $2::date AND $3::date
		GROUP BY day_key, fl.category
		ORDER BY day_key, fl.category;
	`

	rows, err := r.Pool.Query(ctx, query, propertyID, startKey, endKey)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accrual activity for property "+propertyID, err)
	}
	defer rows.Close()

	result := []portsrepo.AccrualDayAggregate{}
	for rows.Next() {
		var row portsrepo.AccrualDayAggregate
		var category string
		if err := rows.Scan(&row.DayKey, &category, &row.AmountCents); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan accrual activity row", err)
		}
		row.Category = domain.ChargeCategory(category)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating accrual activity rows", err)
	}

	return result, nil
}
