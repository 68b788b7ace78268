package repositories

import (
	"context"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
)

// CashDayAggregate is one day of raw cash sums from storage.
type CashDayAggregate struct {
	DayKey       string
	CashInCents  int64
	RefundsCents int64
}

// AccrualDayAggregate is one day+category of raw charge sums from storage.
type AccrualDayAggregate struct {
	DayKey      string
	Category    domain.ChargeCategory
	AmountCents int64
}

// ReportingRepository defines read-only aggregation over folio lines.
// Day bucketing happens in SQL on posted_at; zero-filling is the service's
// concern.
type ReportingRepository interface {
	// GetCashActivity sums PAYMENT and REFUND lines per day across a
	// property for the inclusive day-key range.
	GetCashActivity(ctx context.Context, propertyID, startKey, endKey string) ([]CashDayAggregate, error)

	// GetAccrualActivity sums CHARGE lines per day and category across a
	// property for the inclusive day-key range.
	GetAccrualActivity(ctx context.Context, propertyID, startKey, endKey string) ([]AccrualDayAggregate, error)
}
