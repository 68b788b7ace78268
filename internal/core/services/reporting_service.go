package services

import (
	"context"
	"fmt"

	"github.com/StaySuite/stay_booking_app/internal/apperrors"
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portsrepo "github.com/StaySuite/stay_booking_app/internal/core/ports/repositories"
	portssvc "github.com/StaySuite/stay_booking_app/internal/core/ports/services"
	"github.com/StaySuite/stay_booking_app/internal/utils/dates"
)

// reportingService builds read-only day-bucketed projections over folio
// lines. Storage does the summing; this service zero-fills the day range so
// report rendering and CSV export see a stable row per day.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: repo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDailyReport returns zero-filled per-day rows plus grand totals for an
// inclusive day-key range, on a cash or accrual basis.
func (s *reportingService) GetDailyReport(ctx context.Context, propertyID string, mode domain.ReportMode, startKey, endKey string) (*domain.DailyReport, error) {
	dayKeys, err := dates.EnumerateDayKeys(startKey, endKey)
	if err != nil {
		return nil, err
	}

	report := &domain.DailyReport{
		Mode:     mode,
		StartKey: startKey,
		EndKey:   endKey,
	}

	switch mode {
	case domain.ReportCash:
		if err := s.buildCashReport(ctx, propertyID, dayKeys, report); err != nil {
			return nil, err
		}
	case domain.ReportAccrual:
		if err := s.buildAccrualReport(ctx, propertyID, dayKeys, report); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown report mode %q", apperrors.ErrValidation, mode)
	}

	s.LogInfo(ctx, "Daily report generated",
		"property_id", propertyID,
		"mode", string(mode),
		"start", startKey,
		"end", endKey,
		"days", len(dayKeys))
	return report, nil
}

func (s *reportingService) buildCashReport(ctx context.Context, propertyID string, dayKeys []string, report *domain.DailyReport) error {
	aggregates, err := s.reportingRepo.GetCashActivity(ctx, propertyID, dayKeys[0], dayKeys[len(dayKeys)-1])
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve cash activity", "property_id", propertyID)
		return fmt.Errorf("failed to retrieve cash activity: %w", err)
	}

	byDay := make(map[string]portsrepo.CashDayAggregate, len(aggregates))
	for _, a := range aggregates {
		byDay[a.DayKey] = a
	}

	report.Cash = make([]domain.CashDayRow, 0, len(dayKeys))
	for _, key := range dayKeys {
		a := byDay[key] // zero value yields a zero-filled row
		row := domain.CashDayRow{
			DayKey:       key,
			CashInCents:  a.CashInCents,
			RefundsCents: a.RefundsCents,
			NetCashCents: a.CashInCents - a.RefundsCents,
		}
		report.Cash = append(report.Cash, row)
		report.TotalCashInCents += row.CashInCents
		report.TotalRefundsCents += row.RefundsCents
		report.TotalNetCashCents += row.NetCashCents
	}
	return nil
}

func (s *reportingService) buildAccrualReport(ctx context.Context, propertyID string, dayKeys []string, report *domain.DailyReport) error {
	aggregates, err := s.reportingRepo.GetAccrualActivity(ctx, propertyID, dayKeys[0], dayKeys[len(dayKeys)-1])
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve accrual activity", "property_id", propertyID)
		return fmt.Errorf("failed to retrieve accrual activity: %w", err)
	}

	byDay := make(map[string]map[domain.ChargeCategory]int64, len(dayKeys))
	for _, a := range aggregates {
		if byDay[a.DayKey] == nil {
			byDay[a.DayKey] = make(map[domain.ChargeCategory]int64)
		}
		byDay[a.DayKey][a.Category] += a.AmountCents
	}

	report.TotalsByCategory = make(map[domain.ChargeCategory]int64, len(domain.ChargeCategories()))
	report.Accrual = make([]domain.AccrualDayRow, 0, len(dayKeys))
	for _, key := range dayKeys {
		row := domain.AccrualDayRow{
			DayKey:     key,
			Categories: make(map[domain.ChargeCategory]int64, len(domain.ChargeCategories())),
		}
		// Every category bucket appears on every row, zero-filled.
		for _, cat := range domain.ChargeCategories() {
			amount := byDay[key][cat]
			row.Categories[cat] = amount
			row.TotalCents += amount
			report.TotalsByCategory[cat] += amount
		}
		report.Accrual = append(report.Accrual, row)
		report.TotalAccrualCents += row.TotalCents
	}
	return nil
}
