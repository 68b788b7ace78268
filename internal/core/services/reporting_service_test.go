package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StaySuite/stay_booking_app/internal/apperrors"
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	portsrepo "github.com/StaySuite/stay_booking_app/internal/core/ports/repositories"
	"github.com/StaySuite/stay_booking_app/internal/core/services"
)

func TestGetDailyReport_CashZeroFillsEveryDay(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockReportingRepository)
	svc := services.NewReportingService(mockRepo)
	propertyID := uuid.NewString()

	// Activity only on the middle day of a three day range.
	mockRepo.On("GetCashActivity", ctx, propertyID, "2024-06-01", "2024-06-03").Return([]portsrepo.CashDayAggregate{
		{DayKey: "2024-06-02", CashInCents: 10000, RefundsCents: 2500},
	}, nil).Once()

	report, err := svc.GetDailyReport(ctx, propertyID, domain.ReportCash, "2024-06-01", "2024-06-03")

	require.NoError(t, err)
	require.Len(t, report.Cash, 3)

	assert.Equal(t, "2024-06-01", report.Cash[0].DayKey)
	assert.Zero(t, report.Cash[0].CashInCents)
	assert.Zero(t, report.Cash[0].RefundsCents)
	assert.Zero(t, report.Cash[0].NetCashCents)

	assert.Equal(t, "2024-06-02", report.Cash[1].DayKey)
	assert.Equal(t, int64(10000), report.Cash[1].CashInCents)
	assert.Equal(t, int64(2500), report.Cash[1].RefundsCents)
	assert.Equal(t, int64(7500), report.Cash[1].NetCashCents)

	assert.Equal(t, "2024-06-03", report.Cash[2].DayKey)
	assert.Zero(t, report.Cash[2].NetCashCents)

	assert.Equal(t, int64(10000), report.TotalCashInCents)
	assert.Equal(t, int64(2500), report.TotalRefundsCents)
	assert.Equal(t, int64(7500), report.TotalNetCashCents)
	mockRepo.AssertExpectations(t)
}

func TestGetDailyReport_AccrualFillsEveryCategoryBucket(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockReportingRepository)
	svc := services.NewReportingService(mockRepo)
	propertyID := uuid.NewString()

	mockRepo.On("GetAccrualActivity", ctx, propertyID, "2024-06-01", "2024-06-02").Return([]portsrepo.AccrualDayAggregate{
		{DayKey: "2024-06-01", Category: domain.CategoryRoom, AmountCents: 12000},
		{DayKey: "2024-06-01", Category: domain.CategoryTax, AmountCents: 960},
		{DayKey: "2024-06-02", Category: domain.CategoryFee, AmountCents: 1500},
	}, nil).Once()

	report, err := svc.GetDailyReport(ctx, propertyID, domain.ReportAccrual, "2024-06-01", "2024-06-02")

	require.NoError(t, err)
	require.Len(t, report.Accrual, 2)

	// Every category bucket is present on every row, zero when inactive.
	for _, row := range report.Accrual {
		for _, cat := range domain.ChargeCategories() {
			_, ok := row.Categories[cat]
			assert.True(t, ok, "row %s missing category %s", row.DayKey, cat)
		}
	}

	assert.Equal(t, int64(12000), report.Accrual[0].Categories[domain.CategoryRoom])
	assert.Equal(t, int64(960), report.Accrual[0].Categories[domain.CategoryTax])
	assert.Zero(t, report.Accrual[0].Categories[domain.CategoryFee])
	assert.Equal(t, int64(12960), report.Accrual[0].TotalCents)

	assert.Equal(t, int64(1500), report.Accrual[1].Categories[domain.CategoryFee])
	assert.Equal(t, int64(1500), report.Accrual[1].TotalCents)

	assert.Equal(t, int64(12000), report.TotalsByCategory[domain.CategoryRoom])
	assert.Equal(t, int64(1500), report.TotalsByCategory[domain.CategoryFee])
	assert.Zero(t, report.TotalsByCategory[domain.CategoryDiscount])
	assert.Equal(t, int64(14460), report.TotalAccrualCents)
	mockRepo.AssertExpectations(t)
}

func TestGetDailyReport_SingleDayRange(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockReportingRepository)
	svc := services.NewReportingService(mockRepo)
	propertyID := uuid.NewString()

	mockRepo.On("GetCashActivity", ctx, propertyID, "2024-06-01", "2024-06-01").Return([]portsrepo.CashDayAggregate{}, nil).Once()

	report, err := svc.GetDailyReport(ctx, propertyID, domain.ReportCash, "2024-06-01", "2024-06-01")

	require.NoError(t, err)
	require.Len(t, report.Cash, 1)
	assert.Equal(t, "2024-06-01", report.Cash[0].DayKey)
}

func TestGetDailyReport_UnknownMode(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockReportingRepository)
	svc := services.NewReportingService(mockRepo)

	_, err := svc.GetDailyReport(ctx, uuid.NewString(), domain.ReportMode("QUANTUM"), "2024-06-01", "2024-06-03")

	require.ErrorIs(t, err, apperrors.ErrValidation)
	mockRepo.AssertNotCalled(t, "GetCashActivity")
	mockRepo.AssertNotCalled(t, "GetAccrualActivity")
}

func TestGetDailyReport_InvertedRange(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockReportingRepository)
	svc := services.NewReportingService(mockRepo)

	_, err := svc.GetDailyReport(ctx, uuid.NewString(), domain.ReportCash, "2024-06-03", "2024-06-01")

	require.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
}
