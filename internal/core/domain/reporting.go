package domain

// ReportMode selects the daily report basis.
type ReportMode string

const (
	ReportCash    ReportMode = "cash"
	ReportAccrual ReportMode = "accrual"
)

// CashDayRow is one day of cash-basis activity: payments in, refunds out.
type CashDayRow struct {
	DayKey       string `json:"dayKey"`
	CashInCents  int64  `json:"cashInCents"`
	RefundsCents int64  `json:"refundsCents"`
	NetCashCents int64  `json:"netCashCents"`
}

// AccrualDayRow is one day of accrual-basis activity: charges bucketed by
// category plus a per-day total.
type AccrualDayRow struct {
	DayKey     string                   `json:"dayKey"`
	Categories map[ChargeCategory]int64 `json:"categories"`
	TotalCents int64                    `json:"totalCents"`
}

// DailyReport carries zero-filled per-day rows over an inclusive day-key
// range plus grand totals across the range. Exactly one of Cash/Accrual is
// populated depending on Mode.
type DailyReport struct {
	Mode     ReportMode      `json:"mode"`
	StartKey string          `json:"startKey"`
	EndKey   string          `json:"endKey"`
	Cash     []CashDayRow    `json:"cash,omitempty"`
	Accrual  []AccrualDayRow `json:"accrual,omitempty"`

	TotalCashInCents  int64                    `json:"totalCashInCents,omitempty"`
	TotalRefundsCents int64                    `json:"totalRefundsCents,omitempty"`
	TotalNetCashCents int64                    `json:"totalNetCashCents,omitempty"`
	TotalsByCategory  map[ChargeCategory]int64 `json:"totalsByCategory,omitempty"`
	TotalAccrualCents int64                    `json:"totalAccrualCents,omitempty"`
}
