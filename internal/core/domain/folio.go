package domain

import "time"

// FolioStatus indicates whether a folio still accepts lines.
type FolioStatus string

const (
	FolioOpen   FolioStatus = "OPEN"
	FolioClosed FolioStatus = "CLOSED"
)

// LineType classifies a folio line.
type LineType string

const (
	LineCharge   LineType = "CHARGE"   // stored positive
	LinePayment  LineType = "PAYMENT"  // stored as the negative of the tendered amount
	LineRefund   LineType = "REFUND"   // money returned to the guest; stored positive
	LineReversal LineType = "REVERSAL" // exact negation of the reversed line
)

// ChargeCategory tags charge lines for accrual reporting. Captured as a
// structured field at creation time rather than parsed out of descriptions.
type ChargeCategory string

const (
	CategoryRoom          ChargeCategory = "ROOM"
	CategoryFee           ChargeCategory = "FEE"
	CategoryTax           ChargeCategory = "TAX"
	CategoryDiscount      ChargeCategory = "DISCOUNT"
	CategoryAdjustment    ChargeCategory = "ADJUSTMENT"
	CategoryUncategorized ChargeCategory = "UNCATEGORIZED"
)

// ChargeCategories lists every category bucket accrual reports emit.
func ChargeCategories() []ChargeCategory {
	return []ChargeCategory{
		CategoryRoom, CategoryFee, CategoryTax,
		CategoryDiscount, CategoryAdjustment, CategoryUncategorized,
	}
}

// Folio is the financial account attached to one reservation. It owns an
// ordered, append-only list of lines; only OPEN folios accept new lines.
type Folio struct {
	FolioID       string      `json:"folioID"`
	ReservationID string      `json:"reservationID"`
	CurrencyCode  string      `json:"currencyCode"`
	Status        FolioStatus `json:"status"`
	AuditFields
}

// FolioLine is one signed monetary entry in a folio. Lines are immutable
// once created; correction is always by reversal, never by edit or delete.
// AmountCents is an integer number of minor currency units; no
// floating-point monetary arithmetic anywhere.
type FolioLine struct {
	LineID           string         `json:"lineID"`
	FolioID          string         `json:"folioID"`
	Type             LineType       `json:"type"`
	AmountCents      int64          `json:"amountCents"` // signed stored value
	CurrencyCode     string         `json:"currencyCode"`
	Description      string         `json:"description"`
	Category         ChargeCategory `json:"category"`
	PaymentMethod    string         `json:"paymentMethod"` // e.g. CASH, CARD; payment lines only
	PostedAt         time.Time      `json:"postedAt"`
	ReversalOfLineID *string        `json:"reversalOfLineID"` // set on REVERSAL lines only
	AuditFields
}

// FolioSummary is the fold over all lines of a folio.
// Invariant: SubtotalCents == BalanceCents + PaidCents.
type FolioSummary struct {
	SubtotalCents int64         `json:"subtotalCents"`
	PaidCents     int64         `json:"paidCents"`
	BalanceCents  int64         `json:"balanceCents"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// SummarizeLines folds the signed stored values of all lines into a summary.
// Charges add, payments and reversals subtract through their stored sign.
// PaidCents is the net tendered: PAYMENT lines plus any REVERSAL that
// undoes one, so reversing a payment reopens the balance instead of
// inflating the subtotal.
func SummarizeLines(lines []FolioLine) FolioSummary {
	byID := make(map[string]*FolioLine, len(lines))
	for i := range lines {
		if lines[i].LineID != "" {
			byID[lines[i].LineID] = &lines[i]
		}
	}
	var balance, paid int64
	for i := range lines {
		l := &lines[i]
		balance += l.AmountCents
		if onPaymentSide(l, byID) {
			paid += -l.AmountCents
		}
	}
	s := FolioSummary{
		BalanceCents:  balance,
		PaidCents:     paid,
		SubtotalCents: balance + paid,
	}
	s.PaymentStatus = derivePaymentStatus(s.SubtotalCents, s.PaidCents, s.BalanceCents)
	return s
}

// onPaymentSide reports whether a line moves tendered money. That is every
// PAYMENT line, and every REVERSAL whose target chain bottoms out at a
// PAYMENT (reversals of reversals keep the side of the original line).
func onPaymentSide(l *FolioLine, byID map[string]*FolioLine) bool {
	for hops := 0; l != nil && hops <= len(byID); hops++ {
		switch l.Type {
		case LinePayment:
			return true
		case LineReversal:
			if l.ReversalOfLineID == nil {
				return false
			}
			l = byID[*l.ReversalOfLineID]
		default:
			return false
		}
	}
	return false
}

// derivePaymentStatus applies the deterministic rule, in order: nothing (or
// net credit) charged means PAID; nothing tendered means UNPAID; an open
// balance with something tendered is PARTIALLY_PAID; otherwise PAID.
func derivePaymentStatus(subtotal, paid, balance int64) PaymentStatus {
	switch {
	case subtotal <= 0:
		return PaymentPaid
	case paid <= 0:
		return PaymentUnpaid
	case balance > 0:
		return PaymentPartiallyPaid
	default:
		return PaymentPaid
	}
}
