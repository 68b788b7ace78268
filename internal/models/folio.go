package models

import "time"

// FolioStatus indicates whether a folio row accepts new lines.
type FolioStatus string

const (
	FolioOpen   FolioStatus = "OPEN"
	FolioClosed FolioStatus = "CLOSED"
)

// LineType classifies a folio line row.
type LineType string

const (
	Charge   LineType = "CHARGE"
	Payment  LineType = "PAYMENT"
	Refund   LineType = "REFUND"
	Reversal LineType = "REVERSAL"
)

// Folio is the persisted financial account of one reservation.
type Folio struct {
	FolioID       string      `json:"folioID"`
	ReservationID string      `json:"reservationID"`
	CurrencyCode  string      `json:"currencyCode"`
	Status        FolioStatus `json:"status"`
	AuditFields
}

// FolioLine is one persisted signed monetary entry. Rows are append-only;
// amount_cents is a signed integer of minor units.
type FolioLine struct {
	LineID           string    `json:"lineID"`
	FolioID          string    `json:"folioID"`
	Type             LineType  `json:"type"`
	AmountCents      int64     `json:"amountCents"`
	CurrencyCode     string    `json:"currencyCode"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	PaymentMethod    string    `json:"paymentMethod"`
	PostedAt         time.Time `json:"postedAt"`
	ReversalOfLineID *string   `json:"reversalOfLineID"`
	AuditFields
}
