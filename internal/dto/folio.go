package dto

import (
	"time"

	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	"github.com/StaySuite/stay_booking_app/internal/utils"
)

// AddChargeRequest posts a charge to a reservation's folio.
// AmountCents is a positive integer of minor currency units.
type AddChargeRequest struct {
	AmountCents int64  `json:"amountCents" binding:"required,gt=0"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"omitempty,oneof=ROOM FEE TAX DISCOUNT ADJUSTMENT UNCATEGORIZED"`
}

// AddPaymentRequest records a payment captured elsewhere. The tendered
// amount is positive at the boundary; the ledger stores its negation.
type AddPaymentRequest struct {
	AmountCents   int64  `json:"amountCents" binding:"required,gt=0"`
	Description   string `json:"description"`
	PaymentMethod string `json:"paymentMethod"`
}

// AddRefundRequest records money returned to the guest.
type AddRefundRequest struct {
	AmountCents   int64  `json:"amountCents" binding:"required,gt=0"`
	Description   string `json:"description"`
	PaymentMethod string `json:"paymentMethod"`
}

// FolioLineResponse is one ledger line as returned by the API.
type FolioLineResponse struct {
	LineID           string  `json:"lineID"`
	Type             string  `json:"type"`
	AmountCents      int64   `json:"amountCents"`
	Amount           string  `json:"amount"` // display string in major units
	CurrencyCode     string  `json:"currencyCode"`
	Description      string  `json:"description"`
	Category         string  `json:"category,omitempty"`
	PaymentMethod    string  `json:"paymentMethod,omitempty"`
	PostedAt         string  `json:"postedAt"`
	ReversalOfLineID *string `json:"reversalOfLineID,omitempty"`
}

// FolioSummaryResponse is the computed summary of a folio.
type FolioSummaryResponse struct {
	SubtotalCents int64  `json:"subtotalCents"`
	PaidCents     int64  `json:"paidCents"`
	BalanceCents  int64  `json:"balanceCents"`
	PaymentStatus string `json:"paymentStatus"`
}

// FolioResponse is the folio header with its summary and lines.
type FolioResponse struct {
	FolioID       string               `json:"folioID"`
	ReservationID string               `json:"reservationID"`
	CurrencyCode  string               `json:"currencyCode"`
	Status        string               `json:"status"`
	Summary       FolioSummaryResponse `json:"summary"`
	Lines         []FolioLineResponse  `json:"lines"`
}

// ToFolioLineResponse converts a domain FolioLine to its API shape.
func ToFolioLineResponse(l *domain.FolioLine) FolioLineResponse {
	return FolioLineResponse{
		LineID:           l.LineID,
		Type:             string(l.Type),
		AmountCents:      l.AmountCents,
		Amount:           utils.FormatCents(l.AmountCents),
		CurrencyCode:     l.CurrencyCode,
		Description:      l.Description,
		Category:         string(l.Category),
		PaymentMethod:    l.PaymentMethod,
		PostedAt:         l.PostedAt.UTC().Format(time.RFC3339),
		ReversalOfLineID: l.ReversalOfLineID,
	}
}

// ToFolioSummaryResponse converts a domain FolioSummary to its API shape.
func ToFolioSummaryResponse(s domain.FolioSummary) FolioSummaryResponse {
	return FolioSummaryResponse{
		SubtotalCents: s.SubtotalCents,
		PaidCents:     s.PaidCents,
		BalanceCents:  s.BalanceCents,
		PaymentStatus: string(s.PaymentStatus),
	}
}

// ToFolioResponse assembles the combined folio view.
func ToFolioResponse(f *domain.Folio, lines []domain.FolioLine, summary domain.FolioSummary) FolioResponse {
	lineResponses := make([]FolioLineResponse, len(lines))
	for i := range lines {
		lineResponses[i] = ToFolioLineResponse(&lines[i])
	}
	return FolioResponse{
		FolioID:       f.FolioID,
		ReservationID: f.ReservationID,
		CurrencyCode:  f.CurrencyCode,
		Status:        string(f.Status),
		Summary:       ToFolioSummaryResponse(summary),
		Lines:         lineResponses,
	}
}
