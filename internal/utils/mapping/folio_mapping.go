package mapping

import (
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	"github.com/StaySuite/stay_booking_app/internal/models"
)

// ToModelFolio converts a domain Folio to a model Folio.
func ToModelFolio(d domain.Folio) models.Folio {
	return models.Folio{
		FolioID:       d.FolioID,
		ReservationID: d.ReservationID,
		CurrencyCode:  d.CurrencyCode,
		Status:        models.FolioStatus(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFolio converts a model Folio to a domain Folio.
func ToDomainFolio(m models.Folio) domain.Folio {
	return domain.Folio{
		FolioID:       m.FolioID,
		ReservationID: m.ReservationID,
		CurrencyCode:  m.CurrencyCode,
		Status:        domain.FolioStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelFolioLine converts a domain FolioLine to a model FolioLine.
func ToModelFolioLine(d domain.FolioLine) models.FolioLine {
	return models.FolioLine{
		LineID:           d.LineID,
		FolioID:          d.FolioID,
		Type:             models.LineType(d.Type),
		AmountCents:      d.AmountCents,
		CurrencyCode:     d.CurrencyCode,
		Description:      d.Description,
		Category:         string(d.Category),
		PaymentMethod:    d.PaymentMethod,
		PostedAt:         d.PostedAt,
		ReversalOfLineID: d.ReversalOfLineID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFolioLine converts a model FolioLine to a domain FolioLine.
func ToDomainFolioLine(m models.FolioLine) domain.FolioLine {
	return domain.FolioLine{
		LineID:           m.LineID,
		FolioID:          m.FolioID,
		Type:             domain.LineType(m.Type),
		AmountCents:      m.AmountCents,
		CurrencyCode:     m.CurrencyCode,
		Description:      m.Description,
		Category:         domain.ChargeCategory(m.Category),
		PaymentMethod:    m.PaymentMethod,
		PostedAt:         m.PostedAt,
		ReversalOfLineID: m.ReversalOfLineID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFolioLineSlice converts a slice of model lines to domain lines.
func ToDomainFolioLineSlice(ms []models.FolioLine) []domain.FolioLine {
	ds := make([]domain.FolioLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFolioLine(m)
	}
	return ds
}
