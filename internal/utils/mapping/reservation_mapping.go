package mapping

import (
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	"github.com/StaySuite/stay_booking_app/internal/models"
)

// ToModelReservation converts a domain Reservation to a model Reservation.
func ToModelReservation(d domain.Reservation) models.Reservation {
	return models.Reservation{
		ReservationID: d.ReservationID,
		PropertyID:    d.PropertyID,
		Status:        models.ReservationStatus(d.Status),
		PaymentStatus: models.PaymentStatus(d.PaymentStatus),
		GuestName:     d.GuestName,
		GuestEmail:    d.GuestEmail,
		Source:        d.Source,
		Channel:       d.Channel,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReservation converts a model Reservation to a domain Reservation.
func ToDomainReservation(m models.Reservation) domain.Reservation {
	return domain.Reservation{
		ReservationID: m.ReservationID,
		PropertyID:    m.PropertyID,
		Status:        domain.ReservationStatus(m.Status),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		GuestName:     m.GuestName,
		GuestEmail:    m.GuestEmail,
		Source:        m.Source,
		Channel:       m.Channel,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelStaySegment converts a domain StaySegment to a model StaySegment.
// The is_active column mirrors whether the owning reservation's status
// still occupies the room.
func ToModelStaySegment(d domain.StaySegment, status domain.ReservationStatus) models.StaySegment {
	return models.StaySegment{
		ReservationID: d.ReservationID,
		RoomID:        d.RoomID,
		RoomTypeID:    d.RoomTypeID,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Adults:        d.Adults,
		Children:      d.Children,
		IsActive:      status.Occupies(),
	}
}

// ToDomainStaySegment converts a model StaySegment to a domain StaySegment.
func ToDomainStaySegment(m models.StaySegment) domain.StaySegment {
	return domain.StaySegment{
		ReservationID: m.ReservationID,
		RoomID:        m.RoomID,
		RoomTypeID:    m.RoomTypeID,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Adults:        m.Adults,
		Children:      m.Children,
	}
}
