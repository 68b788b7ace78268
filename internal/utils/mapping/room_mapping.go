package mapping

import (
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	"github.com/StaySuite/stay_booking_app/internal/models"
)

// ToDomainRoom converts a model Room to a domain Room.
func ToDomainRoom(m models.Room) domain.Room {
	return domain.Room{
		RoomID:             m.RoomID,
		PropertyID:         m.PropertyID,
		RoomTypeID:         m.RoomTypeID,
		Number:             m.Number,
		IsActive:           m.IsActive,
		Status:             domain.RoomStatus(m.Status),
		HousekeepingStatus: domain.HousekeepingStatus(m.HousekeepingStatus),
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRoomType converts a model RoomType to a domain RoomType.
func ToDomainRoomType(m models.RoomType) domain.RoomType {
	return domain.RoomType{
		RoomTypeID:    m.RoomTypeID,
		PropertyID:    m.PropertyID,
		Name:          m.Name,
		MaxGuests:     m.MaxGuests,
		BaseRateCents: m.BaseRateCents,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBlock converts a domain Block to a model Block.
func ToModelBlock(d domain.Block) models.Block {
	return models.Block{
		BlockID:     d.BlockID,
		RoomID:      d.RoomID,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Reason:      d.Reason,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProperty converts a model Property to a domain Property.
func ToDomainProperty(m models.Property) domain.Property {
	return domain.Property{
		PropertyID:        m.PropertyID,
		Name:              m.Name,
		CurrencyCode:      m.CurrencyCode,
		DefaultRatePlanID: m.DefaultRatePlanID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBlock converts a model Block to a domain Block.
func ToDomainBlock(m models.Block) domain.Block {
	return domain.Block{
		BlockID:     m.BlockID,
		RoomID:      m.RoomID,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Reason:      m.Reason,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
