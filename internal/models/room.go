package models

import "time"

// RoomStatus is the operational status of a room row.
type RoomStatus string

const (
	RoomActive     RoomStatus = "ACTIVE"
	RoomOutOfOrder RoomStatus = "OUT_OF_ORDER"
)

// HousekeepingStatus tracks the cleaning state of a room row.
type HousekeepingStatus string

const (
	Clean     HousekeepingStatus = "CLEAN"
	Dirty     HousekeepingStatus = "DIRTY"
	Inspected HousekeepingStatus = "INSPECTED"
)

// RoomType is the persisted room category with its legacy flat rate.
type RoomType struct {
	RoomTypeID    string `json:"roomTypeID"`
	PropertyID    string `json:"propertyID"`
	Name          string `json:"name"`
	MaxGuests     int    `json:"maxGuests"`
	BaseRateCents int64  `json:"baseRateCents"`
	AuditFields
}

// Room is a persisted bookable unit.
type Room struct {
	RoomID             string             `json:"roomID"`
	PropertyID         string             `json:"propertyID"`
	RoomTypeID         string             `json:"roomTypeID"`
	Number             string             `json:"number"`
	IsActive           bool               `json:"isActive"`
	Status             RoomStatus         `json:"status"`
	HousekeepingStatus HousekeepingStatus `json:"housekeepingStatus"`
	AuditFields
}

// Block is a persisted maintenance window on one room.
type Block struct {
	BlockID   string    `json:"blockID"`
	RoomID    string    `json:"roomID"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Reason    string    `json:"reason"`
	AuditFields
}

// RatePlan is a persisted named pricing table.
type RatePlan struct {
	RatePlanID string `json:"ratePlanID"`
	PropertyID string `json:"propertyID"`
	Name       string `json:"name"`
	AuditFields
}

// RatePlanRate maps one room type to its nightly rate under a plan.
type RatePlanRate struct {
	RatePlanID       string `json:"ratePlanID"`
	RoomTypeID       string `json:"roomTypeID"`
	NightlyRateCents int64  `json:"nightlyRateCents"`
}
