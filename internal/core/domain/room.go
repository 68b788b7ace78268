package domain

import "time"

// RoomStatus is the operational status of a room.
type RoomStatus string

const (
	RoomActive     RoomStatus = "ACTIVE"
	RoomOutOfOrder RoomStatus = "OUT_OF_ORDER"
)

// HousekeepingStatus tracks the cleaning state of a room. Checkout marks the
// room dirty as a side effect of the lifecycle transition.
type HousekeepingStatus string

const (
	HousekeepingClean     HousekeepingStatus = "CLEAN"
	HousekeepingDirty     HousekeepingStatus = "DIRTY"
	HousekeepingInspected HousekeepingStatus = "INSPECTED"
)

// RoomType groups rooms with a shared capacity and pricing profile.
// BaseRateCents is the legacy flat nightly rate used when no rate plan
// covers the type.
type RoomType struct {
	RoomTypeID    string `json:"roomTypeID"`
	PropertyID    string `json:"propertyID"`
	Name          string `json:"name"`
	MaxGuests     int    `json:"maxGuests"`
	BaseRateCents int64  `json:"baseRateCents"`
	AuditFields
}

// Room is a single bookable unit. The booking engine reads rooms;
// housekeeping and maintenance workflows mutate them.
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

// Block is a maintenance/unavailability window on one room. Half-open
// interval semantics identical to StaySegment: [StartDate, EndDate).
// A block conflicts with any overlapping booking attempt unconditionally.
type Block struct {
	BlockID   string    `json:"blockID"`
	RoomID    string    `json:"roomID"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"` // exclusive
	Reason    string    `json:"reason"`
	AuditFields
}

// RatePlan is a named pricing table mapping room types to nightly rates.
type RatePlan struct {
	RatePlanID string `json:"ratePlanID"`
	PropertyID string `json:"propertyID"`
	Name       string `json:"name"`
	AuditFields
}

// RatePlanRate is one row of a rate plan: the nightly rate for a room type.
type RatePlanRate struct {
	RatePlanID       string `json:"ratePlanID"`
	RoomTypeID       string `json:"roomTypeID"`
	NightlyRateCents int64  `json:"nightlyRateCents"`
}
