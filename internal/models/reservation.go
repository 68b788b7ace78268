package models

import "time"

// ReservationStatus is the lifecycle state of a reservation row.
type ReservationStatus string

const (
	Draft      ReservationStatus = "DRAFT"
	Confirmed  ReservationStatus = "CONFIRMED"
	CheckedIn  ReservationStatus = "CHECKED_IN"
	CheckedOut ReservationStatus = "CHECKED_OUT"
	Cancelled  ReservationStatus = "CANCELLED"
	NoShow     ReservationStatus = "NO_SHOW"
)

// PaymentStatus is the cached ledger-derived payment state on a reservation row.
type PaymentStatus string

const (
	Unpaid        PaymentStatus = "UNPAID"
	PartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	Paid          PaymentStatus = "PAID"
)

// Reservation is the persisted booking header.
type Reservation struct {
	ReservationID string            `json:"reservationID"`
	PropertyID    string            `json:"propertyID"`
	Status        ReservationStatus `json:"status"`
	PaymentStatus PaymentStatus     `json:"paymentStatus"`
	GuestName     string            `json:"guestName"`
	GuestEmail    string            `json:"guestEmail"`
	Source        string            `json:"source"`
	Channel       string            `json:"channel"`
	Notes         string            `json:"notes"`
	AuditFields
}

// StaySegment is the persisted room+date-range portion of a reservation.
// IsActive is denormalized from the reservation status so the storage-level
// no-double-booking exclusion constraint can ignore ended stays.
type StaySegment struct {
	ReservationID string    `json:"reservationID"`
	RoomID        string    `json:"roomID"`
	RoomTypeID    string    `json:"roomTypeID"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"` // exclusive
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	IsActive      bool      `json:"isActive"`
}
