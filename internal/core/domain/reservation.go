package domain

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusDraft      ReservationStatus = "DRAFT"
	StatusConfirmed  ReservationStatus = "CONFIRMED"
	StatusCheckedIn  ReservationStatus = "CHECKED_IN"
	StatusCheckedOut ReservationStatus = "CHECKED_OUT"
	StatusCancelled  ReservationStatus = "CANCELLED"
	StatusNoShow     ReservationStatus = "NO_SHOW"
)

// PaymentStatus is derived from the folio ledger and cached on the
// reservation. It is recomputed and persisted inside the same transaction
// as every ledger mutation; it is never independently authoritative.
type PaymentStatus string

const (
	PaymentUnpaid        PaymentStatus = "UNPAID"
	PaymentPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentPaid          PaymentStatus = "PAID"
)

// transitions is the statically enumerable lifecycle table. Absent source
// states (CHECKED_OUT, CANCELLED, NO_SHOW) are terminal. DRAFT is never a
// valid target: there is no "un-confirm".
var transitions = map[ReservationStatus][]ReservationStatus{
	StatusDraft:     {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCheckedOut},
}

// CanTransition reports whether from -> to is a legal lifecycle change.
func CanTransition(from, to ReservationStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition out of status is valid.
func (s ReservationStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Occupies reports whether a reservation in this status holds its room for
// availability purposes. Cancelled, no-show and checked-out stays never
// conflict with new bookings.
func (s ReservationStatus) Occupies() bool {
	switch s {
	case StatusDraft, StatusConfirmed, StatusCheckedIn:
		return true
	}
	return false
}

// ActiveStatuses lists the statuses considered occupying by the
// availability checker.
func ActiveStatuses() []ReservationStatus {
	return []ReservationStatus{StatusDraft, StatusConfirmed, StatusCheckedIn}
}

// Reservation is the booking header. Exactly one reservation owns exactly
// one stay segment and one folio; all three are created atomically.
type Reservation struct {
	ReservationID string            `json:"reservationID"`
	PropertyID    string            `json:"propertyID"`
	Status        ReservationStatus `json:"status"`
	PaymentStatus PaymentStatus     `json:"paymentStatus"`
	GuestName     string            `json:"guestName"`
	GuestEmail    string            `json:"guestEmail"`
	Source        string            `json:"source"`  // e.g. FRONT_DESK, PHONE, WALK_IN
	Channel       string            `json:"channel"` // optional booking channel tag
	Notes         string            `json:"notes"`
	AuditFields
}

// StaySegment is the room+date-range portion of a reservation.
// Invariant: EndDate > StartDate, half-open [StartDate, EndDate).
type StaySegment struct {
	ReservationID string    `json:"reservationID"`
	RoomID        string    `json:"roomID"`
	RoomTypeID    string    `json:"roomTypeID"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"` // exclusive; checkout day not occupied
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
}
