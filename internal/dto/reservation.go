package dto

import (
	"github.com/StaySuite/stay_booking_app/internal/core/domain"
	"github.com/StaySuite/stay_booking_app/internal/utils/dates"
)

// CreateStayRequest is the payload for booking a room. Dates are half-open
// day keys: the guest occupies [startDate, endDate).
type CreateStayRequest struct {
	RoomID     string `json:"roomID" binding:"required"`
	StartDate  string `json:"startDate" binding:"required,daykey"`
	EndDate    string `json:"endDate" binding:"required,daykey"`
	GuestName  string `json:"guestName" binding:"required"`
	GuestEmail string `json:"guestEmail" binding:"omitempty,email"`
	Adults     int    `json:"adults" binding:"required,min=1"`
	Children   int    `json:"children" binding:"min=0"`
	Source     string `json:"source"`
	Channel    string `json:"channel"`
	Notes      string `json:"notes"`
	// Hold creates the reservation as a DRAFT hold instead of CONFIRMED.
	Hold bool `json:"hold"`
}

// ChangeStayDatesRequest is the payload for moving a stay to new dates.
type ChangeStayDatesRequest struct {
	StartDate string `json:"startDate" binding:"required,daykey"`
	EndDate   string `json:"endDate" binding:"required,daykey"`
}

// MoveRoomRequest is the payload for moving a stay to another room.
type MoveRoomRequest struct {
	RoomID string `json:"roomID" binding:"required"`
}

// TransitionRequest is the payload for a lifecycle status change.
type TransitionRequest struct {
	ToStatus string `json:"toStatus" binding:"required"`
}

// ReservationResponse is the reservation header plus its stay segment.
type ReservationResponse struct {
	ReservationID string `json:"reservationID"`
	PropertyID    string `json:"propertyID"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	GuestName     string `json:"guestName"`
	GuestEmail    string `json:"guestEmail"`
	Source        string `json:"source"`
	Channel       string `json:"channel"`
	Notes         string `json:"notes"`
	RoomID        string `json:"roomID"`
	RoomTypeID    string `json:"roomTypeID"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	CreatedAt     string `json:"createdAt"`
}

// ToReservationResponse converts a domain reservation and its stay segment
// to the API shape, rendering dates as day keys.
func ToReservationResponse(r *domain.Reservation, s *domain.StaySegment) ReservationResponse {
	resp := ReservationResponse{
		ReservationID: r.ReservationID,
		PropertyID:    r.PropertyID,
		Status:        string(r.Status),
		PaymentStatus: string(r.PaymentStatus),
		GuestName:     r.GuestName,
		GuestEmail:    r.GuestEmail,
		Source:        r.Source,
		Channel:       r.Channel,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if s != nil {
		resp.RoomID = s.RoomID
		resp.RoomTypeID = s.RoomTypeID
		resp.StartDate = dates.FormatDayKey(s.StartDate)
		resp.EndDate = dates.FormatDayKey(s.EndDate)
		resp.Adults = s.Adults
		resp.Children = s.Children
	}
	return resp
}

// ListReservationsResponse is a paginated reservation listing.
type ListReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
