package response

import (
	"time"

	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateBookingResponse struct {
	Message   string    `json:"message"`
	BookingID uuid.UUID `json:"bookingId"`
}

type BookingResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"user_id"`
	CustomerName string     `json:"customer_name"`
	Hotel        string     `json:"hotel"`
	CheckIn      string     `json:"check_in"`
	CheckOut     string     `json:"check_out"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

type AvailabilityResponse struct {
	Available   bool `json:"available"`
	RoomsBooked int  `json:"rooms_booked"`
	TotalRooms  int  `json:"total_rooms"`
}

func FromBookingView(rm *usecase.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           rm.ID,
		UserID:       rm.UserID,
		CustomerName: rm.CustomerName,
		Hotel:        rm.HotelName,
		CheckIn:      rm.CheckIn.Format(dateLayout),
		CheckOut:     rm.CheckOut.Format(dateLayout),
		Status:       rm.Status,
		CreatedAt:    rm.CreatedAt,
	}
}

func FromBookingViews(rms []*usecase.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromBookingView(rm)
	}
	return out
}

func FromAvailability(rm *usecase.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		Available:   rm.Available,
		RoomsBooked: rm.RoomsBooked,
		TotalRooms:  rm.TotalRooms,
	}
}
