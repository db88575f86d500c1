package response

import (
	"time"

	"hotel-booking-api/internal/domain/hotel"

	"github.com/google/uuid"
)

type HotelResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	PricePerNight float64   `json:"price_per_night"`
	TotalRooms    int       `json:"total_rooms"`
	Description   string    `json:"description"`
	ImageURL      *string   `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type HotelUpdatedResponse struct {
	Message string        `json:"message"`
	Hotel   HotelResponse `json:"hotel"`
}

type HotelImageResponse struct {
	Message  string        `json:"message"`
	ImageURL string        `json:"image_url"`
	Hotel    HotelResponse `json:"hotel"`
}

func FromHotel(h *hotel.Hotel) HotelResponse {
	return HotelResponse{
		ID:            h.ID(),
		Name:          h.Name(),
		Location:      h.Location(),
		PricePerNight: h.PricePerNight(),
		TotalRooms:    h.TotalRooms(),
		Description:   h.Description(),
		ImageURL:      h.ImageURL(),
		CreatedAt:     h.CreatedAt(),
		UpdatedAt:     h.UpdatedAt(),
	}
}

func FromHotels(hs []*hotel.Hotel) []HotelResponse {
	out := make([]HotelResponse, len(hs))
	for i, h := range hs {
		out[i] = FromHotel(h)
	}
	return out
}
