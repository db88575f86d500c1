//go:build unit

package builder

import (
	"time"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CustomerName string
	HotelID      uuid.UUID
	HotelName    string
	UserID       *uuid.UUID
	CheckIn      string
	CheckOut     string
	Status       string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		CustomerName: "Taro Yamada",
		HotelID:      uuid.New(),
		HotelName:    "Grand Hotel",
		CheckIn:      "2026-09-01",
		CheckOut:     "2026-09-05",
		Status:       "booked",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CustomerName: b.CustomerName,
		HotelID:      b.HotelID,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
	}
}

func (b *BookingBuilder) BuildView() *usecase.BookingView {
	checkIn, _ := time.Parse("2006-01-02", b.CheckIn)
	checkOut, _ := time.Parse("2006-01-02", b.CheckOut)
	return &usecase.BookingView{
		ID:           uuid.New(),
		UserID:       b.UserID,
		CustomerName: b.CustomerName,
		HotelID:      b.HotelID,
		HotelName:    b.HotelName,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Status:       b.Status,
		CreatedAt:    time.Now(),
	}
}
