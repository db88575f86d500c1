package request

import (
	"time"

	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errs.New("invalid date format, expected YYYY-MM-DD")

type CreateBookingRequest struct {
	CustomerName string    `json:"customer_name" binding:"required"`
	HotelID      uuid.UUID `json:"hotel_id" binding:"required"`
	CheckIn      string    `json:"check_in" binding:"required"`
	CheckOut     string    `json:"check_out" binding:"required"`
}

func (r CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = ParseDate(r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	checkOut, err = ParseDate(r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return checkIn, checkOut, nil
}

type AvailabilityQuery struct {
	HotelID  uuid.UUID `form:"hotel_id" binding:"required"`
	CheckIn  string    `form:"check_in" binding:"required"`
	CheckOut string    `form:"check_out" binding:"required"`
}

func (q AvailabilityQuery) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = ParseDate(q.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	checkOut, err = ParseDate(q.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return checkIn, checkOut, nil
}

// ParseDate accepts the calendar-date form the booking UI sends.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
