package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName   = errors.New("customer name cannot be empty")
	ErrCustomerNameTooLong = errors.New("customer name is too long (max 255 characters)")
)

const MaxCustomerNameLength = 255

// Booking reserves one room of a hotel for a stay period. No physical room is
// assigned: the availability invariant is an aggregate overlap count against
// the hotel's total rooms. userID is nil for guest bookings.
type Booking struct {
	id           uuid.UUID
	userID       *uuid.UUID
	customerName string
	hotelID      uuid.UUID
	period       StayPeriod
	status       Status
	createdAt    time.Time
}

func NewBooking(userID *uuid.UUID, customerName string, hotelID uuid.UUID, period StayPeriod) (*Booking, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if len(customerName) > MaxCustomerNameLength {
		return nil, ErrCustomerNameTooLong
	}

	return &Booking{
		id:           uuid.New(),
		userID:       userID,
		customerName: customerName,
		hotelID:      hotelID,
		period:       period,
		status:       StatusBooked,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	userID *uuid.UUID,
	customerName string,
	hotelID uuid.UUID,
	period StayPeriod,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		userID:       userID,
		customerName: customerName,
		hotelID:      hotelID,
		period:       period,
		status:       status,
		createdAt:    createdAt,
	}
}

func (b *Booking) IsGuest() bool {
	return b.userID == nil
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() *uuid.UUID   { return b.userID }
func (b *Booking) CustomerName() string { return b.customerName }
func (b *Booking) HotelID() uuid.UUID   { return b.hotelID }
func (b *Booking) Period() StayPeriod   { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
