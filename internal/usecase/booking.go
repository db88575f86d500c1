package usecase

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrNoRoomsAvailable = errs.New("no rooms available for selected dates")
	ErrNotPermitted     = errs.New("not permitted to modify this booking")
)

// BookingView joins the hotel name for list endpoints.
type BookingView struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"user_id"`
	CustomerName string     `json:"customer_name"`
	HotelID      uuid.UUID  `json:"hotel_id"`
	HotelName    string     `json:"hotel"`
	CheckIn      time.Time  `json:"check_in"`
	CheckOut     time.Time  `json:"check_out"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// BookingRecord is the minimal write-side snapshot for permission checks.
type BookingRecord struct {
	ID      uuid.UUID
	UserID  *uuid.UUID
	HotelID uuid.UUID
	Status  booking.Status
}

type Availability struct {
	Available   bool `json:"available"`
	RoomsBooked int  `json:"rooms_booked"`
	TotalRooms  int  `json:"total_rooms"`
}

type CreateBookingParams struct {
	UserID       *uuid.UUID
	CustomerName string
	HotelID      uuid.UUID
	CheckIn      time.Time
	CheckOut     time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, q db.DBTX, b *booking.Booking) (uuid.UUID, error)
	CountOverlapping(ctx context.Context, q db.DBTX, hotelID uuid.UUID, period booking.StayPeriod) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

// TxRunner serializes the availability check with the insert. The pgx
// implementation retries serialization failures; fakes may call fn directly.
type TxRunner interface {
	Within(ctx context.Context, fn func(tx db.DBTX) error) error
}

type BookingUseCase interface {
	CheckAvailability(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time) (*Availability, error)
	CreateBooking(ctx context.Context, params CreateBookingParams) (uuid.UUID, error)
	ListBookings(ctx context.Context) ([]*BookingView, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actor booking.Actor) error
	DeleteBooking(ctx context.Context, bookingID uuid.UUID, actor booking.Actor) error
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	hotelRepo   HotelRepository
	txRunner    TxRunner
	db          db.DBTX
}

func NewBookingUseCase(bookingRepo BookingRepository, hotelRepo HotelRepository, txRunner TxRunner, database db.DBTX) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		hotelRepo:   hotelRepo,
		txRunner:    txRunner,
		db:          database,
	}
}

// CheckAvailability is a pure read: it counts booked-status bookings whose
// stay period overlaps the requested one and compares against total rooms.
func (u *bookingUseCaseImpl) CheckAvailability(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time) (*Availability, error) {
	period, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	hotelEntity, err := u.hotelRepo.FindByID(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	booked, err := u.bookingRepo.CountOverlapping(ctx, u.db, hotelID, period)
	if err != nil {
		return nil, err
	}

	return &Availability{
		Available:   booked < hotelEntity.TotalRooms(),
		RoomsBooked: booked,
		TotalRooms:  hotelEntity.TotalRooms(),
	}, nil
}

// CreateBooking runs the availability check and the insert inside one
// transaction. The SELECT ... FOR UPDATE on the hotel row orders concurrent
// create attempts for the same hotel, so the overlap count can never oversell.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (uuid.UUID, error) {
	period, err := booking.NewStayPeriod(params.CheckIn, params.CheckOut)
	if err != nil {
		return uuid.Nil, err
	}

	entity, err := booking.NewBooking(params.UserID, params.CustomerName, params.HotelID, period)
	if err != nil {
		return uuid.Nil, err
	}

	var bookingID uuid.UUID
	err = u.txRunner.Within(ctx, func(tx db.DBTX) error {
		hotelEntity, err := u.hotelRepo.FindByIDForUpdate(ctx, tx, params.HotelID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrHotelNotFound
			}
			return err
		}

		booked, err := u.bookingRepo.CountOverlapping(ctx, tx, params.HotelID, period)
		if err != nil {
			return err
		}

		if booked >= hotelEntity.TotalRooms() {
			return ErrNoRoomsAvailable
		}

		bookingID, err = u.bookingRepo.Create(ctx, tx, entity)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}

	return bookingID, nil
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context) ([]*BookingView, error) {
	return u.bookingRepo.FindAll(ctx)
}

func (u *bookingUseCaseImpl) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return u.bookingRepo.FindByUserID(ctx, userID)
}

// CancelBooking sets status to cancelled. Re-cancelling an already cancelled
// booking succeeds and leaves the row unchanged; the update is idempotent and
// callers rely on that.
func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, actor booking.Actor) error {
	record, err := u.authorizeModification(ctx, bookingID, actor)
	if err != nil {
		return err
	}

	if record.Status == booking.StatusCancelled {
		return nil
	}

	return u.bookingRepo.UpdateStatus(ctx, bookingID, booking.StatusCancelled)
}

// DeleteBooking removes the record permanently. There is no soft delete.
func (u *bookingUseCaseImpl) DeleteBooking(ctx context.Context, bookingID uuid.UUID, actor booking.Actor) error {
	if _, err := u.authorizeModification(ctx, bookingID, actor); err != nil {
		return err
	}

	return u.bookingRepo.Delete(ctx, bookingID)
}

func (u *bookingUseCaseImpl) authorizeModification(ctx context.Context, bookingID uuid.UUID, actor booking.Actor) (*BookingRecord, error) {
	record, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !booking.CanModify(actor, record.UserID) {
		return nil, ErrNotPermitted
	}

	return record, nil
}
