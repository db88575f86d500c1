package repository

import (
	"context"
	"errors"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	createBookingQuery = `
		INSERT INTO bookings (id, user_id, customer_name, hotel_id, check_in, check_out, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	// Half-open [check_in, check_out) overlap: existing.check_in < wanted.check_out
	// AND existing.check_out > wanted.check_in. Cancelled rows never count.
	countOverlappingQuery = `
		SELECT COUNT(*)
		FROM bookings
		WHERE hotel_id = $1
		  AND status = 'booked'
		  AND check_in < $2
		  AND check_out > $3`

	findBookingByIDQuery = `
		SELECT id, user_id, hotel_id, status
		FROM bookings
		WHERE id = $1`

	updateBookingStatusQuery = `
		UPDATE bookings
		SET status = $2
		WHERE id = $1`

	deleteBookingQuery = `
		DELETE FROM bookings
		WHERE id = $1`

	bookingViewColumns = `
		b.id, b.user_id, b.customer_name, b.hotel_id, h.name, b.check_in, b.check_out, b.status, b.created_at`

	findAllBookingsQuery = `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN hotels h ON b.hotel_id = h.id
		ORDER BY b.created_at DESC`

	findBookingsByUserQuery = `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN hotels h ON b.hotel_id = h.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(database db.DBTX) *BookingRepository {
	return &BookingRepository{db: database}
}

func (r *BookingRepository) Create(ctx context.Context, q db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.QueryRow(ctx, createBookingQuery,
		b.ID(), pgconv.UUIDPtrToPgtype(b.UserID()), b.CustomerName(), b.HotelID(),
		b.Period().CheckIn(), b.Period().CheckOut(), b.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) CountOverlapping(ctx context.Context, q db.DBTX, hotelID uuid.UUID, period booking.StayPeriod) (int, error) {
	var count int
	err := q.QueryRow(ctx, countOverlappingQuery, hotelID, period.CheckOut(), period.CheckIn()).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}

	return count, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.BookingRecord, error) {
	var (
		record    usecase.BookingRecord
		userID    pgtype.UUID
		statusStr string
	)
	err := r.db.QueryRow(ctx, findBookingByIDQuery, id).Scan(&record.ID, &userID, &record.HotelID, &statusStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	status, err := booking.NewStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking status in store", err)
	}
	record.UserID = pgconv.UUIDPtrFromPgtype(userID)
	record.Status = status

	return &record, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusQuery, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteBookingQuery, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]*usecase.BookingView, error) {
	rows, err := r.db.Query(ctx, findAllBookingsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*usecase.BookingView, error) {
	rows, err := r.db.Query(ctx, findBookingsByUserQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func collectBookingViews(rows pgx.Rows) ([]*usecase.BookingView, error) {
	views := make([]*usecase.BookingView, 0)
	for rows.Next() {
		var (
			v      usecase.BookingView
			userID pgtype.UUID
		)
		err := rows.Scan(&v.ID, &userID, &v.CustomerName, &v.HotelID, &v.HotelName,
			&v.CheckIn, &v.CheckOut, &v.Status, &v.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		v.UserID = pgconv.UUIDPtrFromPgtype(userID)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}

	return views, nil
}
