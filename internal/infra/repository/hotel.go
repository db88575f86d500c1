package repository

import (
	"context"
	"errors"
	"time"

	"hotel-booking-api/internal/domain/hotel"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	createHotelQuery = `
		INSERT INTO hotels (id, name, location, price_per_night, total_rooms, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	hotelColumns = `id, name, location, price_per_night, total_rooms, description, image_url, created_at, updated_at`

	findHotelByIDQuery = `
		SELECT ` + hotelColumns + `
		FROM hotels
		WHERE id = $1`

	// FOR UPDATE serializes concurrent booking attempts per hotel.
	findHotelByIDForUpdateQuery = findHotelByIDQuery + `
		FOR UPDATE`

	findAllHotelsQuery = `
		SELECT ` + hotelColumns + `
		FROM hotels
		ORDER BY created_at DESC`

	updateHotelQuery = `
		UPDATE hotels
		SET name = $2, location = $3, price_per_night = $4, total_rooms = $5,
		    description = $6, image_url = $7, updated_at = now()
		WHERE id = $1`

	deleteHotelQuery = `
		DELETE FROM hotels
		WHERE id = $1`
)

type HotelRepository struct {
	db db.DBTX
}

func NewHotelRepository(database db.DBTX) *HotelRepository {
	return &HotelRepository{db: database}
}

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createHotelQuery,
		h.ID(), h.Name(), h.Location(), h.PricePerNight(), h.TotalRooms(), h.Description(), pgconv.StringPtrToPgtype(h.ImageURL()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create hotel", err)
	}

	return id, nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	return scanHotel(r.db.QueryRow(ctx, findHotelByIDQuery, id))
}

func (r *HotelRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*hotel.Hotel, error) {
	return scanHotel(tx.QueryRow(ctx, findHotelByIDForUpdateQuery, id))
}

func (r *HotelRepository) FindAll(ctx context.Context) ([]*hotel.Hotel, error) {
	rows, err := r.db.Query(ctx, findAllHotelsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	hotels := make([]*hotel.Hotel, 0)
	for rows.Next() {
		h, err := scanHotelRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hotels", err)
	}

	return hotels, nil
}

func (r *HotelRepository) Update(ctx context.Context, h *hotel.Hotel) error {
	tag, err := r.db.Exec(ctx, updateHotelQuery,
		h.ID(), h.Name(), h.Location(), h.PricePerNight(), h.TotalRooms(), h.Description(), pgconv.StringPtrToPgtype(h.ImageURL()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteHotelQuery, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}

	return nil
}

func scanHotel(row pgx.Row) (*hotel.Hotel, error) {
	h, err := scanHotelRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel", err)
	}
	return h, nil
}

func scanHotelRow(row pgx.Row) (*hotel.Hotel, error) {
	var (
		id                   uuid.UUID
		name                 string
		location             string
		pricePerNight        float64
		totalRooms           int
		description          string
		imageURL             pgtype.Text
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &location, &pricePerNight, &totalRooms, &description, &imageURL, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return hotel.ReconstructHotel(id, name, location, pricePerNight, totalRooms, description,
		pgconv.StringPtrFromPgtype(imageURL), createdAt, updatedAt), nil
}
