package hotel

import (
	"errors"
	"strings"
	"time"

	"hotel-booking-api/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyHotelName   = errors.New("hotel name cannot be empty")
	ErrHotelNameTooLong = errors.New("hotel name is too long (max 255 characters)")
	ErrNegativePrice    = errors.New("price per night cannot be negative")
	ErrInvalidRoomCount = errors.New("total rooms must be a positive integer")
)

const MaxHotelNameLength = 255

type Hotel struct {
	id            uuid.UUID
	name          string
	location      string
	pricePerNight float64
	totalRooms    int
	description   string
	imageURL      *string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewHotel(name, location string, pricePerNight float64, totalRooms int, description string, imageURL *string) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if err := validate(name, pricePerNight, totalRooms); err != nil {
		return nil, err
	}

	return &Hotel{
		id:            uuid.New(),
		name:          name,
		location:      location,
		pricePerNight: pricePerNight,
		totalRooms:    totalRooms,
		description:   description,
		imageURL:      imageURL,
	}, nil
}

func ReconstructHotel(
	id uuid.UUID,
	name, location string,
	pricePerNight float64,
	totalRooms int,
	description string,
	imageURL *string,
	createdAt, updatedAt time.Time,
) *Hotel {
	return &Hotel{
		id:            id,
		name:          name,
		location:      location,
		pricePerNight: pricePerNight,
		totalRooms:    totalRooms,
		description:   description,
		imageURL:      imageURL,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Apply returns a copy with the non-nil fields replaced. Multipart updates are
// partial: absent form fields keep the current value.
func (h *Hotel) Apply(name, location *string, pricePerNight *float64, totalRooms *int, description, imageURL *string) (*Hotel, error) {
	next := *h
	if name != nil {
		next.name = strings.TrimSpace(*name)
	}
	next.location = patch.Coalesce(location, h.location)
	next.pricePerNight = patch.Coalesce(pricePerNight, h.pricePerNight)
	next.totalRooms = patch.Coalesce(totalRooms, h.totalRooms)
	next.description = patch.Coalesce(description, h.description)
	if imageURL != nil {
		next.imageURL = imageURL
	}

	if err := validate(next.name, next.pricePerNight, next.totalRooms); err != nil {
		return nil, err
	}
	return &next, nil
}

func validate(name string, pricePerNight float64, totalRooms int) error {
	if name == "" {
		return ErrEmptyHotelName
	}
	if len(name) > MaxHotelNameLength {
		return ErrHotelNameTooLong
	}
	if pricePerNight < 0 {
		return ErrNegativePrice
	}
	if totalRooms < 1 {
		return ErrInvalidRoomCount
	}
	return nil
}

func (h *Hotel) ID() uuid.UUID          { return h.id }
func (h *Hotel) Name() string           { return h.name }
func (h *Hotel) Location() string       { return h.location }
func (h *Hotel) PricePerNight() float64 { return h.pricePerNight }
func (h *Hotel) TotalRooms() int        { return h.totalRooms }
func (h *Hotel) Description() string    { return h.description }
func (h *Hotel) ImageURL() *string      { return h.imageURL }
func (h *Hotel) CreatedAt() time.Time   { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time   { return h.updatedAt }
