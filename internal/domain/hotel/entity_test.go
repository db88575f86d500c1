//go:build unit

package hotel_test

import (
	"strings"
	"testing"

	"hotel-booking-api/internal/domain/hotel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHotel(t *testing.T) *hotel.Hotel {
	t.Helper()
	h, err := hotel.NewHotel("Grand Hotel", "Tokyo", 120.0, 10, "A fine place", nil)
	require.NoError(t, err)
	return h
}

func TestNewHotel(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		h := newHotel(t)

		assert.NotEqual(t, uuid.Nil, h.ID())
		assert.Equal(t, "Grand Hotel", h.Name())
		assert.Equal(t, 10, h.TotalRooms())
		assert.Nil(t, h.ImageURL())
	})

	t.Run("入力検証", func(t *testing.T) {
		cases := []struct {
			name       string
			hotelName  string
			price      float64
			totalRooms int
			errIs      error
		}{
			{name: "空の名前NG", hotelName: "", price: 100, totalRooms: 1, errIs: hotel.ErrEmptyHotelName},
			{name: "空白のみの名前NG", hotelName: "   ", price: 100, totalRooms: 1, errIs: hotel.ErrEmptyHotelName},
			{name: "長すぎる名前NG", hotelName: strings.Repeat("a", 256), price: 100, totalRooms: 1, errIs: hotel.ErrHotelNameTooLong},
			{name: "負の価格NG", hotelName: "Hotel", price: -1, totalRooms: 1, errIs: hotel.ErrNegativePrice},
			{name: "部屋数ゼロNG", hotelName: "Hotel", price: 100, totalRooms: 0, errIs: hotel.ErrInvalidRoomCount},
			{name: "価格ゼロOK", hotelName: "Hotel", price: 0, totalRooms: 1},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := hotel.NewHotel(tc.hotelName, "Tokyo", tc.price, tc.totalRooms, "", nil)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})
}

func TestHotel_Apply(t *testing.T) {
	t.Run("指定したフィールドだけ更新される", func(t *testing.T) {
		h := newHotel(t)

		name := "Renamed Hotel"
		price := 200.0
		updated, err := h.Apply(&name, nil, &price, nil, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "Renamed Hotel", updated.Name())
		assert.Equal(t, 200.0, updated.PricePerNight())
		assert.Equal(t, h.Location(), updated.Location())
		assert.Equal(t, h.TotalRooms(), updated.TotalRooms())
		assert.Equal(t, h.Description(), updated.Description())

		// Original stays untouched.
		assert.Equal(t, "Grand Hotel", h.Name())
	})

	t.Run("画像URLの差し替え", func(t *testing.T) {
		h := newHotel(t)

		imageURL := "/uploads/new.jpg"
		updated, err := h.Apply(nil, nil, nil, nil, nil, &imageURL)
		require.NoError(t, err)
		require.NotNil(t, updated.ImageURL())
		assert.Equal(t, "/uploads/new.jpg", *updated.ImageURL())
	})

	t.Run("更新後も検証は有効", func(t *testing.T) {
		h := newHotel(t)

		price := -10.0
		_, err := h.Apply(nil, nil, &price, nil, nil, nil)
		assert.ErrorIs(t, err, hotel.ErrNegativePrice)

		rooms := 0
		_, err = h.Apply(nil, nil, nil, &rooms, nil, nil)
		assert.ErrorIs(t, err, hotel.ErrInvalidRoomCount)
	})
}
