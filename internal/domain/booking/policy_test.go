//go:build unit

package booking_test

import (
	"testing"

	"hotel-booking-api/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	admin := uuid.New()

	cases := []struct {
		name    string
		actor   booking.Actor
		ownerID *uuid.UUID
		want    bool
	}{
		{name: "本人の予約OK", actor: booking.Actor{ID: owner}, ownerID: &owner, want: true},
		{name: "他人の予約NG", actor: booking.Actor{ID: stranger}, ownerID: &owner, want: false},
		{name: "管理者は他人の予約OK", actor: booking.Actor{ID: admin, IsAdmin: true}, ownerID: &owner, want: true},
		{name: "ゲスト予約は一般ユーザーNG", actor: booking.Actor{ID: stranger}, ownerID: nil, want: false},
		{name: "ゲスト予約は管理者OK", actor: booking.Actor{ID: admin, IsAdmin: true}, ownerID: nil, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, booking.CanModify(tc.actor, tc.ownerID))
		})
	}
}

func TestNewBooking(t *testing.T) {
	hotelID := uuid.New()
	p := period(t, "2024-06-01", "2024-06-05")

	t.Run("ゲスト予約OK", func(t *testing.T) {
		b, err := booking.NewBooking(nil, "Taro Yamada", hotelID, p)
		assert.NoError(t, err)
		assert.True(t, b.IsGuest())
		assert.Equal(t, booking.StatusBooked, b.Status())
		assert.NotEqual(t, uuid.Nil, b.ID())
	})

	t.Run("会員予約OK", func(t *testing.T) {
		userID := uuid.New()
		b, err := booking.NewBooking(&userID, "Taro Yamada", hotelID, p)
		assert.NoError(t, err)
		assert.False(t, b.IsGuest())
		assert.Equal(t, userID, *b.UserID())
	})

	t.Run("氏名空NG", func(t *testing.T) {
		_, err := booking.NewBooking(nil, "   ", hotelID, p)
		assert.ErrorIs(t, err, booking.ErrEmptyCustomerName)
	})
}
