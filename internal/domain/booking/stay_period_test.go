//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func period(t *testing.T, in, out string) booking.StayPeriod {
	t.Helper()
	p, err := booking.NewStayPeriod(day(in), day(out))
	require.NoError(t, err)
	return p
}

func TestNewStayPeriod(t *testing.T) {
	t.Run("期間検証", func(t *testing.T) {
		cases := []struct {
			name     string
			checkIn  string
			checkOut string
			errIs    error
		}{
			{name: "1泊OK", checkIn: "2024-06-01", checkOut: "2024-06-02"},
			{name: "長期滞在OK", checkIn: "2024-06-01", checkOut: "2024-07-01"},
			{name: "同日NG", checkIn: "2024-06-01", checkOut: "2024-06-01", errIs: booking.ErrInvalidStayPeriod},
			{name: "逆転NG", checkIn: "2024-06-05", checkOut: "2024-06-01", errIs: booking.ErrInvalidStayPeriod},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p, err := booking.NewStayPeriod(day(tc.checkIn), day(tc.checkOut))
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, day(tc.checkIn), p.CheckIn())
				assert.Equal(t, day(tc.checkOut), p.CheckOut())
			})
		}
	})
}

func TestStayPeriod_Overlaps(t *testing.T) {
	base := func(t *testing.T) booking.StayPeriod { return period(t, "2024-06-01", "2024-06-05") }

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{name: "完全に内包する期間", checkIn: "2024-06-02", checkOut: "2024-06-04", want: true},
		{name: "完全に内包される期間", checkIn: "2024-05-01", checkOut: "2024-07-01", want: true},
		{name: "前方が重なる期間", checkIn: "2024-05-30", checkOut: "2024-06-02", want: true},
		{name: "後方が重なる期間", checkIn: "2024-06-04", checkOut: "2024-06-10", want: true},
		{name: "同一期間", checkIn: "2024-06-01", checkOut: "2024-06-05", want: true},
		{name: "チェックアウト日に始まる隣接期間", checkIn: "2024-06-05", checkOut: "2024-06-10", want: false},
		{name: "チェックイン日に終わる隣接期間", checkIn: "2024-05-28", checkOut: "2024-06-01", want: false},
		{name: "完全に離れた期間", checkIn: "2024-07-01", checkOut: "2024-07-05", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := period(t, tc.checkIn, tc.checkOut)
			assert.Equal(t, tc.want, base(t).Overlaps(other))
			assert.Equal(t, tc.want, other.Overlaps(base(t)), "overlap must be symmetric")
		})
	}
}

func TestStayPeriod_Nights(t *testing.T) {
	assert.Equal(t, 1, period(t, "2024-06-01", "2024-06-02").Nights())
	assert.Equal(t, 4, period(t, "2024-06-01", "2024-06-05").Nights())
}
