package booking

import (
	"errors"
	"time"
)

var ErrInvalidStayPeriod = errors.New("check-in must be before check-out")

// StayPeriod is the half-open interval [checkIn, checkOut). Check-out day is
// exclusive, so back-to-back stays on the same day do not collide.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	if !checkIn.Before(checkOut) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}

	return StayPeriod{
		checkIn:  checkIn,
		checkOut: checkOut,
	}, nil
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

// Overlaps reports whether two half-open intervals intersect:
// [a1,a2) and [b1,b2) overlap iff a1 < b2 && b1 < a2.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}
