package booking

import "github.com/google/uuid"

// Actor is the authenticated principal attempting a mutation.
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}

// CanModify decides whether the actor may cancel or delete a booking owned by
// ownerID (nil = guest booking). Admins may modify anything; guest bookings
// are admin-only; everyone else must own the booking. Pure decision, shared by
// cancel and delete so the two paths cannot drift apart.
func CanModify(actor Actor, ownerID *uuid.UUID) bool {
	if actor.IsAdmin {
		return true
	}
	if ownerID == nil {
		return false
	}
	return actor.ID == *ownerID
}
