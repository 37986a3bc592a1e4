package assistant

import (
	"fmt"
	"strings"
	"time"

	"commuterhub/models"
)

// reservationsSummary describes the user's current reservations: the next
// upcoming timed booking plus locker and rack counts.
func (t *turn) reservationsSummary() string {
	reservations := t.reservations()
	if len(reservations) == 0 {
		return "You do not have any active reservations yet."
	}

	now := t.svc.Now()

	var b strings.Builder

	if upcoming, ok := earliestUpcoming(reservations, now); ok {
		fmt.Fprintf(&b, "You have an upcoming reservation for %s on %s at %s for %d hour(s). ",
			upcoming.ResourceName, upcoming.Date, upcoming.Time, upcoming.Duration)
	}

	lockers, racks := 0, 0
	for _, r := range reservations {
		if r.IsLocker() {
			lockers++
		}
		if r.IsRack() {
			racks++
		}
	}
	if lockers > 0 {
		fmt.Fprintf(&b, "You currently have %d locker reservation(s) (reserved until released). ", lockers)
	}
	if racks > 0 {
		fmt.Fprintf(&b, "You currently have %d bike/scooter rack reservation(s) (reserved until released). ", racks)
	}

	if b.Len() == 0 {
		return "You have reservations, but none with specific times coming up soon."
	}
	return strings.TrimSpace(b.String())
}

func earliestUpcoming(reservations []models.Reservation, now time.Time) (models.Reservation, bool) {
	var best models.Reservation
	var bestAt time.Time
	found := false

	for _, r := range reservations {
		at, ok := r.StartsAt()
		if !ok || at.Before(now) {
			continue
		}
		if !found || at.Before(bestAt) {
			best, bestAt, found = r, at, true
		}
	}
	return best, found
}
