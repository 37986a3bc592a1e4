package assistant

import (
	"fmt"
	"strconv"
	"strings"

	"commuterhub/models"
)

// handleBookLocker starts the single-step locker flow: validate or pick a
// number, then wait for YES/NO.
func (t *turn) handleBookLocker(text string) (string, bool) {
	if _, ok := t.findLockerResource(); !ok {
		return "I could not find a locker resource in the app. Please use the Resources tab to reserve a locker.", true
	}

	rng := t.svc.LockerRange

	if m := lockerNumberPattern.FindStringSubmatch(text); m != nil {
		num, _ := strconv.Atoi(m[1])

		if num < rng.Start || num > rng.End {
			return fmt.Sprintf("Locker %d is outside the valid range (%d–%d).", num, rng.Start, rng.End), true
		}
		if !LockerFree(t.reservations(), num) {
			return fmt.Sprintf(`Locker %d is already reserved. Try a different number or say "free lockers" to check availability.`, num), true
		}

		t.sess.PendingBooking = &models.PendingBooking{Kind: models.BookingKindLocker, LockerNumber: num}
		t.sess.PendingCancel = nil
		return fmt.Sprintf("Locker %d is free. Do you want me to reserve it for you now? Type YES or NO.", num), true
	}

	// No explicit number: scan the range ascending for the first free slot.
	reservations := t.reservations()
	firstFree := 0
	for n := rng.Start; n <= rng.End; n++ {
		if LockerFree(reservations, n) {
			firstFree = n
			break
		}
	}
	if firstFree == 0 {
		return fmt.Sprintf("All lockers from %d to %d appear to be reserved right now.", rng.Start, rng.End), true
	}

	t.sess.PendingBooking = &models.PendingBooking{Kind: models.BookingKindLocker, LockerNumber: firstFree}
	t.sess.PendingCancel = nil
	return fmt.Sprintf("The first free locker I see is Locker %d. Do you want me to reserve it for you? Type YES or NO.", firstFree), true
}

// findLockerResource returns the first catalog resource whose name mentions a
// locker.
func (t *turn) findLockerResource() (models.Resource, bool) {
	for _, r := range t.resources() {
		if strings.Contains(strings.ToLower(r.Name), "locker") {
			return r, true
		}
	}
	return models.Resource{}, false
}
