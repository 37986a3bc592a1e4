package assistant

import (
	"commuterhub/models"
)

// Locker and rack numbers live in a single shared numbering space across all
// locker/rack resources, so these predicates ignore the resource ID. That
// mirrors how the reservation ledger is used everywhere else; do not scope
// them per resource without revisiting every call site.

// LockerFree reports whether no reservation holds the given locker number.
func LockerFree(reservations []models.Reservation, number int) bool {
	for _, r := range reservations {
		if r.LockerNumber == number {
			return false
		}
	}
	return true
}

// RackFree reports whether no reservation holds the given rack number.
func RackFree(reservations []models.Reservation, number int) bool {
	for _, r := range reservations {
		if r.RackNumber == number {
			return false
		}
	}
	return true
}

// SlotFree reports whether the candidate interval [time24, time24+duration)
// on the given resource and date overlaps no other reservation. excludeID
// skips a reservation, for modify flows. Reservations without a date or time
// never conflict.
func SlotFree(reservations []models.Reservation, resourceID, date, time24 string, durationHours int, excludeID string) bool {
	start, ok := minutesOfDay(time24)
	if !ok {
		return true
	}
	end := start + durationHours*60

	for _, r := range reservations {
		if r.ID == excludeID || r.ResourceID != resourceID || r.Date != date || !r.IsTimed() {
			continue
		}
		otherStart, ok := minutesOfDay(r.Time)
		if !ok {
			continue
		}
		otherEnd := otherStart + r.Duration*60
		// Half-open interval intersection.
		if start < otherEnd && end > otherStart {
			return false
		}
	}
	return true
}

func minutesOfDay(time24 string) (int, bool) {
	if len(time24) != 5 || time24[2] != ':' {
		return 0, false
	}
	hh := int(time24[0]-'0')*10 + int(time24[1]-'0')
	mm := int(time24[3]-'0')*10 + int(time24[4]-'0')
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, false
	}
	return hh*60 + mm, true
}
