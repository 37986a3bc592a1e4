package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"commuterhub/models"
)

// Number extraction is deliberately simple: the first integer literal of the
// fixed digit width for the resource kind. Lockers are 3-digit, racks 1-3.
var (
	lockerNumberPattern = regexp.MustCompile(`(\d{3})`)
	rackNumberPattern   = regexp.MustCompile(`(\d{1,3})`)
)

const cancelConfirmPrompt = "I found a reservation for %s. Are you sure you want to cancel it? Type YES to confirm or NO to keep it."

// handleCancel locates the reservation to cancel and asks for confirmation.
// ok=false when "cancel" appeared without any resource keyword, letting
// routing fall through to later intents.
func (t *turn) handleCancel(text string) (string, bool) {
	if strings.Contains(text, "study") || strings.Contains(text, "room") {
		return t.cancelStudyRoom(text), true
	}
	if strings.Contains(text, "locker") {
		return t.cancelLocker(text), true
	}
	if strings.Contains(text, "rack") {
		return t.cancelRack(text), true
	}
	return "", false
}

func (t *turn) cancelStudyRoom(text string) string {
	var study []models.Reservation
	for _, r := range t.reservations() {
		if strings.Contains(strings.ToLower(r.ResourceName), "study room") {
			study = append(study, r)
		}
	}
	if len(study) == 0 {
		return "I couldn't find any study room reservations to cancel."
	}

	var target *models.Reservation
	if strings.Contains(text, "room a") {
		target = findByRoomLetter(study, "room a")
	} else if strings.Contains(text, "room b") {
		target = findByRoomLetter(study, "room b")
	}

	if target == nil {
		// No explicit room: pick the earliest by date and time.
		earliest := study[0]
		earliestAt, _ := earliest.StartsAt()
		for _, r := range study[1:] {
			at, ok := r.StartsAt()
			if ok && (earliestAt.IsZero() || at.Before(earliestAt)) {
				earliest, earliestAt = r, at
			}
		}
		target = &earliest
	}

	label := fmt.Sprintf("%s on %s at %s", target.ResourceName, target.Date, target.Time)
	t.sess.PendingCancel = &models.PendingCancel{ReservationID: target.ID, Label: label}
	t.sess.PendingBooking = nil

	return fmt.Sprintf(cancelConfirmPrompt, label)
}

func findByRoomLetter(study []models.Reservation, letter string) *models.Reservation {
	for i := range study {
		if strings.Contains(strings.ToLower(study[i].ResourceName), letter) {
			return &study[i]
		}
	}
	return nil
}

func (t *turn) cancelLocker(text string) string {
	var lockers []models.Reservation
	for _, r := range t.reservations() {
		if r.IsLocker() {
			lockers = append(lockers, r)
		}
	}
	if len(lockers) == 0 {
		return "I couldn't find any locker reservations to cancel."
	}

	target := lockers[0]
	if m := lockerNumberPattern.FindStringSubmatch(text); m != nil {
		num, _ := strconv.Atoi(m[1])
		found := false
		for _, r := range lockers {
			if r.LockerNumber == num {
				target, found = r, true
				break
			}
		}
		if !found {
			return fmt.Sprintf("You don't have a reservation for Locker %d. Your locker reservations are: %s.",
				num, joinNumbers(lockers, func(r models.Reservation) int { return r.LockerNumber }))
		}
	}

	label := fmt.Sprintf("Locker %d", target.LockerNumber)
	t.sess.PendingCancel = &models.PendingCancel{ReservationID: target.ID, Label: label}
	t.sess.PendingBooking = nil

	return fmt.Sprintf(cancelConfirmPrompt, label)
}

func (t *turn) cancelRack(text string) string {
	var racks []models.Reservation
	for _, r := range t.reservations() {
		if r.IsRack() {
			racks = append(racks, r)
		}
	}
	if len(racks) == 0 {
		return "I couldn't find any bike/scooter rack reservations to cancel."
	}

	target := racks[0]
	if m := rackNumberPattern.FindStringSubmatch(text); m != nil {
		num, _ := strconv.Atoi(m[1])
		found := false
		for _, r := range racks {
			if r.RackNumber == num {
				target, found = r, true
				break
			}
		}
		if !found {
			return fmt.Sprintf("You don't have a reservation for Rack %d. Your rack reservations are: %s.",
				num, joinNumbers(racks, func(r models.Reservation) int { return r.RackNumber }))
		}
	}

	label := fmt.Sprintf("Rack %d", target.RackNumber)
	t.sess.PendingCancel = &models.PendingCancel{ReservationID: target.ID, Label: label}
	t.sess.PendingBooking = nil

	return fmt.Sprintf(cancelConfirmPrompt, label)
}

func joinNumbers(list []models.Reservation, pick func(models.Reservation) int) string {
	parts := make([]string, 0, len(list))
	for _, r := range list {
		parts = append(parts, strconv.Itoa(pick(r)))
	}
	return strings.Join(parts, ", ")
}
