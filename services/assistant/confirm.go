package assistant

import (
	"fmt"

	"commuterhub/models"
)

// handleAffirm resolves a pending cancellation or booking. ok=false means no
// pending action matched the affirmation, and routing should continue.
func (t *turn) handleAffirm() (string, bool) {
	if pc := t.sess.PendingCancel; pc != nil {
		label := pc.Label
		t.sess.PendingCancel = nil
		t.removeReservation(pc.ReservationID, "Reservation cancelled via Rammy")
		return fmt.Sprintf("✅ Okay, I cancelled your reservation for %s.", label), true
	}

	if pb := t.sess.PendingBooking; pb != nil {
		switch {
		case pb.Kind == models.BookingKindLocker:
			return t.confirmLockerBooking(pb), true
		case pb.Kind == models.BookingKindStudy && pb.Phase == models.StudyPhaseConfirm:
			return t.confirmStudyBooking(pb), true
		}
	}

	return "", false
}

// handleDeny discards a pending action with a refusal message.
func (t *turn) handleDeny() (string, bool) {
	if pc := t.sess.PendingCancel; pc != nil {
		label := pc.Label
		t.sess.PendingCancel = nil
		return fmt.Sprintf("❌ Okay, I will NOT cancel your reservation for %s.", label), true
	}

	if pb := t.sess.PendingBooking; pb != nil {
		label := "that reservation"
		if pb.Kind == models.BookingKindLocker {
			label = fmt.Sprintf("Locker %d", pb.LockerNumber)
		} else if pb.Kind == models.BookingKindStudy {
			label = "that study room"
			if pb.RoomName != "" {
				label = pb.RoomName
			}
		}
		t.sess.PendingBooking = nil
		return fmt.Sprintf("❌ Okay, I will NOT reserve %s.", label), true
	}

	return "", false
}

// confirmLockerBooking re-checks availability before committing: the locker
// may have been taken between the question and the confirmation.
func (t *turn) confirmLockerBooking(pb *models.PendingBooking) string {
	num := pb.LockerNumber
	t.sess.PendingBooking = nil

	if !LockerFree(t.reservations(), num) {
		return fmt.Sprintf(`Locker %d is no longer available. Try "free lockers" or reserve a different number.`, num)
	}

	resource, ok := t.findLockerResource()
	if !ok {
		return "I could not find a locker resource in the app. Please use the Resources tab to reserve a locker."
	}

	now := t.svc.Now()
	t.commit(models.Reservation{
		ID:           t.svc.IDs.NextID(),
		ResourceID:   resource.ID,
		ResourceName: resource.Name,
		Date:         now.Format("2006-01-02"),
		Time:         now.Format("15:04"),
		Duration:     0,
		LockerNumber: num,
	}, fmt.Sprintf("Locker %d reserved", num))

	return fmt.Sprintf("✅ Done. I reserved Locker %d for today. It will stay reserved until you release it.", num)
}

// confirmStudyBooking re-validates the room still exists and the user is not
// already booked at that exact time, then commits a 1-hour reservation.
func (t *turn) confirmStudyBooking(pb *models.PendingBooking) string {
	t.sess.PendingBooking = nil
	today := t.svc.today()

	if _, found := t.findStudyAt(today, pb.Time24); found {
		return fmt.Sprintf("You already have a study room booked at %s. I won't create another one.", pb.TimeLabel)
	}

	room, ok := t.findResourceByID(pb.RoomID)
	if !ok {
		return studyRoomGonePrompt
	}

	t.commit(models.Reservation{
		ID:           t.svc.IDs.NextID(),
		ResourceID:   room.ID,
		ResourceName: room.Name,
		Date:         today,
		Time:         pb.Time24,
		Duration:     1,
	}, fmt.Sprintf("%s reserved at %s", pb.RoomName, pb.TimeLabel))

	return fmt.Sprintf("✅ Done. I reserved %s at %s for today.", pb.RoomName, pb.TimeLabel)
}

func (t *turn) findResourceByID(id string) (models.Resource, bool) {
	for _, r := range t.resources() {
		if r.ID == id {
			return r, true
		}
	}
	return models.Resource{}, false
}
