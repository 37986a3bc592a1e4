package assistant

import (
	"fmt"
	"strings"

	"commuterhub/models"
)

const (
	studyRoomGonePrompt = "I could not find that study room in the app anymore. Please use the Resources tab."
	studyConfirmPrompt  = "I can book %s today at %s. Do you want me to reserve it? Type YES or NO."
)

// handleBookStudy starts the study room flow. When the line already names a
// room and a parseable time ("book room a at 3pm") it skips straight to the
// confirmation phase; otherwise it opens the room-then-time dialog.
func (t *turn) handleBookStudy(text string) (string, bool) {
	rooms := t.studyRooms()
	if len(rooms) == 0 {
		return "I could not find any study rooms in the app. Please use the Resources tab.", true
	}

	hasA := strings.Contains(text, "room a")
	hasB := strings.Contains(text, "room b")
	parsed, hasTime := ParseClockTime(text)

	if (hasA || hasB) && hasTime {
		key := "a"
		if hasB {
			key = "b"
		}
		room, ok := rooms[key]
		if !ok {
			return fmt.Sprintf("I could not find Group Study Room %s in the app.", strings.ToUpper(key)), true
		}

		if existing, found := t.findStudyAt(t.svc.today(), parsed.Time24); found {
			return fmt.Sprintf("You already have a study room booked then: %s at %s.", existing.ResourceName, existing.Time), true
		}

		t.sess.PendingBooking = &models.PendingBooking{
			Kind:      models.BookingKindStudy,
			Phase:     models.StudyPhaseConfirm,
			RoomID:    room.ID,
			RoomName:  room.Name,
			Time24:    parsed.Time24,
			TimeLabel: parsed.Label,
		}
		t.sess.PendingCancel = nil

		return fmt.Sprintf(studyConfirmPrompt, room.Name, parsed.Label), true
	}

	t.sess.PendingBooking = &models.PendingBooking{Kind: models.BookingKindStudy, Phase: models.StudyPhaseRoom}
	t.sess.PendingCancel = nil

	return "Sure, which study room would you like: Group Study Room A or Group Study Room B?", true
}

// handleRoomChoice consumes the room-selection phase. Unrecognized input
// re-asks without changing phase.
func (t *turn) handleRoomChoice(text string) string {
	var key string
	if strings.Contains(text, "room a") || text == "a" {
		key = "a"
	}
	if strings.Contains(text, "room b") || text == "b" {
		key = "b"
	}
	if key == "" {
		return `Please tell me "Room A" or "Room B".`
	}

	room, ok := t.studyRooms()[key]
	if !ok {
		t.sess.PendingBooking = nil
		return fmt.Sprintf("I could not find Group Study Room %s in the app.", strings.ToUpper(key))
	}

	t.sess.PendingBooking = &models.PendingBooking{
		Kind:     models.BookingKindStudy,
		Phase:    models.StudyPhaseTime,
		RoomID:   room.ID,
		RoomName: room.Name,
	}

	return fmt.Sprintf(`Great, I'll use %s. Tell me a time for today, for example "3pm" or "10:30 am".`, room.Name)
}

// handleTimeChoice consumes the time-selection phase. Unparseable input
// re-asks; an exact-time clash with an existing booking aborts the flow.
func (t *turn) handleTimeChoice(text string) string {
	parsed, ok := ParseClockTime(text)
	if !ok {
		return `I could not understand that time. Try something like "3pm" or "10:30 am".`
	}

	if existing, found := t.findStudyAt(t.svc.today(), parsed.Time24); found {
		t.sess.PendingBooking = nil
		return fmt.Sprintf("You already have a study room booked then: %s at %s.", existing.ResourceName, existing.Time)
	}

	room, found := t.findResourceByID(t.sess.PendingBooking.RoomID)
	if !found {
		t.sess.PendingBooking = nil
		return studyRoomGonePrompt
	}

	t.sess.PendingBooking = &models.PendingBooking{
		Kind:      models.BookingKindStudy,
		Phase:     models.StudyPhaseConfirm,
		RoomID:    room.ID,
		RoomName:  room.Name,
		Time24:    parsed.Time24,
		TimeLabel: parsed.Label,
	}

	return fmt.Sprintf(studyConfirmPrompt, room.Name, parsed.Label)
}

// studyRooms maps "a"/"b" to the configured study room resources that exist
// in the catalog.
func (t *turn) studyRooms() map[string]models.Resource {
	rooms := make(map[string]models.Resource)
	for _, r := range t.resources() {
		name := strings.ToLower(r.Name)
		if strings.Contains(name, "study room a") {
			rooms["a"] = r
		} else if strings.Contains(name, "study room b") {
			rooms["b"] = r
		}
	}
	return rooms
}

// findStudyAt returns the user's study room reservation at the exact date and
// time, if any.
func (t *turn) findStudyAt(date, time24 string) (models.Reservation, bool) {
	for _, r := range t.reservations() {
		if strings.Contains(strings.ToLower(r.ResourceName), "study room") && r.Date == date && r.Time == time24 {
			return r, true
		}
	}
	return models.Reservation{}, false
}
